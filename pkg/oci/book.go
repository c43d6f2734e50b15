// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oci

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/errdef"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/dapur-nusantara/resep/pkg/defaults"
)

const (
	// ArtifactType is the artifact type of a recipe book manifest.
	ArtifactType = "application/vnd.resep.book.v1"

	// LayerMediaType is the media type of the single CSV layer.
	LayerMediaType = "text/csv"

	// LayerTitle names the CSV layer when the artifact is pulled to disk.
	LayerTitle = "recipes.csv"
)

// PushResult contains the result of a successful push.
type PushResult struct {
	// Digest is the SHA256 digest of the pushed manifest.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// Option configures a Client.
type Option func(*Client)

// WithPlainHTTP uses HTTP instead of HTTPS for the registry connection.
func WithPlainHTTP(plain bool) Option {
	return func(c *Client) {
		c.plainHTTP = plain
	}
}

// WithInsecureTLS skips TLS certificate verification.
func WithInsecureTLS(insecure bool) Option {
	return func(c *Client) {
		c.insecureTLS = insecure
	}
}

// WithAnnotations adds manifest annotations to pushed books.
func WithAnnotations(annotations map[string]string) Option {
	return func(c *Client) {
		c.annotations = annotations
	}
}

// WithTarget sends every reference to target instead of a remote
// registry, e.g. an in-memory or OCI layout store.
func WithTarget(target oras.Target) Option {
	return func(c *Client) {
		c.target = target
	}
}

// Client pushes and pulls recipe books as OCI artifacts.
type Client struct {
	plainHTTP   bool
	insecureTLS bool
	annotations map[string]string
	target      oras.Target
}

// NewClient creates a Client with the given options applied.
func NewClient(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push stores data as the single CSV layer of a book artifact tagged ref.Tag.
func (c *Client) Push(ctx context.Context, ref *Reference, data []byte) (*PushResult, error) {
	dst, err := c.open(ref)
	if err != nil {
		return nil, err
	}

	desc, err := pushBook(ctx, dst, ref.Tag, data, c.annotations)
	if err != nil {
		return nil, fmt.Errorf("failed to push %s: %w", ref.ImageReference(), err)
	}

	slog.Debug("pushed recipe book",
		"reference", ref.ImageReference(),
		"digest", desc.Digest.String(),
		"bytes", len(data))

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: ref.ImageReference(),
	}, nil
}

// Pull returns the CSV layer of the book artifact at ref.
func (c *Client) Pull(ctx context.Context, ref *Reference) ([]byte, error) {
	src, err := c.open(ref)
	if err != nil {
		return nil, err
	}

	data, err := pullBook(ctx, src, ref.Tag)
	if err != nil {
		return nil, fmt.Errorf("failed to pull %s: %w", ref.ImageReference(), err)
	}
	return data, nil
}

// IsNotFound reports whether err means the tag or repository does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, errdef.ErrNotFound)
}

func (c *Client) open(ref *Reference) (oras.Target, error) {
	if c.target != nil {
		return c.target, nil
	}

	repo, err := remote.NewRepository(ref.Repo())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize remote repository: %w", err)
	}
	repo.PlainHTTP = c.plainHTTP
	repo.Client = createAuthClient(c.plainHTTP, c.insecureTLS)
	return repo, nil
}

// pushBook packs data into a one-layer OCI 1.1 manifest in memory and
// copies it to dst under tag.
func pushBook(ctx context.Context, dst oras.Target, tag string, data []byte, annotations map[string]string) (ociv1.Descriptor, error) {
	store := memory.New()

	layer, err := oras.PushBytes(ctx, store, LayerMediaType, data)
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to stage book layer: %w", err)
	}
	layer.Annotations = map[string]string{ociv1.AnnotationTitle: LayerTitle}

	manifestDesc, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers:              []ociv1.Descriptor{layer},
			ManifestAnnotations: annotations,
		})
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if err := store.Tag(ctx, manifestDesc, tag); err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to tag manifest in local store: %w", err)
	}

	desc, err := oras.Copy(ctx, store, tag, dst, tag, oras.DefaultCopyOptions)
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to copy artifact: %w", err)
	}
	return desc, nil
}

// pullBook fetches the manifest tagged tag from src and returns its CSV layer.
func pullBook(ctx context.Context, src oras.ReadOnlyTarget, tag string) ([]byte, error) {
	_, raw, err := oras.FetchBytes(ctx, src, tag, oras.DefaultFetchBytesOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}

	var manifest ociv1.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if manifest.ArtifactType != ArtifactType {
		return nil, fmt.Errorf("artifact type %q is not a recipe book", manifest.ArtifactType)
	}

	for _, layer := range manifest.Layers {
		if layer.MediaType != LayerMediaType {
			continue
		}
		if layer.Size > defaults.MaxImportBytes {
			return nil, fmt.Errorf("book layer of %d bytes exceeds %d bytes", layer.Size, defaults.MaxImportBytes)
		}
		data, err := content.FetchAll(ctx, src, layer)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch book layer: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("manifest has no %s layer", LayerMediaType)
}

// createAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, _ := credentials.NewStoreFromDocker(credentials.StoreOptions{})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
