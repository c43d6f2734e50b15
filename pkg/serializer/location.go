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

package serializer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	reserrors "github.com/dapur-nusantara/resep/pkg/errors"
	"github.com/dapur-nusantara/resep/pkg/k8s/client"
	"github.com/dapur-nusantara/resep/pkg/oci"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ConfigMapURIScheme prefixes ConfigMap locations: cm://namespace/name.
const ConfigMapURIScheme = "cm://"

// LocationKind identifies where a recipe table is stored.
type LocationKind string

const (
	LocationFile      LocationKind = "file"
	LocationHTTP      LocationKind = "http"
	LocationConfigMap LocationKind = "configmap"
	LocationOCI       LocationKind = "oci"
)

// Location is a parsed recipe table address.
type Location struct {
	Kind LocationKind
	// Path is the file path, URL or oci:// reference. Empty for ConfigMaps.
	Path string
	// Namespace and Name address a ConfigMap.
	Namespace string
	Name      string
}

// String returns the location in the form it was parsed from.
func (l Location) String() string {
	if l.Kind == LocationConfigMap {
		return ConfigMapURIScheme + l.Namespace + "/" + l.Name
	}
	return l.Path
}

// ParseLocation classifies uri as a ConfigMap, an OCI registry reference,
// an http(s) URL or a local path.
func ParseLocation(uri string) (Location, error) {
	trimmed := strings.TrimSpace(uri)
	switch {
	case trimmed == "":
		return Location{}, fmt.Errorf("location is empty")
	case strings.HasPrefix(trimmed, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(trimmed)
		if err != nil {
			return Location{}, err
		}
		return Location{Kind: LocationConfigMap, Namespace: namespace, Name: name}, nil
	case oci.IsReference(trimmed):
		if _, err := oci.ParseReference(trimmed); err != nil {
			return Location{}, err
		}
		return Location{Kind: LocationOCI, Path: trimmed}, nil
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return Location{Kind: LocationHTTP, Path: trimmed}, nil
	default:
		return Location{Kind: LocationFile, Path: trimmed}, nil
	}
}

// TableIO reads and writes recipe tables at any supported location.
type TableIO struct {
	kube       client.Interface
	kubeconfig string
	http       *HttpReader
	registry   *oci.Client
}

// TableOption is a functional option for configuring a TableIO.
type TableOption func(*TableIO)

// WithKubeClient sets the clientset used for ConfigMap locations instead of
// discovering one.
func WithKubeClient(c client.Interface) TableOption {
	return func(t *TableIO) {
		t.kube = c
	}
}

// WithKubeconfig sets an explicit kubeconfig path for ConfigMap locations.
func WithKubeconfig(path string) TableOption {
	return func(t *TableIO) {
		t.kubeconfig = path
	}
}

// WithHTTPReader sets the reader used for http(s) locations.
func WithHTTPReader(r *HttpReader) TableOption {
	return func(t *TableIO) {
		t.http = r
	}
}

// WithRegistryClient sets the client used for oci:// locations.
func WithRegistryClient(c *oci.Client) TableOption {
	return func(t *TableIO) {
		t.registry = c
	}
}

// NewTableIO creates a TableIO with the given options applied.
func NewTableIO(opts ...TableOption) *TableIO {
	t := &TableIO{}
	for _, opt := range opts {
		opt(t)
	}
	if t.http == nil {
		t.http = NewHttpReader()
	}
	if t.registry == nil {
		t.registry = oci.NewClient()
	}
	return t
}

// Read fetches and parses the CSV records at uri.
func (t *TableIO) Read(ctx context.Context, uri string) ([][]string, error) {
	loc, err := ParseLocation(uri)
	if err != nil {
		return nil, ioFailure("invalid location", uri, err)
	}

	var data []byte
	switch loc.Kind {
	case LocationConfigMap:
		data, err = t.readConfigMap(ctx, loc)
	case LocationHTTP:
		data, err = t.http.ReadWithContext(ctx, loc.Path)
	case LocationOCI:
		data, err = t.pullBook(ctx, loc)
	default:
		data, err = os.ReadFile(loc.Path)
	}
	if err != nil {
		return nil, ioFailure("failed to read recipe table", uri, err)
	}

	records, err := ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, ioFailure("failed to parse recipe table", uri, err)
	}

	slog.Debug("read recipe table",
		"location", loc.String(),
		"kind", loc.Kind,
		"records", len(records))
	return records, nil
}

// Write encodes rows as CSV and stores them at uri. http(s) locations are
// read-only.
func (t *TableIO) Write(ctx context.Context, uri string, rows [][]string) error {
	loc, err := ParseLocation(uri)
	if err != nil {
		return ioFailure("invalid location", uri, err)
	}

	data, err := encodeCSV(rows)
	if err != nil {
		return ioFailure("failed to encode recipe table", uri, err)
	}

	switch loc.Kind {
	case LocationConfigMap:
		err = t.writeConfigMap(ctx, loc, data)
	case LocationHTTP:
		err = fmt.Errorf("http locations are read-only")
	case LocationOCI:
		err = t.pushBook(ctx, loc, data)
	default:
		err = writeFileAtomic(loc.Path, data)
	}
	if err != nil {
		return ioFailure("failed to write recipe table", uri, err)
	}

	slog.Debug("wrote recipe table",
		"location", loc.String(),
		"kind", loc.Kind,
		"records", len(rows))
	return nil
}

func (t *TableIO) kubeClient() (client.Interface, error) {
	if t.kube != nil {
		return t.kube, nil
	}
	cs, cfg, err := client.GetKubeClientWithConfig(t.kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	slog.Debug("kubernetes client ready", "auth_method", client.AuthMethod(cfg))
	return cs, nil
}

func (t *TableIO) pullBook(ctx context.Context, loc Location) ([]byte, error) {
	ref, err := oci.ParseReference(loc.Path)
	if err != nil {
		return nil, err
	}
	return t.registry.Pull(ctx, ref)
}

func (t *TableIO) pushBook(ctx context.Context, loc Location, data []byte) error {
	ref, err := oci.ParseReference(loc.Path)
	if err != nil {
		return err
	}
	res, err := t.registry.Push(ctx, ref, data)
	if err != nil {
		return err
	}
	slog.Info("pushed recipe book", "reference", res.Reference, "digest", res.Digest)
	return nil
}

// IsNotExist reports whether err means the table location does not exist
// (missing file, 404, missing ConfigMap or missing registry tag).
func IsNotExist(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrNotExist) || apierrors.IsNotFound(err) || oci.IsNotFound(err) {
		return true
	}
	var se *HTTPStatusError
	return errors.As(err, &se) && se.StatusCode == 404
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func ioFailure(msg, uri string, cause error) error {
	return reserrors.WrapWithContext(reserrors.ErrCodeIOFailure, msg, cause,
		map[string]any{"location": uri})
}
