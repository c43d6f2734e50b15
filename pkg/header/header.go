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

package header

import "time"

// APIVersionV1 is the current document API version.
const APIVersionV1 = "resep.dapur-nusantara.dev/v1"

// Kind names the document type rendered by resep.
type Kind string

const (
	KindRecipe       Kind = "Recipe"
	KindRecipeList   Kind = "RecipeList"
	KindSuggestion   Kind = "Suggestion"
	KindImportResult Kind = "ImportResult"
)

func (k Kind) String() string {
	return string(k)
}

// Metadata keys stamped on documents.
const (
	MetaTimestamp = "timestamp"
	MetaVersion   = "version"
	MetaBook      = "book"
)

// Header is embedded in every rendered document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option adjusts a Header after it has been stamped.
type Option func(*Header)

// WithMetadata sets a single metadata entry. Empty values are skipped.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithVersion records the version of the tool that produced the document.
func WithVersion(version string) Option {
	return WithMetadata(MetaVersion, version)
}

// WithBook records the book location the document was rendered from.
func WithBook(location string) Option {
	return WithMetadata(MetaBook, location)
}

// Stamp resets h to a fresh header of the given kind at the current API
// version, records the UTC creation time and then applies opts.
func (h *Header) Stamp(kind Kind, opts ...Option) {
	h.Kind = kind
	h.APIVersion = APIVersionV1
	h.Metadata = map[string]string{
		MetaTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	for _, opt := range opts {
		opt(h)
	}
}

// GetKind returns the document kind. Writers use it to label stored output.
func (h *Header) GetKind() Kind {
	return h.Kind
}
