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

// Package defaults provides centralized configuration constants for resep.
//
// This package defines the recipe book limits, interchange defaults and the
// timeout values used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Categories
//
//   - Book limits: capacity and fuzzy suggestion threshold
//   - Interchange defaults: working book path, ConfigMap data key, size cap
//   - Handler and server timeouts: for the HTTP API
//   - HTTP client timeouts: for reading books from URLs
//   - ConfigMap timeouts: for Kubernetes API operations
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/dapur-nusantara/resep/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
//	defer cancel()
package defaults
