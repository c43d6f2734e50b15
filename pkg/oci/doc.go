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

// Package oci stores recipe books in OCI-compliant registries.
//
// A book is pushed as an OCI 1.1 artifact of type
// application/vnd.resep.book.v1 whose single text/csv layer holds the
// interchange CSV, using the ORAS (OCI Registry As Storage) library.
// Locations use the oci:// scheme:
//
//	oci://ghcr.io/dapur/resep:2025-06
//	oci://localhost:5000/test/resep        (tag defaults to latest)
//
// # Usage
//
//	ref, err := oci.ParseReference("oci://ghcr.io/dapur/resep:v1")
//	if err != nil {
//	    return err
//	}
//	c := oci.NewClient()
//	if _, err := c.Push(ctx, ref, csv); err != nil {
//	    return err
//	}
//	data, err := c.Pull(ctx, ref)
//
// # Authentication
//
// Credentials come from the standard Docker configuration
// (~/.docker/config.json) through the ORAS credentials package.
// WithPlainHTTP and WithInsecureTLS support local development registries.
//
// WithTarget redirects every reference to a local oras.Target such as an
// in-memory or OCI layout store.
package oci
