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

// Package serializer moves recipe data in and out of resep.
//
// Two concerns live here.
//
// # Interchange tables
//
// TableIO loads and stores the raw CSV records of a recipe
// book. The location is a local path, an http(s) URL (read-only), a
// Kubernetes ConfigMap written as cm://namespace/name or an OCI registry
// artifact written as oci://registry/repository:tag:
//
//	tables := serializer.NewTableIO(serializer.WithKubeconfig(path))
//	rows, err := tables.Read(ctx, "cm://kitchen/recipes")
//	if err != nil {
//	    return err // errors.ErrCodeIOFailure
//	}
//
// Local writes go through a temporary file in the target directory that is
// renamed into place, so a failed export never truncates an existing book.
// ConfigMaps keep the CSV under the recipes.csv data key and are created on
// first write. Registry books are single-layer artifacts pushed and pulled
// through pkg/oci. Every location failure is reported as IO_FAILURE with the
// cause wrapped; IsNotExist tells a missing book from other failures.
//
// # Listings
//
// Writer renders documents as JSON, YAML, a text table or CSV:
//
//	w := serializer.NewWriter(serializer.FormatTable, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, listing); err != nil {
//	    return err
//	}
//
// Values implementing Tabular are rendered as column tables (and are the
// only values accepted by the CSV format); everything else is flattened to
// FIELD/VALUE pairs.
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//	serializer.RespondCSV(w, http.StatusOK, rows)
//
// Both buffer the body before writing headers so an encoding failure never
// produces a partial response.
package serializer
