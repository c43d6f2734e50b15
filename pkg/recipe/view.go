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

package recipe

import (
	"fmt"

	"github.com/dapur-nusantara/resep/pkg/errors"
)

// View is an ordered sequence of store indices, the result of a listing,
// search, filter or sort. It is only valid until the next store mutation.
type View []int

// Resolve maps 1-based positions within the view back to store indices.
// A position outside the view fails with INDEX_OUT_OF_RANGE and no
// indices are returned.
func (v View) Resolve(positions []int) ([]int, error) {
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		if p < 1 || p > len(v) {
			return nil, errors.NewWithContext(errors.ErrCodeIndexOutOfRange,
				fmt.Sprintf("position %d is not in the listing", p),
				map[string]any{"position": p, "count": len(v)})
		}
		out = append(out, v[p-1])
	}
	return out, nil
}

// Entry pairs a recipe with its store index.
type Entry struct {
	Index  int    `json:"index" yaml:"index"`
	Recipe Recipe `json:"recipe" yaml:"recipe"`
}

// Entries materializes the recipes of a view in view order. Indices that no
// longer exist in the store are skipped.
func (s *Store) Entries(v View) []Entry {
	out := make([]Entry, 0, len(v))
	for _, i := range v {
		if i < 0 || i >= len(s.recipes) {
			continue
		}
		out = append(out, Entry{Index: i, Recipe: s.recipes[i]})
	}
	return out
}
