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

// Package recipe implements the recipe book core: a fixed-capacity ordered
// store of recipes, read-only queries that project it into views of store
// indices, and the two insertion sorts.
//
// # Store
//
// A Store holds at most defaults.MaxRecipes recipes in insertion order. No
// two stored recipes share a normalized title (see textutil.Normalize).
// Every mutating method validates completely before it changes anything, so
// a failed call leaves the store as it was.
//
//	s := recipe.NewStore()
//	i, err := s.Add("Soto Ayam", "ayam\nserai", "rebus ayam\nsaring kuah", "45")
//	if errors.HasCode(err, errors.ErrCodeDuplicateTitle) {
//	    // pick another title
//	}
//
// # Views
//
// Queries return a View: the ordered store indices of the records a
// presentation layer is showing. Selections made against that listing are
// resolved back to store indices with View.Resolve. A View is a value; it
// is never updated behind the caller's back, and callers recompute it after
// any mutation.
//
//	v := s.SearchByTitle("soto")
//	idx, err := v.Resolve([]int{1}) // first displayed row
//
// # Sorting
//
// SortByTitle returns a View and leaves the store untouched. SortByDuration
// reorders the store itself. Both are stable insertion sorts.
//
// # Concurrency
//
// A Store is not safe for concurrent use. Callers that share one (the HTTP
// server does, through cookbook.Cookbook) must serialize access.
package recipe
