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
	"github.com/dapur-nusantara/resep/pkg/textutil"
)

// SortByTitle returns all indices ordered by case-folded title. Equal titles
// keep store order. The store itself is not reordered.
func (s *Store) SortByTitle(ascending bool) View {
	keys := make([]string, len(s.recipes))
	for i, r := range s.recipes {
		keys[i] = textutil.Fold(r.Title)
	}

	v := s.ListAll()
	for i := 1; i < len(v); i++ {
		cur := v[i]
		j := i - 1
		for j >= 0 && outOfOrder(keys[v[j]], keys[cur], ascending) {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = cur
	}
	return v
}

// SortByDuration reorders the store by duration. Recipes with equal
// durations keep their relative order.
func (s *Store) SortByDuration(ascending bool) {
	for i := 1; i < len(s.recipes); i++ {
		cur := s.recipes[i]
		j := i - 1
		for j >= 0 && outOfOrder(s.recipes[j].Duration, cur.Duration, ascending) {
			s.recipes[j+1] = s.recipes[j]
			j--
		}
		s.recipes[j+1] = cur
	}
}

// outOfOrder reports whether prev must move after next. Equal keys never
// move, which keeps the insertion sort stable in both directions.
func outOfOrder[T int | string](prev, next T, ascending bool) bool {
	if ascending {
		return prev > next
	}
	return prev < next
}
