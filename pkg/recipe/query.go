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
	"strings"

	"github.com/dapur-nusantara/resep/pkg/defaults"
	"github.com/dapur-nusantara/resep/pkg/textutil"
)

// ListAll returns every store index in store order.
func (s *Store) ListAll() View {
	v := make(View, len(s.recipes))
	for i := range s.recipes {
		v[i] = i
	}
	return v
}

// SearchByTitle returns the indices whose title contains query, ignoring
// case. A blank query lists everything.
func (s *Store) SearchByTitle(query string) View {
	return s.search(query, func(r Recipe) string { return r.Title })
}

// SearchByIngredient returns the indices whose numbered ingredient text
// contains query, ignoring case. A blank query lists everything.
func (s *Store) SearchByIngredient(query string) View {
	return s.search(query, func(r Recipe) string { return r.Ingredients })
}

func (s *Store) search(query string, field func(Recipe) string) View {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.ListAll()
	}

	v := View{}
	for i, r := range s.recipes {
		if textutil.ContainsFold(field(r), q) {
			v = append(v, i)
		}
	}
	return v
}

// SuggestTitle finds the stored title closest to query once both are folded
// and stripped of whitespace. The earliest index wins ties. It reports false
// when the store is empty or the best distance exceeds
// defaults.SuggestMaxDistance.
func (s *Store) SuggestTitle(query string) (Suggestion, bool) {
	q := textutil.Squash(query)

	best := Suggestion{Index: -1}
	for i, r := range s.recipes {
		d := textutil.EditDistance(q, textutil.Squash(r.Title))
		if best.Index < 0 || d < best.Distance {
			best = Suggestion{Index: i, Title: r.Title, Distance: d}
		}
	}
	if best.Index < 0 || best.Distance > defaults.SuggestMaxDistance {
		return Suggestion{}, false
	}
	return best, true
}

// FilterByMaxDuration returns the indices of recipes that take at most
// maxMinutes, in store order. maxMinutes is parsed like a recipe duration.
func (s *Store) FilterByMaxDuration(maxMinutes string) (View, error) {
	limit, err := ParseDuration(maxMinutes)
	if err != nil {
		return nil, err
	}

	v := View{}
	for i, r := range s.recipes {
		if r.Duration <= limit {
			v = append(v, i)
		}
	}
	return v, nil
}
