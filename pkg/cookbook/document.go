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

package cookbook

import (
	"strconv"

	"github.com/dapur-nusantara/resep/pkg/header"
	"github.com/dapur-nusantara/resep/pkg/recipe"
)

// ListItem is one printed line of a listing.
type ListItem struct {
	// Position is the 1-based number shown to the user.
	Position int `json:"position" yaml:"position"`
	// Index is the store index the position resolves to.
	Index         int `json:"index" yaml:"index"`
	recipe.Recipe `yaml:",inline"`
}

// Listing is a rendered view: recipes in display order, plus a title
// suggestion when a search found nothing.
type Listing struct {
	header.Header `yaml:",inline"`
	Items         []ListItem         `json:"items" yaml:"items"`
	Suggestion    *recipe.Suggestion `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// NewListing builds a listing document from view entries.
func NewListing(entries []recipe.Entry, opts ...header.Option) *Listing {
	l := &Listing{Items: make([]ListItem, 0, len(entries))}
	l.Stamp(header.KindRecipeList, opts...)
	for i, e := range entries {
		l.Items = append(l.Items, ListItem{Position: i + 1, Index: e.Index, Recipe: e.Recipe})
	}
	return l
}

// View returns the store indices of the listing in display order.
func (l *Listing) View() recipe.View {
	v := make(recipe.View, len(l.Items))
	for i, item := range l.Items {
		v[i] = item.Index
	}
	return v
}

// Columns implements serializer.Tabular.
func (l *Listing) Columns() []string {
	return []string{"NO", "JUDUL", "WAKTU", "BAHAN", "LANGKAH"}
}

// Rows implements serializer.Tabular.
func (l *Listing) Rows() [][]string {
	rows := make([][]string, 0, len(l.Items))
	for _, item := range l.Items {
		rows = append(rows, []string{
			strconv.Itoa(item.Position),
			item.Title,
			strconv.Itoa(item.Duration) + " menit",
			item.Ingredients,
			item.Steps,
		})
	}
	return rows
}

// RecipeDocument is a single recipe with its store index.
type RecipeDocument struct {
	header.Header `yaml:",inline"`
	Index         int `json:"index" yaml:"index"`
	recipe.Recipe `yaml:",inline"`
}

// NewRecipeDocument wraps r for rendering.
func NewRecipeDocument(index int, r recipe.Recipe, opts ...header.Option) *RecipeDocument {
	d := &RecipeDocument{Index: index, Recipe: r}
	d.Stamp(header.KindRecipe, opts...)
	return d
}

// SuggestionDocument reports the result of a title suggestion.
type SuggestionDocument struct {
	header.Header `yaml:",inline"`
	Query         string             `json:"query" yaml:"query"`
	Suggestion    *recipe.Suggestion `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// NewSuggestionDocument wraps a suggestion lookup for rendering. A nil s
// means no stored title was close enough.
func NewSuggestionDocument(query string, s *recipe.Suggestion, opts ...header.Option) *SuggestionDocument {
	d := &SuggestionDocument{Query: query, Suggestion: s}
	d.Stamp(header.KindSuggestion, opts...)
	return d
}

// ImportResult reports how many recipes a table import or export touched.
type ImportResult struct {
	header.Header `yaml:",inline"`
	Location      string `json:"location,omitempty" yaml:"location,omitempty"`
	Count         int    `json:"count" yaml:"count"`
	Total         int    `json:"total" yaml:"total"`
}

// NewImportResult builds an ImportResult document.
func NewImportResult(location string, count, total int, opts ...header.Option) *ImportResult {
	d := &ImportResult{Location: location, Count: count, Total: total}
	d.Stamp(header.KindImportResult, opts...)
	return d
}
