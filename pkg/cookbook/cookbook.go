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
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dapur-nusantara/resep/pkg/recipe"
	"github.com/dapur-nusantara/resep/pkg/serializer"
	"github.com/dapur-nusantara/resep/pkg/table"
)

// Cookbook wraps a recipe store with serialized access, table I/O and
// metrics.
type Cookbook struct {
	mu     sync.Mutex
	store  *recipe.Store
	tables *serializer.TableIO
}

// Option is a functional option for configuring a Cookbook.
type Option func(*Cookbook)

// WithStore uses an existing store instead of a new empty one.
func WithStore(s *recipe.Store) Option {
	return func(c *Cookbook) {
		c.store = s
	}
}

// WithTableIO sets the reader and writer for import and export locations.
func WithTableIO(t *serializer.TableIO) Option {
	return func(c *Cookbook) {
		c.tables = t
	}
}

// New creates a Cookbook over an empty store of default capacity.
func New(opts ...Option) *Cookbook {
	c := &Cookbook{}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = recipe.NewStore()
	}
	if c.tables == nil {
		c.tables = serializer.NewTableIO()
	}
	return c
}

// Len returns the number of recipes.
func (c *Cookbook) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Cap returns the recipe capacity.
func (c *Cookbook) Cap() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Cap()
}

// Get returns the recipe at a store index.
func (c *Cookbook) Get(index int) (recipe.Recipe, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, err := c.store.Get(index)
	return r, observe("get", err)
}

// Add stores a new recipe and returns its index.
func (c *Cookbook) Add(in RecipeInput) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(in)
}

// AddAndGet stores a new recipe and returns it as stored, numbered lists
// included, without releasing the lock in between.
func (c *Cookbook) AddAndGet(in RecipeInput) (int, recipe.Recipe, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, err := c.add(in)
	if err != nil {
		return idx, recipe.Recipe{}, err
	}
	r, err := c.store.Get(idx)
	return idx, r, err
}

func (c *Cookbook) add(in RecipeInput) (int, error) {
	idx, err := c.store.Add(in.Title, in.Ingredients, in.Steps, string(in.Duration))
	slog.Debug("add", "title", in.Title, "index", idx, "error", err)
	return idx, observe("add", err)
}

// Update replaces the recipe at a store index.
func (c *Cookbook) Update(index int, in RecipeInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.update(index, in)
}

// UpdateAndGet replaces the recipe at a store index and returns the stored
// result.
func (c *Cookbook) UpdateAndGet(index int, in RecipeInput) (recipe.Recipe, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.update(index, in); err != nil {
		return recipe.Recipe{}, err
	}
	return c.store.Get(index)
}

func (c *Cookbook) update(index int, in RecipeInput) error {
	err := c.store.Update(index, in.Title, in.Ingredients, in.Steps, string(in.Duration))
	slog.Debug("update", "index", index, "title", in.Title, "error", err)
	return observe("update", err)
}

// RemoveMany removes the recipes at the given store indices.
func (c *Cookbook) RemoveMany(indices []int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeMany(indices)
}

// RemoveAndCount is RemoveMany that also reports how many recipes are left.
func (c *Cookbook) RemoveAndCount(indices []int) (removed, remaining int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed, err = c.removeMany(indices)
	return removed, c.store.Len(), err
}

func (c *Cookbook) removeMany(indices []int) (int, error) {
	n, err := c.store.RemoveMany(indices)
	slog.Debug("remove", "indices", indices, "removed", n, "error", err)
	return n, observe("remove", err)
}

// RemoveSelected removes the recipes at 1-based positions of view.
func (c *Cookbook) RemoveSelected(view recipe.View, positions []int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	indices, err := view.Resolve(positions)
	if err != nil {
		return 0, observe("remove", err)
	}
	n, err := c.store.RemoveMany(indices)
	slog.Debug("remove selected", "positions", positions, "removed", n, "error", err)
	return n, observe("remove", err)
}

// Clear removes every recipe and returns how many there were.
func (c *Cookbook) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.store.Clear()
	slog.Debug("clear", "removed", n)
	_ = observe("clear", nil)
	return n
}

// ListAll returns every index in store order.
func (c *Cookbook) ListAll() recipe.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listAll()
}

// ListEntries returns every recipe in store order.
func (c *Cookbook) ListEntries() []recipe.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Entries(c.listAll())
}

func (c *Cookbook) listAll() recipe.View {
	_ = observe("list", nil)
	return c.store.ListAll()
}

// SearchByTitle returns the matching indices. When nothing matches a
// non-blank query, the closest title within the suggestion distance is
// returned as well.
func (c *Cookbook) SearchByTitle(query string) (recipe.View, *recipe.Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchByTitle(query)
}

// SearchTitleEntries is SearchByTitle resolved to recipes under the same
// lock.
func (c *Cookbook) SearchTitleEntries(query string) ([]recipe.Entry, *recipe.Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, hint := c.searchByTitle(query)
	return c.store.Entries(v), hint
}

func (c *Cookbook) searchByTitle(query string) (recipe.View, *recipe.Suggestion) {
	v := c.store.SearchByTitle(query)
	var hint *recipe.Suggestion
	if len(v) == 0 {
		if s, ok := c.store.SuggestTitle(query); ok {
			hint = &s
		}
	}
	slog.Debug("search title", "query", query, "matches", len(v), "suggested", hint != nil)
	_ = observe("search_title", nil)
	return v, hint
}

// SearchByIngredient returns the indices whose ingredients match query.
func (c *Cookbook) SearchByIngredient(query string) recipe.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchByIngredient(query)
}

// SearchIngredientEntries is SearchByIngredient resolved to recipes.
func (c *Cookbook) SearchIngredientEntries(query string) []recipe.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Entries(c.searchByIngredient(query))
}

func (c *Cookbook) searchByIngredient(query string) recipe.View {
	v := c.store.SearchByIngredient(query)
	slog.Debug("search ingredient", "query", query, "matches", len(v))
	_ = observe("search_ingredient", nil)
	return v
}

// SuggestTitle returns the closest stored title to query, if close enough.
func (c *Cookbook) SuggestTitle(query string) (recipe.Suggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.store.SuggestTitle(query)
	slog.Debug("suggest", "query", query, "found", ok, "distance", s.Distance)
	_ = observe("suggest", nil)
	return s, ok
}

// FilterByMaxDuration returns the indices of recipes taking at most
// maxMinutes.
func (c *Cookbook) FilterByMaxDuration(maxMinutes string) (recipe.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filterByMaxDuration(maxMinutes)
}

// FilterEntries is FilterByMaxDuration resolved to recipes.
func (c *Cookbook) FilterEntries(maxMinutes string) ([]recipe.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, err := c.filterByMaxDuration(maxMinutes)
	if err != nil {
		return nil, err
	}
	return c.store.Entries(v), nil
}

func (c *Cookbook) filterByMaxDuration(maxMinutes string) (recipe.View, error) {
	v, err := c.store.FilterByMaxDuration(maxMinutes)
	slog.Debug("filter", "max", maxMinutes, "matches", len(v), "error", err)
	return v, observe("filter", err)
}

// SortByTitle returns all indices ordered by title. The store is not
// reordered.
func (c *Cookbook) SortByTitle(ascending bool) recipe.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortByTitle(ascending)
}

// SortTitleEntries is SortByTitle resolved to recipes.
func (c *Cookbook) SortTitleEntries(ascending bool) []recipe.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Entries(c.sortByTitle(ascending))
}

func (c *Cookbook) sortByTitle(ascending bool) recipe.View {
	_ = observe("sort_title", nil)
	return c.store.SortByTitle(ascending)
}

// SortByDuration reorders the store by duration and returns the new store
// order.
func (c *Cookbook) SortByDuration(ascending bool) recipe.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortByDuration(ascending)
}

// SortDurationEntries reorders the store by duration and returns the
// recipes in their new order.
func (c *Cookbook) SortDurationEntries(ascending bool) []recipe.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Entries(c.sortByDuration(ascending))
}

func (c *Cookbook) sortByDuration(ascending bool) recipe.View {
	c.store.SortByDuration(ascending)
	slog.Debug("sort duration", "ascending", ascending)
	_ = observe("sort_duration", nil)
	return c.store.ListAll()
}

// Entries materializes the recipes of a view. Indices removed since the
// view was taken are skipped; callers sharing the book across goroutines
// use the *Entries variants instead.
func (c *Cookbook) Entries(view recipe.View) []recipe.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Entries(view)
}

// ImportRecords adds the recipes of an interchange table whose first record
// is the header. Nothing is added unless every row is valid.
func (c *Cookbook) ImportRecords(records [][]string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.importRecords(records)
}

// ImportAndCount is ImportRecords that also reports the resulting book size.
func (c *Cookbook) ImportAndCount(records [][]string) (added, total int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	added, err = c.importRecords(records)
	return added, c.store.Len(), err
}

func (c *Cookbook) importRecords(records [][]string) (int, error) {
	n, err := table.ImportRecords(c.store, records)
	if err == nil {
		importRowsTotal.Add(float64(n))
	}
	slog.Debug("import", "records", len(records), "added", n, "error", err)
	return n, observe("import", err)
}

// ImportTable reads the table at uri and imports it.
func (c *Cookbook) ImportTable(ctx context.Context, uri string) (int, error) {
	records, err := c.tables.Read(ctx, uri)
	if err != nil {
		return 0, observe("import", err)
	}
	return c.ImportRecords(records)
}

// Load imports the working book at uri. A book that does not exist yet
// loads as empty.
func (c *Cookbook) Load(ctx context.Context, uri string) (int, error) {
	records, err := c.tables.Read(ctx, uri)
	if serializer.IsNotExist(err) {
		slog.Debug("book does not exist yet", "location", uri)
		return 0, nil
	}
	if err != nil {
		return 0, observe("load", err)
	}
	n, err := c.ImportRecords(records)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", uri, err)
	}
	return n, nil
}

// ExportRecords returns the interchange table of the book. It fails with
// EMPTY_STORE when there is nothing to export.
func (c *Cookbook) ExportRecords() ([][]string, error) {
	rows, err := c.exportRows()
	return rows, observe("export", err)
}

// ExportTable writes the book to uri and returns the number of recipes
// written.
func (c *Cookbook) ExportTable(ctx context.Context, uri string) (int, error) {
	rows, err := c.exportRows()
	if err != nil {
		return 0, observe("export", err)
	}
	if err := c.tables.Write(ctx, uri, rows); err != nil {
		return 0, observe("export", err)
	}
	n := len(rows) - 1
	exportRowsTotal.Add(float64(n))
	slog.Debug("export", "location", uri, "recipes", n)
	return n, observe("export", nil)
}

func (c *Cookbook) exportRows() ([][]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return table.Export(c.store)
}

// Save writes the book to uri even when it is empty.
func (c *Cookbook) Save(ctx context.Context, uri string) error {
	c.mu.Lock()
	rows := table.Rows(c.store)
	c.mu.Unlock()

	err := c.tables.Write(ctx, uri, rows)
	slog.Debug("save", "location", uri, "recipes", len(rows)-1, "error", err)
	return observe("save", err)
}
