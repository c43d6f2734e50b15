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
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/dapur-nusantara/resep/pkg/defaults"
	"github.com/dapur-nusantara/resep/pkg/errors"
	"github.com/dapur-nusantara/resep/pkg/textutil"
)

// Store is the ordered, fixed-capacity collection of recipes.
type Store struct {
	recipes  []Recipe
	capacity int
}

// Option is a functional option for configuring a Store.
type Option func(*Store)

// WithCapacity overrides the maximum number of recipes. Values below one
// are ignored.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// NewStore creates an empty store holding up to defaults.MaxRecipes recipes.
func NewStore(opts ...Option) *Store {
	s := &Store{
		capacity: defaults.MaxRecipes,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recipes = make([]Recipe, 0, s.capacity)
	return s
}

// Len returns the number of stored recipes.
func (s *Store) Len() int {
	return len(s.recipes)
}

// Cap returns the maximum number of recipes the store accepts.
func (s *Store) Cap() int {
	return s.capacity
}

// Get returns the recipe at index.
func (s *Store) Get(index int) (Recipe, error) {
	if err := s.checkIndex(index); err != nil {
		return Recipe{}, err
	}
	return s.recipes[index], nil
}

// All returns a copy of the stored recipes in store order.
func (s *Store) All() []Recipe {
	out := make([]Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Add validates and appends a recipe, returning its index. Ingredients and
// steps are renumbered before they are stored.
//
// Failures, checked in this order: EMPTY_FIELD, INVALID_DURATION,
// CAPACITY_EXCEEDED, DUPLICATE_TITLE.
func (s *Store) Add(title, ingredients, steps, duration string) (int, error) {
	r, err := buildRecipe(title, ingredients, steps, duration)
	if err != nil {
		return 0, reject("add", err)
	}
	if len(s.recipes) >= s.capacity {
		return 0, reject("add", capacityError(s.capacity, 1, len(s.recipes)))
	}
	if err := s.checkUnique(r.Title, -1); err != nil {
		return 0, reject("add", err)
	}

	s.recipes = append(s.recipes, r)
	observeSize(len(s.recipes))
	return len(s.recipes) - 1, nil
}

// Update replaces the recipe at index in place. The duplicate title check
// ignores the record being replaced, so a recipe can keep its own title.
func (s *Store) Update(index int, title, ingredients, steps, duration string) error {
	if err := s.checkIndex(index); err != nil {
		return reject("update", err)
	}
	r, err := buildRecipe(title, ingredients, steps, duration)
	if err != nil {
		return reject("update", err)
	}
	if err := s.checkUnique(r.Title, index); err != nil {
		return reject("update", err)
	}

	s.recipes[index] = r
	return nil
}

// RemoveMany removes every recipe whose index is in indices, keeping the
// survivors in their relative order. Repeated indices count once. If any
// index is out of range nothing is removed. It returns the number of
// recipes removed.
func (s *Store) RemoveMany(indices []int) (int, error) {
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if err := s.checkIndex(i); err != nil {
			return 0, reject("remove", err)
		}
		drop[i] = struct{}{}
	}
	if len(drop) == 0 {
		return 0, nil
	}

	kept := s.recipes[:0]
	for i, r := range s.recipes {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, r)
	}
	// release the tail so removed values are not kept alive by the backing array
	for i := len(kept); i < len(s.recipes); i++ {
		s.recipes[i] = Recipe{}
	}
	s.recipes = kept
	observeSize(len(s.recipes))
	return len(drop), nil
}

// Clear removes every recipe and returns how many there were.
func (s *Store) Clear() int {
	n := len(s.recipes)
	s.recipes = make([]Recipe, 0, s.capacity)
	observeSize(0)
	return n
}

// BulkAdd appends all rows in order or none of them.
//
// Failures: EMPTY_FIELD or INVALID_DURATION for a malformed row (context
// carries the row number, counting from 1), CAPACITY_EXCEEDED when the rows
// do not fit in the free slots, DUPLICATE_TITLE (context carries the title)
// when a row collides with a stored title or an earlier row of the batch.
func (s *Store) BulkAdd(rows []Row) error {
	batch := make([]Recipe, 0, len(rows))
	for i, row := range rows {
		r, err := buildRow(row)
		if err != nil {
			var se *errors.StructuredError
			if stderrors.As(err, &se) && se.Context != nil {
				se.Context["row"] = i + 1
			}
			return reject("bulk_add", err)
		}
		batch = append(batch, r)
	}

	if free := s.capacity - len(s.recipes); len(batch) > free {
		return reject("bulk_add", capacityError(s.capacity, len(batch), len(s.recipes)))
	}

	seen := make(map[string]struct{}, len(s.recipes)+len(batch))
	for _, r := range s.recipes {
		seen[textutil.Normalize(r.Title)] = struct{}{}
	}
	for _, r := range batch {
		key := textutil.Normalize(r.Title)
		if _, dup := seen[key]; dup {
			return reject("bulk_add", duplicateError(r.Title))
		}
		seen[key] = struct{}{}
	}

	s.recipes = append(s.recipes, batch...)
	observeSize(len(s.recipes))
	return nil
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.recipes) {
		return errors.NewWithContext(errors.ErrCodeIndexOutOfRange,
			fmt.Sprintf("no recipe at index %d", index),
			map[string]any{"index": index, "count": len(s.recipes)})
	}
	return nil
}

// checkUnique fails when title collides with a stored title other than the
// one at skip.
func (s *Store) checkUnique(title string, skip int) error {
	key := textutil.Normalize(title)
	for i, r := range s.recipes {
		if i == skip {
			continue
		}
		if textutil.Normalize(r.Title) == key {
			return duplicateError(title)
		}
	}
	return nil
}

func buildRecipe(title, ingredients, steps, duration string) (Recipe, error) {
	title = strings.TrimSpace(title)
	ingredients = strings.TrimSpace(ingredients)
	steps = strings.TrimSpace(steps)

	if err := requireFields(title, ingredients, steps); err != nil {
		return Recipe{}, err
	}
	minutes, err := ParseDuration(duration)
	if err != nil {
		return Recipe{}, err
	}

	return Recipe{
		Title:       title,
		Ingredients: textutil.NumberLines(ingredients),
		Steps:       textutil.NumberLines(steps),
		Duration:    minutes,
	}, nil
}

func buildRow(row Row) (Recipe, error) {
	title := strings.TrimSpace(row.Title)
	ingredients := strings.TrimSpace(row.Ingredients)
	steps := strings.TrimSpace(row.Steps)

	if err := requireFields(title, ingredients, steps); err != nil {
		return Recipe{}, err
	}
	if row.Duration < 0 {
		return Recipe{}, errors.NewWithContext(errors.ErrCodeInvalidDuration,
			"duration must not be negative", map[string]any{"value": row.Duration})
	}

	return Recipe{
		Title:       title,
		Ingredients: textutil.NumberLines(ingredients),
		Steps:       textutil.NumberLines(steps),
		Duration:    row.Duration,
	}, nil
}

func requireFields(title, ingredients, steps string) error {
	fields := []struct {
		name  Field
		value string
	}{
		{FieldTitle, title},
		{FieldIngredients, ingredients},
		{FieldSteps, steps},
	}
	for _, f := range fields {
		if f.value == "" {
			return errors.NewWithContext(errors.ErrCodeEmptyField,
				fmt.Sprintf("%s is required", f.name),
				map[string]any{"field": f.name.String()})
		}
	}
	return nil
}

func capacityError(capacity, adding, count int) error {
	return errors.NewWithContext(errors.ErrCodeCapacityExceeded,
		fmt.Sprintf("book holds at most %d recipes", capacity),
		map[string]any{"capacity": capacity, "count": count, "adding": adding})
}

func duplicateError(title string) error {
	return errors.NewWithContext(errors.ErrCodeDuplicateTitle,
		fmt.Sprintf("recipe %q already exists", title),
		map[string]any{"title": title})
}
