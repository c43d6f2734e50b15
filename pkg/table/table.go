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

package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dapur-nusantara/resep/pkg/errors"
	"github.com/dapur-nusantara/resep/pkg/recipe"
)

// Header is the column layout written on export.
var Header = []string{"Judul", "Bahan", "Langkah", "Waktu"}

// columns is the number of columns a row must carry.
const columns = 4

// Import validates header and rows and appends the recipes to s in row
// order. It returns the number of recipes added.
//
// Failures: SCHEMA_MISMATCH for a missing or different header, ROW_SHAPE
// for a row with fewer than four columns, ROW_VALUE for an empty text field
// or a duration that is not a whole number, and anything BulkAdd reports
// (CAPACITY_EXCEEDED, DUPLICATE_TITLE). Columns past the fourth are ignored.
func Import(s *recipe.Store, header []string, rows [][]string) (int, error) {
	if !matchesHeader(header) {
		return 0, errors.NewWithContext(errors.ErrCodeSchemaMismatch,
			fmt.Sprintf("header must be %s", strings.Join(Header, ",")),
			map[string]any{"header": header})
	}

	parsed := make([]recipe.Row, 0, len(rows))
	for i, rec := range rows {
		line := i + 2
		row, err := parseRow(rec, line)
		if err != nil {
			return 0, err
		}
		parsed = append(parsed, row)
	}

	if err := s.BulkAdd(parsed); err != nil {
		return 0, err
	}
	return len(parsed), nil
}

// ImportRecords is Import for a table whose first record is the header.
func ImportRecords(s *recipe.Store, records [][]string) (int, error) {
	if len(records) == 0 {
		return Import(s, nil, nil)
	}
	return Import(s, records[0], records[1:])
}

// Export returns the header followed by one row per recipe in store order.
// It fails with EMPTY_STORE when there is nothing to export.
func Export(s *recipe.Store) ([][]string, error) {
	if s.Len() == 0 {
		return nil, errors.New(errors.ErrCodeEmptyStore, "no recipes to export")
	}
	return Rows(s), nil
}

// Rows is Export without the empty check. An empty store yields the header
// alone.
func Rows(s *recipe.Store) [][]string {
	out := make([][]string, 0, s.Len()+1)
	out = append(out, append([]string(nil), Header...))
	for _, r := range s.All() {
		out = append(out, []string{r.Title, r.Ingredients, r.Steps, strconv.Itoa(r.Duration)})
	}
	return out
}

func matchesHeader(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), Header[i]) {
			return false
		}
	}
	return true
}

func parseRow(rec []string, line int) (recipe.Row, error) {
	if len(rec) < columns {
		return recipe.Row{}, errors.NewWithContext(errors.ErrCodeRowShape,
			fmt.Sprintf("line %d has %d columns, want %d", line, len(rec), columns),
			map[string]any{"line": line, "columns": len(rec)})
	}

	row := recipe.Row{
		Title:       strings.TrimSpace(rec[0]),
		Ingredients: strings.TrimSpace(rec[1]),
		Steps:       strings.TrimSpace(rec[2]),
	}
	if row.Title == "" || row.Ingredients == "" || row.Steps == "" {
		return recipe.Row{}, errors.NewWithContext(errors.ErrCodeRowValue,
			fmt.Sprintf("line %d has an empty field", line),
			map[string]any{"line": line})
	}

	minutes, err := recipe.ParseDuration(rec[3])
	if err != nil {
		return recipe.Row{}, errors.WrapWithContext(errors.ErrCodeRowValue,
			fmt.Sprintf("line %d has an invalid duration", line), err,
			map[string]any{"line": line})
	}
	row.Duration = minutes
	return row, nil
}
