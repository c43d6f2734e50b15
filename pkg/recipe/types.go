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
	"strconv"
	"strings"

	"github.com/dapur-nusantara/resep/pkg/errors"
)

// Recipe is a single stored record. Ingredients and Steps hold numbered
// multiline text ("1. ...\n2. ..."); Duration is in minutes.
type Recipe struct {
	Title       string `json:"title" yaml:"title"`
	Ingredients string `json:"ingredients" yaml:"ingredients"`
	Steps       string `json:"steps" yaml:"steps"`
	Duration    int    `json:"duration" yaml:"duration"`
}

// Row is one recipe of a bulk load, before numbering.
type Row struct {
	Title       string
	Ingredients string
	Steps       string
	Duration    int
}

// Field names a text field of a recipe.
type Field string

const (
	FieldTitle       Field = "title"
	FieldIngredients Field = "ingredients"
	FieldSteps       Field = "steps"
	FieldDuration    Field = "duration"
)

// String returns the field name.
func (f Field) String() string {
	return string(f)
}

// Suggestion is the closest stored title to a query that matched nothing.
type Suggestion struct {
	Index    int    `json:"index" yaml:"index"`
	Title    string `json:"title" yaml:"title"`
	Distance int    `json:"distance" yaml:"distance"`
}

// ParseDuration parses a duration in minutes. Surrounding whitespace is
// ignored; anything other than a run of ASCII digits fails with
// INVALID_DURATION.
func ParseDuration(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidDuration,
			"duration is required", map[string]any{"value": s})
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			return 0, errors.NewWithContext(errors.ErrCodeInvalidDuration,
				"duration must be a whole number of minutes", map[string]any{"value": s})
		}
	}
	minutes, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidDuration,
			"duration is out of range", err, map[string]any{"value": s})
	}
	return minutes, nil
}
