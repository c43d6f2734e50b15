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
	"bytes"
	"encoding/json"
)

// Minutes is a duration as typed by a user. JSON accepts both 30 and "30";
// validation happens when the recipe is stored.
type Minutes string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*m = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*m = Minutes(s)
	default:
		*m = Minutes(trimmed)
	}
	return nil
}

// RecipeInput carries the raw fields of an add or update.
type RecipeInput struct {
	Title       string  `json:"title" yaml:"title"`
	Ingredients string  `json:"ingredients" yaml:"ingredients"`
	Steps       string  `json:"steps" yaml:"steps"`
	Duration    Minutes `json:"duration" yaml:"duration"`
}
