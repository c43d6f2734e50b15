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

// Package textutil holds the pure string helpers of the recipe book:
// title normalization, line numbering, case folding and edit distance.
package textutil

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// Normalize reduces a title to its comparison key: case folded, with every
// rune that is not a letter or digit removed. The key is only used to detect
// duplicate titles and is never displayed.
//
//	Normalize("$Tiwul Ketan!")        // "tiwulketan"
//	Normalize("Tiwul Ketan 100 gram") // "tiwulketan100gram"
func Normalize(title string) string {
	folded := Fold(title)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NumberLines renumbers multiline text. Blank lines are dropped, each
// surviving line is trimmed, any existing "<digits>." prefix is removed and
// the line is prefixed with "<k>. " counting from 1. Applying it twice gives
// the same result as applying it once.
func NumberLines(text string) string {
	var b strings.Builder
	n := 0
	for _, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		n++
		if n > 1 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(n))
		b.WriteString(". ")
		b.WriteString(stripNumberPrefix(line))
	}
	return b.String()
}

// EditDistance returns the Levenshtein distance between a and b, counting
// insertions, deletions and substitutions of runes at cost 1.
func EditDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Fold returns the case folded form of s used for case-insensitive search
// and ordering.
func Fold(s string) string {
	// a Caser keeps state, so one is built per call
	return cases.Fold().String(s)
}

// Squash folds s and removes all whitespace. It is the key used to compare
// a search query against titles when looking for a suggestion.
func Squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, Fold(s))
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// stripNumberPrefix removes a leading "<digits>." marker and the whitespace
// after it. Lines without the marker are returned unchanged.
func stripNumberPrefix(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) || line[i] != '.' {
		return line
	}
	return strings.TrimLeftFunc(line[i+1:], unicode.IsSpace)
}

// splitLines splits on \n, \r\n and lone \r.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
