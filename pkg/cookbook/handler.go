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
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dapur-nusantara/resep/pkg/errors"
	"github.com/dapur-nusantara/resep/pkg/header"
	"github.com/dapur-nusantara/resep/pkg/recipe"
	"github.com/dapur-nusantara/resep/pkg/serializer"
	"github.com/dapur-nusantara/resep/pkg/server"
)

// Handler serves a Cookbook over HTTP.
type Handler struct {
	book    *Cookbook
	version string
}

// NewHandler creates a Handler. version is stamped into response metadata.
func NewHandler(book *Cookbook, version string) *Handler {
	return &Handler{book: book, version: version}
}

// Routes returns the API routes keyed by ServeMux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/recipes":         h.HandleList,
		"POST /v1/recipes":        h.HandleAdd,
		"DELETE /v1/recipes":      h.HandleClear,
		"GET /v1/recipes/{index}": h.HandleGet,
		"PUT /v1/recipes/{index}": h.HandleUpdate,
		"POST /v1/recipes:remove": h.HandleRemove,
		"POST /v1/recipes:sort":   h.HandleSort,
		"GET /v1/suggestions":     h.HandleSuggest,
		"POST /v1/import":         h.HandleImport,
		"GET /v1/export":          h.HandleExport,
	}
}

// RemoveRequest selects recipes by store index.
type RemoveRequest struct {
	Indices []int `json:"indices" yaml:"indices"`
}

// RemoveResult reports a removal.
type RemoveResult struct {
	Removed   int `json:"removed" yaml:"removed"`
	Remaining int `json:"remaining" yaml:"remaining"`
}

func (h *Handler) opts() []header.Option {
	if h.version == "" {
		return nil
	}
	return []header.Option{header.WithVersion(h.version)}
}

// HandleList handles GET /v1/recipes. At most one of the title,
// ingredient, maxDuration and sort query parameters may be given; none
// lists every recipe in store order.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var selectors []string
	for _, key := range []string{"title", "ingredient", "maxDuration", "sort"} {
		if q.Has(key) {
			selectors = append(selectors, key)
		}
	}
	if len(selectors) > 1 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Only one of title, ingredient, maxDuration or sort may be given", false,
			map[string]any{"given": selectors})
		return
	}

	var (
		entries []recipe.Entry
		hint    *recipe.Suggestion
	)
	switch {
	case q.Has("title"):
		entries, hint = h.book.SearchTitleEntries(q.Get("title"))
	case q.Has("ingredient"):
		entries = h.book.SearchIngredientEntries(q.Get("ingredient"))
	case q.Has("maxDuration"):
		var err error
		entries, err = h.book.FilterEntries(q.Get("maxDuration"))
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to filter recipes", nil)
			return
		}
	case q.Has("sort"):
		if by := q.Get("sort"); by != "title" {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Listing can only be sorted by title; use POST /v1/recipes:sort to reorder by duration", false,
				map[string]any{"sort": by})
			return
		}
		ascending, ok := parseOrder(q.Get("order"))
		if !ok {
			writeBadOrder(w, r, q.Get("order"))
			return
		}
		entries = h.book.SortTitleEntries(ascending)
	default:
		entries = h.book.ListEntries()
	}

	listing := NewListing(entries, h.opts()...)
	listing.Suggestion = hint
	serializer.RespondJSON(w, http.StatusOK, listing)
}

// HandleAdd handles POST /v1/recipes.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	idx, rec, err := h.book.AddAndGet(*in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to add recipe", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusCreated, NewRecipeDocument(idx, rec, h.opts()...))
}

// HandleGet handles GET /v1/recipes/{index}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}
	rec, err := h.book.Get(idx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to get recipe", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, NewRecipeDocument(idx, rec, h.opts()...))
}

// HandleUpdate handles PUT /v1/recipes/{index}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	rec, err := h.book.UpdateAndGet(idx, *in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to update recipe", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, NewRecipeDocument(idx, rec, h.opts()...))
}

// HandleRemove handles POST /v1/recipes:remove.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	var req RemoveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Indices) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"At least one index is required", false, nil)
		return
	}

	n, left, err := h.book.RemoveAndCount(req.Indices)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to remove recipes", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, RemoveResult{Removed: n, Remaining: left})
}

// HandleClear handles DELETE /v1/recipes.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	n := h.book.Clear()
	slog.Info("book cleared", "removed", n, "requestID", server.RequestID(r.Context()))
	serializer.RespondJSON(w, http.StatusOK, RemoveResult{Removed: n, Remaining: 0})
}

// HandleSort handles POST /v1/recipes:sort?by=title|duration&order=asc|desc.
// Sorting by duration reorders the book; sorting by title only orders the
// returned listing.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ascending, ok := parseOrder(q.Get("order"))
	if !ok {
		writeBadOrder(w, r, q.Get("order"))
		return
	}

	var entries []recipe.Entry
	switch by := q.Get("by"); by {
	case "title":
		entries = h.book.SortTitleEntries(ascending)
	case "duration":
		entries = h.book.SortDurationEntries(ascending)
	default:
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Sort key must be title or duration", false, map[string]any{"by": by})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, NewListing(entries, h.opts()...))
}

// HandleSuggest handles GET /v1/suggestions?title=.
func (h *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("title")
	if strings.TrimSpace(query) == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Query parameter title is required", false, nil)
		return
	}

	var hint *recipe.Suggestion
	if s, ok := h.book.SuggestTitle(query); ok {
		hint = &s
	}
	serializer.RespondJSON(w, http.StatusOK, NewSuggestionDocument(query, hint, h.opts()...))
}

// HandleImport handles POST /v1/import with an interchange CSV body.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	records, err := serializer.ReadCSV(r.Body)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Request body is not valid CSV", false, map[string]any{"error": err.Error()})
		return
	}

	n, total, err := h.book.ImportAndCount(records)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to import recipes", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, NewImportResult("", n, total, h.opts()...))
}

// HandleExport handles GET /v1/export.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.book.ExportRecords()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to export recipes", nil)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="resep.csv"`)
	serializer.RespondCSV(w, http.StatusOK, rows)
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("index")
	idx, err := strconv.Atoi(raw)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Recipe index must be an integer", false, map[string]any{"index": raw})
		return 0, false
	}
	return idx, true
}

func decodeInput(w http.ResponseWriter, r *http.Request) (*RecipeInput, bool) {
	var in RecipeInput
	if !decodeBody(w, r, &in) {
		return nil, false
	}
	return &in, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	format := serializer.FormatJSON
	if ct := r.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		format = serializer.FormatYAML
	}

	reader, err := serializer.NewReader(format, r.Body)
	if err == nil {
		defer reader.Close()
		err = reader.Deserialize(v)
	}
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			fmt.Sprintf("Invalid %s request body", format), false, map[string]any{"error": err.Error()})
		return false
	}
	return true
}

func parseOrder(order string) (ascending bool, ok bool) {
	switch strings.ToLower(order) {
	case "", "asc":
		return true, true
	case "desc":
		return false, true
	default:
		return false, false
	}
}

func writeBadOrder(w http.ResponseWriter, r *http.Request, order string) {
	server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
		"Order must be asc or desc", false, map[string]any{"order": order})
}
