package cookbook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dapur-nusantara/resep/pkg/header"
	"github.com/dapur-nusantara/resep/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T, c *Cookbook) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, h := range NewHandler(c, "v0.0.1-test").Routes() {
		mux.HandleFunc(pattern, h)
	}
	return mux
}

func do(t *testing.T, mux http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[server.ErrorResponse](t, w).Code
}

func itemTitles(l Listing) []string {
	out := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		out = append(out, item.Title)
	}
	return out
}

func TestHandleList(t *testing.T) {
	mux := newTestMux(t, sampleBook(t))

	t.Run("all", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/v1/recipes", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		l := decode[Listing](t, w)
		assert.Equal(t, header.KindRecipeList, l.Kind)
		assert.Equal(t, "v0.0.1-test", l.Metadata["version"])
		require.Len(t, l.Items, 4)
		assert.Equal(t, 1, l.Items[0].Position)
		assert.Equal(t, "Soto Ayam", l.Items[0].Title)
		assert.Nil(t, l.Suggestion)
	})

	t.Run("by title with suggestion", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/v1/recipes?title=rendangg", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		l := decode[Listing](t, w)
		assert.Empty(t, l.Items)
		require.NotNil(t, l.Suggestion)
		assert.Equal(t, "Rendang", l.Suggestion.Title)
	})

	t.Run("by ingredient", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/v1/recipes?ingredient=teler", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Es Teler"}, itemTitles(decode[Listing](t, w)))
	})

	t.Run("by max duration", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/v1/recipes?maxDuration=30", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		l := decode[Listing](t, w)
		assert.Equal(t, []string{"Soto Ayam", "Ayam Goreng", "Es Teler"}, itemTitles(l))
		assert.Equal(t, 2, l.Items[1].Index)
	})

	t.Run("sorted by title descending", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/v1/recipes?sort=title&order=desc", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Soto Ayam", "Rendang", "Es Teler", "Ayam Goreng"}, itemTitles(decode[Listing](t, w)))
	})

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"two selectors", "/v1/recipes?title=a&ingredient=b", http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad max duration", "/v1/recipes?maxDuration=lama", http.StatusBadRequest, "INVALID_DURATION"},
		{"duration sort on GET", "/v1/recipes?sort=duration", http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad order", "/v1/recipes?sort=title&order=up", http.StatusBadRequest, "INVALID_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, mux, http.MethodGet, tt.target, "", "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestHandleAdd(t *testing.T) {
	c := sampleBook(t)
	mux := newTestMux(t, c)

	w := do(t, mux, http.MethodPost, "/v1/recipes", "application/json",
		`{"title":"Gado-gado","ingredients":"Sayur\nKacang","steps":"Siram","duration":15}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	doc := decode[RecipeDocument](t, w)
	assert.Equal(t, header.KindRecipe, doc.Kind)
	assert.Equal(t, 4, doc.Index)
	assert.Equal(t, "1. Sayur\n2. Kacang", doc.Ingredients)
	assert.Equal(t, 5, c.Len())

	w = do(t, mux, http.MethodPost, "/v1/recipes", "application/yaml",
		"title: Pecel\ningredients: Sayur\nsteps: Siram\nduration: \"10\"\n")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"duplicate", `{"title":"soto  ayam","ingredients":"x","steps":"y","duration":1}`, http.StatusConflict, "DUPLICATE_TITLE"},
		{"empty field", `{"title":"Baru","ingredients":" ","steps":"y","duration":1}`, http.StatusBadRequest, "EMPTY_FIELD"},
		{"bad duration", `{"title":"Baru","ingredients":"x","steps":"y","duration":"1.5"}`, http.StatusBadRequest, "INVALID_DURATION"},
		{"malformed body", `{"title":`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown field", `{"judul":"Baru"}`, http.StatusBadRequest, "INVALID_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, mux, http.MethodPost, "/v1/recipes", "application/json", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
	assert.Equal(t, 6, c.Len())
}

func TestHandleAdd_CapacityExceeded(t *testing.T) {
	mux := newTestMux(t, New(WithStore(newFullStore(t))))

	w := do(t, mux, http.MethodPost, "/v1/recipes", "application/json",
		`{"title":"Satu lagi","ingredients":"x","steps":"y","duration":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CAPACITY_EXCEEDED", errorCode(t, w))
}

func TestHandleGetAndUpdate(t *testing.T) {
	c := sampleBook(t)
	mux := newTestMux(t, c)

	w := do(t, mux, http.MethodGet, "/v1/recipes/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rendang", decode[RecipeDocument](t, w).Title)

	w = do(t, mux, http.MethodGet, "/v1/recipes/9", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "INDEX_OUT_OF_RANGE", errorCode(t, w))

	w = do(t, mux, http.MethodGet, "/v1/recipes/satu", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, mux, http.MethodPut, "/v1/recipes/1", "application/json",
		`{"title":"Rendang Padang","ingredients":"Daging","steps":"Masak","duration":"240"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	doc := decode[RecipeDocument](t, w)
	assert.Equal(t, "Rendang Padang", doc.Title)
	assert.Equal(t, 240, doc.Duration)

	w = do(t, mux, http.MethodPut, "/v1/recipes/1", "application/json",
		`{"title":"Es Teler","ingredients":"x","steps":"y","duration":"1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleRemoveAndClear(t *testing.T) {
	c := sampleBook(t)
	mux := newTestMux(t, c)

	w := do(t, mux, http.MethodPost, "/v1/recipes:remove", "application/json", `{"indices":[0,7]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 4, c.Len())

	w = do(t, mux, http.MethodPost, "/v1/recipes:remove", "application/json", `{"indices":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, mux, http.MethodPost, "/v1/recipes:remove", "application/json", `{"indices":[0,3]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, RemoveResult{Removed: 2, Remaining: 2}, decode[RemoveResult](t, w))

	w = do(t, mux, http.MethodDelete, "/v1/recipes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, RemoveResult{Removed: 2, Remaining: 0}, decode[RemoveResult](t, w))
	assert.Equal(t, 0, c.Len())
}

func TestHandleSort(t *testing.T) {
	c := sampleBook(t)
	mux := newTestMux(t, c)

	w := do(t, mux, http.MethodPost, "/v1/recipes:sort?by=title", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Ayam Goreng", "Es Teler", "Rendang", "Soto Ayam"}, itemTitles(decode[Listing](t, w)))
	assert.Equal(t, []string{"Soto Ayam", "Rendang", "Ayam Goreng", "Es Teler"}, titlesOf(c, c.ListAll()))

	w = do(t, mux, http.MethodPost, "/v1/recipes:sort?by=duration", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Es Teler", "Soto Ayam", "Ayam Goreng", "Rendang"}, itemTitles(decode[Listing](t, w)))
	assert.Equal(t, []string{"Es Teler", "Soto Ayam", "Ayam Goreng", "Rendang"}, titlesOf(c, c.ListAll()))

	w = do(t, mux, http.MethodPost, "/v1/recipes:sort?by=rating", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSuggest(t *testing.T) {
	mux := newTestMux(t, sampleBook(t))

	w := do(t, mux, http.MethodGet, "/v1/suggestions?title=es+telr", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	doc := decode[SuggestionDocument](t, w)
	assert.Equal(t, header.KindSuggestion, doc.Kind)
	require.NotNil(t, doc.Suggestion)
	assert.Equal(t, "Es Teler", doc.Suggestion.Title)

	w = do(t, mux, http.MethodGet, "/v1/suggestions?title=nasi+kuning", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[SuggestionDocument](t, w).Suggestion)

	w = do(t, mux, http.MethodGet, "/v1/suggestions", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleImportExport(t *testing.T) {
	c := New()
	mux := newTestMux(t, c)

	w := do(t, mux, http.MethodGet, "/v1/export", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "EMPTY_STORE", errorCode(t, w))

	body := "Judul,Bahan,Langkah,Waktu\nSoto,\"Ayam\nKunyit\",Rebus,30\nEs Teler,Alpukat,Campur,5\n"
	w = do(t, mux, http.MethodPost, "/v1/import", "text/csv", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[ImportResult](t, w)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 2, res.Total)

	w = do(t, mux, http.MethodPost, "/v1/import", "text/csv", "Judul,Bahan,Langkah,Waktu\nRawon,Daging,Rebus\n")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[server.ErrorResponse](t, w)
	assert.Equal(t, "ROW_SHAPE", resp.Code)
	assert.EqualValues(t, 2, resp.Details["line"])

	w = do(t, mux, http.MethodPost, "/v1/import", "text/csv", "Nama,Bahan\n")
	assert.Equal(t, "SCHEMA_MISMATCH", errorCode(t, w))

	w = do(t, mux, http.MethodGet, "/v1/export", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t,
		"Judul,Bahan,Langkah,Waktu\nSoto,\"1. Ayam\n2. Kunyit\",1. Rebus,30\nEs Teler,1. Alpukat,1. Campur,5\n",
		w.Body.String())
}
