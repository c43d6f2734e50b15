package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dapur-nusantara/resep/pkg/cookbook"
	"github.com/dapur-nusantara/resep/pkg/errors"
)

const bookCSV = "Judul,Bahan,Langkah,Waktu\n" +
	"Soto Ayam,1. Ayam,1. Rebus,30\n" +
	"Es Teler,1. Alpukat,1. Campur,5\n"

func newMux(book *cookbook.Cookbook) *http.ServeMux {
	mux := http.NewServeMux()
	for pattern, h := range routes(book) {
		mux.HandleFunc(pattern, h)
	}
	return mux
}

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "resepd" {
		t.Errorf("name = %q, want %q", name, "resepd")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if bookEnvVar != "RESEP_BOOK" {
		t.Errorf("bookEnvVar = %q, want %q", bookEnvVar, "RESEP_BOOK")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func TestLoadBook(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	good := filepath.Join(dir, "resep.csv")
	if err := os.WriteFile(good, []byte(bookCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("Nama,Bahan\nSoto,1. Ayam\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		uri      string
		wantLen  int
		wantCode errors.ErrorCode
	}{
		{name: "unset", uri: "", wantLen: 0},
		{name: "blank", uri: "   ", wantLen: 0},
		{name: "missing file", uri: filepath.Join(dir, "nope.csv"), wantLen: 0},
		{name: "existing book", uri: good, wantLen: 2},
		{name: "bad header", uri: bad, wantCode: errors.ErrCodeSchemaMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := loadBook(ctx, tt.uri)
			if tt.wantCode != "" {
				if got := errors.CodeOf(err); got != tt.wantCode {
					t.Fatalf("loadBook() code = %q, want %q (err: %v)", got, tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadBook() unexpected error: %v", err)
			}
			if book.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", book.Len(), tt.wantLen)
			}
		})
	}
}

// TestRouteConfiguration verifies the recipe routes are registered
func TestRouteConfiguration(t *testing.T) {
	r := routes(cookbook.New())

	for _, pattern := range []string{
		"GET /v1/recipes",
		"POST /v1/recipes",
		"DELETE /v1/recipes",
		"GET /v1/recipes/{index}",
		"PUT /v1/recipes/{index}",
		"POST /v1/recipes:remove",
		"POST /v1/recipes:sort",
		"GET /v1/suggestions",
		"POST /v1/import",
		"GET /v1/export",
	} {
		if h, ok := r[pattern]; !ok || h == nil {
			t.Errorf("expected route %q", pattern)
		}
	}
	if len(r) != 10 {
		t.Errorf("expected exactly 10 routes, got %d", len(r))
	}
}

func TestStartupBookIsServed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resep.csv")
	if err := os.WriteFile(path, []byte(bookCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	book, err := loadBook(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	newMux(book).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/recipes", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var l cookbook.Listing
	if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
		t.Fatal(err)
	}
	if len(l.Items) != 2 || l.Items[1].Title != "Es Teler" {
		t.Errorf("unexpected listing: %+v", l.Items)
	}
	if l.Metadata["version"] != version {
		t.Errorf("metadata version = %q, want %q", l.Metadata["version"], version)
	}
}

// TestConcurrentAdds verifies the served book stays consistent under
// concurrent writers
func TestConcurrentAdds(t *testing.T) {
	book := cookbook.New()
	mux := newMux(book)

	const numRequests = 20
	var wg sync.WaitGroup
	codes := make([]int, numRequests)
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := `{"title":"Resep ` + string(rune('A'+i)) + `","ingredients":"1. Air","steps":"1. Rebus","duration":1}`
			req := httptest.NewRequest(http.MethodPost, "/v1/recipes", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusCreated {
			t.Errorf("request %d: status = %d, want 201", i, code)
		}
	}
	if book.Len() != numRequests {
		t.Errorf("Len() = %d, want %d", book.Len(), numRequests)
	}
}
