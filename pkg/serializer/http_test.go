package serializer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		data       any
	}{
		{"ok", http.StatusOK, map[string]string{"judul": "Soto"}},
		{"created", http.StatusCreated, map[string]int{"index": 0}},
		{"empty", http.StatusOK, struct{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondJSON(w, tt.statusCode, tt.data)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.True(t, json.Valid(w.Body.Bytes()))
		})
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestRespondCSV(t *testing.T) {
	w := httptest.NewRecorder()
	RespondCSV(w, http.StatusOK, [][]string{{"Judul", "Waktu"}, {"Soto", "30"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Judul,Waktu\nSoto,30\n", w.Body.String())
}

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()
	assert.Equal(t, HttpReaderUserAgent, r.UserAgent)
	assert.Equal(t, int64(4<<20), r.MaxBytes)
	require.NotNil(t, r.Client)
	assert.Equal(t, 30*time.Second, r.Client.Timeout)
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	custom := &http.Client{}
	r := NewHttpReader(
		WithClient(custom),
		WithUserAgent("dapur/2"),
		WithTotalTimeout(time.Second),
		WithMaxBytes(10),
	)
	assert.Same(t, custom, r.Client)
	assert.Equal(t, "dapur/2", r.UserAgent)
	assert.Equal(t, time.Second, custom.Timeout)
	assert.Equal(t, int64(10), r.MaxBytes)

	r = NewHttpReader(WithInsecureSkipVerify(true))
	tr, ok := r.Client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)
}

func TestHttpReader_Read(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("Judul\n"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	r := NewHttpReader(WithMaxBytes(32))

	data, err := r.Read(srv.URL + "/ok")
	require.NoError(t, err)
	assert.Equal(t, "Judul\n", string(data))
	assert.Equal(t, HttpReaderUserAgent, gotAgent)

	_, err = r.Read(srv.URL + "/big")
	assert.ErrorContains(t, err, "exceeds")

	_, err = r.Read(srv.URL + "/fail")
	var se *HTTPStatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)

	_, err = r.Read("")
	assert.Error(t, err)

	_, err = r.Read("://bad")
	assert.Error(t, err)
}

func TestHttpReader_ReadWithContext_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHttpReader().ReadWithContext(ctx, srv.URL)
	assert.Error(t, err)
}
