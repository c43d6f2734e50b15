package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/dapur-nusantara/resep/pkg/cookbook"
	"github.com/dapur-nusantara/resep/pkg/logging"
	"github.com/dapur-nusantara/resep/pkg/server"
)

const (
	name           = "resepd"
	versionDefault = "dev"

	// bookEnvVar names the optional book imported at startup.
	bookEnvVar = "RESEP_BOOK"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/dapur-nusantara/resep/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the startup book when RESEP_BOOK is set,
// sets up routes, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	book, err := loadBook(ctx, os.Getenv(bookEnvVar))
	if err != nil {
		slog.Error("failed to load startup book", "error", err)
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(book)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// loadBook returns a cookbook seeded from uri. An empty uri or a location
// that does not exist yet gives an empty book.
func loadBook(ctx context.Context, uri string, opts ...cookbook.Option) (*cookbook.Cookbook, error) {
	book := cookbook.New(opts...)
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return book, nil
	}

	n, err := book.Load(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", uri, err)
	}
	slog.Info("startup book loaded", "location", uri, "recipes", n)
	return book, nil
}

func routes(book *cookbook.Cookbook) map[string]http.HandlerFunc {
	return cookbook.NewHandler(book, version).Routes()
}
