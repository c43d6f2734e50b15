// Package api provides the HTTP API layer for the resep recipe book service.
//
// This package is a thin wrapper around the reusable pkg/server package,
// configuring it with the cookbook routes. One in-memory book is served per
// process; it can be seeded at startup and exported back through the API.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/dapur-nusantara/resep/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET    /v1/recipes           - list, search (title, ingredient), filter (maxDuration), sort=title
//   - POST   /v1/recipes           - add a recipe (JSON or YAML body), 201
//   - DELETE /v1/recipes           - remove every recipe
//   - GET    /v1/recipes/{index}   - one recipe by 0-based store index
//   - PUT    /v1/recipes/{index}   - replace a recipe
//   - POST   /v1/recipes:remove    - remove {"indices": [...]}, all or nothing
//   - POST   /v1/recipes:sort      - by=title|duration, order=asc|desc; duration reorders the book
//   - GET    /v1/suggestions       - closest title to ?title=
//   - POST   /v1/import            - append a CSV body
//   - GET    /v1/export            - the book as text/csv
//
// System endpoints:
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/v1/recipes \
//	  -H "Content-Type: application/json" \
//	  -d '{"title":"Soto Ayam","ingredients":"1. Ayam","steps":"1. Rebus","duration":30}'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - RATE_LIMIT: requests per second (default: 100)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window (default: 30)
//   - RESEP_BOOK: book imported at startup (file, http(s), cm:// or oci://)
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/dapur-nusantara/resep/pkg/api.version=1.0.0'"
package api
