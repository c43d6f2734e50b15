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

// Package server is the HTTP runtime behind resepd: routing, middleware,
// probes, metrics and graceful shutdown. It knows nothing about recipes;
// callers register their handlers as ServeMux patterns.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("resepd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/recipes":         h.List,
//	        "GET /v1/recipes/{index}": h.Get,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run returns once ctx is canceled or the process receives SIGINT or
// SIGTERM, after in-flight requests finish or the shutdown timeout
// expires.
//
// # Middleware
//
// Every registered handler runs behind, outermost first: metrics, API
// version negotiation, request ID, panic recovery, rate limiting
// (golang.org/x/time/rate token bucket), body size limit and request
// logging. /health, /ready and /metrics bypass the chain.
//
// Request ID: an X-Request-Id header in UUID form is kept, anything else
// is replaced. The ID is echoed in the response and in error bodies.
//
// Version: Accept: application/vnd.resep.v1+json selects v1, which is
// also the default. The negotiated version is returned in X-API-Version.
//
// # Errors
//
// All errors share one JSON body:
//
//	{
//	  "code": "DUPLICATE_TITLE",
//	  "message": "title already exists",
//	  "details": {"title": "Soto Ayam"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps structured error codes to statuses: validation
// kinds to 400, DUPLICATE_TITLE and CAPACITY_EXCEEDED to 409,
// INDEX_OUT_OF_RANGE and EMPTY_STORE to 404, IO_FAILURE to 502.
//
// # Configuration
//
// Environment overrides: PORT (default 8080), SHUTDOWN_TIMEOUT_SECONDS
// (default 30) and RATE_LIMIT in requests per second (default 100, burst
// twice the rate).
package server
