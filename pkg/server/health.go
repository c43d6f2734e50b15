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

package server

import (
	"net/http"
	"time"

	"github.com/dapur-nusantara/resep/pkg/serializer"
)

// HealthResponse is the body of the health and readiness probes.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func writeProbe(w http.ResponseWriter, status int, state, reason string) {
	serializer.RespondJSON(w, status, HealthResponse{
		Status:    state,
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	})
}

// handleHealth answers the liveness probe. The process is alive as long as
// it can serve this route.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeProbe(w, http.StatusOK, "healthy", "")
}

// handleReady answers the readiness probe: 503 until the listener is up
// and again once shutdown has begun.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.isReady() {
		writeProbe(w, http.StatusServiceUnavailable, "not_ready", "recipe book is not serving")
		return
	}
	writeProbe(w, http.StatusOK, "ready", "")
}
