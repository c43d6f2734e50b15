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

package recipe

import (
	"github.com/dapur-nusantara/resep/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store size
	storeRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "resep_store_recipes",
			Help: "Number of recipes currently held by the store",
		},
	)

	// Rejected mutations by operation and error code
	storeRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resep_store_rejections_total",
			Help: "Total number of store mutations rejected, by operation and error code",
		},
		[]string{"operation", "code"},
	)
)

func observeSize(n int) {
	storeRecipes.Set(float64(n))
}

func reject(op string, err error) error {
	storeRejections.WithLabelValues(op, string(errors.CodeOf(err))).Inc()
	return err
}
