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
	"strings"

	"github.com/dapur-nusantara/resep/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resep_commands_total",
			Help: "Total number of cookbook commands by command and result",
		},
		[]string{"command", "result"},
	)

	importRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resep_import_rows_total",
			Help: "Total number of recipes added by table imports",
		},
	)

	exportRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resep_export_rows_total",
			Help: "Total number of recipes written by table exports",
		},
	)
)

// observe records the outcome of a command and passes err through.
func observe(command string, err error) error {
	result := "ok"
	if err != nil {
		result = "error"
		if code := errors.CodeOf(err); code != "" {
			result = strings.ToLower(string(code))
		}
	}
	commandsTotal.WithLabelValues(command, result).Inc()
	return err
}
