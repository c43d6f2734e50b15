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

package defaults

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookLimits(t *testing.T) {
	assert.Equal(t, 40, MaxRecipes)
	assert.GreaterOrEqual(t, SuggestMaxDistance, 1)
	assert.Equal(t, "resep.csv", BookPath)
	assert.Greater(t, MaxImportBytes, 1<<20)
}

func TestTimeoutOrdering(t *testing.T) {
	// each pair must hold as shorter < longer
	pairs := []struct {
		shorter, longer time.Duration
		what            string
	}{
		{ServerReadHeaderTimeout, ServerReadTimeout, "header read within request read"},
		{ServerReadTimeout, ServerWriteTimeout + time.Nanosecond, "read no longer than write"},
		{ServerWriteTimeout, ServerIdleTimeout, "write within idle"},
		{ImportHandlerTimeout, ServerWriteTimeout + time.Nanosecond, "import finishes before write deadline"},
		{HTTPConnectTimeout, HTTPClientTimeout, "connect within client timeout"},
		{HTTPTLSHandshakeTimeout, HTTPClientTimeout, "handshake within client timeout"},
		{HTTPResponseHeaderTimeout, HTTPClientTimeout, "response headers within client timeout"},
		{ConfigMapReadTimeout, ConfigMapWriteTimeout + time.Nanosecond, "configmap read no longer than write"},
	}

	for _, p := range pairs {
		t.Run(p.what, func(t *testing.T) {
			assert.Less(t, p.shorter, p.longer)
		})
	}
}

func TestShutdownFitsProbePeriod(t *testing.T) {
	assert.LessOrEqual(t, ServerShutdownTimeout, time.Minute)
	assert.Positive(t, HTTPIdleConnTimeout)
	assert.Positive(t, HTTPKeepAlive)
}
