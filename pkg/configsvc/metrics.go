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

package configsvc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	configFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metval_config_fetch_duration_seconds",
			Help:    "Duration of configuration service requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)
	configFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metval_config_fetch_errors_total",
			Help: "Total number of failed configuration service requests",
		},
		[]string{"endpoint"},
	)

	// Snapshot cache metrics
	configCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metval_config_cache_hits_total",
			Help: "Total number of configuration snapshot cache hits",
		},
	)
	configCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metval_config_cache_misses_total",
			Help: "Total number of configuration snapshot cache misses (fetches)",
		},
	)
)
