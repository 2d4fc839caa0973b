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

package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metval_run_duration_seconds",
			Help:    "Duration of a validation run in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
		},
	)
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metval_runs_total",
			Help: "Total number of validation runs by outcome",
		},
		[]string{"outcome"},
	)
	batchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metval_batches_validated_total",
			Help: "Total number of batches opened and validated",
		},
	)
)

// Run outcomes used as the runsTotal label.
const (
	outcomeClean    = "clean"
	outcomeWarnings = "warnings"
	outcomeErrors   = "errors"
)
