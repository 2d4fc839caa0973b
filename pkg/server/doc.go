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

// Package server exposes the process metrics of a validation run over HTTP.
//
// The server is optional and only started when the CLI is given a metrics
// address. It serves:
//
//	GET /metrics  Prometheus metrics (runs, batches, findings, config fetches)
//	GET /health   liveness, always 200 while the process is up
//	GET /ready    200 while a validation run is in progress, 503 otherwise
//
// Usage:
//
//	srv := server.New(":9090")
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        slog.Error("metrics server failed", "error", err)
//	    }
//	}()
//	srv.SetReady(true)
//	defer srv.SetReady(false)
//
// Start returns when ctx is canceled, after a graceful shutdown bounded by
// defaults.MetricsServerShutdownTimeout.
package server
