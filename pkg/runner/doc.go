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

// Package runner drives a validation run over a file or directory.
//
// A run partitions the input into batches of files, opens one batch at a
// time as a single dataset, validates it and aggregates the outcome:
//
//	PARTITION -> (OPEN_BATCH -> RUN_CHECKS -> AGGREGATE)* -> FINALIZE
//
// Warnings are collected across batches and deduplicated. The first batch
// that produces an error ends the run, and the result carries only that
// batch's errors. Every opened dataset is closed before the next batch is
// opened, including when a check or the driver itself panics.
//
// Usage:
//
//	r := runner.New(
//	    runner.WithSettings(s),
//	    runner.WithProvider(configsvc.NewCachedProvider(configsvc.NewClient(s))),
//	)
//	result := r.Run(ctx, "/data/ws")
//	for _, f := range result.Errors {
//	    fmt.Println(f)
//	}
//
// Run never returns an error: failures to partition or open the input are
// reported as findings in the result.
package runner
