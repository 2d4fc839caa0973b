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

// Package cli implements the metval command line.
//
// # Commands
//
// validate - Validate a dataset file or directory:
//
//	metval validate [flags] PATH [OPTION...]
//
// Runs every structural, metadata and statistical check against the dataset
// at PATH and prints the errors (must be fixed) and warnings (informational).
// A directory is validated in batches of files concatenated along Time.
//
// version - Print version information:
//
//	metval version
//
// # Run Options
//
// Run options can be passed as flags before PATH or as free-form tokens
// after it:
//
//	--check-min-max-full          full min/max scan instead of a sample
//	--skip-random-min-max-check   skip the sampled min/max check
//	--skip-warnings               do not run warning-level checks
//	--batch-size=N                files per batch
//	--set-url-to-parameters=URL   parameter configuration endpoint
//
// A settings file given with --config supplies the same options in YAML or
// JSON; flags and tokens override it.
//
// # Output
//
// The table format (default) prints:
//
//	Found 2 errors. These must be fixed:
//	  file_attributes:classification_level:ERROR:Classification Level "Secret" ...
//	Found 1 warnings. These are FYI and can be ignored:
//	  variables:variable:WS:sig_dig:WARNING:3/100 random samples ...
//
// or "Looks good! File validated with 0 errors and 0 warnings". The json and
// yaml formats write a ValidationReport document:
//
//	kind: ValidationReport
//	apiVersion: metval.nvidia.com/v1
//	metadata:
//	  runId: 6a0e...
//	  path: /data/ws
//	result:
//	  runId: 6a0e...
//	  errors: []
//	  warnings: []
//
// # Exit Codes
//
//	0  Success (errors in the dataset do not fail the command unless --fail-on-error is set)
//	1  Invalid arguments, or errors found with --fail-on-error
//
// # Environment Variables
//
//	LOG_LEVEL          logging verbosity (debug, info, warn, error)
//	METVAL_CONFIG      settings file
//	METVAL_CONFIG_URL  configuration service base URL
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/metocean-validator/pkg/cli.version=1.0.0'"
package cli
