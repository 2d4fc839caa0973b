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

// Package settings holds the run options of a validation run.
//
// Options come from three places, applied in order: defaults, an optional
// YAML or JSON settings file, and free-form tokens following the dataset path
// on the command line. The resulting Settings value is passed explicitly to
// the runner and from there to every check that needs it.
//
// Recognized tokens:
//
//	--check-min-max-full          scan every value for the min/max check
//	--skip-random-min-max-check   skip the sampled min/max check
//	--skip-warnings               suppress all WARNING-severity checks
//	--batch-size=N                files per batch (default 1000)
//	--set-url-to-parameters=URL   parameters endpoint override
//	--config-url=URL              configuration service base URL
//
// The legacy spelling "--set-url-to-parameters =URL" is accepted both as one
// token and as two adjacent tokens.
package settings
