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

const (
	// BatchSize is the maximum number of files opened as one combined dataset.
	BatchSize = 1000

	// SigDigIterations is how many random values the significant-decimals
	// sampler inspects per variable.
	SigDigIterations = 100

	// IntervalSampleBudget is the number of time steps the interval sampler
	// spreads across all batches of a run.
	IntervalSampleBudget = 5000

	// ConfigServiceURL is the base URL of the configuration service.
	ConfigServiceURL = "https://atmos.app.radix.equinor.com/config"
)
