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

// Package schema holds the data contracts the validation engine checks
// datasets against: dimension names and the acceptable dimension layouts,
// per-parameter configuration records, controlled vocabularies, and the
// global attribute sets required for each kind of dataset.
//
// Records decoded from the configuration service are checked with
// go-playground/validator struct tags plus cross-record rules (unique keys
// and dimension layouts drawn from the acceptable catalog):
//
//	var params []schema.ParameterConfig
//	if err := json.Unmarshal(body, &params); err != nil {
//	    return err
//	}
//	if err := schema.ValidateParameters(params); err != nil {
//	    return err
//	}
package schema
