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

// Package validator checks a metocean dataset against the standard layout
// and the parameter configuration served by the configuration service.
//
// # Overview
//
// Every check is wrapped in a Node. A node has a registration ID ending in
// "_validator", a severity, and a path name derived from the ID. Running a
// check through its node:
//   - returns nothing for WARNING nodes when warnings are skipped
//   - turns a returned error or a panic into a single finding
//   - tags every finding with the node severity and prefixes its path
//
// Nodes nest, so a finding carries the names of all nodes it passed
// through, e.g.
//
//	variables:variable:WS10:vardims:ERROR:WS10:Dimensions for variable do not match ...
//
// # Check Families
//
//   - dims: time ordering and uniqueness, per-file time axis and filename
//     rules, dimension layouts, orphan dimensions, LAT/LON
//   - variables: configured dims, mandatory attributes and values,
//     instruments, height/depth sign, height long_name, significant
//     decimals, min/max (sampled, full or skipped)
//   - file_attributes: required and forbidden globals, data_type,
//     installation type, usability, instrument types, classification level,
//     final reports
//
// # Usage
//
//	v := validator.New(
//	    validator.WithSettings(s),
//	    validator.WithSnapshot(snap),
//	    validator.WithBatchCount(len(batches)),
//	)
//	result, err := v.Validate(ctx, ds, paths)
//	if err != nil {
//	    return err
//	}
//	for _, e := range result.Errors {
//	    fmt.Println(e)
//	}
//
// A Validator is not safe for concurrent use; the significant-decimals
// sampler draws from its random source.
package validator
