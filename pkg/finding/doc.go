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

// Package finding defines the unit of validation output.
//
// A Finding is a message produced by a check, tagged with the severity of the
// node that produced it and with the chain of node names it passed through on
// the way up. Its string form is
//
//	<node-path>:<severity>:<message>
//
// e.g. "variables:variable:WS:vardims:ERROR:Dimensions for variable do not match".
// The string form is what users see; the structured form is what the
// pipeline works with.
package finding
