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

package finding

// Result is the outcome of validating a dataset.
type Result struct {
	// RunID identifies the validation run that produced the result.
	RunID string `json:"runId,omitempty" yaml:"runId,omitempty"`

	// Errors must be fixed before the dataset is accepted.
	Errors List `json:"errors" yaml:"errors"`

	// Warnings are informational.
	Warnings List `json:"warnings" yaml:"warnings"`
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{
		Errors:   make(List, 0),
		Warnings: make(List, 0),
	}
}

// Partition splits findings into warnings and errors. Anything not tagged as
// a warning is an error, so the split is total.
func Partition(findings List) *Result {
	r := NewResult()
	for _, f := range findings {
		if f.IsWarning() {
			r.Warnings = append(r.Warnings, f)
		} else {
			r.Errors = append(r.Errors, f)
		}
	}
	return r
}

// HasErrors reports whether the result contains any error finding.
func (r *Result) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// IsClean reports whether the result has neither errors nor warnings.
func (r *Result) IsClean() bool {
	return r == nil || (len(r.Errors) == 0 && len(r.Warnings) == 0)
}

// Dedupe returns l without repeated findings, keeping first occurrences.
// Findings are compared by their string form.
func Dedupe(l List) List {
	seen := make(map[string]struct{}, len(l))
	out := make(List, 0, len(l))
	for _, f := range l {
		key := f.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}
