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

package cli

import (
	"fmt"
	"io"

	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/header"
)

// document is the JSON/YAML form of a validation run.
type document struct {
	header.Header `json:",inline" yaml:",inline"`

	Result *finding.Result `json:"result" yaml:"result"`
}

func newDocument(r *finding.Result, path string) document {
	h := header.New(header.KindValidationReport,
		header.WithVersion(version),
		header.WithMetadata(header.MetaRunID, r.RunID),
		header.WithMetadata(header.MetaPath, path),
	)
	return document{Header: *h, Result: r}
}

// report renders a result for terminals.
type report struct {
	result *finding.Result
}

func newReport(r *finding.Result) report {
	return report{result: r}
}

// WriteTable implements serializer.TableWriter.
func (r report) WriteTable(w io.Writer) error {
	res := r.result
	if res.IsClean() {
		_, err := fmt.Fprintln(w, "Looks good! File validated with 0 errors and 0 warnings")
		return err
	}
	if len(res.Errors) > 0 {
		if err := writeSection(w, fmt.Sprintf("Found %d errors. These must be fixed:", len(res.Errors)), res.Errors); err != nil {
			return err
		}
	}
	if len(res.Warnings) > 0 {
		if err := writeSection(w, fmt.Sprintf("Found %d warnings. These are FYI and can be ignored:", len(res.Warnings)), res.Warnings); err != nil {
			return err
		}
	}
	return nil
}

func writeSection(w io.Writer, header string, l finding.List) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, f := range l {
		if _, err := fmt.Fprintf(w, "  %s\n", f); err != nil {
			return err
		}
	}
	return nil
}
