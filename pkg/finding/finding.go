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

import (
	"fmt"
	"strings"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
)

// Severity is the impact of a finding on the validation outcome.
type Severity string

const (
	// SeverityError findings must be fixed before the dataset is accepted.
	SeverityError Severity = "ERROR"
	// SeverityWarning findings are informational.
	SeverityWarning Severity = "WARNING"
)

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	return s == SeverityError || s == SeverityWarning
}

const pathSeparator = ":"

// Finding is one tagged validation message.
type Finding struct {
	// Path is the chain of node names from the outermost node inwards.
	Path []string
	// Severity is empty until the innermost node tags the finding.
	Severity Severity
	Message  string
}

// New returns an untagged finding carrying msg.
func New(msg string) Finding {
	return Finding{Message: msg}
}

// Newf returns an untagged finding with a formatted message.
func Newf(format string, args ...any) Finding {
	return Finding{Message: fmt.Sprintf(format, args...)}
}

// Under returns a copy of f with segments prepended to its path.
func (f Finding) Under(segments ...string) Finding {
	path := make([]string, 0, len(segments)+len(f.Path))
	path = append(path, segments...)
	path = append(path, f.Path...)
	f.Path = path
	return f
}

// Tag returns a copy of f carrying severity s. A finding that is already
// tagged keeps its original severity.
func (f Finding) Tag(s Severity) Finding {
	if f.Severity.IsValid() {
		return f
	}
	f.Severity = s
	return f
}

// IsWarning reports whether f is tagged as a warning.
func (f Finding) IsWarning() bool {
	return f.Severity == SeverityWarning
}

// String renders f as "<path>:<severity>:<message>".
func (f Finding) String() string {
	var b strings.Builder
	for _, seg := range f.Path {
		b.WriteString(seg)
		b.WriteString(pathSeparator)
	}
	if f.Severity != "" {
		b.WriteString(string(f.Severity))
		b.WriteString(pathSeparator)
	}
	b.WriteString(f.Message)
	return b.String()
}

// MarshalText implements encoding.TextMarshaler so findings serialize as
// their string form.
func (f Finding) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Finding) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Parse reads a finding back from its string form. The first path segment
// equal to a severity token ends the path; everything after it is the message.
func Parse(s string) (Finding, error) {
	parts := strings.Split(s, pathSeparator)
	for i, part := range parts {
		sev := Severity(part)
		if !sev.IsValid() {
			continue
		}
		var path []string
		if i > 0 {
			path = append(path, parts[:i]...)
		}
		return Finding{
			Path:     path,
			Severity: sev,
			Message:  strings.Join(parts[i+1:], pathSeparator),
		}, nil
	}
	return Finding{}, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
		"finding has no severity token", map[string]any{"finding": s})
}

// List is an ordered sequence of findings.
type List []Finding

// Under prepends segments to the path of every finding in l.
func (l List) Under(segments ...string) List {
	out := make(List, len(l))
	for i, f := range l {
		out[i] = f.Under(segments...)
	}
	return out
}

// Tag applies severity s to every untagged finding in l.
func (l List) Tag(s Severity) List {
	out := make(List, len(l))
	for i, f := range l {
		out[i] = f.Tag(s)
	}
	return out
}

// Strings renders every finding in l.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, f := range l {
		out[i] = f.String()
	}
	return out
}

// Messages wraps plain messages into untagged findings.
func Messages(msgs ...string) List {
	out := make(List, len(msgs))
	for i, m := range msgs {
		out[i] = New(m)
	}
	return out
}
