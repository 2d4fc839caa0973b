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

package validator

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
)

const (
	// NodeSuffix ends every node registration ID.
	NodeSuffix = "_validator"

	// MinNodeIDLength is the shortest accepted registration ID.
	MinNodeIDLength = 13

	exceptionPrefix = "Exception while executing validator"
)

// Check is the body of a node. Returned findings are untagged unless they
// come from a nested node.
type Check func() (finding.List, error)

// Node is a registered check: a named, severity-tagged failure boundary.
type Node struct {
	// ID is the registration name, e.g. "unique_validator".
	ID string

	// Name is the path segment the node contributes to its findings.
	Name string

	Severity finding.Severity
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// Named overrides the path name derived from the ID.
func Named(name string) NodeOption {
	return func(n *Node) {
		n.Name = name
	}
}

// NewNode registers a check under id. The id must end with NodeSuffix and be
// at least MinNodeIDLength characters long.
func NewNode(id string, severity finding.Severity, opts ...NodeOption) (*Node, error) {
	if !strings.HasSuffix(id, NodeSuffix) || len(id) < MinNodeIDLength {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeNamingConvention,
			fmt.Sprintf("validators should end with %s and have at least %d chars total", NodeSuffix, MinNodeIDLength),
			map[string]any{"id": id})
	}
	if !severity.IsValid() {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"unknown severity", map[string]any{"id": id, "severity": severity})
	}
	n := &Node{
		ID:       id,
		Name:     strings.TrimSuffix(id, NodeSuffix),
		Severity: severity,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// MustNode is like NewNode but panics on an invalid registration. It is
// meant for package-level node tables.
func MustNode(id string, severity finding.Severity, opts ...NodeOption) *Node {
	n, err := NewNode(id, severity, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// Run executes check inside the node boundary.
func (n *Node) Run(v *Validator, check Check) finding.List {
	return n.RunFor(v, "", check)
}

// RunFor is Run with postfix appended to the node path, typically the
// variable the check is about.
func (n *Node) RunFor(v *Validator, postfix string, check Check) (out finding.List) {
	if n.Severity == finding.SeverityWarning && v.settings.SkipWarnings {
		return nil
	}

	path := []string{n.Name}
	if postfix != "" {
		path = append(path, postfix)
	}

	defer func() {
		if r := recover(); r != nil {
			out = n.exception(path, fmt.Errorf("%v", r), debug.Stack())
		}
	}()

	found, err := check()
	if err != nil {
		return n.exception(path, err, nil)
	}
	return found.Tag(n.Severity).Under(path...)
}

func (n *Node) exception(path []string, err error, stack []byte) finding.List {
	msg := fmt.Sprintf("%s %v", exceptionPrefix, err)
	attrs := []any{"node", strings.Join(path, ":"), "id", n.ID, "error", err}
	if stack != nil {
		attrs = append(attrs, "stack", string(stack))
	}
	slog.Error("exception while executing validator", attrs...)
	nodeExceptions.WithLabelValues(n.Name).Inc()
	return finding.List{finding.New(msg).Tag(n.Severity).Under(path...)}
}
