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


package header

import (
	"time"
)

// APIVersion is the schema version stamped on every serialized document.
const APIVersion = "metval.nvidia.com/v1"

// Kind names the type of a serialized document.
type Kind string

// KindValidationReport is the kind of the document written by validate.
const KindValidationReport Kind = "ValidationReport"

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a recognized kind.
func (k Kind) IsValid() bool {
	return k == KindValidationReport
}

// Metadata keys set by Init and the run reporting code.
const (
	MetaTimestamp = "timestamp"
	MetaVersion   = "version"
	MetaRunID     = "runId"
	MetaPath      = "path"
)

// Option configures a Header.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair. Empty values are skipped.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithVersion records the tool version that produced the document.
func WithVersion(version string) Option {
	return WithMetadata(MetaVersion, version)
}

// Header carries the kind, schema version and metadata of a document
// written by the tool.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New returns a Header of the given kind stamped with the current UTC time
// and the current APIVersion.
func New(kind Kind, opts ...Option) *Header {
	h := &Header{}
	h.Init(kind)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init resets h to the given kind with a fresh timestamp.
func (h *Header) Init(kind Kind) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		MetaTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Get returns a metadata value, or "" when unset.
func (h *Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h.Metadata[key]
}
