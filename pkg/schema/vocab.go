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

package schema

// InstallationType is one entry of the installation-type vocabulary.
type InstallationType struct {
	InstallationType string `json:"installation_type" validate:"required"`
	Description      string `json:"description"`
}

// UsabilityLevel is one entry of the data-usability vocabulary.
type UsabilityLevel struct {
	Level       string `json:"level" validate:"required"`
	Description string `json:"description"`
}

// InstrumentType is one entry of the instrument-type vocabulary.
type InstrumentType struct {
	InstrumentType string `json:"instrument_type" validate:"required"`
	Description    string `json:"description"`
}

// InstallationTypeNames returns the vocabulary identifiers in order.
func InstallationTypeNames(types []InstallationType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.InstallationType
	}
	return out
}

// UsabilityLevelNames returns the vocabulary identifiers in order.
func UsabilityLevelNames(levels []UsabilityLevel) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.Level
	}
	return out
}

// InstrumentTypeNames returns the vocabulary identifiers in order.
func InstrumentTypeNames(types []InstrumentType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.InstrumentType
	}
	return out
}

// ClassificationLevel is the sensitivity classification of a dataset.
type ClassificationLevel string

const (
	ClassificationOpen       ClassificationLevel = "Open"
	ClassificationInternal   ClassificationLevel = "Internal"
	ClassificationRestricted ClassificationLevel = "Restricted"
)

// ClassificationLevels lists the levels from least to most restricted.
func ClassificationLevels() []ClassificationLevel {
	return []ClassificationLevel{ClassificationOpen, ClassificationInternal, ClassificationRestricted}
}

// Rank orders levels; unknown levels rank -1.
func (c ClassificationLevel) Rank() int {
	for i, l := range ClassificationLevels() {
		if l == c {
			return i
		}
	}
	return -1
}

// IsValid reports whether c is a known level.
func (c ClassificationLevel) IsValid() bool {
	return c.Rank() >= 0
}
