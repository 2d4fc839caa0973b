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

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// NotApplicable is the configuration token for an absent bound and for an
// absent list-valued attribute.
const NotApplicable = "NA"

// Parameter categories that carry a height sign convention.
const (
	CategoryAtmosphere = "Atmosphere"
	CategoryOcean      = "Ocean"
)

// Bound is a numeric limit that may be configured as "NA".
type Bound struct {
	Value      float64
	Applicable bool
}

// Limit returns an applicable bound at v.
func Limit(v float64) Bound {
	return Bound{Value: v, Applicable: true}
}

// String renders the bound as it is configured.
func (b Bound) String() string {
	if !b.Applicable {
		return NotApplicable
	}
	return strconv.FormatFloat(b.Value, 'g', -1, 64)
}

// UnmarshalJSON accepts a JSON number or the string "NA".
func (b *Bound) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != NotApplicable {
			return fmt.Errorf("bound must be a number or %q, got %q", NotApplicable, s)
		}
		*b = Bound{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("bound must be a number or %q: %w", NotApplicable, err)
	}
	*b = Limit(v)
	return nil
}

// MarshalJSON writes the number or "NA".
func (b Bound) MarshalJSON() ([]byte, error) {
	if !b.Applicable {
		return json.Marshal(NotApplicable)
	}
	return json.Marshal(b.Value)
}

// ParameterConfig is the configuration of one parameter, keyed by the
// variable name it applies to. Descriptive strings may be empty; min and
// max must be present in the payload, as a number or "NA".
type ParameterConfig struct {
	Key                         string   `json:"key" validate:"required"`
	ParameterCategory           string   `json:"parameter_category" validate:"required"`
	ParameterType               string   `json:"parameter_type"`
	ShortName                   string   `json:"short_name"`
	LongName                    string   `json:"long_name"`
	Description                 string   `json:"description"`
	AllowedInstruments          []string `json:"allowed_instruments" validate:"dive,required"`
	NumberOfSignificantDecimals int      `json:"number_of_significant_decimals" validate:"gte=0"`
	Units                       string   `json:"units"`
	Min                         Bound    `json:"min"`
	Max                         Bound    `json:"max"`
	CFStandardName              string   `json:"CF_standard_name"`
	Dims                        []string `json:"dims" validate:"dive,required"`
}

// boundKeys are the payload keys that must be present on every record.
var boundKeys = []string{"min", "max"}

// UnmarshalJSON decodes a record and rejects one without a min or max key.
func (p *ParameterConfig) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, k := range boundKeys {
		if _, ok := fields[k]; !ok {
			return fmt.Errorf("parameter record is missing %q (use %q for no bound)", k, NotApplicable)
		}
	}
	type plain ParameterConfig
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*p = ParameterConfig(out)
	return nil
}

// RequiredValues returns the variable attributes whose values must match
// the configuration exactly.
func (p ParameterConfig) RequiredValues() []AttrValue {
	return []AttrValue{
		{Name: "units", Value: p.Units},
		{Name: "CF_standard_name", Value: p.CFStandardName},
		{Name: "long_name", Value: p.LongName},
	}
}

// RequiredAttributes returns the attribute names a variable must carry.
// Observational datasets must also describe their instruments.
func (p ParameterConfig) RequiredAttributes(measurement bool) []string {
	values := p.RequiredValues()
	names := make([]string, 0, len(values)+1)
	for _, v := range values {
		names = append(names, v.Name)
	}
	if measurement {
		names = append(names, "instruments")
	}
	return names
}

// AttrValue is an attribute name with its expected value.
type AttrValue struct {
	Name  string
	Value any
}

// ParameterSet indexes parameter configurations by key.
type ParameterSet map[string]ParameterConfig

// NewParameterSet indexes params; later duplicates win.
func NewParameterSet(params []ParameterConfig) ParameterSet {
	set := make(ParameterSet, len(params))
	for _, p := range params {
		set[p.Key] = p
	}
	return set
}
