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
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

var (
	mandatoryAttrsNode     = MustNode("var_mandatory_attrs_validator", finding.SeverityError)
	requiredAttrValuesNode = MustNode("var_required_attr_values_validator", finding.SeverityError)
	allowedInstrumentsNode = MustNode("var_allowed_instruments_validator", finding.SeverityError)
	heightLongNameNode     = MustNode("var_height_longname_validator", finding.SeverityError)
	heightDepthNode        = MustNode("var_height_depth_validator", finding.SeverityError)
)

const instrumentsAttr = "instruments"

var lowerFirst = cases.Lower(language.Und)

func (v *Validator) mandatoryAttrs(dv *dataset.Variable, expected []string) finding.List {
	return mandatoryAttrsNode.Run(v, func() (finding.List, error) {
		var out finding.List
		for _, name := range expected {
			if !dv.Attrs.Has(name) {
				out = append(out, finding.Newf("The mandatory attribute %s does not exist in the variable %s", name, dv.Name))
			}
		}
		return out, nil
	})
}

func (v *Validator) requiredAttrValues(dv *dataset.Variable, expected []schema.AttrValue) finding.List {
	return requiredAttrValuesNode.Run(v, func() (finding.List, error) {
		var out finding.List
		for _, want := range expected {
			actual, ok := dv.Attrs.Get(want.Name)
			if !ok || actual == nil {
				out = append(out, finding.Newf("The variable %s should have the value %v for the attribute %s. "+
					"The attribute could not be found", dv.Name, want.Value, want.Name))
				continue
			}
			if !almostEqual(want.Value, actual, 0) {
				out = append(out, finding.Newf("The variable %s should have the value %v for the attribute %s. "+
					"The attribute had value %s", dv.Name, want.Value, want.Name, dataset.AttrString(actual)))
			}
		}
		return out, nil
	})
}

// allowedInstruments checks the instruments attribute of observational
// variables. The attribute is a mapping literal whose keys start with the
// instrument type, e.g. {'Lidar, SN 123': {...}}.
func (v *Validator) allowedInstruments(dv *dataset.Variable, measurement bool, allowed []string) finding.List {
	return allowedInstrumentsNode.Run(v, func() (finding.List, error) {
		if !measurement {
			return nil, nil
		}
		raw, ok := dv.Attrs.String(instrumentsAttr)
		if !ok {
			return nil, nil
		}
		keys, err := mappingKeys(raw)
		if err != nil {
			return finding.List{finding.Newf("instruments on variable %s could not be parsed as a dict", dv.Name)}, nil
		}
		var out finding.List
		for _, k := range keys {
			instrument, _, _ := strings.Cut(k, ",")
			if !slices.Contains(allowed, instrument) {
				out = append(out, finding.Newf(`The variable "%s" has wrong instrument_type value: %s". Allowed values: %s`,
					dv.Name, instrument, bracket(allowed)))
			}
		}
		return out, nil
	})
}

// mappingKeys parses a flow mapping literal and returns its keys in order.
func mappingKeys(literal string) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(literal), &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidData, "not a mapping")
	}
	m := doc.Content[0]
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind != yaml.ScalarNode {
			return nil, cnserrors.New(cnserrors.ErrCodeInvalidData, "mapping key is not a scalar")
		}
		keys = append(keys, m.Content[i].Value)
	}
	return keys, nil
}

// heightLongName requires the long_name of the variable's height
// coordinate to be "height for parameter <key>", ignoring the case of the
// first letter. A missing coordinate or attribute is left to other checks.
func (v *Validator) heightLongName(ds *dataset.Dataset, key string) finding.List {
	return heightLongNameNode.Run(v, func() (finding.List, error) {
		h, ok := ds.Var(schema.HeightDim(key))
		if !ok {
			return nil, nil
		}
		name, ok := h.Attrs.String("long_name")
		if !ok {
			return nil, nil
		}
		if name == "" {
			return nil, cnserrors.New(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("empty long_name on %s", schema.HeightDim(key)))
		}
		_, size := utf8.DecodeRuneInString(name)
		normalized := lowerFirst.String(name[:size]) + name[size:]
		if normalized != "height for parameter "+key {
			return finding.List{finding.Newf("The variable %s should have 'long_name' set to 'height for parameter %s'", key, key)}, nil
		}
		return nil, nil
	})
}

// heightDepth enforces the sign convention of the height coordinate: heights
// of atmospheric parameters are non-negative, depths of ocean parameters
// non-positive. Every offending value is reported.
func (v *Validator) heightDepth(ds *dataset.Dataset, key, category string) finding.List {
	return heightDepthNode.Run(v, func() (finding.List, error) {
		h, ok := ds.Var(schema.HeightDim(key))
		if !ok {
			return nil, nil
		}
		var out finding.List
		for _, x := range h.Data {
			value := dataset.FormatValue(x, h.DType)
			switch {
			case category == schema.CategoryAtmosphere && x < 0:
				out = append(out, finding.Newf(`The variable "%s" has invalid height, "%s".`+
					`Variables of category 'Atmosphere' must be positive.`, key, value))
			case category == schema.CategoryOcean && x > 0:
				out = append(out, finding.Newf(`The variable "%s" has invalid depth, "%s".`+
					`Variables of category 'Ocean' must be negative.`, key, value))
			}
		}
		return out, nil
	})
}
