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
	"slices"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

var (
	variablesNode = MustNode("variables_validator", finding.SeverityError)
	variableNode  = MustNode("variable_validator", finding.SeverityError)
	vardimsNode   = MustNode("vardims_validator", finding.SeverityError)
)

// variables checks every data variable against its parameter configuration.
// Variables with no configuration are reported and skipped.
func (v *Validator) variables(ds *dataset.Dataset) finding.List {
	return variablesNode.Run(v, func() (finding.List, error) {
		params, err := v.snapshot.Parameters()
		if err != nil {
			return nil, err
		}
		var out finding.List
		for _, dv := range ds.DataVars() {
			p, ok := params[dv.Name]
			if !ok {
				out = append(out, finding.Newf("%s is not a valid key", dv.Name))
				continue
			}
			out = append(out, v.variable(ds, dv, p)...)
		}
		return out, nil
	})
}

func (v *Validator) variable(ds *dataset.Dataset, dv *dataset.Variable, p schema.ParameterConfig) finding.List {
	return variableNode.RunFor(v, dv.Name, func() (finding.List, error) {
		measurement, err := isMeasurement(ds)
		if err != nil {
			return nil, err
		}
		var out finding.List
		out = append(out, v.vardims(dv, p.Dims)...)
		out = append(out, v.mandatoryAttrs(dv, p.RequiredAttributes(measurement))...)
		out = append(out, v.requiredAttrValues(dv, p.RequiredValues())...)
		out = append(out, v.allowedInstruments(dv, measurement, p.AllowedInstruments)...)
		out = append(out, v.varinterval(dv, p)...)
		out = append(out, v.sigDig(dv, p)...)
		out = append(out, v.heightLongName(ds, dv.Name)...)
		out = append(out, v.heightDepth(ds, dv.Name, p.ParameterCategory)...)
		return out, nil
	})
}

// vardims requires the variable's dims to equal its configured dims,
// including order.
func (v *Validator) vardims(dv *dataset.Variable, expected []string) finding.List {
	return vardimsNode.Run(v, func() (finding.List, error) {
		if slices.Equal(dv.Dims, expected) {
			return nil, nil
		}
		return finding.List{finding.Newf("%s:Dimensions for variable do not match expected dimensions from configuration %v!=%v",
			dv.Name, dv.Dims, expected)}, nil
	})
}
