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

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

var sigDigNode = MustNode("sig_dig_validator", finding.SeverityWarning)

// sampledDims are the dimensions the samplers know how to index.
func sampledDims(key string) []string {
	return []string{schema.Time, schema.HeightDim(key), schema.SouthNorth, schema.WestEast, schema.Frequency, schema.Direction}
}

func isSampledDim(key, dim string) bool {
	return slices.Contains(sampledDims(key), dim)
}

// sigDig samples random values of dv and counts those rendered with fewer
// decimals than configured. Values without a decimal point are fill values
// and are not counted.
func (v *Validator) sigDig(dv *dataset.Variable, p schema.ParameterConfig) finding.List {
	return sigDigNode.Run(v, func() (finding.List, error) {
		iterations := v.settings.SigDigIterations
		want := p.NumberOfSignificantDecimals
		faults := 0
		idx := make([]int, len(dv.Dims))
		for range iterations {
			if err := v.randomIndex(dv, idx); err != nil {
				return nil, err
			}
			s, err := dv.FormatAt(idx...)
			if err != nil {
				return nil, err
			}
			dot := strings.LastIndex(s, ".")
			if dot < 0 {
				continue
			}
			if len(s)-1-dot < want {
				faults++
			}
		}
		if faults == 0 {
			return nil, nil
		}
		return finding.List{finding.Newf("%d/%d random samples had less than %d significant decimals for variable %s",
			faults, iterations, want, dv.Name)}, nil
	})
}

// randomIndex fills idx with a uniformly random position in dv.
func (v *Validator) randomIndex(dv *dataset.Variable, idx []int) error {
	for i, dim := range dv.Dims {
		if !isSampledDim(dv.Name, dim) {
			return cnserrors.New(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("Invalid dimension %s, cannot validate interval of %s", dim, dv.Name))
		}
		n := dv.Shape[i]
		if n == 0 {
			return cnserrors.New(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("dimension %s of %s is empty", dim, dv.Name))
		}
		idx[i] = v.rng.IntN(n)
	}
	return nil
}
