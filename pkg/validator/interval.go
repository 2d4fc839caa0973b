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
	"math/rand/v2"
	"strings"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	"github.com/NVIDIA/metocean-validator/pkg/defaults"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
	"github.com/NVIDIA/metocean-validator/pkg/settings"
)

var (
	varintervalNode       = MustNode("varinterval_validator", finding.SeverityError)
	noneLessThanMinNode   = MustNode("none_less_than_min_validator", finding.SeverityError)
	noneLargerThanMaxNode = MustNode("none_larger_than_max_validator", finding.SeverityError)
	underminNode          = MustNode("undermin_validator", finding.SeverityError)
	overmaxNode           = MustNode("overmax_validator", finding.SeverityError)
)

// SubCube describes the region of a variable the interval sampler loaded.
type SubCube struct {
	Dims   []string
	Ranges []dataset.Range
}

// String renders the sub-cube as "[Time=10:60, south_north=0:4]".
func (c SubCube) String() string {
	parts := make([]string, len(c.Dims))
	for i, d := range c.Dims {
		parts[i] = d + "=" + c.Ranges[i].String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// varinterval checks the values of dv against the configured bounds, either
// over the whole array or over a random time window, depending on the
// range mode.
func (v *Validator) varinterval(dv *dataset.Variable, p schema.ParameterConfig) finding.List {
	return varintervalNode.Run(v, func() (finding.List, error) {
		slog.Debug("validating interval", "variable", dv.Name)
		if !schema.IsAcceptableDims(dv.Name, dv.Dims) {
			return finding.List{finding.Newf("Unsupported dimensional layout %v. Cannot evaluate interval. "+
				"Accepted dimensional layouts: %v", dv.Dims, schema.AcceptableDims(dv.Name))}, nil
		}

		switch v.settings.RangeMode() {
		case settings.RangeFull:
			lo, hi := dv.MinMax()
			var out finding.List
			out = append(out, noneLessThanMinNode.Run(v, func() (finding.List, error) {
				return belowMin(dv.Name, p, lo, "")
			})...)
			out = append(out, noneLargerThanMaxNode.Run(v, func() (finding.List, error) {
				return aboveMax(dv.Name, p, hi, "")
			})...)
			return out, nil
		case settings.RangeSkip:
			return nil, nil
		}

		cube, err := v.SampleSubCube(dv)
		if err != nil {
			return nil, err
		}
		sub, err := dv.SubCube(cube.Ranges)
		if err != nil {
			return nil, err
		}
		lo, hi := sub.MinMax()
		var out finding.List
		out = append(out, underminNode.Run(v, func() (finding.List, error) {
			return belowMin(dv.Name, p, lo, cube.String())
		})...)
		out = append(out, overmaxNode.Run(v, func() (finding.List, error) {
			return aboveMax(dv.Name, p, hi, cube.String())
		})...)
		return out, nil
	})
}

// SampleSubCube picks the region the interval sampler checks: a random
// window of the time axis and every index of the other dimensions. The
// random source is reseeded from the run seed on every call, so the same
// variable shape always yields the same window within a run.
func (v *Validator) SampleSubCube(dv *dataset.Variable) (SubCube, error) {
	if v.batchCount < 1 {
		return SubCube{}, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("batch count must be at least 1 to size the time window, got %d", v.batchCount))
	}
	rng := rand.New(rand.NewPCG(v.seed, v.seed))
	cube := SubCube{Dims: dv.Dims, Ranges: make([]dataset.Range, len(dv.Dims))}
	for i, dim := range dv.Dims {
		if !isSampledDim(dv.Name, dim) {
			return SubCube{}, cnserrors.New(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("Invalid dimension %s, cannot validate interval of %s", dim, dv.Name))
		}
		if dim == schema.Time {
			cube.Ranges[i] = timeWindow(rng, dv.Shape[i], defaults.IntervalSampleBudget/v.batchCount)
			continue
		}
		cube.Ranges[i] = dataset.All(dv.Shape[i])
	}
	return cube, nil
}

// timeWindow picks a contiguous window of sample steps out of n, or half
// the axis when it is shorter than two windows.
func timeWindow(rng *rand.Rand, n, sample int) dataset.Range {
	if n > 2*sample {
		start := rng.IntN(n - sample)
		return dataset.Range{Start: start, Stop: start + sample}
	}
	start := rng.IntN(n/2 + 1)
	return dataset.Range{Start: start, Stop: start + n/2}
}

func belowMin(name string, p schema.ParameterConfig, lo float64, cube string) (finding.List, error) {
	if !p.Min.Applicable {
		return nil, nil
	}
	smallest := roundTo(lo, p.NumberOfSignificantDecimals)
	if !(smallest < p.Min.Value) {
		return nil, nil
	}
	value := dataset.FormatValue(smallest, dataset.Float64)
	if cube == "" {
		return finding.List{finding.Newf("%s has a value lower than configured minimum: configured min: %s. Actual min: %s",
			name, p.Min, value)}, nil
	}
	return finding.List{finding.Newf("some values of %s were less than configured min %s for the subcube %s. Minimum value was %s",
		name, p.Min, cube, value)}, nil
}

func aboveMax(name string, p schema.ParameterConfig, hi float64, cube string) (finding.List, error) {
	if !p.Max.Applicable {
		return nil, nil
	}
	largest := roundTo(hi, p.NumberOfSignificantDecimals)
	if !(largest > p.Max.Value) {
		return nil, nil
	}
	value := dataset.FormatValue(largest, dataset.Float64)
	if cube == "" {
		return finding.List{finding.Newf("%s has a value higher than configured maximum: configured max: %s. Actual max: %s",
			name, p.Max, value)}, nil
	}
	return finding.List{finding.Newf("some values of %s were higher than configured max %s for the subcube %s. Maximum value was %s",
		name, p.Max, cube, value)}, nil
}
