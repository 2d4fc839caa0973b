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

package dataset

import (
	"fmt"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
)

// Concat joins parts along dim. Variables that use dim are concatenated;
// every other variable and all attributes are taken from the first part.
// Sources are appended in part order. The parts are not closed.
func Concat(parts []*Dataset, dim string) (*Dataset, error) {
	if len(parts) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "no datasets to concatenate")
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	first := parts[0]
	total := 0
	for i, p := range parts {
		d, ok := p.Dim(dim)
		if !ok {
			return nil, cnserrors.New(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("dataset %d has no dimension %s", i, dim))
		}
		total += d.Size
	}

	dims := first.Dims()
	for i := range dims {
		if dims[i].Name == dim {
			dims[i].Size = total
		}
	}
	out := New(dims, first.Attrs.Clone())
	for _, p := range parts {
		out.Sources = append(out.Sources, p.Sources...)
	}

	join := func(v *Variable) (*Variable, error) {
		if v.Axis(dim) < 0 {
			return v, nil
		}
		pieces := make([]*Variable, 0, len(parts))
		for i, p := range parts {
			pv, ok := p.Var(v.Name)
			if !ok {
				return nil, cnserrors.New(cnserrors.ErrCodeInvalidData,
					fmt.Sprintf("variable %s is missing from dataset %d", v.Name, i))
			}
			pieces = append(pieces, pv)
		}
		return concatVariables(pieces, dim)
	}

	for _, v := range first.coords {
		jv, err := join(v)
		if err != nil {
			return nil, err
		}
		if err := out.AddCoord(jv); err != nil {
			return nil, err
		}
	}
	for _, v := range first.dataVars {
		jv, err := join(v)
		if err != nil {
			return nil, err
		}
		if err := out.AddDataVar(jv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func concatVariables(pieces []*Variable, dim string) (*Variable, error) {
	base := pieces[0]
	axis := base.Axis(dim)
	shape := append([]int(nil), base.Shape...)
	shape[axis] = 0
	for _, p := range pieces {
		if p.Axis(dim) != axis || len(p.Shape) != len(base.Shape) {
			return nil, cnserrors.New(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("variable %s has inconsistent dimensions across files", base.Name))
		}
		for i := range p.Shape {
			if i != axis && p.Shape[i] != base.Shape[i] {
				return nil, cnserrors.New(cnserrors.ErrCodeInvalidData,
					fmt.Sprintf("variable %s has inconsistent shape across files: %v vs %v", base.Name, p.Shape, base.Shape))
			}
		}
		shape[axis] += p.Shape[axis]
	}

	// outer = product of dims before axis, inner = product after.
	outer := product(base.Shape[:axis])
	inner := product(base.Shape[axis+1:])
	data := make([]float64, 0, product(shape))
	for o := 0; o < outer; o++ {
		for _, p := range pieces {
			block := p.Shape[axis] * inner
			data = append(data, p.Data[o*block:(o+1)*block]...)
		}
	}

	return &Variable{
		Name:  base.Name,
		Dims:  append([]string(nil), base.Dims...),
		Shape: shape,
		DType: base.DType,
		Data:  data,
		Attrs: base.Attrs,
	}, nil
}
