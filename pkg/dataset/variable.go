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
	"math"
	"strconv"
	"strings"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
)

// DType is the storage type a variable had in its source file. Values are
// held as float64 in memory; the dtype decides how a raw value is rendered.
type DType string

const (
	Float32 DType = "float32"
	Float64 DType = "float64"
	Int8    DType = "int8"
	Int16   DType = "int16"
	Int32   DType = "int32"
	Int64   DType = "int64"
	Uint8   DType = "uint8"
	Uint16  DType = "uint16"
	Uint32  DType = "uint32"
	Uint64  DType = "uint64"
)

// IsFloat reports whether d is a floating point type.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// Variable is a named row-major array with an ordered dimension tuple.
type Variable struct {
	Name  string
	Dims  []string
	Shape []int
	DType DType
	Data  []float64
	Attrs Attributes
}

// NewVariable validates that the data length matches the shape.
func NewVariable(name string, dims []string, shape []int, dtype DType, data []float64, attrs Attributes) (*Variable, error) {
	if len(dims) != len(shape) {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidData,
			"dimension and shape rank differ", map[string]any{"variable": name, "dims": dims, "shape": shape})
	}
	if n := product(shape); n != len(data) {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidData,
			fmt.Sprintf("variable %s has %d values, shape %v requires %d", name, len(data), shape, n), nil)
	}
	if dtype == "" {
		dtype = Float64
	}
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Variable{
		Name:  name,
		Dims:  dims,
		Shape: shape,
		DType: dtype,
		Data:  data,
		Attrs: attrs,
	}, nil
}

// Len returns the number of elements.
func (v *Variable) Len() int {
	return len(v.Data)
}

// Axis returns the position of dim in v.Dims, or -1.
func (v *Variable) Axis(dim string) int {
	for i, d := range v.Dims {
		if d == dim {
			return i
		}
	}
	return -1
}

// Size returns the length of v along dim.
func (v *Variable) Size(dim string) (int, bool) {
	i := v.Axis(dim)
	if i < 0 {
		return 0, false
	}
	return v.Shape[i], true
}

// offset converts a multi-index into a flat row-major position.
func (v *Variable) offset(idx []int) (int, error) {
	if len(idx) != len(v.Shape) {
		return 0, fmt.Errorf("variable %s has rank %d, got index of rank %d", v.Name, len(v.Shape), len(idx))
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= v.Shape[axis] {
			return 0, fmt.Errorf("index %d out of range for dimension %s of %s (size %d)",
				i, v.Dims[axis], v.Name, v.Shape[axis])
		}
		off = off*v.Shape[axis] + i
	}
	return off, nil
}

// At returns the value at the given multi-index.
func (v *Variable) At(idx ...int) (float64, error) {
	off, err := v.offset(idx)
	if err != nil {
		return 0, err
	}
	return v.Data[off], nil
}

// FormatAt returns the raw textual representation of the value at idx, as
// the value's source type would print it.
func (v *Variable) FormatAt(idx ...int) (string, error) {
	x, err := v.At(idx...)
	if err != nil {
		return "", err
	}
	return FormatValue(x, v.DType), nil
}

// FormatValue renders x as its dtype prints it: integers without a decimal
// part, floats in shortest round-trip form with at least one decimal, and
// scientific notation outside [1e-4, 1e16).
func FormatValue(x float64, dtype DType) string {
	if !dtype.IsFloat() {
		return strconv.FormatInt(int64(x), 10)
	}
	if math.IsNaN(x) {
		return "nan"
	}
	if math.IsInf(x, 0) {
		if x > 0 {
			return "inf"
		}
		return "-inf"
	}
	bits := 64
	if dtype == Float32 {
		bits = 32
	}
	abs := math.Abs(x)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, bits)
	}
	s := strconv.FormatFloat(x, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Range selects the half-open interval [Start, Stop) along one axis.
type Range struct {
	Start int
	Stop  int
}

// All selects the full extent of an axis of size n.
func All(n int) Range {
	return Range{Start: 0, Stop: n}
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.Stop)
}

// Len is the number of positions selected.
func (r Range) Len() int {
	if r.Stop <= r.Start {
		return 0
	}
	return r.Stop - r.Start
}

// SubCube copies the region selected by one range per axis. Ranges are
// clipped to the axis like a slice expression would be.
func (v *Variable) SubCube(ranges []Range) (*Variable, error) {
	if len(ranges) != len(v.Shape) {
		return nil, fmt.Errorf("variable %s has rank %d, got %d ranges", v.Name, len(v.Shape), len(ranges))
	}
	clipped := make([]Range, len(ranges))
	shape := make([]int, len(ranges))
	for i, r := range ranges {
		clipped[i] = clip(r, v.Shape[i])
		shape[i] = clipped[i].Len()
	}

	data := make([]float64, 0, product(shape))
	if product(shape) > 0 {
		strides := stridesOf(v.Shape)
		idx := make([]int, len(shape))
		for {
			off := 0
			for axis := range idx {
				off += (clipped[axis].Start + idx[axis]) * strides[axis]
			}
			data = append(data, v.Data[off])
			if !advance(idx, shape) {
				break
			}
		}
	}

	return &Variable{
		Name:  v.Name,
		Dims:  append([]string(nil), v.Dims...),
		Shape: shape,
		DType: v.DType,
		Data:  data,
		Attrs: v.Attrs,
	}, nil
}

// MinMax returns the smallest and largest non-NaN values, or NaN for both
// when there are none.
func (v *Variable) MinMax() (float64, float64) {
	lo, hi := math.NaN(), math.NaN()
	for _, x := range v.Data {
		if math.IsNaN(x) {
			continue
		}
		if math.IsNaN(lo) || x < lo {
			lo = x
		}
		if math.IsNaN(hi) || x > hi {
			hi = x
		}
	}
	return lo, hi
}

func clip(r Range, n int) Range {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.Stop > n {
		r.Stop = n
	}
	if r.Start > r.Stop {
		r.Start = r.Stop
	}
	return r
}

func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// advance steps a row-major odometer; it returns false after the last index.
func advance(idx, shape []int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}

func product(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}
