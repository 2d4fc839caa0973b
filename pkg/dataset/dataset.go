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
	"sync"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
)

// Dimension is a named axis with a fixed size.
type Dimension struct {
	Name string
	Size int
}

// Source records one file's contribution to a dataset along the time axis.
// Time values are in the file's native units.
type Source struct {
	Path      string
	TimeLen   int
	TimeStart float64
	TimeEnd   float64
	TimeUnits string
	// TimeUnitsSet is false when the time variable carried no units attribute.
	TimeUnitsSet bool
}

// Dataset is a collection of dimensions, variables and global attributes.
type Dataset struct {
	Attrs   Attributes
	Sources []Source

	dims     []Dimension
	coords   []*Variable
	dataVars []*Variable
	byName   map[string]*Variable

	closeOnce sync.Once
	closer    func() error
	closed    bool
	closeErr  error
}

// New creates an empty dataset with the given ordered dimensions.
func New(dims []Dimension, attrs Attributes) *Dataset {
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Dataset{
		Attrs:  attrs,
		dims:   append([]Dimension(nil), dims...),
		byName: make(map[string]*Variable),
	}
}

// AddCoord adds a coordinate variable.
func (d *Dataset) AddCoord(v *Variable) error {
	if err := d.checkVar(v); err != nil {
		return err
	}
	d.coords = append(d.coords, v)
	d.byName[v.Name] = v
	return nil
}

// AddDataVar adds a data variable.
func (d *Dataset) AddDataVar(v *Variable) error {
	if err := d.checkVar(v); err != nil {
		return err
	}
	d.dataVars = append(d.dataVars, v)
	d.byName[v.Name] = v
	return nil
}

func (d *Dataset) checkVar(v *Variable) error {
	if v == nil {
		return cnserrors.New(cnserrors.ErrCodeInvalidData, "nil variable")
	}
	if _, dup := d.byName[v.Name]; dup {
		return cnserrors.New(cnserrors.ErrCodeInvalidData, fmt.Sprintf("duplicate variable %s", v.Name))
	}
	for i, name := range v.Dims {
		dim, ok := d.Dim(name)
		if !ok {
			return cnserrors.New(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("variable %s uses undeclared dimension %s", v.Name, name))
		}
		if dim.Size != v.Shape[i] {
			return cnserrors.New(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("variable %s has size %d along %s, dimension size is %d", v.Name, v.Shape[i], name, dim.Size))
		}
	}
	return nil
}

// Dims returns the ordered dimensions.
func (d *Dataset) Dims() []Dimension {
	return append([]Dimension(nil), d.dims...)
}

// DimNames returns the dimension names in order.
func (d *Dataset) DimNames() []string {
	names := make([]string, len(d.dims))
	for i, dim := range d.dims {
		names[i] = dim.Name
	}
	return names
}

// Dim looks up a dimension by name.
func (d *Dataset) Dim(name string) (Dimension, bool) {
	for _, dim := range d.dims {
		if dim.Name == name {
			return dim, true
		}
	}
	return Dimension{}, false
}

// Var looks up a coordinate or data variable by name.
func (d *Dataset) Var(name string) (*Variable, bool) {
	v, ok := d.byName[name]
	return v, ok
}

// DataVars returns the data variables in insertion order.
func (d *Dataset) DataVars() []*Variable {
	return append([]*Variable(nil), d.dataVars...)
}

// Coords returns the coordinate variables in insertion order.
func (d *Dataset) Coords() []*Variable {
	return append([]*Variable(nil), d.coords...)
}

// SetCloser registers the function that releases the dataset's backing
// resources. It runs at most once.
func (d *Dataset) SetCloser(fn func() error) {
	d.closer = fn
}

// Close releases the dataset. Calling it more than once is safe.
func (d *Dataset) Close() error {
	d.closeOnce.Do(func() {
		d.closed = true
		if d.closer != nil {
			d.closeErr = d.closer()
		}
	})
	return d.closeErr
}

// IsClosed reports whether Close has been called.
func (d *Dataset) IsClosed() bool {
	return d.closed
}
