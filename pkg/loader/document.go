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

package loader

import (
	"fmt"
	"math"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/serializer"
)

// Document is the JSON/YAML rendition of a dataset. Variable data is stored
// flat in row-major order; null entries stand for missing (NaN) values.
type Document struct {
	Dims     []DimensionDoc `json:"dims" yaml:"dims"`
	Attrs    map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Coords   []VariableDoc  `json:"coords,omitempty" yaml:"coords,omitempty"`
	DataVars []VariableDoc  `json:"data_vars,omitempty" yaml:"data_vars,omitempty"`
}

// DimensionDoc declares one dimension of a Document.
type DimensionDoc struct {
	Name string `json:"name" yaml:"name"`
	Size int    `json:"size" yaml:"size"`
}

// VariableDoc declares one variable of a Document.
type VariableDoc struct {
	Name  string         `json:"name" yaml:"name"`
	Dims  []string       `json:"dims" yaml:"dims"`
	DType string         `json:"dtype,omitempty" yaml:"dtype,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Data  []*float64     `json:"data" yaml:"data"`
}

// ReadDocument loads a JSON or YAML dataset document, choosing the format
// from the file extension.
func ReadDocument(path string) (*dataset.Dataset, error) {
	doc, err := serializer.FromFile[Document](path, serializer.WithStrict())
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidData, fmt.Sprintf("failed to read dataset document %s", path), err)
	}
	ds, err := doc.Dataset()
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidData, fmt.Sprintf("invalid dataset document %s", path), err)
	}
	ds.Sources = []dataset.Source{sourceOf(path, ds)}
	return ds, nil
}

// Dataset builds the in-memory dataset described by d.
func (d *Document) Dataset() (*dataset.Dataset, error) {
	dims := make([]dataset.Dimension, 0, len(d.Dims))
	sizes := make(map[string]int, len(d.Dims))
	for _, dim := range d.Dims {
		if dim.Name == "" || dim.Size < 0 {
			return nil, cnserrors.New(cnserrors.ErrCodeInvalidData, fmt.Sprintf("invalid dimension %q of size %d", dim.Name, dim.Size))
		}
		dims = append(dims, dataset.Dimension{Name: dim.Name, Size: dim.Size})
		sizes[dim.Name] = dim.Size
	}
	ds := dataset.New(dims, dataset.Attributes(d.Attrs))

	build := func(vd VariableDoc) (*dataset.Variable, error) {
		shape := make([]int, len(vd.Dims))
		for i, name := range vd.Dims {
			shape[i] = sizes[name]
		}
		data := make([]float64, len(vd.Data))
		for i, p := range vd.Data {
			if p == nil {
				data[i] = math.NaN()
				continue
			}
			data[i] = *p
		}
		return dataset.NewVariable(vd.Name, vd.Dims, shape, dataset.DType(vd.DType), data, dataset.Attributes(vd.Attrs))
	}

	for _, vd := range d.Coords {
		v, err := build(vd)
		if err != nil {
			return nil, err
		}
		if err := ds.AddCoord(v); err != nil {
			return nil, err
		}
	}
	for _, vd := range d.DataVars {
		v, err := build(vd)
		if err != nil {
			return nil, err
		}
		if err := ds.AddDataVar(v); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// NewDocument renders ds as a Document.
func NewDocument(ds *dataset.Dataset) *Document {
	doc := &Document{Attrs: map[string]any(ds.Attrs.Clone())}
	for _, dim := range ds.Dims() {
		doc.Dims = append(doc.Dims, DimensionDoc{Name: dim.Name, Size: dim.Size})
	}
	render := func(v *dataset.Variable) VariableDoc {
		data := make([]*float64, len(v.Data))
		for i, x := range v.Data {
			if math.IsNaN(x) {
				continue
			}
			data[i] = &x
		}
		return VariableDoc{
			Name:  v.Name,
			Dims:  append([]string(nil), v.Dims...),
			DType: string(v.DType),
			Attrs: map[string]any(v.Attrs.Clone()),
			Data:  data,
		}
	}
	for _, v := range ds.Coords() {
		doc.Coords = append(doc.Coords, render(v))
	}
	for _, v := range ds.DataVars() {
		doc.DataVars = append(doc.DataVars, render(v))
	}
	return doc
}
