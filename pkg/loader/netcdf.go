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
	"log/slog"
	"reflect"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

// ReadNetCDF loads a NetCDF file into memory. The file handle stays open
// until the returned dataset is closed.
func ReadNetCDF(path string) (*dataset.Dataset, error) {
	g, err := netcdf.Open(path)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidData, fmt.Sprintf("failed to open NetCDF file %s", path), err)
	}
	ds, err := fromGroup(path, g)
	if err != nil {
		g.Close()
		return nil, err
	}
	ds.SetCloser(func() error {
		g.Close()
		return nil
	})
	return ds, nil
}

func fromGroup(path string, g api.Group) (*dataset.Dataset, error) {
	dimNames := g.ListDimensions()
	dims := make([]dataset.Dimension, 0, len(dimNames))
	sizes := make(map[string]int, len(dimNames))
	for _, name := range dimNames {
		n, ok := g.GetDimension(name)
		if !ok {
			return nil, cnserrors.New(cnserrors.ErrCodeInvalidData, fmt.Sprintf("dimension %s of %s has no length", name, path))
		}
		dims = append(dims, dataset.Dimension{Name: name, Size: int(n)})
		sizes[name] = int(n)
	}

	ds := dataset.New(dims, convertAttrs(g.Attributes()))

	type loaded struct {
		v      *dataset.Variable
		coords []string
	}
	var vars []loaded
	coordNames := make(map[string]bool)
	for _, name := range g.ListVariables() {
		raw, err := g.GetVariable(name)
		if err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidData, fmt.Sprintf("failed to read variable %s of %s", name, path), err)
		}
		data, dtype, err := flatten(raw.Values)
		if err != nil {
			slog.Debug("skipping non-numeric variable", "file", path, "variable", name, "error", err)
			continue
		}
		shape := make([]int, len(raw.Dimensions))
		for i, d := range raw.Dimensions {
			shape[i] = sizes[d]
		}
		v, err := dataset.NewVariable(name, raw.Dimensions, shape, dtype, data, convertAttrs(raw.Attributes))
		if err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidData, fmt.Sprintf("variable %s of %s", name, path), err)
		}
		c, _ := v.Attrs.String("coordinates")
		vars = append(vars, loaded{v: v, coords: strings.Fields(c)})
		for _, n := range strings.Fields(c) {
			coordNames[n] = true
		}
	}

	for _, l := range vars {
		add := ds.AddDataVar
		if _, isDim := sizes[l.v.Name]; isDim || coordNames[l.v.Name] {
			add = ds.AddCoord
		}
		if err := add(l.v); err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidData, fmt.Sprintf("variable %s of %s", l.v.Name, path), err)
		}
	}

	ds.Sources = []dataset.Source{sourceOf(path, ds)}
	return ds, nil
}

// sourceOf describes the file's extent along the time axis.
func sourceOf(path string, ds *dataset.Dataset) dataset.Source {
	src := dataset.Source{Path: path}
	if d, ok := ds.Dim(schema.Time); ok {
		src.TimeLen = d.Size
	}
	t, ok := ds.Var(schema.Time)
	if !ok {
		return src
	}
	src.TimeUnits, src.TimeUnitsSet = t.Attrs.String("units")
	if len(t.Data) > 0 {
		src.TimeStart = t.Data[0]
		src.TimeEnd = t.Data[len(t.Data)-1]
	}
	return src
}

func convertAttrs(m api.AttributeMap) dataset.Attributes {
	out := dataset.Attributes{}
	if m == nil {
		return out
	}
	for _, k := range m.Keys() {
		v, ok := m.Get(k)
		if !ok {
			continue
		}
		if b, isBytes := v.([]byte); isBytes {
			v = strings.TrimRight(string(b), "\x00")
		}
		out[k] = v
	}
	return out
}

// flatten walks a possibly nested slice of numbers in row-major order.
func flatten(values any) ([]float64, dataset.DType, error) {
	if values == nil {
		return nil, "", cnserrors.New(cnserrors.ErrCodeInvalidData, "variable has no values")
	}
	var out []float64
	var walk func(rv reflect.Value) error
	walk = func(rv reflect.Value) error {
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := range rv.Len() {
				if err := walk(rv.Index(i)); err != nil {
					return err
				}
			}
		case reflect.Interface:
			return walk(rv.Elem())
		case reflect.Float32, reflect.Float64:
			out = append(out, rv.Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out = append(out, float64(rv.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out = append(out, float64(rv.Uint()))
		default:
			return cnserrors.New(cnserrors.ErrCodeInvalidData, fmt.Sprintf("unsupported value type %s", rv.Type()))
		}
		return nil
	}
	if err := walk(reflect.ValueOf(values)); err != nil {
		return nil, "", err
	}
	dtype := kindDType(reflect.TypeOf(values))
	if dtype == "" {
		dtype = dataset.Float64
	}
	return out, dtype, nil
}

func kindDType(t reflect.Type) dataset.DType {
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32:
		return dataset.Float32
	case reflect.Float64:
		return dataset.Float64
	case reflect.Int8:
		return dataset.Int8
	case reflect.Int16:
		return dataset.Int16
	case reflect.Int32:
		return dataset.Int32
	case reflect.Int64, reflect.Int:
		return dataset.Int64
	case reflect.Uint8:
		return dataset.Uint8
	case reflect.Uint16:
		return dataset.Uint16
	case reflect.Uint32:
		return dataset.Uint32
	case reflect.Uint64, reflect.Uint:
		return dataset.Uint64
	default:
		return ""
	}
}
