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
	"maps"
	"slices"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

var (
	dimsNode                    = MustNode("dims_validator", finding.SeverityError)
	dimvarsNode                 = MustNode("dimvars_validator", finding.SeverityError)
	acceptableVardimsNode       = MustNode("acceptable_vardims_validator", finding.SeverityError)
	allDimsMustHaveVariableNode = MustNode("all_dims_must_have_variable_validator", finding.SeverityError)
	southNorthNode              = MustNode("south_north_validator", finding.SeverityError)
	westEastNode                = MustNode("west_east_validator", finding.SeverityError)
	existenceNode               = MustNode("existence_validator", finding.SeverityError)
	latLonNode                  = MustNode("lat_lon_validator", finding.SeverityError)
	mandatoryAttrsLatLonNode    = MustNode("mandatory_attrs_lat_lon_validator", finding.SeverityError)
)

var requiredLatAttrs = []schema.AttrValue{
	{Name: "short_name", Value: "Latitude"},
	{Name: "long_name", Value: "Latitude"},
	{Name: "CF_standard_name", Value: "latitude"},
	{Name: "description", Value: "Latitude"},
	{Name: "units", Value: "degree_north"},
}

var requiredLonAttrs = []schema.AttrValue{
	{Name: "short_name", Value: "Longitude"},
	{Name: "long_name", Value: "Longitude"},
	{Name: "CF_standard_name", Value: "longitude"},
	{Name: "description", Value: "Longitude"},
	{Name: "units", Value: "degree_east"},
}

func (v *Validator) dims(ds *dataset.Dataset, paths []string) finding.List {
	return dimsNode.Run(v, func() (finding.List, error) {
		var out finding.List
		out = append(out, v.timeChecks(ds, paths)...)
		out = append(out, v.dimvars(ds)...)
		out = append(out, southNorthNode.Run(v, func() (finding.List, error) {
			return v.existence(ds, schema.SouthNorth), nil
		})...)
		out = append(out, westEastNode.Run(v, func() (finding.List, error) {
			return v.existence(ds, schema.WestEast), nil
		})...)
		out = append(out, v.latLon(ds)...)
		return out, nil
	})
}

// existence requires name to be a dimension of non-zero length.
func (v *Validator) existence(ds *dataset.Dataset, name string) finding.List {
	return existenceNode.Run(v, func() (finding.List, error) {
		d, ok := ds.Dim(name)
		switch {
		case !ok:
			return finding.List{finding.Newf("%s is not a dimension in dataset", name)}, nil
		case d.Size == 0:
			return finding.List{finding.Newf("%s has length 0", name)}, nil
		}
		return nil, nil
	})
}

// dimvars checks each data variable's layout against the acceptable
// layouts for its key, and that every dimension is used by a data variable.
func (v *Validator) dimvars(ds *dataset.Dataset) finding.List {
	return dimvarsNode.Run(v, func() (finding.List, error) {
		unused := make(map[string]struct{})
		for _, name := range ds.DimNames() {
			unused[name] = struct{}{}
		}

		var out finding.List
		for _, dv := range ds.DataVars() {
			for _, d := range dv.Dims {
				delete(unused, d)
			}
			out = append(out, acceptableVardimsNode.Run(v, func() (finding.List, error) {
				if schema.IsAcceptableDims(dv.Name, dv.Dims) {
					return nil, nil
				}
				return finding.List{finding.Newf("%s has dims %v, but only %v is valid",
					dv.Name, dv.Dims, schema.AcceptableDims(dv.Name))}, nil
			})...)
		}

		out = append(out, allDimsMustHaveVariableNode.Run(v, func() (finding.List, error) {
			if len(unused) == 0 {
				return nil, nil
			}
			return finding.List{finding.Newf("The following dimensions are not attached to a variable: %v",
				slices.Sorted(maps.Keys(unused)))}, nil
		})...)
		return out, nil
	})
}

// latLon checks the shape, layout and descriptive attributes of LAT and LON.
func (v *Validator) latLon(ds *dataset.Dataset) finding.List {
	return latLonNode.Run(v, func() (finding.List, error) {
		lat, ok := ds.Var(schema.LatitudeVar)
		if !ok {
			return nil, cnserrors.New(cnserrors.ErrCodeNotFound, fmt.Sprintf("variable %s not found", schema.LatitudeVar))
		}
		lon, ok := ds.Var(schema.LongitudeVar)
		if !ok {
			return nil, cnserrors.New(cnserrors.ErrCodeNotFound, fmt.Sprintf("variable %s not found", schema.LongitudeVar))
		}

		expected := []string{schema.SouthNorth, schema.WestEast}
		var out finding.List
		if len(lat.Shape) != len(expected) {
			out = append(out, finding.Newf("LAT has shape %v. lats should be 2d, south_north and west_east", lat.Shape))
		}
		if len(lon.Shape) != len(expected) {
			out = append(out, finding.Newf("LON has shape %v. lons should be 2d, south_north and west_east", lon.Shape))
		}
		if !slices.Equal(lat.Dims, expected) {
			out = append(out, finding.Newf("dims for LAT should be %v, found %v", expected, lat.Dims))
		}
		if !slices.Equal(lon.Dims, expected) {
			out = append(out, finding.Newf("dims for LON should be %v, found %v", expected, lon.Dims))
		}

		out = append(out, mandatoryAttrsLatLonNode.Run(v, func() (finding.List, error) {
			var attrs finding.List
			attrs = append(attrs, exactAttrs(lat, requiredLatAttrs)...)
			attrs = append(attrs, exactAttrs(lon, requiredLonAttrs)...)
			return attrs, nil
		})...)
		return out, nil
	})
}

// exactAttrs reports each required attribute of v that is missing or whose
// value differs, one finding per attribute.
func exactAttrs(v *dataset.Variable, required []schema.AttrValue) finding.List {
	var out finding.List
	for _, req := range required {
		actual, ok := v.Attrs.String(req.Name)
		if !ok {
			out = append(out, finding.Newf("%s is missing attribute %s", v.Name, req.Name))
			continue
		}
		if actual != req.Value {
			out = append(out, finding.Newf("Wrong attribute for %s %s. Value was: %s, expected: %v",
				v.Name, req.Name, actual, req.Value))
		}
	}
	return out
}
