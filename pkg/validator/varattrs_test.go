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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

func TestVariables_CleanDataset(t *testing.T) {
	got := testValidator().variables(testDataset(t))
	assert.Empty(t, got.Strings())
}

func TestVariables_UnknownKey(t *testing.T) {
	ds := testDataset(t)
	require.NoError(t, ds.AddDataVar(mustVar(t, "XYZ", nil, nil, []float64{1}, nil)))

	got := testValidator().variables(ds)
	assert.Equal(t, []string{"variables:ERROR:XYZ is not a valid key"}, got.Strings())
}

func TestVariables_ParametersUnavailable(t *testing.T) {
	v := New(WithBatchCount(1))
	got := v.variables(testDataset(t))
	require.Len(t, got, 1)
	assert.Equal(t, []string{"variables"}, got[0].Path)
	assert.Contains(t, got[0].Message, exceptionPrefix)
}

func TestVariable_MissingDataType(t *testing.T) {
	ds := testDataset(t)
	delete(ds.Attrs, schema.DataTypeAttr)

	got := testValidator().variables(ds)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"variables", "variable", "WS"}, got[0].Path)
	assert.Contains(t, got[0].Message, "data_type")
}

func TestVardims(t *testing.T) {
	ds := testDataset(t)
	ws, _ := ds.Var("WS")
	got := testValidator().vardims(ws, []string{schema.Time, schema.SouthNorth, schema.WestEast})
	assert.Equal(t, []string{
		"vardims:ERROR:WS:Dimensions for variable do not match expected dimensions from configuration " +
			"[Time height_WS south_north west_east]!=[Time south_north west_east]",
	}, got.Strings())
}

func TestMandatoryAttrs(t *testing.T) {
	ds := testDataset(t)
	ws, _ := ds.Var("WS")
	delete(ws.Attrs, "units")

	got := testValidator().mandatoryAttrs(ws, wsConfig().RequiredAttributes(true))
	assert.Equal(t, []string{
		"The mandatory attribute units does not exist in the variable WS",
		"The mandatory attribute instruments does not exist in the variable WS",
	}, messages(got))
}

func TestRequiredAttrValues(t *testing.T) {
	ds := testDataset(t)
	ws, _ := ds.Var("WS")
	ws.Attrs["units"] = "knots"
	delete(ws.Attrs, "long_name")

	got := testValidator().requiredAttrValues(ws, wsConfig().RequiredValues())
	assert.Equal(t, []string{
		"The variable WS should have the value m s-1 for the attribute units. The attribute had value knots",
		"The variable WS should have the value Wind speed for the attribute long_name. The attribute could not be found",
	}, messages(got))
}

func TestAlmostEqual(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		diff     float64
		want     bool
	}{
		{"equal strings", "m s-1", "m s-1", 0, true},
		{"different strings", "m s-1", "m/s", 0, false},
		{"digit string and int", "10", int32(10), 0, true},
		{"digit strings", "10", "11", 0, false},
		{"float string and float", "1.5", float32(1.5), 0, true},
		{"float string and int string", "1.0", "1", 0, true},
		{"within tolerance", 1.0, 1.05, 0.1, true},
		{"outside default tolerance", 1.0, 1.0000001, 0, false},
		{"single element slice", "2", []float64{2}, 0, true},
		{"bytes", "deg", []byte("deg\x00"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, almostEqual(tt.expected, tt.actual, tt.diff))
		})
	}
}

func TestAllowedInstruments(t *testing.T) {
	allowed := []string{"Lidar", "Cup anemometer"}
	tests := []struct {
		name        string
		measurement bool
		attr        any
		want        []string
	}{
		{name: "hindcast ignored", measurement: false, attr: "{'Sonar': {}}"},
		{name: "missing attribute", measurement: true},
		{name: "allowed", measurement: true, attr: "{'Lidar, SN 1234': {'height': 10}, 'Cup anemometer': {}}"},
		{
			name:        "not allowed",
			measurement: true,
			attr:        "{'Lidar': {}, 'Sonar, model X': {}}",
			want:        []string{`The variable "WS" has wrong instrument_type value: Sonar". Allowed values: [Lidar, Cup anemometer]`},
		},
		{
			name:        "not a mapping",
			measurement: true,
			attr:        "['Lidar']",
			want:        []string{"instruments on variable WS could not be parsed as a dict"},
		},
		{
			name:        "unparseable",
			measurement: true,
			attr:        "{'Lidar': ",
			want:        []string{"instruments on variable WS could not be parsed as a dict"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := dataset.Attributes{}
			if tt.attr != nil {
				attrs[instrumentsAttr] = tt.attr
			}
			dv := mustVar(t, "WS", nil, nil, []float64{1}, attrs)
			got := testValidator().allowedInstruments(dv, tt.measurement, allowed)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, messages(got))
		})
	}
}

func heightDataset(t *testing.T, heights []float64, attrs dataset.Attributes) *dataset.Dataset {
	t.Helper()
	ds := dataset.New([]dataset.Dimension{{Name: "height_WS", Size: len(heights)}}, nil)
	require.NoError(t, ds.AddCoord(mustVar(t, "height_WS", []string{"height_WS"}, []int{len(heights)}, heights, attrs)))
	return ds
}

func TestHeightDepth(t *testing.T) {
	v := testValidator()

	t.Run("atmosphere reports each negative height", func(t *testing.T) {
		ds := heightDataset(t, []float64{10, -5, 0, -20}, nil)
		got := v.heightDepth(ds, "WS", schema.CategoryAtmosphere)
		assert.Equal(t, []string{
			`The variable "WS" has invalid height, "-5.0".Variables of category 'Atmosphere' must be positive.`,
			`The variable "WS" has invalid height, "-20.0".Variables of category 'Atmosphere' must be positive.`,
		}, messages(got))
	})

	t.Run("ocean reports each positive depth", func(t *testing.T) {
		ds := heightDataset(t, []float64{-10, 5, 0}, nil)
		got := v.heightDepth(ds, "WS", schema.CategoryOcean)
		assert.Equal(t, []string{
			`The variable "WS" has invalid depth, "5.0".Variables of category 'Ocean' must be negative.`,
		}, messages(got))
	})

	t.Run("other categories and missing coordinate", func(t *testing.T) {
		ds := heightDataset(t, []float64{-10, 5}, nil)
		assert.Empty(t, v.heightDepth(ds, "WS", "Wave"))
		assert.Empty(t, v.heightDepth(ds, "HS", schema.CategoryAtmosphere))
	})
}

func TestHeightLongName(t *testing.T) {
	tests := []struct {
		name  string
		attrs dataset.Attributes
		want  []string
	}{
		{name: "lower case", attrs: dataset.Attributes{"long_name": "height for parameter WS"}},
		{name: "capitalised", attrs: dataset.Attributes{"long_name": "Height for parameter WS"}},
		{name: "missing attribute", attrs: dataset.Attributes{}},
		{
			name:  "wrong",
			attrs: dataset.Attributes{"long_name": "Height above sea"},
			want:  []string{"The variable WS should have 'long_name' set to 'height for parameter WS'"},
		},
		{
			name:  "key case matters",
			attrs: dataset.Attributes{"long_name": "Height for parameter ws"},
			want:  []string{"The variable WS should have 'long_name' set to 'height for parameter WS'"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := heightDataset(t, []float64{10}, tt.attrs)
			got := testValidator().heightLongName(ds, "WS")
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, messages(got))
		})
	}

	ds := heightDataset(t, []float64{10}, dataset.Attributes{"long_name": ""})
	got := testValidator().heightLongName(ds, "WS")
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, exceptionPrefix)
}
