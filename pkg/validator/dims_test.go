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

func TestDims_CleanDataset(t *testing.T) {
	v := testValidator()
	got := v.dims(testDataset(t), []string{wsPath})
	assert.Empty(t, got.Strings())
}

func TestCFStandardTime(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		ds := testDataset(t)
		tv, _ := ds.Var(schema.Time)
		delete(tv.Attrs, "CF_standard_name")

		got := testValidator().cfStandardTime(ds)
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Message, "missing attribute")
		assert.Equal(t, "cf_standard_time:ERROR:Time is missing attribute CF_standard_name", got[0].String())
	})

	t.Run("wrong value", func(t *testing.T) {
		ds := testDataset(t)
		tv, _ := ds.Var(schema.Time)
		tv.Attrs["CF_standard_name"] = "Time"

		got := testValidator().cfStandardTime(ds)
		require.Len(t, got, 1)
		assert.Equal(t, `CF_standard name for Time should be "time". Found: Time`, got[0].Message)
	})
}

func TestTimeChecks_OrderAndDuplicates(t *testing.T) {
	ds := testDataset(t)
	tv, _ := ds.Var(schema.Time)
	tv.Data[1], tv.Data[2] = tv.Data[2], tv.Data[1]
	tv.Data[3] = tv.Data[2]

	got := messages(testValidator().timeChecks(ds, []string{wsPath}))
	assert.Contains(t, got, "Some timestamps in the dataset are not in sorted order")
	assert.Contains(t, got, "Duplicates found in Time dimension. Sample timestamps: [3786829200000000.0]")
}

func TestTimeChecks_MissingTime(t *testing.T) {
	ds := dataset.New(nil, nil)
	got := testValidator().timeChecks(ds, nil)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, exceptionPrefix)
	assert.Equal(t, []string{"time"}, got[0].Path)
}

func TestFilenames(t *testing.T) {
	day := float64(24 * hourUS)
	src := func(path string, n int, start float64) dataset.Source {
		return dataset.Source{
			Path: path, TimeLen: n, TimeStart: start, TimeEnd: start + float64(n-1)*hourUS,
			TimeUnits: schema.TimeUnits, TimeUnitsSet: true,
		}
	}

	tests := []struct {
		name    string
		sources []dataset.Source
		want    []string
	}{
		{
			name: "well named",
			sources: []dataset.Source{
				src("/d/ws_20200101_20200101_T24.nc", 24, jan2020),
				src("/d/ws_20200102_20200102_T24.nc", 24, jan2020+day),
			},
		},
		{
			name: "bad units and empty file",
			sources: []dataset.Source{
				{Path: "/d/a_T0.nc", TimeUnits: "hours since 1900-01-01", TimeUnitsSet: true},
			},
			want: []string{
				"filename:has_entries:ERROR:File with path /d/a_T0.nc has no entries in time dimension",
				"filename:time_units:ERROR:time units attribute should be microseconds since 1900-01-01, found hours since 1900-01-01 in file /d/a_T0.nc",
			},
		},
		{
			name: "not sortable by name",
			sources: []dataset.Source{
				src("/d/ws_20200102_20200102_T24.nc", 24, jan2020),
				src("/d/ws_20200101_20200101_T24.nc", 24, jan2020+day),
			},
			want: []string{
				"filename:ERROR:Filenames are not sortable such that time axis appears in increasing order",
				"filename:filename_convention:WARNING:All should follow the preferred naming convention:" +
					"'<name>_<start_date>_<end_date>_T<time_length>.nc' where date format follows 'YYYYMMDD'",
			},
		},
		{
			name: "missing time axis length",
			sources: []dataset.Source{
				src("/d/ws_20200101_20200101.nc", 24, jan2020),
				src("/d/ws_20200102_20200102_T23.nc", 24, jan2020+day),
			},
			want: []string{
				"filename:filename_includes_time_axis:ERROR:All filenames MUST include the length of the time axis of the file as the last " +
					"part of the file_name, e.g. '..._T<time_length>.nc'. Either this was missing or there " +
					"was a missmatch in time_axis length for the file names: [/d/ws_20200101_20200101.nc, /d/ws_20200102_20200102_T23.nc]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := dataset.New(nil, nil)
			ds.Sources = tt.sources
			paths := make([]string, len(tt.sources))
			for i, s := range tt.sources {
				paths[i] = s.Path
			}
			got := testValidator().filenames(ds, paths)
			if len(tt.want) == 0 {
				assert.Empty(t, got.Strings())
				return
			}
			assert.Equal(t, tt.want, got.Strings())
		})
	}
}

func TestFilenames_MissingUnitsIsException(t *testing.T) {
	ds := dataset.New(nil, nil)
	ds.Sources = []dataset.Source{{Path: "/d/a_T1.nc", TimeLen: 1, TimeStart: jan2020}}
	got := testValidator().filenames(ds, []string{"/d/a_T1.nc"})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"filename", "time_units"}, got[0].Path)
	assert.Contains(t, got[0].Message, exceptionPrefix)
}

func TestFilenames_UnknownPath(t *testing.T) {
	got := testValidator().filenames(dataset.New(nil, nil), []string{"/d/other.nc"})
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, exceptionPrefix)
}

func TestFilenameDate(t *testing.T) {
	assert.Equal(t, "20200101", filenameDate(jan2020))
	assert.Equal(t, "20200101", filenameDate(jan2020+23*hourUS))
	assert.Equal(t, "20200102", filenameDate(jan2020+24*hourUS))
	assert.Equal(t, "19000101", filenameDate(0))
}

func TestTimeAxisLength(t *testing.T) {
	assert.Equal(t, 24, timeAxisLength("/d/ws_20200101_20200101_T24.nc"))
	assert.Equal(t, -1, timeAxisLength("/d/ws_20200101_20200101.nc"))
	assert.Equal(t, -1, timeAxisLength("/d/ws_Tx.nc"))
}

func TestDimvars(t *testing.T) {
	ds := dataset.New([]dataset.Dimension{
		{Name: schema.Time, Size: 2},
		{Name: schema.SouthNorth, Size: 1},
		{Name: schema.WestEast, Size: 1},
		{Name: "extra", Size: 3},
		{Name: "unused", Size: 1},
	}, nil)
	require.NoError(t, ds.AddDataVar(mustVar(t, "WS", []string{schema.Time, schema.SouthNorth, schema.WestEast}, []int{2, 1, 1}, []float64{1, 2}, nil)))
	require.NoError(t, ds.AddDataVar(mustVar(t, "HS", []string{"extra"}, []int{3}, []float64{1, 2, 3}, nil)))

	got := testValidator().dimvars(ds)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"dimvars", "acceptable_vardims"}, got[0].Path)
	assert.Contains(t, got[0].Message, "HS has dims [extra], but only")
	assert.Equal(t, "dimvars:all_dims_must_have_variable:ERROR:The following dimensions are not attached to a variable: [unused]", got[1].String())
}

func TestExistence(t *testing.T) {
	ds := dataset.New([]dataset.Dimension{{Name: schema.SouthNorth, Size: 0}}, nil)
	v := testValidator()

	assert.Equal(t, []string{"south_north has length 0"}, messages(v.existence(ds, schema.SouthNorth)))
	assert.Equal(t, []string{"west_east is not a dimension in dataset"}, messages(v.existence(ds, schema.WestEast)))

	got := v.dims(ds, nil)
	assert.Contains(t, got.Strings(), "dims:south_north:existence:ERROR:south_north has length 0")
}

func TestLatLon(t *testing.T) {
	ds := testDataset(t)
	lat, _ := ds.Var(schema.LatitudeVar)
	delete(lat.Attrs, "units")
	lat.Attrs["description"] = "lat"

	got := messages(testValidator().latLon(ds))
	assert.Equal(t, []string{
		"Wrong attribute for LAT description. Value was: lat, expected: Latitude",
		"LAT is missing attribute units",
	}, got)
}

func TestLatLon_Shape(t *testing.T) {
	ds := dataset.New([]dataset.Dimension{{Name: schema.SouthNorth, Size: 2}, {Name: schema.WestEast, Size: 2}}, nil)
	require.NoError(t, ds.AddCoord(mustVar(t, schema.LatitudeVar, []string{schema.SouthNorth}, []int{2}, []float64{1, 2}, nil)))
	require.NoError(t, ds.AddCoord(mustVar(t, schema.LongitudeVar, []string{schema.WestEast, schema.SouthNorth}, []int{2, 2}, []float64{1, 2, 3, 4}, nil)))

	got := messages(testValidator().latLon(ds))
	assert.Contains(t, got, "LAT has shape [2]. lats should be 2d, south_north and west_east")
	assert.Contains(t, got, "dims for LAT should be [south_north west_east], found [south_north]")
	assert.Contains(t, got, "dims for LON should be [south_north west_east], found [west_east south_north]")
	assert.NotContains(t, got, "LON has shape [2 2]. lons should be 2d, south_north and west_east")
}

func TestLatLon_MissingVariable(t *testing.T) {
	got := testValidator().latLon(dataset.New(nil, nil))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "LAT not found")
}
