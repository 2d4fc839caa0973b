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

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/metocean-validator/pkg/configsvc"
	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
	"github.com/NVIDIA/metocean-validator/pkg/settings"
)

const (
	// 2020-01-01T00:00:00Z in microseconds since 1900-01-01.
	jan2020 = 3786825600000000
	hourUS  = 3600 * 1000000
	wsPath  = "/data/ws_20200101_20200101_T4.nc"
)

func wsConfig() schema.ParameterConfig {
	return schema.ParameterConfig{
		Key:                         "WS",
		ParameterCategory:           schema.CategoryAtmosphere,
		ShortName:                   "WS",
		LongName:                    "Wind speed",
		Units:                       "m s-1",
		CFStandardName:              "wind_speed",
		AllowedInstruments:          []string{"Lidar", "Cup anemometer"},
		NumberOfSignificantDecimals: 2,
		Min:                         schema.Limit(0),
		Max:                         schema.Limit(80),
		Dims:                        []string{schema.Time, "height_WS", schema.SouthNorth, schema.WestEast},
	}
}

func testSnapshot() *configsvc.Snapshot {
	return configsvc.NewSnapshot(
		[]schema.ParameterConfig{wsConfig()},
		[]schema.InstallationType{{InstallationType: "Buoy"}, {InstallationType: "Platform"}},
		[]schema.UsabilityLevel{{Level: "Good"}, {Level: "Questionable"}},
		[]schema.InstrumentType{{InstrumentType: "Lidar"}, {InstrumentType: "Cup anemometer"}},
	)
}

func testValidator(opts ...Option) *Validator {
	s := settings.Default()
	s.Seed = 42
	base := []Option{WithSettings(s), WithSnapshot(testSnapshot()), WithBatchCount(1)}
	return New(append(base, opts...)...)
}

func mustVar(t *testing.T, name string, dims []string, shape []int, data []float64, attrs dataset.Attributes) *dataset.Variable {
	t.Helper()
	v, err := dataset.NewVariable(name, dims, shape, dataset.Float64, data, attrs)
	require.NoError(t, err)
	return v
}

func hindcastAttrs() dataset.Attributes {
	attrs := dataset.Attributes{}
	for _, name := range schema.HindcastRequired() {
		attrs[name] = "x"
	}
	attrs[schema.DataTypeAttr] = string(schema.DataTypeHindcast)
	attrs["final_reports"] = "report.pdf"
	attrs["classification_level"] = "Internal"
	return attrs
}

// testDataset builds a hindcast dataset that passes every check: 4 time
// steps, 2 heights and a 2x3 grid for the single parameter WS.
func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New([]dataset.Dimension{
		{Name: schema.Time, Size: 4},
		{Name: "height_WS", Size: 2},
		{Name: schema.SouthNorth, Size: 2},
		{Name: schema.WestEast, Size: 3},
	}, hindcastAttrs())

	times := []float64{jan2020, jan2020 + hourUS, jan2020 + 2*hourUS, jan2020 + 3*hourUS}
	require.NoError(t, ds.AddCoord(mustVar(t, schema.Time, []string{schema.Time}, []int{4}, times, dataset.Attributes{
		"units":            schema.TimeUnits,
		"CF_standard_name": "time",
	})))
	require.NoError(t, ds.AddCoord(mustVar(t, "height_WS", []string{"height_WS"}, []int{2}, []float64{10, 20}, dataset.Attributes{
		"long_name": "Height for parameter WS",
	})))
	grid := []string{schema.SouthNorth, schema.WestEast}
	require.NoError(t, ds.AddCoord(mustVar(t, schema.LatitudeVar, grid, []int{2, 3}, []float64{60, 60, 60, 61, 61, 61}, dataset.Attributes{
		"short_name": "Latitude", "long_name": "Latitude", "CF_standard_name": "latitude",
		"description": "Latitude", "units": "degree_north",
	})))
	require.NoError(t, ds.AddCoord(mustVar(t, schema.LongitudeVar, grid, []int{2, 3}, []float64{3, 4, 5, 3, 4, 5}, dataset.Attributes{
		"short_name": "Longitude", "long_name": "Longitude", "CF_standard_name": "longitude",
		"description": "Longitude", "units": "degree_east",
	})))

	data := make([]float64, 4*2*2*3)
	for i := range data {
		data[i] = float64(i%40) + 0.25
	}
	require.NoError(t, ds.AddDataVar(mustVar(t, "WS", wsConfig().Dims, []int{4, 2, 2, 3}, data, dataset.Attributes{
		"units": "m s-1", "CF_standard_name": "wind_speed", "long_name": "Wind speed",
	})))

	ds.Sources = []dataset.Source{{
		Path:         wsPath,
		TimeLen:      4,
		TimeStart:    times[0],
		TimeEnd:      times[3],
		TimeUnits:    schema.TimeUnits,
		TimeUnitsSet: true,
	}}
	return ds
}

// messages returns the message part of every finding.
func messages(l finding.List) []string {
	out := make([]string, len(l))
	for i, f := range l {
		out[i] = f.Message
	}
	return out
}
