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
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/serializer"
)

func orderedMap(t *testing.T, kv map[string]any) api.AttributeMap {
	t.Helper()
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	m, err := util.NewOrderedMap(keys, kv)
	require.NoError(t, err)
	return m
}

// writeNetCDF writes a classic NetCDF file with a time axis, a 2-D grid
// variable and one data variable along time.
func writeNetCDF(t *testing.T, path string, times []float64, ws []float32) {
	t.Helper()
	w, err := netcdf.OpenWriter(path, netcdf.KindCDF)
	require.NoError(t, err)
	require.NoError(t, w.AddAttributes(orderedMap(t, map[string]any{
		"data_type": "Hindcast",
		"title":     "test",
	})))
	require.NoError(t, w.AddVar("Time", api.Variable{
		Values:     times,
		Dimensions: []string{"Time"},
		Attributes: orderedMap(t, map[string]any{"units": "microseconds since 1900-01-01"}),
	}))
	require.NoError(t, w.AddVar("LAT", api.Variable{
		Values:     [][]float32{{60, 60.5}, {61, 61.5}},
		Dimensions: []string{"south_north", "west_east"},
		Attributes: orderedMap(t, map[string]any{"units": "degree_north"}),
	}))
	require.NoError(t, w.AddVar("WS10", api.Variable{
		Values:     ws,
		Dimensions: []string{"Time"},
		Attributes: orderedMap(t, map[string]any{"units": "m s-1", "coordinates": "LAT"}),
	}))
	require.NoError(t, w.Close())
}

func writeDocument(t *testing.T, path string, doc *Document) {
	t.Helper()
	w := serializer.NewFileWriterOrStdout(serializer.FormatFromPath(path), path)
	require.NoError(t, w.Serialize(context.Background(), doc))
	require.NoError(t, w.Close())
}

func f64(v float64) *float64 { return &v }

func timeDocument(start float64, n int) *Document {
	data := make([]*float64, n)
	ws := make([]*float64, n)
	for i := range n {
		data[i] = f64(start + float64(i))
		ws[i] = f64(float64(i) + 0.5)
	}
	ws[0] = nil
	return &Document{
		Dims:  []DimensionDoc{{Name: "Time", Size: n}},
		Attrs: map[string]any{"data_type": "Measurement"},
		Coords: []VariableDoc{{
			Name:  "Time",
			Dims:  []string{"Time"},
			DType: "int64",
			Attrs: map[string]any{"units": "microseconds since 1900-01-01"},
			Data:  data,
		}},
		DataVars: []VariableDoc{{
			Name:  "WS10",
			Dims:  []string{"Time"},
			DType: "float32",
			Data:  ws,
		}},
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_T2.nc", "a_T2.nc", "c.json", "notes.txt", "d.YML"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.nc"), 0o700))

	files, err := ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a_T2.nc"),
		filepath.Join(dir, "b_T2.nc"),
		filepath.Join(dir, "c.json"),
		filepath.Join(dir, "d.YML"),
	}, files)

	t.Run("single file", func(t *testing.T) {
		single := filepath.Join(dir, "notes.txt")
		files, err := ListFiles(single)
		require.NoError(t, err)
		assert.Equal(t, []string{single}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := ListFiles(filepath.Join(dir, "missing"))
		require.Error(t, err)
		assert.Equal(t, cnserrors.ErrCodeNotFound, cnserrors.CodeOf(err))
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := ListFiles(t.TempDir())
		require.Error(t, err)
		assert.Equal(t, cnserrors.ErrCodeNotFound, cnserrors.CodeOf(err))
	})
}

func TestBatch(t *testing.T) {
	files := []string{"a", "b", "c", "d", "e"}
	tests := []struct {
		name string
		size int
		want [][]string
	}{
		{"one per batch", 1, [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}},
		{"uneven", 2, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}},
		{"all in one", 1000, [][]string{files}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Batch(files, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Batch(files, 0)
	require.Error(t, err)
	assert.Equal(t, cnserrors.ErrCodeInvalidRequest, cnserrors.CodeOf(err))
}

func TestPartition(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"x_1.nc", "x_2.nc", "x_3.nc"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	batches, err := Partition(dir, 2)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[1], 1)
}

func TestReadNetCDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid_T3.nc")
	writeNetCDF(t, path, []float64{10, 20, 30}, []float32{1.5, 2.5, 3.5})

	ds, err := ReadNetCDF(path)
	require.NoError(t, err)
	defer ds.Close()

	assert.ElementsMatch(t, []string{"Time", "south_north", "west_east"}, ds.DimNames())
	dt, ok := ds.Attrs.String("data_type")
	require.True(t, ok)
	assert.Equal(t, "Hindcast", dt)

	ws, ok := ds.Var("WS10")
	require.True(t, ok)
	assert.Equal(t, dataset.Float32, ws.DType)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, ws.Data)

	lat, ok := ds.Var("LAT")
	require.True(t, ok)
	assert.Equal(t, []int{2, 2}, lat.Shape)
	assert.Equal(t, []float64{60, 60.5, 61, 61.5}, lat.Data)

	coords := map[string]bool{}
	for _, c := range ds.Coords() {
		coords[c.Name] = true
	}
	assert.True(t, coords["Time"])
	assert.True(t, coords["LAT"])
	assert.False(t, coords["WS10"])

	require.Len(t, ds.Sources, 1)
	src := ds.Sources[0]
	assert.Equal(t, path, src.Path)
	assert.Equal(t, 3, src.TimeLen)
	assert.Equal(t, 10.0, src.TimeStart)
	assert.Equal(t, 30.0, src.TimeEnd)
	assert.True(t, src.TimeUnitsSet)
	assert.Equal(t, "microseconds since 1900-01-01", src.TimeUnits)

	require.NoError(t, ds.Close())
	assert.True(t, ds.IsClosed())
}

func TestReadNetCDF_NotNetCDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nc")
	require.NoError(t, os.WriteFile(path, []byte("not a netcdf file"), 0o600))
	_, err := ReadNetCDF(path)
	require.Error(t, err)
	assert.Equal(t, cnserrors.ErrCodeInvalidData, cnserrors.CodeOf(err))
}

func TestReadDocument(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "obs_T4"+ext)
			writeDocument(t, path, timeDocument(100, 4))

			ds, err := ReadDocument(path)
			require.NoError(t, err)

			ws, ok := ds.Var("WS10")
			require.True(t, ok)
			assert.Equal(t, dataset.Float32, ws.DType)
			assert.True(t, math.IsNaN(ws.Data[0]))
			assert.Equal(t, []float64{1.5, 2.5, 3.5}, ws.Data[1:])

			require.Len(t, ds.Sources, 1)
			assert.Equal(t, 4, ds.Sources[0].TimeLen)
			assert.Equal(t, 100.0, ds.Sources[0].TimeStart)
			assert.Equal(t, 103.0, ds.Sources[0].TimeEnd)
		})
	}
}

func TestReadDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown field", `{"dims":[],"extra":1}`},
		{"length mismatch", `{"dims":[{"name":"Time","size":2}],"data_vars":[{"name":"x","dims":["Time"],"data":[1]}]}`},
		{"undeclared dim", `{"dims":[],"data_vars":[{"name":"x","dims":["Time"],"data":[]}]}`},
		{"negative size", `{"dims":[{"name":"Time","size":-1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "doc.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))
			_, err := ReadDocument(path)
			require.Error(t, err)
			assert.Equal(t, cnserrors.ErrCodeInvalidData, cnserrors.CodeOf(err))
		})
	}
}

func TestNewDocument_RoundTrip(t *testing.T) {
	doc := timeDocument(0, 3)
	ds, err := doc.Dataset()
	require.NoError(t, err)

	back := NewDocument(ds)
	assert.Equal(t, doc.Dims, back.Dims)
	require.Len(t, back.DataVars, 1)
	assert.Nil(t, back.DataVars[0].Data[0])
	assert.Equal(t, 1.5, *back.DataVars[0].Data[1])
	assert.Equal(t, "float32", back.DataVars[0].DType)
}

func TestDefaultOpener(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "obs_a.json")
	second := filepath.Join(dir, "obs_b.yaml")
	writeDocument(t, first, timeDocument(0, 2))
	writeDocument(t, second, timeDocument(2, 3))

	ds, err := DefaultOpener{}.Open([]string{first, second})
	require.NoError(t, err)

	d, ok := ds.Dim("Time")
	require.True(t, ok)
	assert.Equal(t, 5, d.Size)

	tv, ok := ds.Var("Time")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, tv.Data)

	require.Len(t, ds.Sources, 2)
	assert.Equal(t, first, ds.Sources[0].Path)
	assert.Equal(t, second, ds.Sources[1].Path)
	assert.Equal(t, 3, ds.Sources[1].TimeLen)

	require.NoError(t, ds.Close())
	assert.True(t, ds.IsClosed())
}

func TestDefaultOpener_Errors(t *testing.T) {
	_, err := DefaultOpener{}.Open(nil)
	require.Error(t, err)
	assert.Equal(t, cnserrors.ErrCodeInvalidRequest, cnserrors.CodeOf(err))

	dir := t.TempDir()
	good := filepath.Join(dir, "a.json")
	writeDocument(t, good, timeDocument(0, 2))
	_, err = DefaultOpener{}.Open([]string{good, filepath.Join(dir, "missing.nc")})
	require.Error(t, err)
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  []float64
		dtype dataset.DType
	}{
		{"float32", []float32{1, 2}, []float64{1, 2}, dataset.Float32},
		{"nested int16", [][]int16{{1, 2}, {3, 4}}, []float64{1, 2, 3, 4}, dataset.Int16},
		{"uint8", []uint8{7}, []float64{7}, dataset.Uint8},
		{"scalar", float64(3), []float64{3}, dataset.Float64},
		{"interface slice", []any{1.0, 2.0}, []float64{1, 2}, dataset.Float64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dtype, err := flatten(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.dtype, dtype)
		})
	}

	_, _, err := flatten([]string{"abc"})
	require.Error(t, err)
	_, _, err = flatten(nil)
	require.Error(t, err)
}
