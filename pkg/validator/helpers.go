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
	"log/slog"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

// isMeasurement reports whether ds holds observational data. A dataset
// without data_type cannot be classified and fails the calling check.
func isMeasurement(ds *dataset.Dataset) (bool, error) {
	dt, ok := ds.Attrs.String(schema.DataTypeAttr)
	if !ok {
		slog.Error("did not find attribute 'data_type' on dataset, set it to 'Measurement' or 'Hindcast'")
		return false, cnserrors.New(cnserrors.ErrCodeNotFound, "missing global attribute data_type")
	}
	return schema.DataType(dt).IsMeasurement(), nil
}

// toNumber converts numeric-looking strings and numeric values. Strings of
// digits become int64, other parseable strings float64.
func toNumber(v any) any {
	switch val := v.(type) {
	case string:
		if isDigits(val) {
			if n, err := strconv.ParseInt(val, 10, 64); err == nil {
				return n
			}
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
		return val
	case []byte:
		return toNumber(dataset.AttrString(val))
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Len() == 1 {
		return toNumber(rv.Index(0).Interface())
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// almostEqual compares an expected and an actual attribute value. Two
// integers compare exactly, two numbers within diff, anything else by its
// rendered form.
func almostEqual(expected, actual any, diff float64) bool {
	a, b := toNumber(expected), toNumber(actual)
	ai, aIsInt := a.(int64)
	bi, bIsInt := b.(int64)
	if aIsInt && bIsInt {
		return ai == bi
	}
	af, aOK := asFloat(a)
	bf, bOK := asFloat(b)
	if aOK && bOK {
		return math.Abs(af-bf) <= diff
	}
	return dataset.AttrString(expected) == dataset.AttrString(actual)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// bracket renders items as "[a, b, c]".
func bracket[T any](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprint(it)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// roundTo rounds x to the given number of decimals.
func roundTo(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

var timeEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// filenameDate renders a time value in microseconds since 1900-01-01 as
// the YYYYMMDD token used in file names.
func filenameDate(us float64) string {
	micros := int64(us)
	t := time.Unix(timeEpoch.Unix()+micros/1e6, (micros%1e6)*1e3).UTC()
	return t.Format("20060102")
}
