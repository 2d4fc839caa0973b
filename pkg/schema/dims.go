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

package schema

import "slices"

// Dimension names used by the standard layout.
const (
	SouthNorth      = "south_north"
	WestEast        = "west_east"
	Time            = "Time"
	HeightDimPrefix = "height_"
	Frequency       = "frequency"
	Direction       = "direction"
)

// Variable and attribute names with fixed meaning.
const (
	LatitudeVar  = "LAT"
	LongitudeVar = "LON"

	// TimeUnits is the only accepted unit string for the time coordinate.
	TimeUnits = "microseconds since 1900-01-01"
)

// HeightDim returns the name of the height (or depth) dimension owned by
// the parameter key.
func HeightDim(key string) string {
	return HeightDimPrefix + key
}

// AcceptableDims returns every dimension layout a variable named key may use.
func AcceptableDims(key string) [][]string {
	height := HeightDim(key)
	return [][]string{
		{},
		{SouthNorth, WestEast},
		{Time, SouthNorth, WestEast},
		{height, SouthNorth, WestEast},
		{Time, height, SouthNorth, WestEast},
		{Time, SouthNorth, WestEast, Frequency, Direction},
	}
}

// IsAcceptableDims reports whether dims exactly equals one of the layouts
// accepted for key.
func IsAcceptableDims(key string, dims []string) bool {
	for _, accept := range AcceptableDims(key) {
		if slices.Equal(accept, dims) {
			return true
		}
	}
	return false
}
