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
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

var (
	timeNode                     = MustNode("time_validator", finding.SeverityError)
	filenameNode                 = MustNode("filename_validator", finding.SeverityError)
	hasEntriesNode               = MustNode("has_entries_validator", finding.SeverityError)
	timeUnitsNode                = MustNode("time_units_validator", finding.SeverityError)
	filenameConventionNode       = MustNode("filename_convention_validator", finding.SeverityWarning)
	filenameIncludesTimeAxisNode = MustNode("filename_includes_time_axis_validator", finding.SeverityError)
	uniqueNode                   = MustNode("unique_validator", finding.SeverityError)
	cfStandardTimeNode           = MustNode("cf_standard_time_validator", finding.SeverityError)
)

const duplicateSamples = 3

var dateToken = regexp.MustCompile(`\d{8}`)

func (v *Validator) timeChecks(ds *dataset.Dataset, paths []string) finding.List {
	return timeNode.Run(v, func() (finding.List, error) {
		t, ok := ds.Var(schema.Time)
		if !ok {
			return nil, cnserrors.New(cnserrors.ErrCodeNotFound, fmt.Sprintf("variable %s not found", schema.Time))
		}

		var out finding.List
		for i := 1; i < len(t.Data); i++ {
			if t.Data[i-1] > t.Data[i] {
				out = append(out, finding.New("Some timestamps in the dataset are not in sorted order"))
				break
			}
		}
		out = append(out, v.filenames(ds, paths)...)
		out = append(out, v.unique(t)...)
		out = append(out, v.cfStandardTime(ds)...)
		return out, nil
	})
}

// filenames runs the per-file time axis checks and the rules correlating
// file names with time.
func (v *Validator) filenames(ds *dataset.Dataset, paths []string) finding.List {
	return filenameNode.Run(v, func() (finding.List, error) {
		sources, err := sourcesFor(ds, paths)
		if err != nil {
			return nil, err
		}

		var out finding.List
		starts := make([]float64, 0, len(sources))
		for _, src := range sources {
			if src.TimeLen > 0 {
				starts = append(starts, src.TimeStart)
			}
			out = append(out, hasEntriesNode.Run(v, func() (finding.List, error) {
				if src.TimeLen == 0 {
					return finding.List{finding.Newf("File with path %s has no entries in time dimension", src.Path)}, nil
				}
				return nil, nil
			})...)
			out = append(out, timeUnitsNode.Run(v, func() (finding.List, error) {
				if !src.TimeUnitsSet {
					return nil, cnserrors.New(cnserrors.ErrCodeNotFound,
						fmt.Sprintf("%s has no units attribute in file %s", schema.Time, src.Path))
				}
				if src.TimeUnits != schema.TimeUnits {
					return finding.List{finding.Newf("time units attribute should be %s, found %s in file %s",
						schema.TimeUnits, src.TimeUnits, src.Path)}, nil
				}
				return nil, nil
			})...)
		}
		if !slices.IsSorted(starts) {
			out = finding.List{finding.New("Filenames are not sortable such that time axis appears in increasing order")}
		}

		if len(paths) > 1 {
			out = append(out, v.filenameConvention(sources)...)
			out = append(out, v.filenameIncludesTimeAxis(sources)...)
		}
		return out, nil
	})
}

// sourcesFor returns the time extent of every path, ordered by path.
func sourcesFor(ds *dataset.Dataset, paths []string) ([]dataset.Source, error) {
	byPath := make(map[string]dataset.Source, len(ds.Sources))
	for _, src := range ds.Sources {
		byPath[src.Path] = src
	}
	sorted := slices.Sorted(slices.Values(paths))
	out := make([]dataset.Source, 0, len(sorted))
	for _, p := range sorted {
		src, ok := byPath[p]
		if !ok {
			return nil, cnserrors.New(cnserrors.ErrCodeNotFound, fmt.Sprintf("no %s information for file %s", schema.Time, p))
		}
		out = append(out, src)
	}
	return out, nil
}

// filenameConvention warns once when any file does not carry its first and
// last date as YYYYMMDD tokens.
func (v *Validator) filenameConvention(sources []dataset.Source) finding.List {
	return filenameConventionNode.Run(v, func() (finding.List, error) {
		for _, src := range sources {
			if !followsConvention(src) {
				return finding.List{finding.New("All should follow the preferred naming convention:" +
					"'<name>_<start_date>_<end_date>_T<time_length>.nc' where date format follows 'YYYYMMDD'")}, nil
			}
		}
		return nil, nil
	})
}

func followsConvention(src dataset.Source) bool {
	tokens := dateToken.FindAllString(strings.ReplaceAll(src.Path, ".nc", ""), -1)
	if len(tokens) != 2 || src.TimeLen == 0 {
		return false
	}
	return tokens[0] == filenameDate(src.TimeStart) && tokens[1] == filenameDate(src.TimeEnd)
}

// filenameIncludesTimeAxis requires every file name to end in _T<len>.
func (v *Validator) filenameIncludesTimeAxis(sources []dataset.Source) finding.List {
	return filenameIncludesTimeAxisNode.Run(v, func() (finding.List, error) {
		var failed []string
		for _, src := range sources {
			if timeAxisLength(src.Path) != src.TimeLen {
				failed = append(failed, src.Path)
			}
		}
		if len(failed) == 0 {
			return nil, nil
		}
		return finding.List{finding.Newf("All filenames MUST include the length of the time axis of the file as the last "+
			"part of the file_name, e.g. '..._T<time_length>.nc'. Either this was missing or there "+
			"was a missmatch in time_axis length for the file names: %s", bracket(failed))}, nil
	})
}

// timeAxisLength parses the _T<len> suffix of a file name, or returns -1.
func timeAxisLength(path string) int {
	name := strings.TrimSuffix(path, ".nc")
	i := strings.LastIndex(name, "_T")
	if i < 0 {
		return -1
	}
	n, err := strconv.Atoi(name[i+2:])
	if err != nil {
		return -1
	}
	return n
}

func (v *Validator) unique(t *dataset.Variable) finding.List {
	return uniqueNode.Run(v, func() (finding.List, error) {
		counts := make(map[float64]int, len(t.Data))
		for _, x := range t.Data {
			counts[x]++
		}
		var dups []float64
		for x, n := range counts {
			if n > 1 {
				dups = append(dups, x)
			}
		}
		if len(dups) == 0 {
			return nil, nil
		}
		slices.Sort(dups)
		samples := make([]string, 0, duplicateSamples)
		for _, x := range dups[:min(duplicateSamples, len(dups))] {
			samples = append(samples, dataset.FormatValue(x, t.DType))
		}
		return finding.List{finding.Newf("Duplicates found in Time dimension. Sample timestamps: [%s]",
			strings.Join(samples, " "))}, nil
	})
}

func (v *Validator) cfStandardTime(ds *dataset.Dataset) finding.List {
	return cfStandardTimeNode.Run(v, func() (finding.List, error) {
		t, ok := ds.Var(schema.Time)
		if !ok {
			return nil, cnserrors.New(cnserrors.ErrCodeNotFound, fmt.Sprintf("variable %s not found", schema.Time))
		}
		name, ok := t.Attrs.String("CF_standard_name")
		if !ok {
			return finding.List{finding.Newf("%s is missing attribute CF_standard_name", schema.Time)}, nil
		}
		if name != "time" {
			return finding.List{finding.Newf(`CF_standard name for %s should be "time". Found: %s`, schema.Time, name)}, nil
		}
		return nil, nil
	})
}
