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

// Package dataset provides the in-memory model of a labeled multi-dimensional
// scientific dataset: ordered named dimensions, coordinate and data variables
// stored row-major, and a global attribute map.
//
// Datasets are built by the loader and are read-only for validators. A
// dataset spanning several files records one Source per file so that
// filename-correlated checks can see each file's share of the time axis.
//
// Usage:
//
//	ds := dataset.New([]dataset.Dimension{{Name: "Time", Size: 3}}, attrs)
//	if err := ds.AddCoord(timeVar); err != nil {
//	    return err
//	}
//	defer ds.Close()
//
//	sub, err := v.SubCube([]dataset.Range{{Start: 0, Stop: 2}})
//	lo, hi := sub.MinMax()
package dataset
