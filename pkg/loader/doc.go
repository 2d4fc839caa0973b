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

// Package loader turns a dataset path into batches of files and opens each
// batch as one combined dataset.
//
// Partition expands a path to a single file or to the dataset files directly
// inside a directory (not recursive), sorted by name, and splits them into
// batches of at most the configured size:
//
//	batches, err := loader.Partition("/data/hindcast", 1000)
//
// DefaultOpener reads NetCDF files (classic, 64-bit offset, CDF5 and
// NetCDF-4/HDF5) and JSON or YAML dataset documents. A batch of several
// files is concatenated along the Time dimension; non-time variables and
// attributes come from the first file. Each file's Time extent is recorded
// as a dataset.Source for filename checks.
package loader
