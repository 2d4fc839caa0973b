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
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
)

// Extensions lists the file extensions a directory scan picks up.
func Extensions() []string {
	return []string{".nc", ".json", ".yaml", ".yml"}
}

// ListFiles expands path into the ordered list of dataset files.
func ListFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeNotFound, fmt.Sprintf("cannot access %s", path), err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeNotFound, fmt.Sprintf("cannot list %s", path), err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !slices.Contains(Extensions(), strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	if len(files) == 0 {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
			"no dataset files in directory", map[string]any{"path": path, "extensions": Extensions()})
	}
	slices.Sort(files)
	return files, nil
}

// Batch splits files into consecutive groups of at most size files.
func Batch(files []string, size int) ([][]string, error) {
	if size < 1 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("batch size must be at least 1, got %d", size))
	}
	batches := make([][]string, 0, (len(files)+size-1)/size)
	for chunk := range slices.Chunk(files, size) {
		batches = append(batches, chunk)
	}
	return batches, nil
}

// Partition lists the files under path and splits them into batches.
func Partition(path string, batchSize int) ([][]string, error) {
	files, err := ListFiles(path)
	if err != nil {
		return nil, err
	}
	return Batch(files, batchSize)
}
