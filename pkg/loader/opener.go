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
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

// Opener opens a batch of files as one dataset.
type Opener interface {
	Open(paths []string) (*dataset.Dataset, error)
}

// DefaultOpener reads NetCDF files and dataset documents and concatenates
// them along the time dimension.
type DefaultOpener struct{}

// Open implements Opener. Closing the returned dataset closes every file.
func (DefaultOpener) Open(paths []string) (*dataset.Dataset, error) {
	if len(paths) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "no files to open")
	}

	parts := make([]*dataset.Dataset, 0, len(paths))
	closeAll := func() error {
		var errs []error
		for _, p := range parts {
			errs = append(errs, p.Close())
		}
		return errors.Join(errs...)
	}

	for _, path := range paths {
		ds, err := OpenFile(path)
		if err != nil {
			_ = closeAll()
			return nil, err
		}
		parts = append(parts, ds)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	combined, err := dataset.Concat(parts, schema.Time)
	if err != nil {
		_ = closeAll()
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidData,
			fmt.Sprintf("failed to combine %d files along %s", len(paths), schema.Time), err)
	}
	combined.SetCloser(closeAll)
	slog.Debug("opened batch", "files", len(paths), "dims", combined.Dims())
	return combined, nil
}

// OpenFile reads a single file, choosing the reader from its extension.
func OpenFile(path string) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return ReadDocument(path)
	default:
		return ReadNetCDF(path)
	}
}
