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
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/NVIDIA/metocean-validator/pkg/configsvc"
	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/settings"
)

// Validator runs the check tree against one batch dataset at a time.
type Validator struct {
	settings   settings.Settings
	snapshot   *configsvc.Snapshot
	batchCount int
	seed       uint64
	rng        *rand.Rand
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithSettings sets the run options.
func WithSettings(s settings.Settings) Option {
	return func(v *Validator) {
		v.settings = s
	}
}

// WithSnapshot sets the configuration snapshot shared by every batch of
// the run.
func WithSnapshot(snap *configsvc.Snapshot) Option {
	return func(v *Validator) {
		v.snapshot = snap
	}
}

// WithBatchCount sets how many batches the run has. The interval sampler
// divides its time budget by it.
func WithBatchCount(n int) Option {
	return func(v *Validator) {
		v.batchCount = n
	}
}

// New creates a Validator. The sampler seed is taken from the settings, or
// drawn at random when the settings leave it at zero.
func New(opts ...Option) *Validator {
	v := &Validator{
		settings:   settings.Default(),
		batchCount: 1,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.snapshot == nil {
		v.snapshot = configsvc.Unavailable(cnserrors.New(cnserrors.ErrCodeUnavailable, "no configuration snapshot"))
	}
	v.seed = v.settings.Seed
	if v.seed == 0 {
		v.seed = rand.Uint64()
	}
	v.rng = rand.New(rand.NewPCG(v.seed, v.seed))
	return v
}

// Seed returns the seed driving the samplers.
func (v *Validator) Seed() uint64 {
	return v.seed
}

// Settings returns the run options.
func (v *Validator) Settings() settings.Settings {
	return v.settings
}

// Validate runs the dims, variables and file_attributes families against
// ds and partitions the findings. paths are the files ds was opened from.
// Check failures never surface as an error; only a missing dataset or a
// canceled context does.
func (v *Validator) Validate(ctx context.Context, ds *dataset.Dataset, paths []string) (*finding.Result, error) {
	if ds == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "dataset cannot be nil")
	}
	select {
	case <-ctx.Done():
		return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "validation canceled", ctx.Err())
	default:
	}

	start := time.Now()
	slog.Debug("launch root validator", "files", len(paths))

	var all finding.List
	all = append(all, v.dims(ds, paths)...)
	all = append(all, v.variables(ds)...)
	all = append(all, v.fileAttributes(ds)...)

	result := finding.Partition(all)
	duration := time.Since(start)
	validationDuration.Observe(duration.Seconds())
	findingsTotal.WithLabelValues(string(finding.SeverityError)).Add(float64(len(result.Errors)))
	findingsTotal.WithLabelValues(string(finding.SeverityWarning)).Add(float64(len(result.Warnings)))

	slog.Debug("validation completed",
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
		"duration", duration)

	return result, nil
}
