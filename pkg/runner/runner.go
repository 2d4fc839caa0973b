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

package runner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/metocean-validator/pkg/configsvc"
	"github.com/NVIDIA/metocean-validator/pkg/defaults"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/loader"
	"github.com/NVIDIA/metocean-validator/pkg/settings"
	"github.com/NVIDIA/metocean-validator/pkg/validator"
)

// Path segments of findings produced by the driver rather than a check.
const (
	fileSegment   = "file"
	runnerSegment = "runner"
)

// Runner validates files in batches.
type Runner struct {
	settings settings.Settings
	provider configsvc.Provider
	opener   loader.Opener
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithSettings sets the run options.
func WithSettings(s settings.Settings) Option {
	return func(r *Runner) {
		r.settings = s
	}
}

// WithProvider sets where the configuration snapshot comes from.
func WithProvider(p configsvc.Provider) Option {
	return func(r *Runner) {
		r.provider = p
	}
}

// WithOpener sets how a batch of files is materialized as a dataset.
func WithOpener(o loader.Opener) Option {
	return func(r *Runner) {
		r.opener = o
	}
}

// New creates a Runner. Without a provider the configuration service named
// by the settings is used, cached for the life of the process.
func New(opts ...Option) *Runner {
	r := &Runner{
		settings: settings.Default(),
		opener:   loader.DefaultOpener{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.provider == nil {
		r.provider = configsvc.NewCachedProvider(configsvc.NewClient(r.settings))
	}
	return r
}

// Run validates the file or directory at path. The result is always
// non-nil and carries a fresh run id.
func (r *Runner) Run(ctx context.Context, path string) (result *finding.Result) {
	runID := uuid.NewString()
	start := time.Now()
	log := slog.With("run", runID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("validation run panicked", "panic", rec, "stack", string(debug.Stack()))
			result = finding.NewResult()
			result.Errors = append(result.Errors, driverFailure(
				cnserrors.New(cnserrors.ErrCodeInternal, fmt.Sprintf("validation run failed: %v", rec))))
		}
		result.RunID = runID
		runDuration.Observe(time.Since(start).Seconds())
		runsTotal.WithLabelValues(outcome(result)).Inc()
		log.Info("validation run completed",
			"errors", len(result.Errors),
			"warnings", len(result.Warnings),
			"duration", time.Since(start))
	}()

	batches, err := loader.Partition(path, r.settings.BatchSize)
	if err != nil {
		log.Error("failed to partition input", "path", path, "error", err)
		result = finding.NewResult()
		result.Errors = append(result.Errors,
			finding.Newf("Could not open files in path %s", path).Tag(finding.SeverityError).Under(fileSegment),
			finding.New(err.Error()).Tag(finding.SeverityError))
		return result
	}

	v := validator.New(
		validator.WithSettings(r.settings),
		validator.WithSnapshot(r.snapshot(ctx)),
		validator.WithBatchCount(len(batches)),
	)
	log.Info("starting validation run",
		"path", path,
		"batches", len(batches),
		"seed", v.Seed())

	return r.validateBatches(ctx, log, v, batches)
}

// snapshot fetches the configuration for the run. A failed fetch does not
// stop the run; the checks that need the configuration report it instead.
func (r *Runner) snapshot(ctx context.Context) *configsvc.Snapshot {
	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigFetchTimeout)
	defer cancel()

	snap, err := r.provider.Snapshot(ctx)
	if err != nil {
		slog.Warn("configuration service unavailable", "error", err)
		return configsvc.Unavailable(err)
	}
	if snap == nil {
		return configsvc.Unavailable(cnserrors.New(cnserrors.ErrCodeUnavailable, "provider returned no snapshot"))
	}
	return snap
}

func (r *Runner) validateBatches(ctx context.Context, log *slog.Logger, v *validator.Validator, batches [][]string) *finding.Result {
	warnings := finding.List{}
	for i, batch := range batches {
		log.Info(fmt.Sprintf("validating batch %d of %d", i+1, len(batches)), "files", len(batch))

		res, err := r.validateBatch(ctx, v, batch)
		if err != nil {
			log.Error("batch failed", "batch", i+1, "error", err)
			result := finding.NewResult()
			result.Errors = append(result.Errors, driverFailure(err))
			result.Warnings = finding.Dedupe(warnings)
			return result
		}
		batchesTotal.Inc()

		warnings = append(warnings, res.Warnings...)
		if res.HasErrors() {
			log.Info("batch has errors, stopping", "batch", i+1, "errors", len(res.Errors))
			res.Warnings = finding.Dedupe(warnings)
			return res
		}
	}

	result := finding.NewResult()
	result.Warnings = finding.Dedupe(warnings)
	return result
}

// validateBatch opens one batch and validates it. The dataset is closed
// before returning, whatever the outcome.
func (r *Runner) validateBatch(ctx context.Context, v *validator.Validator, batch []string) (*finding.Result, error) {
	ds, err := r.opener.Open(batch)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidData, fmt.Sprintf("could not open batch starting at %s", batch[0]), err)
	}
	defer func() {
		if cerr := ds.Close(); cerr != nil {
			slog.Warn("failed to close dataset", "error", cerr)
		}
	}()
	return v.Validate(ctx, ds, batch)
}

func driverFailure(err error) finding.Finding {
	return finding.New(err.Error()).Tag(finding.SeverityError).Under(runnerSegment)
}

func outcome(r *finding.Result) string {
	switch {
	case r.HasErrors():
		return outcomeErrors
	case len(r.Warnings) > 0:
		return outcomeWarnings
	default:
		return outcomeClean
	}
}
