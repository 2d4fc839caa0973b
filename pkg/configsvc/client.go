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

package configsvc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/metocean-validator/pkg/defaults"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
	"github.com/NVIDIA/metocean-validator/pkg/serializer"
	"github.com/NVIDIA/metocean-validator/pkg/settings"
)

// Client reads the configuration service.
type Client struct {
	baseURL       string
	parametersURL string
	reader        *serializer.HttpReader
}

// NewClient creates a client for the service named in s. Requests are
// rate limited and bounded by s.RequestTimeout.
func NewClient(s settings.Settings, opts ...serializer.HttpReaderOption) *Client {
	base := []serializer.HttpReaderOption{
		serializer.WithRateLimiter(rate.NewLimiter(defaults.ConfigRequestRate, defaults.ConfigRequestBurst)),
	}
	if s.RequestTimeout > 0 {
		base = append(base, serializer.WithTotalTimeout(s.RequestTimeout))
	}
	return &Client{
		baseURL:       strings.TrimRight(s.ServiceURL, "/"),
		parametersURL: s.ParametersEndpoint(),
		reader:        serializer.NewHttpReader(append(base, opts...)...),
	}
}

// URL returns the full URL of endpoint e.
func (c *Client) URL(e Endpoint) string {
	if e == EndpointParameters {
		return c.parametersURL
	}
	return c.baseURL + "/" + string(e)
}

// Parameters reads and validates the parameter configurations.
func (c *Client) Parameters(ctx context.Context) ([]schema.ParameterConfig, error) {
	return fetch(ctx, c, EndpointParameters, schema.ValidateParameters)
}

// InstallationTypes reads and validates the installation-type vocabulary.
func (c *Client) InstallationTypes(ctx context.Context) ([]schema.InstallationType, error) {
	return fetch(ctx, c, EndpointInstallationTypes, schema.ValidateInstallationTypes)
}

// UsabilityLevels reads and validates the data-usability vocabulary.
func (c *Client) UsabilityLevels(ctx context.Context) ([]schema.UsabilityLevel, error) {
	return fetch(ctx, c, EndpointUsabilityLevels, schema.ValidateUsabilityLevels)
}

// InstrumentTypes reads and validates the instrument-type vocabulary.
func (c *Client) InstrumentTypes(ctx context.Context) ([]schema.InstrumentType, error) {
	return fetch(ctx, c, EndpointInstrumentTypes, schema.ValidateInstrumentTypes)
}

func fetch[T any](ctx context.Context, c *Client, e Endpoint, validate func([]T) error) ([]T, error) {
	url := c.URL(e)
	start := time.Now()
	defer func() {
		configFetchDuration.WithLabelValues(string(e)).Observe(time.Since(start).Seconds())
	}()

	slog.Debug("fetching configuration", "endpoint", e, "url", url)
	data, err := c.reader.ReadWithContext(ctx, url)
	if err != nil {
		configFetchErrors.WithLabelValues(string(e)).Inc()
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		configFetchErrors.WithLabelValues(string(e)).Inc()
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidData,
			fmt.Sprintf("failed to decode %s payload", e), err, map[string]any{"url": url})
	}
	if err := validate(records); err != nil {
		configFetchErrors.WithLabelValues(string(e)).Inc()
		return nil, err
	}
	return records, nil
}

// FetchSnapshot reads all endpoints in parallel. Endpoint failures are
// recorded in the snapshot rather than returned; the error is non-nil only
// when ctx ends before the fetches finish.
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	var (
		params       []schema.ParameterConfig
		installation []schema.InstallationType
		usability    []schema.UsabilityLevel
		instruments  []schema.InstrumentType

		mu   sync.Mutex
		errs = make(map[Endpoint]error, len(Endpoints()))
	)

	// The four requests are independent and each is bounded by the client
	// timeout, so they run in parallel to keep run start-up at one round
	// trip. Validation itself stays on the caller's goroutine. Goroutines
	// record their error and return nil: one failing endpoint must not
	// cancel the others, so the group carries no derived context.
	var g errgroup.Group
	run := func(e Endpoint, f func(context.Context) error) {
		g.Go(func() error {
			if err := f(ctx); err != nil {
				mu.Lock()
				errs[e] = err
				mu.Unlock()
			}
			return nil
		})
	}

	run(EndpointParameters, func(ctx context.Context) (err error) {
		params, err = c.Parameters(ctx)
		return err
	})
	run(EndpointInstallationTypes, func(ctx context.Context) (err error) {
		installation, err = c.InstallationTypes(ctx)
		return err
	})
	run(EndpointUsabilityLevels, func(ctx context.Context) (err error) {
		usability, err = c.UsabilityLevels(ctx)
		return err
	})
	run(EndpointInstrumentTypes, func(ctx context.Context) (err error) {
		instruments, err = c.InstrumentTypes(ctx)
		return err
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "configuration fetch aborted", err)
	}

	snap := NewSnapshot(params, installation, usability, instruments)
	for _, e := range Endpoints() {
		if err, ok := errs[e]; ok {
			slog.Warn("configuration endpoint unavailable", "endpoint", e, "error", err)
			snap = snap.WithError(e, err)
		}
	}
	return snap, nil
}
