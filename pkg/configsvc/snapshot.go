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
	"fmt"
	"time"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

// Endpoint names a configuration service resource.
type Endpoint string

const (
	EndpointParameters        Endpoint = "parameters"
	EndpointInstallationTypes Endpoint = "installation-types"
	EndpointUsabilityLevels   Endpoint = "data-usability"
	EndpointInstrumentTypes   Endpoint = "instrument-types"
)

// Endpoints lists every endpoint a snapshot holds.
func Endpoints() []Endpoint {
	return []Endpoint{EndpointParameters, EndpointInstallationTypes, EndpointUsabilityLevels, EndpointInstrumentTypes}
}

type entry[T any] struct {
	value T
	err   error
}

func (e entry[T]) get() (T, error) {
	return e.value, e.err
}

// Snapshot is the configuration as read at one point in time. Each endpoint
// carries its own value or error. A Snapshot is immutable once built.
type Snapshot struct {
	FetchedAt time.Time

	parameters   entry[schema.ParameterSet]
	installation entry[[]string]
	usability    entry[[]string]
	instruments  entry[[]string]
}

// NewSnapshot builds a snapshot from already decoded records.
func NewSnapshot(params []schema.ParameterConfig, installation []schema.InstallationType,
	usability []schema.UsabilityLevel, instruments []schema.InstrumentType) *Snapshot {
	return &Snapshot{
		FetchedAt:    time.Now(),
		parameters:   entry[schema.ParameterSet]{value: schema.NewParameterSet(params)},
		installation: entry[[]string]{value: schema.InstallationTypeNames(installation)},
		usability:    entry[[]string]{value: schema.UsabilityLevelNames(usability)},
		instruments:  entry[[]string]{value: schema.InstrumentTypeNames(instruments)},
	}
}

// Unavailable returns a snapshot in which every endpoint fails with err.
func Unavailable(err error) *Snapshot {
	s := NewSnapshot(nil, nil, nil, nil)
	for _, e := range Endpoints() {
		s = s.WithError(e, err)
	}
	return s
}

// WithError returns a copy of s where endpoint e fails with err.
func (s *Snapshot) WithError(e Endpoint, err error) *Snapshot {
	out := *s
	code := cnserrors.CodeOf(err)
	if code == "" {
		code = cnserrors.ErrCodeUnavailable
	}
	err = cnserrors.WrapWithContext(code,
		fmt.Sprintf("failed to load %s from configuration service", e), err,
		map[string]any{"endpoint": string(e)})
	switch e {
	case EndpointParameters:
		out.parameters = entry[schema.ParameterSet]{err: err}
	case EndpointInstallationTypes:
		out.installation = entry[[]string]{err: err}
	case EndpointUsabilityLevels:
		out.usability = entry[[]string]{err: err}
	case EndpointInstrumentTypes:
		out.instruments = entry[[]string]{err: err}
	}
	return &out
}

// Parameters returns the parameter configurations keyed by variable name.
func (s *Snapshot) Parameters() (schema.ParameterSet, error) {
	return s.parameters.get()
}

// InstallationTypes returns the allowed installation_type values.
func (s *Snapshot) InstallationTypes() ([]string, error) {
	return s.installation.get()
}

// UsabilityLevels returns the allowed data_usability tokens.
func (s *Snapshot) UsabilityLevels() ([]string, error) {
	return s.usability.get()
}

// InstrumentTypes returns the allowed instrument_types tokens.
func (s *Snapshot) InstrumentTypes() ([]string, error) {
	return s.instruments.get()
}

// Err returns the first endpoint error, in Endpoints order.
func (s *Snapshot) Err() error {
	for _, err := range []error{s.parameters.err, s.installation.err, s.usability.err, s.instruments.err} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Failed returns the endpoints that could not be loaded.
func (s *Snapshot) Failed() []Endpoint {
	var out []Endpoint
	errs := map[Endpoint]error{
		EndpointParameters:        s.parameters.err,
		EndpointInstallationTypes: s.installation.err,
		EndpointUsabilityLevels:   s.usability.err,
		EndpointInstrumentTypes:   s.instruments.err,
	}
	for _, e := range Endpoints() {
		if errs[e] != nil {
			out = append(out, e)
		}
	}
	return out
}
