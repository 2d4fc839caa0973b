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

package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/metocean-validator/pkg/defaults"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/serializer"
)

// Tokens recognized after the dataset path.
const (
	TokenCheckMinMaxFull = "--check-min-max-full"
	TokenSkipMinMaxCheck = "--skip-random-min-max-check"
	TokenSkipWarnings    = "--skip-warnings"
	TokenBatchSize       = "--batch-size"
	TokenParametersURL   = "--set-url-to-parameters"
	TokenServiceURL      = "--config-url"
)

// Settings are the options of one validation run.
type Settings struct {
	// CheckMinMaxFull replaces the sampled min/max check with a full scan.
	CheckMinMaxFull bool `json:"checkMinMaxFull" yaml:"checkMinMaxFull"`

	// SkipMinMaxCheck disables the sampled min/max check.
	SkipMinMaxCheck bool `json:"skipMinMaxCheck" yaml:"skipMinMaxCheck"`

	// SkipWarnings makes every WARNING check return nothing.
	SkipWarnings bool `json:"skipWarnings" yaml:"skipWarnings"`

	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// ServiceURL is the configuration service base URL.
	ServiceURL string `json:"serviceURL" yaml:"serviceURL"`

	// ParametersURL overrides the parameters endpoint when set.
	ParametersURL string `json:"parametersURL,omitempty" yaml:"parametersURL,omitempty"`

	SigDigIterations int `json:"sigDigIterations" yaml:"sigDigIterations"`

	// Seed drives the samplers. Zero picks a random seed at run start.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// Default returns the settings used when nothing is overridden.
func Default() Settings {
	return Settings{
		BatchSize:        defaults.BatchSize,
		ServiceURL:       defaults.ConfigServiceURL,
		SigDigIterations: defaults.SigDigIterations,
		RequestTimeout:   defaults.HTTPClientTimeout,
	}
}

// Load reads a settings file (YAML or JSON, by extension; local path or
// URL) over the defaults. Fields absent from the file keep their default.
func Load(path string) (Settings, error) {
	s := Default()
	loaded, err := serializer.FromFile[Settings](path, serializer.WithStrict())
	if err != nil {
		return s, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("failed to load settings from %s", path), err)
	}
	s.merge(*loaded)
	return s, s.Validate()
}

// merge copies the non-zero fields of o into s.
func (s *Settings) merge(o Settings) {
	s.CheckMinMaxFull = s.CheckMinMaxFull || o.CheckMinMaxFull
	s.SkipMinMaxCheck = s.SkipMinMaxCheck || o.SkipMinMaxCheck
	s.SkipWarnings = s.SkipWarnings || o.SkipWarnings
	if o.BatchSize != 0 {
		s.BatchSize = o.BatchSize
	}
	if o.ServiceURL != "" {
		s.ServiceURL = o.ServiceURL
	}
	if o.ParametersURL != "" {
		s.ParametersURL = o.ParametersURL
	}
	if o.SigDigIterations != 0 {
		s.SigDigIterations = o.SigDigIterations
	}
	if o.Seed != 0 {
		s.Seed = o.Seed
	}
	if o.RequestTimeout != 0 {
		s.RequestTimeout = o.RequestTimeout
	}
}

// Apply applies run-option tokens to s and returns the tokens it did not
// recognize, in order. A recognized token with a malformed value is an error.
func (s *Settings) Apply(tokens []string) ([]string, error) {
	var rest []string
	for i := 0; i < len(tokens); i++ {
		tok := strings.TrimSpace(tokens[i])
		name, value, hasValue := splitToken(tok)

		switch name {
		case TokenCheckMinMaxFull:
			s.CheckMinMaxFull = true
		case TokenSkipMinMaxCheck:
			s.SkipMinMaxCheck = true
		case TokenSkipWarnings:
			s.SkipWarnings = true
		case TokenBatchSize, TokenParametersURL, TokenServiceURL:
			if !hasValue && i+1 < len(tokens) && strings.HasPrefix(strings.TrimSpace(tokens[i+1]), "=") {
				// "--flag =value" split by the shell into two tokens
				i++
				value, hasValue = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokens[i]), "=")), true
			}
			if !hasValue || value == "" {
				return rest, cnserrors.New(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("%s requires a value", name))
			}
			if err := s.set(name, value); err != nil {
				return rest, err
			}
		default:
			rest = append(rest, tokens[i])
		}
	}
	return rest, s.Validate()
}

func (s *Settings) set(name, value string) error {
	switch name {
	case TokenBatchSize:
		n, err := strconv.Atoi(value)
		if err != nil {
			return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("invalid %s value %q", name, value), err)
		}
		s.BatchSize = n
	case TokenParametersURL:
		s.ParametersURL = value
	case TokenServiceURL:
		s.ServiceURL = strings.TrimRight(value, "/")
	}
	return nil
}

// splitToken splits "--name=value" and the legacy "--name =value".
func splitToken(tok string) (name, value string, ok bool) {
	name, value, ok = strings.Cut(tok, "=")
	if !ok {
		return tok, "", false
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), true
}

// Validate rejects settings the runner cannot use.
func (s Settings) Validate() error {
	if s.BatchSize < 1 {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("batch size must be at least 1, got %d", s.BatchSize))
	}
	if s.SigDigIterations < 1 {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("sig-dig iterations must be at least 1, got %d", s.SigDigIterations))
	}
	if s.ServiceURL == "" && s.ParametersURL == "" {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "configuration service URL is empty")
	}
	if s.RequestTimeout < 0 {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "request timeout must not be negative")
	}
	return nil
}

// ParametersEndpoint returns the URL the parameter configuration is read from.
func (s Settings) ParametersEndpoint() string {
	if s.ParametersURL != "" {
		return s.ParametersURL
	}
	return strings.TrimRight(s.ServiceURL, "/") + "/parameters"
}

// RangeMode is how the min/max check runs.
type RangeMode int

const (
	RangeSampled RangeMode = iota
	RangeFull
	RangeSkip
)

// RangeMode resolves the min/max flags. A full scan wins over skipping.
func (s Settings) RangeMode() RangeMode {
	switch {
	case s.CheckMinMaxFull:
		return RangeFull
	case s.SkipMinMaxCheck:
		return RangeSkip
	default:
		return RangeSampled
	}
}
