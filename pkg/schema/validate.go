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

package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
)

// recordValidate checks struct tags on configuration records.
var recordValidate = validator.New(validator.WithRequiredStructEnabled())

// ValidateParameters checks every parameter record, requires unique keys,
// and requires each record's dims to be an acceptable layout for its key.
func ValidateParameters(params []ParameterConfig) error {
	if err := validateRecords("parameters", params, func(p ParameterConfig) string { return p.Key }); err != nil {
		return err
	}
	for _, p := range params {
		if !IsAcceptableDims(p.Key, p.Dims) {
			return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("unacceptable dims list %v for key %s", p.Dims, p.Key),
				map[string]any{"accepted": AcceptableDims(p.Key)})
		}
	}
	return nil
}

// ValidateInstallationTypes checks the installation-type vocabulary.
func ValidateInstallationTypes(types []InstallationType) error {
	return validateRecords("installation-types", types, func(t InstallationType) string { return t.InstallationType })
}

// ValidateUsabilityLevels checks the data-usability vocabulary.
func ValidateUsabilityLevels(levels []UsabilityLevel) error {
	return validateRecords("data-usability", levels, func(l UsabilityLevel) string { return l.Level })
}

// ValidateInstrumentTypes checks the instrument-type vocabulary.
func ValidateInstrumentTypes(types []InstrumentType) error {
	return validateRecords("instrument-types", types, func(t InstrumentType) string { return t.InstrumentType })
}

func validateRecords[T any](kind string, records []T, key func(T) string) error {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if err := recordValidate.Struct(r); err != nil {
			return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("invalid %s record at index %d", kind, i), err,
				map[string]any{"kind": kind, "index": i})
		}
		k := key(r)
		if _, dup := seen[k]; dup {
			return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidData,
				fmt.Sprintf("duplicate %s entry %q", kind, k),
				map[string]any{"kind": kind, "key": k})
		}
		seen[k] = struct{}{}
	}
	return nil
}
