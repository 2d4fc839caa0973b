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
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

var (
	fileAttributesNode      = MustNode("file_attributes_validator", finding.SeverityError)
	requiredGlobalsNode     = MustNode("required_global_attributes_validator", finding.SeverityError)
	forbiddenGlobalsNode    = MustNode("blacklisted_global_attributes_validator", finding.SeverityError)
	dataTypeNode            = MustNode("data_type_validator", finding.SeverityError)
	installationTypeNode    = MustNode("installation_type_validator", finding.SeverityError)
	dataUsabilityNode       = MustNode("data_usability_validator", finding.SeverityError)
	instrumentTypesNode     = MustNode("instrument_types_validator", finding.SeverityError)
	classificationLevelNode = MustNode("classification_level_validator", finding.SeverityError)
	finalReportsNode        = MustNode("final_reports_validator", finding.SeverityError)
)

// Global attribute names checked against vocabularies.
const (
	attrInstallationType    = "installation_type"
	attrDataUsability       = "data_usability"
	attrInstrumentTypes     = "instrument_types"
	attrClassificationLevel = "classification_level"
	attrFinalReports        = "final_reports"
)

func (v *Validator) fileAttributes(ds *dataset.Dataset) finding.List {
	return fileAttributesNode.Run(v, func() (finding.List, error) {
		slog.Debug("launch file attributes validator")
		var out finding.List
		out = append(out, v.requiredGlobals(ds)...)
		out = append(out, v.forbiddenGlobals(ds)...)
		out = append(out, v.dataType(ds)...)
		out = append(out, v.installationType(ds)...)
		out = append(out, v.dataUsability(ds)...)
		out = append(out, v.instrumentTypes(ds)...)
		out = append(out, v.classificationLevel(ds)...)
		out = append(out, v.finalReports(ds)...)
		return out, nil
	})
}

func (v *Validator) requiredGlobals(ds *dataset.Dataset) finding.List {
	return requiredGlobalsNode.Run(v, func() (finding.List, error) {
		measurement, err := isMeasurement(ds)
		if err != nil {
			return nil, err
		}
		var out finding.List
		for _, attr := range schema.RequiredGlobals(measurement) {
			if !ds.Attrs.Has(attr) {
				out = append(out, finding.Newf(`File attribute "%s" does not exist on dataset`, attr))
			}
		}
		return out, nil
	})
}

// forbiddenGlobals rejects attributes that only the other kind of dataset
// requires.
func (v *Validator) forbiddenGlobals(ds *dataset.Dataset) finding.List {
	return forbiddenGlobalsNode.Run(v, func() (finding.List, error) {
		measurement, err := isMeasurement(ds)
		if err != nil {
			return nil, err
		}
		dataType, _ := ds.Attrs.String(schema.DataTypeAttr)
		var out finding.List
		for _, attr := range schema.ForbiddenGlobals(measurement) {
			if ds.Attrs.Has(attr) {
				out = append(out, finding.Newf(`Attribute "%s" should not exist on a %s`, attr, dataType))
			}
		}
		return out, nil
	})
}

func (v *Validator) dataType(ds *dataset.Dataset) finding.List {
	return dataTypeNode.Run(v, func() (finding.List, error) {
		dt, ok := ds.Attrs.String(schema.DataTypeAttr)
		if !ok || schema.DataType(dt).IsValid() {
			return nil, nil
		}
		return finding.List{finding.Newf(`Global attribute "data_type" must be %s. Found value: "%s"`,
			strings.Join(dataTypeNames(), " or "), dt)}, nil
	})
}

func dataTypeNames() []string {
	types := schema.DataTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func (v *Validator) installationType(ds *dataset.Dataset) finding.List {
	return installationTypeNode.Run(v, func() (finding.List, error) {
		valid, err := v.snapshot.InstallationTypes()
		if err != nil {
			slog.Warn("installation types unavailable", "error", err)
			return finding.Messages("Could not validate installation_types on global attributes"), nil
		}
		value, ok := ds.Attrs.String(attrInstallationType)
		if !ok || slices.Contains(valid, value) {
			return nil, nil
		}
		return finding.List{finding.Newf(`Installation type "%s" is not in the allowed list. Allowed values: %s`,
			value, bracket(valid))}, nil
	})
}

func (v *Validator) dataUsability(ds *dataset.Dataset) finding.List {
	return dataUsabilityNode.Run(v, func() (finding.List, error) {
		valid, err := v.snapshot.UsabilityLevels()
		if err != nil {
			slog.Warn("usability levels unavailable", "error", err)
			return finding.Messages("Could not validate data_usability on global attributes"), nil
		}
		return vocabularyTokens(ds, attrDataUsability, valid, "Data usability"), nil
	})
}

func (v *Validator) instrumentTypes(ds *dataset.Dataset) finding.List {
	return instrumentTypesNode.Run(v, func() (finding.List, error) {
		valid, err := v.snapshot.InstrumentTypes()
		if err != nil {
			slog.Warn("instrument types unavailable", "error", err)
			return finding.Messages("Could not validate instrument_types on global attributes"), nil
		}
		value, ok := ds.Attrs.String(attrInstrumentTypes)
		if !ok || strings.TrimSpace(value) == schema.NotApplicable {
			return nil, nil
		}
		known := make(map[string]struct{}, len(valid))
		for _, name := range valid {
			known[strings.ToUpper(name)] = struct{}{}
		}
		var out finding.List
		for _, tok := range strings.Split(value, ",") {
			tok = strings.TrimSpace(tok)
			if _, ok := known[strings.ToUpper(tok)]; !ok {
				out = append(out, finding.Newf(`Instrument type "%s" is not in the allowed list. Allowed values: %s`,
					tok, bracket(valid)))
			}
		}
		return out, nil
	})
}

// vocabularyTokens checks each comma-separated token of attr against valid,
// one finding per bad token.
func vocabularyTokens(ds *dataset.Dataset, attr string, valid []string, label string) finding.List {
	value, ok := ds.Attrs.String(attr)
	if !ok {
		return nil
	}
	var out finding.List
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if !slices.Contains(valid, tok) {
			out = append(out, finding.Newf(`%s "%s" is not in the allowed list. Allowed values: %s`, label, tok, bracket(valid)))
		}
	}
	return out
}

func (v *Validator) classificationLevel(ds *dataset.Dataset) finding.List {
	return classificationLevelNode.Run(v, func() (finding.List, error) {
		value, ok := ds.Attrs.String(attrClassificationLevel)
		if !ok || schema.ClassificationLevel(value).IsValid() {
			return nil, nil
		}
		return finding.List{finding.Newf(`Classification Level "%s" is not in the allowed list. Allowed values: %s`,
			value, bracket(schema.ClassificationLevels()))}, nil
	})
}

// finalReports requires final_reports to be a list of file names (or a
// comma-separated string of them, or NA) with accepted extensions.
func (v *Validator) finalReports(ds *dataset.Dataset) finding.List {
	return finalReportsNode.Run(v, func() (finding.List, error) {
		raw, ok := ds.Attrs.Get(attrFinalReports)
		if !ok {
			return nil, nil
		}
		reports, err := reportList(raw)
		if err != nil {
			return finding.Messages(`Global attribute "final_reports" is not comma-separated string or string list.`), nil
		}
		var out finding.List
		for _, r := range reports {
			ext := r[strings.LastIndex(r, ".")+1:]
			if !slices.Contains(schema.FinalReportExtensions(), ext) {
				out = append(out, finding.Newf("File extension for final_reports must be one of %s",
					bracket(schema.FinalReportExtensions())))
			}
		}
		return out, nil
	})
}

func reportList(raw any) ([]string, error) {
	if list, ok := dataset.StringList(raw); ok {
		return list, nil
	}
	var s string
	switch val := raw.(type) {
	case string:
		s = val
	case []byte:
		s = dataset.AttrString(val)
	default:
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidData, fmt.Sprintf("unsupported final_reports type %T", raw))
	}
	if s == schema.NotApplicable {
		return nil, nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}
