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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/metocean-validator/pkg/configsvc"
	"github.com/NVIDIA/metocean-validator/pkg/dataset"
	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
	"github.com/NVIDIA/metocean-validator/pkg/schema"
)

func measurementAttrs() dataset.Attributes {
	attrs := dataset.Attributes{}
	for _, name := range schema.RequiredGlobals(true) {
		attrs[name] = "x"
	}
	attrs[schema.DataTypeAttr] = string(schema.DataTypeMeasurement)
	attrs["final_reports"] = []string{"report.pdf", "appendix.docx"}
	attrs["installation_type"] = "Buoy"
	attrs["data_usability"] = "Good, Questionable"
	attrs["instrument_types"] = "Lidar"
	attrs["classification_level"] = "Open"
	return attrs
}

func attrDataset(attrs dataset.Attributes) *dataset.Dataset {
	return dataset.New(nil, attrs)
}

func TestFileAttributes_Clean(t *testing.T) {
	v := testValidator()
	assert.Empty(t, v.fileAttributes(attrDataset(hindcastAttrs())))
	assert.Empty(t, v.fileAttributes(attrDataset(measurementAttrs())))
}

func TestRequiredGlobals(t *testing.T) {
	attrs := hindcastAttrs()
	delete(attrs, "memos")
	delete(attrs, "contractor")

	got := testValidator().requiredGlobals(attrDataset(attrs))
	assert.ElementsMatch(t, []string{
		`File attribute "contractor" does not exist on dataset`,
		`File attribute "memos" does not exist on dataset`,
	}, messages(got))
	require.NotEmpty(t, got)
	assert.Equal(t, []string{"required_global_attributes"}, got[0].Path)
}

func TestRequiredGlobals_MeasurementNeedsCountry(t *testing.T) {
	attrs := measurementAttrs()
	delete(attrs, "country")

	got := testValidator().requiredGlobals(attrDataset(attrs))
	assert.Equal(t, []string{`File attribute "country" does not exist on dataset`}, messages(got))
}

func TestRequiredGlobals_MissingDataType(t *testing.T) {
	attrs := hindcastAttrs()
	delete(attrs, schema.DataTypeAttr)

	got := testValidator().requiredGlobals(attrDataset(attrs))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, exceptionPrefix)
}

func TestForbiddenGlobals(t *testing.T) {
	attrs := hindcastAttrs()
	attrs["mooring_name"] = "M1"

	got := testValidator().forbiddenGlobals(attrDataset(attrs))
	assert.Equal(t, []string{
		`blacklisted_global_attributes:ERROR:Attribute "mooring_name" should not exist on a Hindcast`,
	}, got.Strings())

	attrs = measurementAttrs()
	attrs["nests"] = "2"
	got = testValidator().forbiddenGlobals(attrDataset(attrs))
	assert.Equal(t, []string{`Attribute "nests" should not exist on a Measurement`}, messages(got))
}

func TestDataType(t *testing.T) {
	attrs := hindcastAttrs()
	attrs[schema.DataTypeAttr] = "Forecast"

	got := testValidator().dataType(attrDataset(attrs))
	assert.Equal(t, []string{
		`Global attribute "data_type" must be Hindcast or Measurement or SinglePointHindcast. Found value: "Forecast"`,
	}, messages(got))

	delete(attrs, schema.DataTypeAttr)
	assert.Empty(t, testValidator().dataType(attrDataset(attrs)))
}

func TestVocabularies(t *testing.T) {
	attrs := measurementAttrs()
	attrs["installation_type"] = "Ship"
	attrs["data_usability"] = "Good,Bad, Ugly"
	attrs["instrument_types"] = "Lidar, Sonar"
	attrs["classification_level"] = "Secret"

	v := testValidator()
	ds := attrDataset(attrs)
	assert.Equal(t, []string{
		`Installation type "Ship" is not in the allowed list. Allowed values: [Buoy, Platform]`,
	}, messages(v.installationType(ds)))
	assert.Equal(t, []string{
		`Data usability "Bad" is not in the allowed list. Allowed values: [Good, Questionable]`,
		`Data usability "Ugly" is not in the allowed list. Allowed values: [Good, Questionable]`,
	}, messages(v.dataUsability(ds)))
	assert.Equal(t, []string{
		`Instrument type "Sonar" is not in the allowed list. Allowed values: [Lidar, Cup anemometer]`,
	}, messages(v.instrumentTypes(ds)))
	assert.Equal(t, []string{
		`Classification Level "Secret" is not in the allowed list. Allowed values: [Open, Internal, Restricted]`,
	}, messages(v.classificationLevel(ds)))
}

func TestInstrumentTypes(t *testing.T) {
	const allowed = "Allowed values: [Lidar, Cup anemometer]"
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "exact", value: "Lidar"},
		{name: "not applicable", value: "NA"},
		{name: "lower case", value: "lidar"},
		{name: "mixed case list", value: "LIDAR, cup Anemometer"},
		{name: "unknown token", value: "lidar, Sonar", want: []string{`Instrument type "Sonar" is not in the allowed list. ` + allowed}},
		{name: "na inside list", value: "Lidar, NA", want: []string{`Instrument type "NA" is not in the allowed list. ` + allowed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := measurementAttrs()
			attrs["instrument_types"] = tt.value
			got := testValidator().instrumentTypes(attrDataset(attrs))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, messages(got))
		})
	}
}

func TestVocabularies_Unavailable(t *testing.T) {
	snap := configsvc.Unavailable(cnserrors.New(cnserrors.ErrCodeUnavailable, "connection refused"))
	v := testValidator(WithSnapshot(snap))
	ds := attrDataset(measurementAttrs())

	assert.Equal(t, []string{
		"installation_type:ERROR:Could not validate installation_types on global attributes",
	}, v.installationType(ds).Strings())
	assert.Equal(t, []string{"Could not validate data_usability on global attributes"}, messages(v.dataUsability(ds)))
	assert.Equal(t, []string{"Could not validate instrument_types on global attributes"}, messages(v.instrumentTypes(ds)))
}

func TestFinalReports(t *testing.T) {
	const extMsg = "File extension for final_reports must be one of [docx, pdf, ppt, pptx]"
	const typeMsg = `Global attribute "final_reports" is not comma-separated string or string list.`

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{name: "single pdf", value: "report.pdf"},
		{name: "list", value: []string{"report.pdf"}},
		{name: "not applicable", value: "NA"},
		{name: "comma separated", value: "a.pdf,b.pptx"},
		{name: "bytes", value: []byte("a.docx\x00")},
		{name: "bad extension", value: "report.xyz", want: []string{extMsg}},
		{name: "bad entries in list", value: []string{"a.txt", "b.pdf", "c"}, want: []string{extMsg, extMsg}},
		{name: "wrong type", value: 42, want: []string{typeMsg}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := hindcastAttrs()
			attrs["final_reports"] = tt.value
			got := testValidator().finalReports(attrDataset(attrs))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, messages(got))
		})
	}
}

func TestFinalReports_Missing(t *testing.T) {
	attrs := hindcastAttrs()
	delete(attrs, "final_reports")
	assert.Empty(t, testValidator().finalReports(attrDataset(attrs)))
}
