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

import "slices"

// DataType is the kind of dataset, stored in the data_type global attribute.
type DataType string

const (
	DataTypeHindcast            DataType = "Hindcast"
	DataTypeMeasurement         DataType = "Measurement"
	DataTypeSinglePointHindcast DataType = "SinglePointHindcast"
)

// DataTypeAttr is the global attribute holding the DataType.
const DataTypeAttr = "data_type"

// DataTypes returns every valid data type.
func DataTypes() []DataType {
	return []DataType{DataTypeHindcast, DataTypeMeasurement, DataTypeSinglePointHindcast}
}

// IsValid reports whether d is a known data type.
func (d DataType) IsValid() bool {
	return slices.Contains(DataTypes(), d)
}

// IsMeasurement reports whether d describes observational data.
func (d DataType) IsMeasurement() bool {
	return d == DataTypeMeasurement
}

var commonRequired = []string{
	"comments",
	"contractor",
	"data_type",
	"data_history",
	"final_reports",
	"project_name",
	"qc_provider",
}

var hindcastRequired = []string{
	"calibration",
	"delivery_date",
	"forcing_data",
	"memos",
	"modelling_software",
	"model_name",
	"nests",
	"setup",
	"spatial_resolution",
	"sst_source",
	"task_manager_external",
	"task_manager_internal",
	"time_resolution",
	"topography_source",
}

var measurementRequired = []string{
	"averaging_period",
	"data_usability",
	"instrument_types",
	"instrument_specifications",
	"installation_type",
	"location",
	"mooring_name",
	"source_file",
	"total_water_depth",
}

// HindcastRequired returns the global attributes a modeled dataset must have.
func HindcastRequired() []string {
	return slices.Concat(commonRequired, hindcastRequired)
}

// MeasurementRequired returns the global attributes an observational
// dataset must have.
func MeasurementRequired() []string {
	return slices.Concat(commonRequired, measurementRequired)
}

// RequiredGlobals returns the global attributes required for the given kind,
// including attributes only enforced at validation time.
func RequiredGlobals(measurement bool) []string {
	if measurement {
		return append(MeasurementRequired(), "country")
	}
	return HindcastRequired()
}

// ForbiddenGlobals returns the attributes required by the other kind of
// dataset that are not required by this kind.
func ForbiddenGlobals(measurement bool) []string {
	own, other := HindcastRequired(), MeasurementRequired()
	if measurement {
		own, other = other, own
	}
	var out []string
	for _, attr := range other {
		if !slices.Contains(own, attr) {
			out = append(out, attr)
		}
	}
	return out
}

// FinalReportExtensions lists the accepted file extensions for entries of
// the final_reports global attribute.
func FinalReportExtensions() []string {
	return []string{"docx", "pdf", "ppt", "pptx"}
}
