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


package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindValidationReport, true},
		{Kind("Dataset"), false},
		{Kind(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	h := New(KindValidationReport, WithVersion("v1.2.3"), WithMetadata(MetaRunID, "abc"), WithMetadata(MetaPath, ""))

	assert.Equal(t, KindValidationReport, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "v1.2.3", h.Get(MetaVersion))
	assert.Equal(t, "abc", h.Get(MetaRunID))
	assert.NotContains(t, h.Metadata, MetaPath)

	ts, err := time.Parse(time.RFC3339, h.Get(MetaTimestamp))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestGet_Nil(t *testing.T) {
	var h *Header
	assert.Empty(t, h.Get(MetaRunID))
}

func TestHeader_YAML(t *testing.T) {
	h := New(KindValidationReport)
	data, err := yaml.Marshal(h)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: ValidationReport")
	assert.Contains(t, string(data), "apiVersion: "+APIVersion)

	var got Header
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, *h, got)
}
