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

// Package configsvc reads the parameter configuration and controlled
// vocabularies from the configuration service.
//
// The service exposes four read-only endpoints under one base URL:
//
//	GET {base}/parameters            []schema.ParameterConfig
//	GET {base}/installation-types    []schema.InstallationType
//	GET {base}/data-usability        []schema.UsabilityLevel
//	GET {base}/instrument-types      []schema.InstrumentType
//
// Client.FetchSnapshot reads all four concurrently and returns a Snapshot.
// A failing endpoint does not fail the snapshot; its error is kept and
// returned to whichever check asks for that endpoint's data, so a broken
// vocabulary only affects the checks that need it.
//
// CachedProvider fetches the snapshot once per process and hands the same
// value to every batch of every run, so all checks of a run see one
// consistent configuration:
//
//	provider := configsvc.NewCachedProvider(configsvc.NewClient(s))
//	snap, err := provider.Snapshot(ctx)
//	params, err := snap.Parameters()
package configsvc
