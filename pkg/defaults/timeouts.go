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

package defaults

import "time"

const (
	// ConfigFetchTimeout bounds fetching the full configuration snapshot
	// (all four endpoints) at the start of a run.
	ConfigFetchTimeout = 20 * time.Second

	// ConfigRequestRate is the client-side request rate (per second) towards
	// the configuration service.
	ConfigRequestRate = 10

	// ConfigRequestBurst is the burst allowance for ConfigRequestRate.
	ConfigRequestBurst = 4
)

const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 10 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

const (
	// MetricsServerShutdownTimeout is the maximum duration for stopping the
	// optional metrics endpoint.
	MetricsServerShutdownTimeout = 5 * time.Second

	// MetricsServerReadHeaderTimeout prevents slow header attacks on the
	// metrics endpoint.
	MetricsServerReadHeaderTimeout = 5 * time.Second
)
