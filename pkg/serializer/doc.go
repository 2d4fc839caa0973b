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

// Package serializer moves structured documents in and out of the process.
//
// # Reading
//
// Reader decodes JSON (github.com/goccy/go-json) or YAML (gopkg.in/yaml.v3)
// from any io.Reader, a local file, or an HTTP(S) URL. FromFile is the
// one-call form used for settings files:
//
//	s, err := serializer.FromFile[settings.Settings]("metval.yaml")
//
// # HTTP
//
// HttpReader fetches documents with pooled connections, bounded timeouts and
// an optional client-side rate limiter. Failures come back as structured
// errors (TIMEOUT, RATE_LIMIT_EXCEEDED, SERVICE_UNAVAILABLE) so callers can
// classify them with errors.CodeOf:
//
//	r := serializer.NewHttpReader(
//	    serializer.WithTotalTimeout(5*time.Second),
//	    serializer.WithRateLimiter(rate.NewLimiter(10, 4)),
//	)
//	body, err := r.ReadWithContext(ctx, url)
//
// # Writing
//
// Writer encodes a value as JSON, YAML, or a table. Values implementing
// TableWriter render their own table; anything else is flattened into
// sorted FIELD/VALUE rows:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "")
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
package serializer
