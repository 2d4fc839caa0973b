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

package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"

	cnserrors "github.com/NVIDIA/metocean-validator/pkg/errors"
)

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()
	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("expected user agent %q, got %q", HttpReaderUserAgent, r.UserAgent)
	}
	if r.Client == nil {
		t.Fatal("expected default client")
	}
	if r.Client.Timeout != HttpReaderDefaultTimeout {
		t.Errorf("expected timeout %v, got %v", HttpReaderDefaultTimeout, r.Client.Timeout)
	}
	if r.Limiter != nil {
		t.Error("expected no limiter by default")
	}
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	custom := &http.Client{}
	limiter := rate.NewLimiter(5, 1)
	r := NewHttpReader(
		WithUserAgent("test-agent"),
		WithClient(custom),
		WithTotalTimeout(3*time.Second),
		WithRateLimiter(limiter),
	)
	if r.Client != custom {
		t.Error("expected custom client to be used")
	}
	if custom.Timeout != 3*time.Second {
		t.Errorf("expected timeout applied to custom client, got %v", custom.Timeout)
	}
	if r.UserAgent != "test-agent" {
		t.Errorf("unexpected user agent %q", r.UserAgent)
	}
	if r.Limiter != limiter {
		t.Error("expected limiter to be set")
	}
}

func TestHttpReader_Read(t *testing.T) {
	var gotAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAgent = req.Header.Get("User-Agent")
		gotAccept = req.Header.Get("Accept")
		_, _ = w.Write([]byte(`[{"level":"Good"}]`))
	}))
	defer server.Close()

	data, err := NewHttpReader().Read(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `[{"level":"Good"}]` {
		t.Errorf("unexpected body %q", data)
	}
	if gotAgent != HttpReaderUserAgent {
		t.Errorf("expected user agent %q, got %q", HttpReaderUserAgent, gotAgent)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected json accept header, got %q", gotAccept)
	}
}

func TestHttpReader_Read_ErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   cnserrors.ErrorCode
	}{
		{"not found", http.StatusNotFound, cnserrors.ErrCodeUnavailable},
		{"server error", http.StatusInternalServerError, cnserrors.ErrCodeUnavailable},
		{"throttled", http.StatusTooManyRequests, cnserrors.ErrCodeRateLimitExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := NewHttpReader().Read(server.URL)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := cnserrors.CodeOf(err); got != tt.want {
				t.Errorf("expected code %s, got %s (%v)", tt.want, got, err)
			}
		})
	}
}

func TestHttpReader_Read_EmptyURL(t *testing.T) {
	_, err := NewHttpReader().Read("")
	if cnserrors.CodeOf(err) != cnserrors.ErrCodeInvalidRequest {
		t.Errorf("expected invalid request, got %v", err)
	}
}

func TestHttpReader_Read_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	_, err := NewHttpReader(WithTotalTimeout(50 * time.Millisecond)).Read(server.URL)
	if cnserrors.CodeOf(err) != cnserrors.ErrCodeTimeout {
		t.Errorf("expected timeout, got %v", err)
	}
}

func TestHttpReader_ReadWithContext_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHttpReader().ReadWithContext(ctx, server.URL); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestHttpReader_RateLimiterBlocksUntilDeadline(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	// one token, refilled once a minute
	r := NewHttpReader(WithRateLimiter(rate.NewLimiter(rate.Every(time.Minute), 1)))
	if _, err := r.Read(server.URL); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.ReadWithContext(ctx, server.URL)
	if cnserrors.CodeOf(err) != cnserrors.ErrCodeTimeout {
		t.Errorf("expected limiter timeout, got %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 request to reach the server, got %d", hits.Load())
	}
}
