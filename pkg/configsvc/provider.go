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

package configsvc

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Provider supplies the configuration snapshot for a validation run.
type Provider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Fetcher reads a fresh snapshot. *Client implements it.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (*Snapshot, error)
}

// CachedProvider fetches on first use and then returns the same snapshot for
// the life of the process. Concurrent first calls share one fetch. A
// snapshot with failed endpoints is returned but not cached, so the next
// run tries again.
type CachedProvider struct {
	fetcher Fetcher
	group   singleflight.Group

	mu   sync.RWMutex
	snap *Snapshot
}

// NewCachedProvider wraps f with a process-lifetime cache.
func NewCachedProvider(f Fetcher) *CachedProvider {
	return &CachedProvider{fetcher: f}
}

// Snapshot implements Provider.
func (p *CachedProvider) Snapshot(ctx context.Context) (*Snapshot, error) {
	p.mu.RLock()
	snap := p.snap
	p.mu.RUnlock()
	if snap != nil {
		configCacheHits.Inc()
		return snap, nil
	}

	v, err, shared := p.group.Do("snapshot", func() (any, error) {
		configCacheMisses.Inc()
		s, err := p.fetcher.FetchSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		if s.Err() == nil {
			p.mu.Lock()
			p.snap = s
			p.mu.Unlock()
		} else {
			slog.Warn("configuration snapshot incomplete, not caching", "failed", s.Failed())
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("configuration snapshot loaded", "shared", shared)
	return v.(*Snapshot), nil
}

// StaticProvider always returns the same snapshot.
type StaticProvider struct {
	Snap *Snapshot
}

// Snapshot implements Provider.
func (p StaticProvider) Snapshot(context.Context) (*Snapshot, error) {
	return p.Snap, nil
}
