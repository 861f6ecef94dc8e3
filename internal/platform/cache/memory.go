// Copyright (c) 2026 slpixe. All rights reserved.

package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/slpixe/py-book/internal/platform/config"
)

// janitorInterval is how often expired entries are swept from memory.
const janitorInterval = 1 * time.Minute

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is the in-process cache backend.
//
// Entries expire lazily on Get and eagerly via a background janitor that
// stops when the application context is cancelled.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory creates the in-process backend and starts its janitor.
func NewMemory(ctx context.Context, logger *slog.Logger) *Memory {
	store := &Memory{entries: make(map[string]memoryEntry)}

	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				store.sweep(time.Now())
			case <-ctx.Done():
				// Stop the goroutine when the application shuts down.
				return
			}
		}
	}()

	logger.Info("response_cache_ready", slog.String("backend", store.Name()))

	return store
}

// Get implements [Store].
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, found := m.entries[key]
	m.mu.RUnlock()

	if !found || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Set implements [Store].
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
}

// Ping implements [Store]. The in-process backend is always reachable.
func (m *Memory) Ping(context.Context) error { return nil }

// Name implements [Store]. It matches the CACHE_TYPE value that selects
// this backend, so logs and readiness output line up with configuration.
func (m *Memory) Name() string { return config.CacheTypeSimple }

// sweep removes entries that expired before now.
func (m *Memory) sweep(now time.Time) {
	m.mu.Lock()
	for key, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
}
