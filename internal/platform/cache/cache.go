// Copyright (c) 2026 slpixe. All rights reserved.

/*
Package cache provides the TTL byte-store behind the response cache middleware.

Two backends are available, selected by the CACHE_TYPE configuration value:

  - "simple": an in-process map with a janitor goroutine (default).
  - "redis": a shared Redis instance via go-redis, for multi-replica deployments.
  - "none": caching disabled entirely.

Both backends are safe for concurrent use. Cache misses and backend failures
are never surfaced to clients; a failed Get is simply a miss.
*/
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/slpixe/py-book/internal/platform/config"
)

// Store is the minimal contract the response cache middleware needs.
type Store interface {
	// Get returns the cached value for key and whether it was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl. Failures are logged by the
	// backend, never returned.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Ping verifies the backend is reachable. Used by the readiness probe.
	Ping(ctx context.Context) error

	// Name identifies the backend in logs and readiness checks.
	Name() string
}

// New selects and constructs the configured cache backend.
//
// It returns (nil, nil) when caching is disabled so the caller can skip
// wiring the middleware altogether.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.CacheType {
	case config.CacheTypeNone:
		logger.Info("response_cache_disabled")
		return nil, nil
	case config.CacheTypeRedis:
		return NewRedis(ctx, cfg.RedisURL, logger)
	default:
		return NewMemory(ctx, logger), nil
	}
}
