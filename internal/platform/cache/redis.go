// Copyright (c) 2026 slpixe. All rights reserved.

package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/slpixe/py-book/internal/platform/config"
)

// Opinionated default timeouts for Redis operations.
const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// Redis is the shared cache backend for multi-replica deployments.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis parses a Redis URL and returns a ready-to-use backend.
//
// Connectivity is validated immediately at startup so a misconfigured
// REDIS_URL fails fast instead of degrading every request.
func NewRedis(ctx context.Context, redisURL string, logger *slog.Logger) (*Redis, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis URL: %w", err)
	}

	// Pool configuration tuning
	options.PoolSize = 10
	options.MinIdleConns = 2
	options.MaxIdleConns = 5

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	store := &Redis{client: client, logger: logger}
	if err := store.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("response_cache_ready",
		slog.String("backend", store.Name()),
		slog.String("addr", options.Addr),
	)

	return store, nil
}

// Get implements [Store]. Backend errors are logged and reported as a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("cache_get_failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	return value, true
}

// Set implements [Store]. Backend errors are logged and dropped.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Warn("cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Ping implements [Store].
func (r *Redis) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := r.client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return nil
}

// Name implements [Store].
func (r *Redis) Name() string { return config.CacheTypeRedis }

// Close releases the underlying connection pool.
func (r *Redis) Close() error { return r.client.Close() }
