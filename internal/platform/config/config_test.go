// Copyright (c) 2026 slpixe. All rights reserved.

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slpixe/py-book/internal/platform/config"
)

/*
TestLoad_Defaults verifies every default without any environment set.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "data/found_books_filtered.ndjson", cfg.DataFile)
	assert.Equal(t, 100, cfg.DefaultPageLimit)
	assert.Equal(t, config.CacheTypeSimple, cfg.CacheType)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Nil(t, cfg.AllowedOrigins())
}

/*
TestLoad_Overrides maps environment variables onto the struct.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/tmp/books.ndjson")
	t.Setenv("DEFAULT_PAGE_LIMIT", "25")
	t.Setenv("CACHE_TYPE", "none")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("EXTRA_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/tmp/books.ndjson", cfg.DataFile)
	assert.Equal(t, 25, cfg.DefaultPageLimit)
	assert.Equal(t, config.CacheTypeNone, cfg.CacheType)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

/*
TestLoad_Validation rejects inconsistent cache settings.
*/
func TestLoad_Validation(t *testing.T) {
	t.Run("redis_requires_url", func(t *testing.T) {
		t.Setenv("CACHE_TYPE", "redis")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("unknown_cache_type", func(t *testing.T) {
		t.Setenv("CACHE_TYPE", "memcached")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("redis_with_url", func(t *testing.T) {
		t.Setenv("CACHE_TYPE", "redis")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, config.CacheTypeRedis, cfg.CacheType)
	})
}
