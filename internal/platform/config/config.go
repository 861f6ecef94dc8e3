// Copyright (c) 2026 slpixe. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (loader, cache, limiter) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Cache backend selectors for [Config.CacheType].
const (
	CacheTypeSimple = "simple"
	CacheTypeRedis  = "redis"
	CacheTypeNone   = "none"
)

// # Configuration Schema

// Config holds all runtime configuration for the book API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"PORT"        envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// DataFile is the path of the NDJSON book dump read once at startup.
	DataFile string `env:"DATA_FILE" envDefault:"data/found_books_filtered.ndjson"`

	// DefaultPageLimit is the per-page record count when the client sends none.
	DefaultPageLimit int `env:"DEFAULT_PAGE_LIMIT" envDefault:"100"`

	// Per-IP request rate (token bucket)
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// Response cache
	CacheType string        `env:"CACHE_TYPE" envDefault:"simple"`
	CacheTTL  time.Duration `env:"CACHE_TTL"  envDefault:"300s"`

	// RedisURL is required only when CacheType is "redis".
	RedisURL string `env:"REDIS_URL"`

	// LogFile enables rotating file logging next to stdout when set.
	LogFile string `env:"LOG_FILE"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	switch cfg.CacheType {
	case CacheTypeSimple, CacheTypeNone:
	case CacheTypeRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("config: CACHE_TYPE=redis requires REDIS_URL")
		}
	default:
		return nil, fmt.Errorf("config: unknown CACHE_TYPE %q", cfg.CacheType)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the comma-separated EXTRA_ORIGINS entries,
// trimmed, for the production CORS allow-list.
func (c *Config) AllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
