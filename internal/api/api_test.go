// Copyright (c) 2026 slpixe. All rights reserved.

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slpixe/py-book/internal/api"
	"github.com/slpixe/py-book/internal/book"
	"github.com/slpixe/py-book/internal/platform/cache"
	"github.com/slpixe/py-book/internal/platform/config"
	"github.com/slpixe/py-book/internal/platform/middleware"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:       "8080",
		Environment:      "development",
		DefaultPageLimit: 100,
		CacheType:        config.CacheTypeSimple,
		CacheTTL:         time.Minute,
		RateLimitRPS:     1000,
		RateLimitBurst:   1000,
	}
}

// newTestServer wires a full router around an in-memory store.
func newTestServer(t *testing.T, books []book.Book) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := testConfig()
	logger := discardLogger()

	store := book.NewStore(books)
	service := book.NewService(store, logger, cfg.DefaultPageLimit)

	responseCache := cache.NewMemory(ctx, logger)
	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCache: func() error { return responseCache.Ping(context.Background()) },
		Records:    store.Len,
	}, logger)
	swaggerSpec, swaggerUI := api.NewDocsHandlers()

	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		SwaggerSpec: swaggerSpec,
		SwaggerUI:   swaggerUI,
		Book:        book.NewHandler(service),
	}

	return api.NewServer(cfg, logger, limiter, responseCache, handlers).Handler()
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

/*
TestServer_Routes exercises every endpoint through the full middleware chain.
*/
func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, []book.Book{
		{Name: "Harry Potter", Author: "J.K. Rowling"},
		{Name: "The Hobbit", Author: "J.R.R. Tolkien"},
	})

	t.Run("health", func(t *testing.T) {
		recorder := get(t, handler, "/health")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"healthy"`)
	})

	t.Run("ready", func(t *testing.T) {
		recorder := get(t, handler, "/ready")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"records":2`)
	})

	t.Run("swagger_json", func(t *testing.T) {
		recorder := get(t, handler, "/swagger.json")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &doc))
		assert.Equal(t, "3.0.0", doc["openapi"])
	})

	t.Run("docs_page", func(t *testing.T) {
		recorder := get(t, handler, "/docs")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, recorder.Body.String(), "/swagger.json")
	})

	t.Run("all_cached_on_repeat", func(t *testing.T) {
		first := get(t, handler, "/all?limit=1")
		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

		second := get(t, handler, "/all?limit=1")
		assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("search_through_chain", func(t *testing.T) {
		recorder := get(t, handler, "/search?author=tolkien")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "The Hobbit")
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		assert.Equal(t, "nosniff", recorder.Header().Get("X-Content-Type-Options"))
	})

	t.Run("unknown_route_envelope", func(t *testing.T) {
		recorder := get(t, handler, "/nope")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "NOT_FOUND")
	})
}

/*
TestHealth_Degraded reports 503 with the standard error envelope when a
dependency check fails, naming the failed check in the details.
*/
func TestHealth_Degraded(t *testing.T) {
	_, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCache: func() error { return errors.New("connection refused") },
		Records:    func() int { return 0 },
	}, discardLogger())

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SERVICE_UNAVAILABLE")
	assert.Contains(t, recorder.Body.String(), `"field":"cache"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}
