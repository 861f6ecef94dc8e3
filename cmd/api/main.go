// Copyright (c) 2026 slpixe. All rights reserved.

// Command api is the entry point for the Wikipedia Book API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load .env and environment configuration.
//  3. Load the NDJSON book dump into the immutable store.
//  4. Construct the response cache backend and rate limiter.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/slpixe/py-book/internal/api"
	"github.com/slpixe/py-book/internal/book"
	"github.com/slpixe/py-book/internal/platform/cache"
	"github.com/slpixe/py-book/internal/platform/config"
	"github.com/slpixe/py-book/internal/platform/constants"
	"github.com/slpixe/py-book/internal/platform/logging"
	"github.com/slpixe/py-book/internal/platform/middleware"
)

func main() {
	// ── 1. Bootstrap logger ───────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	bootLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(bootLog)

	bootLog.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(bootLog, err, "load configuration")

	// Rebuild the logger with the configured level and file rotation.
	log, logCloser := logging.New(cfg)
	defer func() { _ = logCloser.Close() }()
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("data_file", cfg.DataFile),
		slog.String("cache_type", cfg.CacheType),
	)

	// Application-lifetime context: cancels the cache janitor and the rate
	// limiter cleanup goroutine on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. Record store ───────────────────────────────────────────────────
	// Loaded once; immutable for the remainder of the process lifetime.
	records, err := book.Load(cfg.DataFile, log)
	must(log, err, "load book data")

	store := book.NewStore(records)

	// ── 4. Response cache & rate limiter ──────────────────────────────────
	responseCache, err := cache.New(appCtx, cfg, log)
	must(log, err, "initialize response cache")

	limiter := middleware.NewRateLimiter(appCtx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	// ── 5. Handlers ───────────────────────────────────────────────────────
	healthDeps := api.HealthDependencies{Records: store.Len}
	if responseCache != nil {
		healthDeps.CheckCache = func() error {
			return responseCache.Ping(context.Background())
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)
	swaggerSpec, swaggerUI := api.NewDocsHandlers()

	bookService := book.NewService(store, log, cfg.DefaultPageLimit)
	bookHandler := book.NewHandler(bookService)

	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		SwaggerSpec: swaggerSpec,
		SwaggerUI:   swaggerUI,
		Book:        bookHandler,
	}

	// ── 6. HTTP server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, limiter, responseCache, handlers)

	// ── 7. Graceful shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
