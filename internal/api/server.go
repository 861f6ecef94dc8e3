// Copyright (c) 2026 slpixe. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/slpixe/py-book/internal/book"
	"github.com/slpixe/py-book/internal/platform/apperr"
	"github.com/slpixe/py-book/internal/platform/cache"
	"github.com/slpixe/py-book/internal/platform/config"
	"github.com/slpixe/py-book/internal/platform/constants"
	"github.com/slpixe/py-book/internal/platform/middleware"
	"github.com/slpixe/py-book/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// SwaggerSpec serves the OpenAPI document at /swagger.json.
	SwaggerSpec http.HandlerFunc

	// SwaggerUI serves the interactive documentation page at /docs.
	SwaggerUI http.HandlerFunc

	// Book serves the catalog endpoints (/all, /search).
	Book *book.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all routes.
//
// responseCache may be nil (CACHE_TYPE=none), in which case /all is served
// uncached.
func NewServer(cfg *config.Config, log *slog.Logger, limiter *middleware.RateLimiter, responseCache cache.Store, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Limit())
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.SecurityHeaders())
	r.Use(chimw.CleanPath)

	// Unmatched routes share the standard error envelope.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.MethodNotAllowed())
	})

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # API Documentation
	r.Get("/swagger.json", h.SwaggerSpec)
	r.Get("/docs", h.SwaggerUI)

	// # Catalog API
	// /all gets the response cache; /search stays uncached. Routes are
	// registered directly on the root router so unmatched paths still hit
	// the custom NotFound envelope above.
	var listMiddleware []func(http.Handler) http.Handler
	if responseCache != nil {
		listMiddleware = append(listMiddleware, middleware.ResponseCache(responseCache, cfg.CacheTTL, log))
	}
	r.With(listMiddleware...).Get("/all", h.Book.ListBooks)
	r.Get("/search", h.Book.SearchBooks)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the composed router, mainly for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
