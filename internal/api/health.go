// Copyright (c) 2026 slpixe. All rights reserved.

package api

import (
	"log/slog"
	"net/http"

	"github.com/slpixe/py-book/internal/platform/apperr"
	"github.com/slpixe/py-book/internal/platform/constants"
	"github.com/slpixe/py-book/internal/platform/respond"
)

// HealthDependencies holds the injectable checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckCache pings the response cache backend. Nil when caching is disabled.
	CheckCache func() error

	// Records reports how many book records are loaded.
	Records func() int
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{
		constants.FieldStatus:  "healthy",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness handles GET /ready (readiness probe).
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	results := make([]checkResult, 0, 1)
	isSystemReady := true

	// Check the response cache backend
	if handler.dependencies.CheckCache != nil {
		result := checkResult{Name: "cache", IsOK: true}
		if err := handler.dependencies.CheckCache(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", "cache"), slog.Any("error", err))
		}
		results = append(results, result)
	}

	if !isSystemReady {
		appError := apperr.ServiceUnavailable("Service degraded")
		for _, result := range results {
			if !result.IsOK {
				appError.Details = append(appError.Details, apperr.FieldError{
					Field:   result.Name,
					Message: result.Error,
				})
			}
		}
		respond.Error(writer, request, appError)
		return
	}

	records := 0
	if handler.dependencies.Records != nil {
		records = handler.dependencies.Records()
	}

	respond.JSON(writer, http.StatusOK, map[string]any{
		constants.FieldStatus: "ready",
		constants.FieldChecks: results,
		"records":             records,
	})
}
