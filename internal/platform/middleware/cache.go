// Copyright (c) 2026 slpixe. All rights reserved.

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/slpixe/py-book/internal/platform/cache"
	"github.com/slpixe/py-book/internal/platform/constants"
)

// cachedResponse is the stored form of one cacheable response.
type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder captures status and body so a response can be replayed later.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (recorder *bodyRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *bodyRecorder) Write(data []byte) (int, error) {
	recorder.body.Write(data)
	return recorder.ResponseWriter.Write(data)
}

// ResponseCache serves repeated GET requests from a TTL store.
//
// # Keying
//
// Entries are keyed by method, path, and raw query, so distinct endpoints
// and distinct parameter sets never collide. Only 200 responses to GET
// requests are stored. The X-Cache header reports HIT or MISS.
//
// The underlying data set is immutable for the process lifetime, so a TTL
// is only needed to bound memory, not for correctness.
func ResponseCache(store cache.Store, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			if request.Method != http.MethodGet {
				next.ServeHTTP(writer, request)
				return
			}

			key := constants.CachePrefixResponse + request.Method + " " + request.URL.Path + "?" + request.URL.RawQuery

			// 1. Replay a stored response when present
			if raw, found := store.Get(request.Context(), key); found {
				var stored cachedResponse
				if err := json.Unmarshal(raw, &stored); err == nil {
					writer.Header().Set("Content-Type", stored.ContentType)
					writer.Header().Set(constants.HeaderXCache, "HIT")
					writer.WriteHeader(http.StatusOK)
					_, _ = writer.Write(stored.Body)
					return
				}
				// A corrupt entry falls through to a normal miss.
			}

			// 2. Record the live response
			writer.Header().Set(constants.HeaderXCache, "MISS")
			recorder := &bodyRecorder{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(recorder, request)

			// 3. Store successful responses only
			if recorder.status != http.StatusOK {
				return
			}

			entry, err := json.Marshal(cachedResponse{
				ContentType: recorder.Header().Get("Content-Type"),
				Body:        recorder.body.Bytes(),
			})
			if err != nil {
				logger.Warn("cache_encode_failed", slog.Any("error", err))
				return
			}

			store.Set(request.Context(), key, entry, ttl)
		})
	}
}
