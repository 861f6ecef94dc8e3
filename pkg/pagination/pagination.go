// Copyright (c) 2026 slpixe. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how an in-memory collection is sliced into one page, and how the resulting
// metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is the ceiling of total/limit; a zero total yields zero pages.
func NewMeta(page, limit, total int) Meta {
	// total/limit with a remainder bump instead of (total+limit-1)/limit:
	// the additive form overflows for limits near the int ceiling.
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = total / limit
		if total%limit != 0 {
			totalPages++
		}
	}

	return Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Fallback
//
// Absent, non-integer, or non-positive values silently fall back to
// [DefaultPage] and defaultLimit. The same policy applies on every
// endpoint; pagination input never fails a request.
func FromRequest(r *http.Request, defaultLimit int) Params {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}

	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", defaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 {
		limit = defaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// Page slices one page out of items and computes its metadata.
//
// # Bounds
//
// The page covers [(page-1)*limit, (page-1)*limit+limit), clamped to
// [0, len(items)]. A page beyond the available range yields an empty
// slice while Meta.Total still reports the full count. The returned
// slice is never nil so it always encodes as a JSON array.
//
// The bounds are computed with division-only guards: the products above
// can exceed the int range for large but valid parameters, and arbitrary
// query input must never turn into a slice panic.
func Page[T any](items []T, p Params) ([]T, Meta) {
	total := len(items)
	meta := NewMeta(p.Page, p.Limit, total)

	// offset <= total/limit guarantees offset*limit <= total, so the
	// multiplication cannot wrap. Anything past that is beyond range.
	start := total
	if p.Limit > 0 {
		if offset := p.Page - 1; offset >= 0 && offset <= total/p.Limit {
			start = offset * p.Limit
		}
	}

	end := total
	if p.Limit < total-start {
		end = start + p.Limit
	}

	page := items[start:end]
	if len(page) == 0 {
		page = []T{}
	}

	return page, meta
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
