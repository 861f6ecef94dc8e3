// Copyright (c) 2026 slpixe. All rights reserved.

// Package fuzzy implements case-insensitive substring containment.
//
// # Overview
//
// "Fuzzy" here means Unicode case-folded substring matching, not
// edit-distance or phonetic matching. It is the single matching
// primitive used by the book search engine, so that every filterable
// field shares identical semantics.
package fuzzy

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s in its Unicode case-folded form.
//
// Folding is stronger than lowercasing: it also equates characters such
// as 'ß' and "ss", which plain strings.ToLower misses.
func Fold(s string) string {
	// cases.Caser carries internal state and is not safe for concurrent
	// use, so a fresh one is created per call.
	return cases.Fold().String(s)
}

// Contains reports whether needle occurs within haystack, ignoring case.
//
// An empty needle matches any haystack, including the empty string.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
