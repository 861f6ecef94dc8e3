package book

import (
	"net/url"

	"github.com/slpixe/py-book/pkg/fuzzy"
)

// Filters maps filterable fields to their query strings.
//
// An empty set matches every record.
type Filters map[Field]string

// ParseFilters extracts the recognized filter parameters from a query
// string. Unknown parameters and empty values are ignored.
func ParseFilters(values url.Values) Filters {
	filters := make(Filters)
	for _, field := range Fields {
		if value := values.Get(string(field)); value != "" {
			filters[field] = value
		}
	}
	return filters
}

// Match reports whether the record satisfies every filter.
//
// Each filter holds when the record field's text contains the query string
// case-insensitively. Filters combine with logical AND; a missing or empty
// field never matches a non-empty query.
func Match(record *Book, filters Filters) bool {
	for field, query := range filters {
		if !fuzzy.Contains(record.value(field), query) {
			return false
		}
	}
	return true
}

// Search returns the records matching all filters, preserving relative
// order. Each record is evaluated exactly once, so cost is O(N·F) for N
// records and F filters.
func Search(books []Book, filters Filters) []Book {
	if len(filters) == 0 {
		return books
	}

	var matches []Book
	for i := range books {
		if Match(&books[i], filters) {
			matches = append(matches, books[i])
		}
	}
	return matches
}
