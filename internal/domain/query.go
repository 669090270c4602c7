package domain

import (
	"strings"
	"unicode/utf8"
)

// Search parameter limits.
const (
	// MinQueryLength is the minimum trimmed query length in characters.
	MinQueryLength = 2
	// MaxQueryLength is the maximum trimmed query length in characters.
	MaxQueryLength = 500
	// MinMaxResults and MaxMaxResults bound the requested result count.
	MinMaxResults = 1
	MaxMaxResults = 20
	// DefaultMaxResults applies when a caller omits max_results.
	DefaultMaxResults = 5
)

// SearchQuery is a validated search request. Validation happens here, before
// any network activity; out-of-range values are rejected, never clamped.
type SearchQuery struct {
	text       string
	maxResults int
}

// NewSearchQuery validates and normalizes search parameters. The query text
// is trimmed and its length measured in characters, not bytes, so multibyte
// queries are not penalized.
func NewSearchQuery(text string, maxResults int) (SearchQuery, error) {
	trimmed := strings.TrimSpace(text)
	if n := utf8.RuneCountInString(trimmed); n < MinQueryLength || n > MaxQueryLength {
		return SearchQuery{}, NewCondition(KindInvalidQuery,
			"Query must be between %d and %d characters, got %d.", MinQueryLength, MaxQueryLength, n)
	}
	if maxResults < MinMaxResults || maxResults > MaxMaxResults {
		return SearchQuery{}, NewCondition(KindInvalidMaxResults,
			"max_results must be between %d and %d, got %d.", MinMaxResults, MaxMaxResults, maxResults)
	}
	return SearchQuery{text: trimmed, maxResults: maxResults}, nil
}

// Text returns the trimmed query text.
func (q *SearchQuery) Text() string { return q.text }

// MaxResults returns the validated result cap.
func (q *SearchQuery) MaxResults() int { return q.maxResults }
