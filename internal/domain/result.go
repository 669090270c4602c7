package domain

// SearchResult is a single backend hit. Slice position is the relevance
// rank; results carry no separate ordinal.
type SearchResult struct {
	Score      float64
	Filename   string
	FileID     string
	Content    string
	Attributes map[string]any
}

// SearchResponse is an immutable rendering input: a query, its hits, and
// whether lower-ranked hits were dropped to fit a size limit. Truncation
// builds a new response rather than mutating an existing one.
type SearchResponse struct {
	query     string
	truncated bool
	results   []SearchResult
}

// NewSearchResponse snapshots results into a response. The slice is copied
// so later mutation of the argument cannot reach the response.
func NewSearchResponse(query string, results []SearchResult, truncated bool) SearchResponse {
	cp := make([]SearchResult, len(results))
	copy(cp, results)
	return SearchResponse{query: query, truncated: truncated, results: cp}
}

// Query returns the query text the results answer.
func (r *SearchResponse) Query() string { return r.query }

// Truncated reports whether lower-ranked results were dropped.
func (r *SearchResponse) Truncated() bool { return r.truncated }

// TotalResults returns the number of results carried.
func (r *SearchResponse) TotalResults() int { return len(r.results) }

// Results returns the hits in relevance order.
func (r *SearchResponse) Results() []SearchResult { return r.results }
