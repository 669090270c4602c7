// Package render shapes search results and store listings into the bounded
// text payloads handed back to the tool-calling host. Shaping never fails:
// every function returns a string, no matter the input.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

const (
	// DefaultCharacterLimit bounds a single tool response.
	DefaultCharacterLimit = 25000

	// snippetLimit caps one content block in markdown output.
	snippetLimit = 2000

	truncationMessage = "Results were truncated to fit within character limits. " +
		"Reduce max_results to get complete content for each result."

	truncationWarning = "⚠️  **Results truncated** due to size limit. " +
		"Use max_results parameter to control the number of results returned."
)

// Page is the shaped payload plus what survived the size limit.
type Page struct {
	Text      string
	Shown     int
	Truncated bool
}

// Search renders a search response in the requested format. If the rendered
// payload exceeds limit, the result count is halved and the page re-rendered
// with a truncation notice, repeatedly, keeping the highest-relevance prefix.
// A single result is always returned whole even if it still exceeds the
// limit. Limits are measured in characters, not bytes.
func Search(resp domain.SearchResponse, format domain.OutputFormat, limit int) Page {
	if limit <= 0 {
		limit = DefaultCharacterLimit
	}

	results := resp.Results()
	if len(results) == 0 {
		return Page{Text: renderNoResults(resp.Query(), format)}
	}

	n := len(results)
	truncated := resp.Truncated()
	text := renderSearch(resp.Query(), results[:n], truncated, format)

	for utf8.RuneCountInString(text) > limit && n > 1 {
		n = max(1, n/2)
		truncated = true
		text = renderSearch(resp.Query(), results[:n], truncated, format)
	}

	return Page{Text: text, Shown: n, Truncated: truncated}
}

func renderSearch(query string, results []domain.SearchResult, truncated bool, format domain.OutputFormat) string {
	if format == domain.FormatJSON {
		return renderSearchJSON(query, results, truncated)
	}
	return renderSearchMarkdown(query, results, truncated)
}

func renderSearchMarkdown(query string, results []domain.SearchResult, truncated bool) string {
	lines := []string{
		"# Vector Store Search Results",
		"",
		fmt.Sprintf("**Query:** %s", query),
		fmt.Sprintf("**Results Found:** %d", len(results)),
	}

	if truncated {
		lines = append(lines, "", truncationWarning)
	}

	lines = append(lines, "")

	for i := range results {
		r := &results[i]
		filename := r.Filename
		if filename == "" {
			filename = "Unknown"
		}

		lines = append(lines,
			fmt.Sprintf("## Result %d: %s", i+1, filename),
			"",
			fmt.Sprintf("- **Relevance Score:** %.4f", r.Score),
			fmt.Sprintf("- **File Path:** `%s`", r.FileID),
			"",
			"### Content:",
			"```",
		)
		lines = append(lines, snippet(r.Content)...)
		lines = append(lines, "```", "", "---", "")
	}

	return strings.Join(lines, "\n")
}

// snippet caps a content block at snippetLimit characters, noting the
// original length when cut.
func snippet(content string) []string {
	if utf8.RuneCountInString(content) <= snippetLimit {
		return []string{content}
	}
	runes := []rune(content)
	return []string{
		string(runes[:snippetLimit]),
		fmt.Sprintf("... (truncated, %d total characters)", len(runes)),
	}
}

type searchResultPayload struct {
	Score      float64        `json:"score"`
	Filename   string         `json:"filename"`
	FileID     string         `json:"file_id"`
	Content    string         `json:"content"`
	Attributes map[string]any `json:"attributes"`
}

type searchPayload struct {
	Query             string                `json:"query"`
	TotalResults      int                   `json:"total_results"`
	Truncated         bool                  `json:"truncated"`
	Results           []searchResultPayload `json:"results"`
	TruncationMessage string                `json:"truncation_message,omitempty"`
	Message           string                `json:"message,omitempty"`
}

func renderSearchJSON(query string, results []domain.SearchResult, truncated bool) string {
	payload := searchPayload{
		Query:        query,
		TotalResults: len(results),
		Truncated:    truncated,
		Results:      make([]searchResultPayload, 0, len(results)),
	}
	if truncated {
		payload.TruncationMessage = truncationMessage
	}

	for i := range results {
		r := &results[i]
		filename := r.Filename
		if filename == "" {
			filename = "Unknown"
		}
		attrs := r.Attributes
		if attrs == nil {
			attrs = map[string]any{}
		}
		payload.Results = append(payload.Results, searchResultPayload{
			Score:      r.Score,
			Filename:   filename,
			FileID:     r.FileID,
			Content:    r.Content,
			Attributes: attrs,
		})
	}

	return marshalIndent(payload)
}

func renderNoResults(query string, format domain.OutputFormat) string {
	if format == domain.FormatJSON {
		return marshalIndent(searchPayload{
			Query:   query,
			Results: []searchResultPayload{},
			Message: fmt.Sprintf("No results found for query: '%s'", query),
		})
	}
	return fmt.Sprintf("No results found for query: '%s'\n\n"+
		"Try:\n"+
		"- Using more specific keywords\n"+
		"- Checking spelling\n"+
		"- Using technical terms from your codebase", query)
}

func marshalIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Unreachable for the payload types above; kept so shaping can
		// never panic or return an empty page.
		return fmt.Sprintf(`{"error": "Error: Unexpected error occurred: %v"}`, err)
	}
	return string(data)
}
