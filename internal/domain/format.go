package domain

// OutputFormat selects the rendering of host-facing responses.
type OutputFormat string

// Supported output formats.
const (
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
)

// ParseOutputFormat maps a raw response_format argument to a format.
// Empty input selects markdown. Unknown values are rejected so a typo
// cannot silently change the response shape.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	if raw == "" {
		return FormatMarkdown, nil
	}
	f := OutputFormat(raw)
	if !f.IsValid() {
		return "", NewCondition(KindUnexpected, "response_format must be %q or %q, got %q.",
			FormatMarkdown, FormatJSON, raw)
	}
	return f, nil
}

// IsValid checks if the format is one of the supported values.
func (f OutputFormat) IsValid() bool {
	return f == FormatMarkdown || f == FormatJSON
}
