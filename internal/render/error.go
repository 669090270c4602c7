package render

import (
	"github.com/kailas-cloud/vecmcp/internal/domain"
)

type errorPayload struct {
	Error string `json:"error"`
}

// Error renders a failure as the single actionable line the host expects.
// Markdown output is the bare line; JSON wraps the same line in an object.
// Unclassified errors come out as unexpected-error conditions, so this
// never exposes a raw Go error chain.
func Error(err error, format domain.OutputFormat) string {
	cond := domain.ConditionOf(err)
	msg := "Error: " + cond.Message

	if format == domain.FormatJSON {
		return marshalIndent(errorPayload{Error: msg})
	}
	return msg
}
