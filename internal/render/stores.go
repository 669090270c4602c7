package render

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

// Stores renders the vector store catalog in the requested format,
// preserving backend catalog order.
func Stores(stores []domain.StoreDescriptor, format domain.OutputFormat) string {
	if format == domain.FormatJSON {
		return renderStoresJSON(stores)
	}
	return renderStoresMarkdown(stores)
}

func renderStoresMarkdown(stores []domain.StoreDescriptor) string {
	if len(stores) == 0 {
		return "No vector stores found.\n\n" +
			"Possible reasons:\n" +
			"- Your API key doesn't have access to any vector stores\n" +
			"- No vector stores are configured in LiteLLM"
	}

	lines := []string{
		"# Available Vector Stores",
		"",
		fmt.Sprintf("**Total Stores:** %d", len(stores)),
		"",
	}

	for i := range stores {
		s := &stores[i]
		name := orDefault(s.Name(), "Unnamed")
		description := orDefault(s.Description(), "No description")
		provider := orDefault(s.Provider(), "Unknown")
		created := orDefault(s.CreatedAt(), "Unknown")

		lines = append(lines,
			fmt.Sprintf("## %d. %s", i+1, name),
			"",
			fmt.Sprintf("- **ID:** `%s`", s.ID()),
			fmt.Sprintf("- **Description:** %s", description),
			fmt.Sprintf("- **Provider:** %s", provider),
			fmt.Sprintf("- **Created:** %s", created),
			"",
			fmt.Sprintf("**Usage:** `vector_store=\"%s\"` or `vector_store=\"%s\"`", name, s.ID()),
			"",
			"---",
			"",
		)
	}

	return strings.Join(lines, "\n")
}

type storePayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type storesPayload struct {
	TotalCount   int            `json:"total_count"`
	VectorStores []storePayload `json:"vector_stores"`
	Message      string         `json:"message,omitempty"`
}

func renderStoresJSON(stores []domain.StoreDescriptor) string {
	payload := storesPayload{
		TotalCount:   len(stores),
		VectorStores: make([]storePayload, 0, len(stores)),
	}
	if len(stores) == 0 {
		payload.Message = "No vector stores found. Your API key may not have access to any stores."
	}

	for i := range stores {
		s := &stores[i]
		payload.VectorStores = append(payload.VectorStores, storePayload{
			ID:          s.ID(),
			Name:        s.Name(),
			Description: s.Description(),
			Provider:    s.Provider(),
			CreatedAt:   s.CreatedAt(),
			UpdatedAt:   s.UpdatedAt(),
		})
	}

	return marshalIndent(payload)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
