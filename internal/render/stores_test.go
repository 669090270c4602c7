package render

import (
	"encoding/json"
	"testing"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

func mustDescriptor(t *testing.T, id, name, description, provider, createdAt, updatedAt string) domain.StoreDescriptor {
	t.Helper()
	d, err := domain.NewStoreDescriptor(id, name, description, provider, createdAt, updatedAt)
	if err != nil {
		t.Fatalf("NewStoreDescriptor: %v", err)
	}
	return d
}

func TestStores_MarkdownExact(t *testing.T) {
	stores := []domain.StoreDescriptor{
		mustDescriptor(t, "612489549322387450", "panser-corpus",
			"Panser framework source", "vertex_ai", "2024-06-24", ""),
		mustDescriptor(t, "612489549322387451", "", "", "", "", ""),
	}

	got := Stores(stores, domain.FormatMarkdown)

	want := "# Available Vector Stores\n" +
		"\n" +
		"**Total Stores:** 2\n" +
		"\n" +
		"## 1. panser-corpus\n" +
		"\n" +
		"- **ID:** `612489549322387450`\n" +
		"- **Description:** Panser framework source\n" +
		"- **Provider:** vertex_ai\n" +
		"- **Created:** 2024-06-24\n" +
		"\n" +
		"**Usage:** `vector_store=\"panser-corpus\"` or `vector_store=\"612489549322387450\"`\n" +
		"\n" +
		"---\n" +
		"\n" +
		"## 2. Unnamed\n" +
		"\n" +
		"- **ID:** `612489549322387451`\n" +
		"- **Description:** No description\n" +
		"- **Provider:** Unknown\n" +
		"- **Created:** Unknown\n" +
		"\n" +
		"**Usage:** `vector_store=\"Unnamed\"` or `vector_store=\"612489549322387451\"`\n" +
		"\n" +
		"---\n"

	if got != want {
		t.Errorf("markdown mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestStores_MarkdownEmpty(t *testing.T) {
	got := Stores(nil, domain.FormatMarkdown)

	want := "No vector stores found.\n\n" +
		"Possible reasons:\n" +
		"- Your API key doesn't have access to any vector stores\n" +
		"- No vector stores are configured in LiteLLM"
	if got != want {
		t.Errorf("expected:\n%q\ngot:\n%q", want, got)
	}
}

func TestStores_JSON(t *testing.T) {
	stores := []domain.StoreDescriptor{
		mustDescriptor(t, "1", "alpha-corpus", "first", "vertex_ai", "2024-01-01", "2024-02-01"),
		mustDescriptor(t, "2", "beta-corpus", "", "", "", ""),
	}

	got := Stores(stores, domain.FormatJSON)

	var payload struct {
		TotalCount   int `json:"total_count"`
		VectorStores []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			Provider    string `json:"provider"`
			CreatedAt   string `json:"created_at"`
			UpdatedAt   string `json:"updated_at"`
		} `json:"vector_stores"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(got), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if payload.TotalCount != 2 {
		t.Errorf("expected total_count=2, got %d", payload.TotalCount)
	}
	if payload.Message != "" {
		t.Errorf("message must be absent for a non-empty catalog, got %q", payload.Message)
	}
	// Порядок каталога сохраняется
	if payload.VectorStores[0].Name != "alpha-corpus" || payload.VectorStores[1].Name != "beta-corpus" {
		t.Errorf("catalog order lost: %+v", payload.VectorStores)
	}
	first := payload.VectorStores[0]
	if first.ID != "1" || first.Description != "first" || first.Provider != "vertex_ai" ||
		first.CreatedAt != "2024-01-01" || first.UpdatedAt != "2024-02-01" {
		t.Errorf("store fields lost: %+v", first)
	}
	// JSON не подставляет markdown-заглушки
	if payload.VectorStores[1].Description != "" {
		t.Errorf("expected raw empty description in JSON, got %q", payload.VectorStores[1].Description)
	}
}

func TestStores_JSONEmpty(t *testing.T) {
	got := Stores([]domain.StoreDescriptor{}, domain.FormatJSON)

	want := "{\n" +
		"  \"total_count\": 0,\n" +
		"  \"vector_stores\": [],\n" +
		"  \"message\": \"No vector stores found. Your API key may not have access to any stores.\"\n" +
		"}"
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}
