package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

// --- Mocks ---

type mockCatalog struct {
	stores []domain.StoreDescriptor
	err    error
	calls  int
}

func (m *mockCatalog) ListVectorStores(_ context.Context) ([]domain.StoreDescriptor, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.stores, nil
}

func makeStore(t *testing.T, id, name string) domain.StoreDescriptor {
	t.Helper()
	d, err := domain.NewStoreDescriptor(id, name, "", "", "", "")
	if err != nil {
		t.Fatalf("NewStoreDescriptor: %v", err)
	}
	return d
}

// fullCatalog mirrors the store inventory of the production LiteLLM proxy.
func fullCatalog(t *testing.T) []domain.StoreDescriptor {
	t.Helper()
	return []domain.StoreDescriptor{
		makeStore(t, "612489549322387450", "panser-corpus"),
		makeStore(t, "612489549322387451", "migrationmanager-corpus"),
		makeStore(t, "612489549322387452", "companion-corpus"),
		makeStore(t, "612489549322387453", "mcp-servers-corpus"),
		makeStore(t, "612489549322387454", "prismaautomation-corpus"),
		makeStore(t, "612489549322387455", "internal-corpus"),
		makeStore(t, "612489549322387456", "gcsai-corpus"),
	}
}

func conditionKind(t *testing.T, err error) domain.Kind {
	t.Helper()
	var cond *domain.Condition
	if !errors.As(err, &cond) {
		t.Fatalf("expected *domain.Condition, got %T: %v", err, err)
	}
	return cond.Kind
}

// --- Tests ---

func TestResolve_Default(t *testing.T) {
	cat := &mockCatalog{}
	svc := New(cat, "612489549322387455")

	id, err := svc.Resolve(context.Background(), domain.ParseStoreSelector(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "612489549322387455" {
		t.Errorf("expected default ID, got %q", id)
	}
	if cat.calls != 0 {
		t.Errorf("default resolution must not fetch the catalog, got %d calls", cat.calls)
	}
}

func TestResolve_DefaultMissing(t *testing.T) {
	svc := New(&mockCatalog{}, "")

	_, err := svc.Resolve(context.Background(), domain.ParseStoreSelector(""))
	if err == nil {
		t.Fatal("expected error when no default store is configured")
	}
	if kind := conditionKind(t, err); kind != domain.KindConfiguration {
		t.Errorf("expected %q, got %q", domain.KindConfiguration, kind)
	}

	want := "No vector store configured. Set LITELLM_VECTOR_STORE_ID or pass the vector_store parameter."
	var cond *domain.Condition
	errors.As(err, &cond)
	if cond.Message != want {
		t.Errorf("expected %q, got %q", want, cond.Message)
	}
}

func TestResolve_ByID_NoCatalogFetch(t *testing.T) {
	cat := &mockCatalog{stores: fullCatalog(t)}
	svc := New(cat, "")

	id, err := svc.Resolve(context.Background(), domain.ParseStoreSelector("612489549322387456"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "612489549322387456" {
		t.Errorf("expected ID passed through unchanged, got %q", id)
	}
	if cat.calls != 0 {
		t.Errorf("ID resolution must not fetch the catalog, got %d calls", cat.calls)
	}
}

func TestResolve_ByName(t *testing.T) {
	cat := &mockCatalog{stores: fullCatalog(t)}
	svc := New(cat, "")

	id, err := svc.Resolve(context.Background(), domain.ParseStoreSelector("internal-corpus"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "612489549322387455" {
		t.Errorf("expected resolved ID, got %q", id)
	}
	if cat.calls != 1 {
		t.Errorf("expected one catalog fetch, got %d", cat.calls)
	}
}

func TestResolve_ByName_CaseSensitive(t *testing.T) {
	cat := &mockCatalog{stores: fullCatalog(t)}
	svc := New(cat, "")

	_, err := svc.Resolve(context.Background(), domain.ParseStoreSelector("Internal-Corpus"))
	if err == nil {
		t.Fatal("expected name match to be case-sensitive")
	}
	if kind := conditionKind(t, err); kind != domain.KindStoreNotFound {
		t.Errorf("expected %q, got %q", domain.KindStoreNotFound, kind)
	}
}

func TestResolve_ByName_NotFound(t *testing.T) {
	cat := &mockCatalog{stores: fullCatalog(t)}
	svc := New(cat, "")

	_, err := svc.Resolve(context.Background(), domain.ParseStoreSelector("nonexistent-corpus"))
	if err == nil {
		t.Fatal("expected error for unknown store name")
	}
	if kind := conditionKind(t, err); kind != domain.KindStoreNotFound {
		t.Errorf("expected %q, got %q", domain.KindStoreNotFound, kind)
	}

	// Сообщение перечисляет весь каталог в порядке бэкенда
	want := "Vector store 'nonexistent-corpus' not found. " +
		"Available stores: panser-corpus, migrationmanager-corpus, companion-corpus, " +
		"mcp-servers-corpus, prismaautomation-corpus, internal-corpus, gcsai-corpus. " +
		"Use litellm_list_vector_stores tool to see all options."
	var cond *domain.Condition
	errors.As(err, &cond)
	if cond.Message != want {
		t.Errorf("expected:\n%q\ngot:\n%q", want, cond.Message)
	}
}

func TestResolve_ByName_UnnamedStoreListedAsUnknown(t *testing.T) {
	cat := &mockCatalog{stores: []domain.StoreDescriptor{
		makeStore(t, "1", "alpha-corpus"),
		makeStore(t, "2", ""),
	}}
	svc := New(cat, "")

	_, err := svc.Resolve(context.Background(), domain.ParseStoreSelector("beta-corpus"))
	if err == nil {
		t.Fatal("expected error")
	}
	var cond *domain.Condition
	errors.As(err, &cond)
	want := "Vector store 'beta-corpus' not found. Available stores: alpha-corpus, unknown. " +
		"Use litellm_list_vector_stores tool to see all options."
	if cond.Message != want {
		t.Errorf("expected:\n%q\ngot:\n%q", want, cond.Message)
	}
}

func TestResolve_ByName_FirstMatchWins(t *testing.T) {
	cat := &mockCatalog{stores: []domain.StoreDescriptor{
		makeStore(t, "1", "dup-corpus"),
		makeStore(t, "2", "dup-corpus"),
	}}
	svc := New(cat, "")

	id, err := svc.Resolve(context.Background(), domain.ParseStoreSelector("dup-corpus"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "1" {
		t.Errorf("expected first match in catalog order, got %q", id)
	}
}

func TestResolve_ByName_CatalogError(t *testing.T) {
	cond := domain.NewCondition(domain.KindTimeout, "Request timed out after 30 seconds.")
	cat := &mockCatalog{err: cond}
	svc := New(cat, "")

	_, err := svc.Resolve(context.Background(), domain.ParseStoreSelector("internal-corpus"))
	if err == nil {
		t.Fatal("expected catalog failure to propagate")
	}
	// Классифицированная ошибка не подменяется на "store not found"
	if kind := conditionKind(t, err); kind != domain.KindTimeout {
		t.Errorf("expected %q, got %q", domain.KindTimeout, kind)
	}
}

func TestCatalog_Passthrough(t *testing.T) {
	cat := &mockCatalog{stores: fullCatalog(t)}
	svc := New(cat, "")

	stores, err := svc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stores) != 7 {
		t.Fatalf("expected 7 stores, got %d", len(stores))
	}
	if stores[0].Name() != "panser-corpus" || stores[6].Name() != "gcsai-corpus" {
		t.Errorf("catalog order must be preserved: %q ... %q", stores[0].Name(), stores[6].Name())
	}
}

func TestCatalog_Error(t *testing.T) {
	cat := &mockCatalog{err: errors.New("boom")}
	svc := New(cat, "")

	_, err := svc.Catalog(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}
