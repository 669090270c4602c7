// Package resolve turns a store selector into a concrete vector store ID.
package resolve

import (
	"context"
	"strings"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

// Service resolves store selectors against the backend catalog.
type Service struct {
	catalog        CatalogLister
	defaultStoreID string
}

// New creates a resolver service. defaultStoreID may be empty; resolving
// a default selector then fails with a configuration condition.
func New(catalog CatalogLister, defaultStoreID string) *Service {
	return &Service{catalog: catalog, defaultStoreID: defaultStoreID}
}

// Resolve maps a selector to a vector store ID.
//
// Default selectors return the configured default without touching the
// network. Digit-only selectors are trusted as IDs verbatim; a bad ID
// surfaces later as a backend 404. Name selectors fetch the catalog and
// require an exact, case-sensitive match.
func (s *Service) Resolve(ctx context.Context, sel domain.StoreSelector) (string, error) {
	switch sel.Kind() {
	case domain.SelectDefault:
		if s.defaultStoreID == "" {
			return "", domain.NewCondition(domain.KindConfiguration,
				"No vector store configured. Set LITELLM_VECTOR_STORE_ID or pass the vector_store parameter.")
		}
		return s.defaultStoreID, nil

	case domain.SelectByID:
		return sel.Value(), nil

	case domain.SelectByName:
		return s.resolveByName(ctx, sel.Value())

	default:
		return "", domain.NewCondition(domain.KindUnexpected,
			"Unexpected error occurred: unknown selector kind %q.", sel.Kind())
	}
}

func (s *Service) resolveByName(ctx context.Context, name string) (string, error) {
	stores, err := s.catalog.ListVectorStores(ctx)
	if err != nil {
		return "", err
	}

	for i := range stores {
		if stores[i].Name() == name {
			return stores[i].ID(), nil
		}
	}

	names := make([]string, 0, len(stores))
	for i := range stores {
		n := stores[i].Name()
		if n == "" {
			n = "unknown"
		}
		names = append(names, n)
	}

	return "", domain.NewCondition(domain.KindStoreNotFound,
		"Vector store '%s' not found. Available stores: %s. Use litellm_list_vector_stores tool to see all options.",
		name, strings.Join(names, ", "))
}

// Catalog returns the full store catalog in backend order.
func (s *Service) Catalog(ctx context.Context) ([]domain.StoreDescriptor, error) {
	return s.catalog.ListVectorStores(ctx)
}
