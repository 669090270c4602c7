package resolve

import (
	"context"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

// CatalogLister defines the catalog source contract. Satisfied by the
// LiteLLM client directly or by the caching decorator around it.
type CatalogLister interface {
	ListVectorStores(ctx context.Context) ([]domain.StoreDescriptor, error)
}
