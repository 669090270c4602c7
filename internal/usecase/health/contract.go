package health

import (
	"context"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

// CatalogLister probes the LiteLLM backend by listing vector stores.
type CatalogLister interface {
	ListVectorStores(ctx context.Context) ([]domain.StoreDescriptor, error)
}

// CachePinger checks catalog cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
