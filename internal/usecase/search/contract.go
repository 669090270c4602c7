package search

import (
	"context"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

// Searcher defines the backend search contract.
type Searcher interface {
	Search(ctx context.Context, storeID, query string) ([]domain.SearchResult, error)
}
