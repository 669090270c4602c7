// Package search executes a validated query against a resolved vector store.
package search

import (
	"context"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

// Service runs semantic searches through the backend.
type Service struct {
	backend Searcher
}

// New creates a search service.
func New(backend Searcher) *Service {
	return &Service{backend: backend}
}

// Run issues exactly one backend call and trims the result list to the
// requested size, preserving backend relevance order. The SearchQuery
// constructor has already enforced the query and max_results bounds, so
// nothing is validated here. Backend errors arrive classified and are
// returned untouched; there is no retry.
func (s *Service) Run(ctx context.Context, storeID string, q domain.SearchQuery) ([]domain.SearchResult, error) {
	results, err := s.backend.Search(ctx, storeID, q.Text())
	if err != nil {
		return nil, err
	}

	if len(results) > q.MaxResults() {
		results = results[:q.MaxResults()]
	}
	return results, nil
}
