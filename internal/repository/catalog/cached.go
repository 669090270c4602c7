// Package catalog caches vector store catalog snapshots so repeated
// name lookups do not refetch the full list from LiteLLM.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

const cacheKey = "vecmcp:catalog"

// ErrMiss is returned by a store when the key holds no live snapshot.
var ErrMiss = errors.New("catalog: cache miss")

// Lister fetches the vector store catalog from the backend.
type Lister interface {
	ListVectorStores(ctx context.Context) ([]domain.StoreDescriptor, error)
}

// store is the consumer interface for the snapshot cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cached decorates a Lister with snapshot caching. Cache failures are
// logged and ignored; backend failures propagate unchanged.
type Cached struct {
	inner      Lister
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewCached creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func NewCached(
	inner Lister,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cached {
	return &Cached{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// ListVectorStores returns a cached snapshot or calls the inner lister.
// The snapshot preserves backend catalog order.
func (c *Cached) ListVectorStores(ctx context.Context) ([]domain.StoreDescriptor, error) {
	if stores, ok := c.getFromCache(ctx); ok {
		c.incCache("hit")
		return stores, nil
	}

	c.incCache("miss")

	stores, err := c.inner.ListVectorStores(ctx)
	if err != nil {
		return nil, err
	}

	c.putToCache(ctx, stores)
	return stores, nil
}

func (c *Cached) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *Cached) getFromCache(ctx context.Context) ([]domain.StoreDescriptor, bool) {
	data, err := c.store.Get(ctx, cacheKey)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.logger.Warn("Failed to get cached catalog", zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	stores, err := decodeSnapshot(data)
	if err != nil {
		c.logger.Warn("Failed to parse cached catalog", zap.Error(err))
		return nil, false
	}

	return stores, true
}

func (c *Cached) putToCache(ctx context.Context, stores []domain.StoreDescriptor) {
	data, err := encodeSnapshot(stores)
	if err != nil {
		c.logger.Warn("Failed to encode catalog snapshot", zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, cacheKey, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache catalog", zap.Error(err))
	}
}

// storeRecord is the snapshot wire form of a StoreDescriptor.
type storeRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Provider    string `json:"provider,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

func encodeSnapshot(stores []domain.StoreDescriptor) ([]byte, error) {
	records := make([]storeRecord, 0, len(stores))
	for i := range stores {
		s := &stores[i]
		records = append(records, storeRecord{
			ID:          s.ID(),
			Name:        s.Name(),
			Description: s.Description(),
			Provider:    s.Provider(),
			CreatedAt:   s.CreatedAt(),
			UpdatedAt:   s.UpdatedAt(),
		})
	}
	return json.Marshal(records)
}

func decodeSnapshot(data []byte) ([]domain.StoreDescriptor, error) {
	var records []storeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	stores := make([]domain.StoreDescriptor, 0, len(records))
	for _, r := range records {
		s, err := domain.NewStoreDescriptor(r.ID, r.Name, r.Description, r.Provider, r.CreatedAt, r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, nil
}
