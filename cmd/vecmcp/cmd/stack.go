package cmd

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecmcp/internal/config"
	"github.com/kailas-cloud/vecmcp/internal/litellm"
	logpkg "github.com/kailas-cloud/vecmcp/internal/logger"
	"github.com/kailas-cloud/vecmcp/internal/metrics"
	catalogrepo "github.com/kailas-cloud/vecmcp/internal/repository/catalog"
	healthuc "github.com/kailas-cloud/vecmcp/internal/usecase/health"
	"github.com/kailas-cloud/vecmcp/internal/usecase/resolve"
	"github.com/kailas-cloud/vecmcp/internal/usecase/search"
)

// stack bundles the wired service graph every command starts from.
type stack struct {
	cfg      config.Config
	logger   *zap.Logger
	client   *litellm.Client
	catalog  resolve.CatalogLister
	redis    *catalogrepo.RedisStore // nil unless cache.driver is redis
	resolver *resolve.Service
	searcher *search.Service
}

// buildStack loads configuration and assembles the composition root shared
// by serve and the one-shot commands.
func buildStack() (*stack, error) {
	env := flagEnv
	if env == "" {
		env = config.GetEnv()
	}

	cfg, err := config.LoadOrEnv(env)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logger, err := logpkg.NewLogger(env, level)
	if err != nil {
		return nil, err
	}

	client := litellm.New(litellm.Config{
		BaseURL:          cfg.LiteLLM.BaseURL,
		APIKey:           cfg.LiteLLM.APIKey,
		Timeout:          time.Duration(cfg.LiteLLM.TimeoutSec) * time.Second,
		Provider:         cfg.LiteLLM.Provider,
		VertexAIProject:  cfg.LiteLLM.VertexAIProject,
		VertexAILocation: cfg.LiteLLM.VertexAILocation,
	}, logger)

	st := &stack{cfg: cfg, logger: logger, client: client}

	ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
	switch cfg.Cache.Driver {
	case "memory":
		st.catalog = catalogrepo.NewCached(client, catalogrepo.NewMemoryStore(), ttl, metrics.CatalogCacheTotal, logger)
	case "redis":
		rs, err := catalogrepo.NewRedisStore(catalogrepo.RedisConfig{
			Addrs:    cfg.Cache.Redis.Addrs,
			Password: cfg.Cache.Redis.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("connect catalog cache: %w", err)
		}
		st.redis = rs
		st.catalog = catalogrepo.NewCached(client, rs, ttl, metrics.CatalogCacheTotal, logger)
	default:
		st.catalog = client
	}

	st.resolver = resolve.New(st.catalog, cfg.LiteLLM.DefaultStoreID)
	st.searcher = search.New(client)
	return st, nil
}

// cachePinger returns the cache health prober. Returns a nil interface
// (not a typed nil pointer) when no pingable cache is wired.
func (s *stack) cachePinger() healthuc.CachePinger {
	if s.redis != nil {
		return s.redis
	}
	return nil
}

func (s *stack) Close() {
	if s.redis != nil {
		s.redis.Close()
	}
	_ = s.logger.Sync()
}
