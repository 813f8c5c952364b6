package helius

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/cache"
	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/logger"
)

const metadataKeyPrefix = "metadata:"

// CachingClient serves FetchMetadata from a cache and delegates everything else.
// Events are never cached since latest-sale answers must be fresh.
type CachingClient struct {
	Client
	cache cache.Cache
	ttl   time.Duration
}

// NewCachingClient decorates next with a metadata cache
func NewCachingClient(next Client, c cache.Cache, ttl time.Duration) Client {
	return &CachingClient{
		Client: next,
		cache:  c,
		ttl:    ttl,
	}
}

// FetchMetadata fetches only the mints missing from the cache. Cache failures degrade to a fetch.
func (c *CachingClient) FetchMetadata(ctx context.Context, mints []string) (map[string]domain.RoyaltyConfig, error) {
	configs := make(map[string]domain.RoyaltyConfig, len(mints))
	var misses []string

	for _, mint := range mints {
		var cfg domain.RoyaltyConfig
		found, err := c.cache.GetJSON(ctx, metadataKeyPrefix+mint, &cfg)
		if err != nil {
			logger.WarnCtx(ctx, "Metadata cache read failed", zap.String("mint", mint), zap.Error(err))
		}
		if found {
			configs[mint] = cfg
			continue
		}
		misses = append(misses, mint)
	}

	if len(misses) == 0 {
		return configs, nil
	}

	fetched, err := c.Client.FetchMetadata(ctx, misses)
	if err != nil {
		return nil, err
	}

	for mint, cfg := range fetched {
		configs[mint] = cfg
		if err := c.cache.SetJSON(ctx, metadataKeyPrefix+mint, cfg, c.ttl); err != nil {
			logger.WarnCtx(ctx, "Metadata cache write failed", zap.String("mint", mint), zap.Error(err))
		}
	}
	return configs, nil
}
