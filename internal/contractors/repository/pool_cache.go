package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/geo3dhub/geo-hub-backend/internal/contractors/domain"
)

const (
	poolCacheKey = "contractors:pool" // Cached contractor pool as a JSON array
	poolCacheTTL = 12 * time.Hour
)

// PoolCache keeps the full contractor pool in Redis so matching requests
// don't hit Postgres every time. The worker refreshes it nightly; reads
// fall back to Postgres when the cache is cold.
type PoolCache struct {
	client *redis.Client
	repo   *ContractorRepository
}

// NewPoolCache creates a new pool cache over the given repository.
func NewPoolCache(client *redis.Client, repo *ContractorRepository) *PoolCache {
	return &PoolCache{
		client: client,
		repo:   repo,
	}
}

// Pool returns the contractor pool, serving from cache when possible and
// refreshing from Postgres on a miss.
func (c *PoolCache) Pool(ctx context.Context) ([]domain.Profile, error) {
	data, err := c.client.Get(ctx, poolCacheKey).Result()
	if err == nil {
		var pool []domain.Profile
		if err := json.Unmarshal([]byte(data), &pool); err == nil {
			return pool, nil
		}
		// Unreadable cache entry; fall through to a refresh.
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read contractor pool cache: %w", err)
	}

	return c.Refresh(ctx)
}

// Refresh reloads the pool from Postgres and rewrites the cache entry.
func (c *PoolCache) Refresh(ctx context.Context) ([]domain.Profile, error) {
	pool, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contractor pool: %w", err)
	}

	data, err := json.Marshal(pool)
	if err != nil {
		return nil, fmt.Errorf("marshal contractor pool: %w", err)
	}
	if err := c.client.Set(ctx, poolCacheKey, data, poolCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("write contractor pool cache: %w", err)
	}
	return pool, nil
}
