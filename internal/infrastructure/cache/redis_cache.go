package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-analytics/internal/application/ports"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

var _ ports.DatasetCache = (*RedisDatasetCache)(nil)

const keyPrefix = "pos-analytics:dataset:"

// RedisDatasetCache guarda el dataset de cada tienda como JSON con TTL.
type RedisDatasetCache struct {
	client redis.UniversalClient
}

// NewRedisDatasetCache abre el cliente Redis.
func NewRedisDatasetCache(addr, password string, db int) *RedisDatasetCache {
	return NewRedisDatasetCacheWithClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}))
}

// NewRedisDatasetCacheWithClient usa un cliente ya construido (cluster, sentinel, tests).
func NewRedisDatasetCacheWithClient(client redis.UniversalClient) *RedisDatasetCache {
	return &RedisDatasetCache{client: client}
}

func (c *RedisDatasetCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisDatasetCache) Close() error {
	return c.client.Close()
}

func (c *RedisDatasetCache) Get(ctx context.Context, storeID string) (*entity.Dataset, bool, error) {
	val, err := c.client.Get(ctx, datasetKey(storeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %s: %w", storeID, err)
	}

	var ds entity.Dataset
	if err := json.Unmarshal(val, &ds); err != nil {
		return nil, false, fmt.Errorf("cache: decodificar %s: %w", storeID, err)
	}
	return &ds, true, nil
}

// Set ttl <= 0 guarda sin expiración.
func (c *RedisDatasetCache) Set(ctx context.Context, ds *entity.Dataset, ttl time.Duration) error {
	if ds == nil {
		return nil
	}
	payload, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("cache: codificar %s: %w", ds.StoreID, err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, datasetKey(ds.StoreID), payload, ttl).Err()
}

func datasetKey(storeID string) string {
	return keyPrefix + storeID
}
