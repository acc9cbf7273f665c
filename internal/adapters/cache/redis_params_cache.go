package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"pick-time-service/internal/domain"
	"pick-time-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisParamsCache caches the marshalled cost model in Redis, keyed by params
// revision. A revision bump naturally produces a fresh key, so stale payloads
// simply expire; no explicit invalidation is needed.
//
// Cache failures never fail an estimation: reads fall through to the inner
// store and writes are best-effort.
type RedisParamsCache struct {
	Inner  ports.ParamsStore
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisParamsCache(inner ports.ParamsStore, client *redis.Client, ttl time.Duration) *RedisParamsCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisParamsCache{Inner: inner, Client: client, TTL: ttl}
}

func paramsCacheKey(revision int) string {
	return fmt.Sprintf("pick_time:params:rev:%d", revision)
}

// Params returns the cached cost model for the current revision, loading and
// caching it from the inner store on a miss.
func (c *RedisParamsCache) Params(ctx context.Context) (*domain.Params, error) {
	revision, err := c.Inner.Revision(ctx)
	if err != nil {
		return nil, fmt.Errorf("params cache: current revision: %w", err)
	}
	key := paramsCacheKey(revision)

	raw, err := c.Client.Get(ctx, key).Result()
	if err == nil {
		var params domain.Params
		if jsonErr := json.Unmarshal([]byte(raw), &params); jsonErr == nil {
			params.Normalize()
			return &params, nil
		}
		// Corrupt payloads are dropped and reloaded from the inner store.
		log.Printf("op=params.cache.get key=%s err=corrupt payload", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("op=params.cache.get key=%s err=%v", key, err)
	}

	params, err := c.Inner.Params(ctx)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(params); jsonErr == nil {
		if setErr := c.Client.Set(ctx, key, payload, c.TTL).Err(); setErr != nil {
			log.Printf("op=params.cache.set key=%s err=%v", key, setErr)
		}
	}
	return params, nil
}

func (c *RedisParamsCache) Revision(ctx context.Context) (int, error) {
	return c.Inner.Revision(ctx)
}

func (c *RedisParamsCache) SummerMode(ctx context.Context) (bool, error) {
	return c.Inner.SummerMode(ctx)
}

// SaveParams delegates to the inner store. The returned revision keys future
// reads, so the previous cached payload becomes unreachable immediately.
func (c *RedisParamsCache) SaveParams(ctx context.Context, params *domain.Params) (int, error) {
	return c.Inner.SaveParams(ctx, params)
}
