package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores normalized responses in Redis. A Cache without a client is a
// no-op, so the gateway keeps working when Redis is down.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a Cache. rdb may be nil.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: rdb, ttl: ttl}
}

func (c *Cache) get(ctx context.Context, key string, dst any) bool {
	if c == nil || c.redis == nil || c.ttl <= 0 {
		return false
	}
	cached, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("failed to read cache", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		slog.Warn("discarding unreadable cache entry", "key", key, "error", err)
		return false
	}
	slog.Debug("cache hit", "key", key)
	return true
}

func (c *Cache) set(ctx context.Context, key string, v any) {
	if c == nil || c.redis == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

// Invalidate deletes every cached movie and person response and reports how
// many keys went away.
func (c *Cache) Invalidate(ctx context.Context) (int, error) {
	if c == nil || c.redis == nil {
		return 0, nil
	}
	deleted := 0
	for _, pattern := range []string{"movies:*", "movie:*", "person:*"} {
		iter := c.redis.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			n, err := c.redis.Del(ctx, iter.Val()).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		if err := iter.Err(); err != nil {
			return deleted, err
		}
	}
	slog.Info("Redis cache invalidated", "keys", deleted)
	return deleted, nil
}
