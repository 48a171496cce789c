package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "page:"

// PageCache holds rendered listing payloads in redis, keyed by the
// request path. Entries expire by TTL; writes that affect a path call
// Revalidate to drop them earlier.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

// Get returns the cached payload for path, or ok=false on a miss.
func (c *PageCache) Get(ctx context.Context, path string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, keyPrefix+path).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the payload for path until the TTL runs out.
func (c *PageCache) Set(ctx context.Context, path string, payload []byte) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, keyPrefix+path, payload, c.ttl).Err()
}

// Revalidate drops every cached rendering under the logical path.
func (c *PageCache) Revalidate(ctx context.Context, path string) error {
	if c == nil || c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+path+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	err := c.client.Del(ctx, keys...).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
