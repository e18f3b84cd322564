// Package cache stores JSON encoded read models in Redis with a TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
)

type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// JSON is a namespaced Redis cache of JSON values.
type JSON struct {
	store    store
	prefix   string
	ttl      time.Duration
	strategy retry.Strategy
}

// NewJSON creates a cache whose keys are prefixed with prefix.
func NewJSON(s store, prefix string, ttl time.Duration, strategy retry.Strategy) *JSON {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	return &JSON{store: s, prefix: prefix, ttl: ttl, strategy: strategy}
}

// Get loads key into dst. It reports false on a miss.
func (c *JSON) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	var raw string

	err := retry.Do(func() error {
		var err error
		raw, err = c.store.Get(ctx, c.key(key)).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}

		return err
	}, c.strategy)
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}

	return true, nil
}

// Set stores v under key for the cache TTL.
func (c *JSON) Set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	err = retry.Do(func() error {
		return c.store.Set(ctx, c.key(key), data, c.ttl).Err()
	}, c.strategy)
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

// Invalidate removes the given keys.
func (c *JSON) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, c.key(k))
	}

	err := retry.Do(func() error {
		return c.store.Del(ctx, full...).Err()
	}, c.strategy)
	if err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}

	return nil
}

func (c *JSON) key(k string) string {
	return c.prefix + ":" + k
}
