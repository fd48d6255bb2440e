package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Cache = (*RedisCache)(nil)

const keyPrefix = "apogee:"

// RedisCache shares fetched payloads between service instances. Entries are
// stored with their write time so Get can apply a max age independently of
// the Redis TTL, which only bounds how long stale data is kept around.
type RedisCache struct {
	client    *redis.Client
	retention time.Duration
}

type redisEntry struct {
	Content  []byte `json:"content"`
	CachedAt int64  `json:"cached_at"`
}

func NewRedisCache(ctx context.Context, addr string, retention time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", addr)

	return &RedisCache{
		client:    client,
		retention: retention,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string, maxAge time.Duration) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, GenerateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	e, ok := decodeEntry(data)
	if !ok {
		// invalid data format, drop it and report a miss
		c.client.Del(ctx, GenerateKey(key))
		return nil, false, nil
	}

	if maxAge > 0 && time.Since(time.Unix(e.CachedAt, 0)) > maxAge {
		return nil, false, nil
	}

	return e.Content, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	data, err := encodeEntry(value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if err := c.client.Set(ctx, GenerateKey(key), data, c.retention).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GenerateKey namespaces a cache key for the shared Redis database.
func GenerateKey(key string) string {
	return keyPrefix + key
}

func encodeEntry(value []byte, at time.Time) ([]byte, error) {
	return json.Marshal(redisEntry{Content: value, CachedAt: at.Unix()})
}

func decodeEntry(data []byte) (redisEntry, bool) {
	var e redisEntry
	if err := json.Unmarshal(data, &e); err != nil || e.CachedAt == 0 {
		return redisEntry{}, false
	}
	return e, true
}
