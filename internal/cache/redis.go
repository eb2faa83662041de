package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// purgeBatch is the SCAN page size used when purging a definition.
const purgeBatch = 200

// NewRedisClient creates a client from a redis:// or rediss:// URL.
func NewRedisClient(url string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// RedisFactory creates Redis-backed stores sharing one client.
type RedisFactory struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisFactory creates a factory. prefix namespaces every key, so several
// sites can share one Redis.
func NewRedisFactory(client redis.UniversalClient, prefix string) *RedisFactory {
	return &RedisFactory{client: client, prefix: prefix}
}

// Make returns the store for def.
func (f *RedisFactory) Make(def Definition) Store {
	return &RedisStore{
		client:    f.client,
		keyPrefix: f.prefix + def.String() + ":",
	}
}

// RedisStore is a Store kept in Redis.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// Get returns the cached value for key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// Set stores value with no expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Purge deletes every key under the store's prefix.
func (s *RedisStore) Purge(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+"*", purgeBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s: %w", s.keyPrefix, err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
