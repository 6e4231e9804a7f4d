package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps entries in Redis under a common key prefix so several
// caches can share one database.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed cache on an existing client. The prefix
// namespaces all keys; empty means no namespace.
func NewRedis(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// OpenRedis connects to addr (host:port) and returns a cache with the given
// key prefix.
func OpenRedis(addr, prefix string) *RedisStore {
	return NewRedis(redis.NewClient(&redis.Options{Addr: addr}), prefix)
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Has reports whether key is cached.
func (s *RedisStore) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("cache: redis exists: %w", err)
	}
	return n > 0, nil
}

// Get returns the cached value for key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("cache: redis get: %w", err)
	}
	return data, nil
}

// Set caches value under key. An existing key is rejected with ErrKeyExists.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	ok, err := s.client.SetNX(ctx, s.key(key), value, 0).Result()
	if err != nil {
		return fmt.Errorf("cache: redis setnx: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyExists, key)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("cache: redis del: %w", err)
	}
	return nil
}

// Keys lists all cached keys, prefix stripped, in unspecified order.
func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	pattern := "*"
	strip := 0
	if s.prefix != "" {
		pattern = s.prefix + ":*"
		strip = len(s.prefix) + 1
	}
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[strip:])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("cache: redis scan: %w", err)
	}
	return keys, nil
}

// Count returns the number of cached entries.
func (s *RedisStore) Count(ctx context.Context) (int, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }
