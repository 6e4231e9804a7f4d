// Package cache provides a small write-once key-value store for expensive
// lookups, with an embedded on-disk backend and a Redis backend. Entries are
// immutable: setting an existing key fails, so cached results never change
// silently underneath a reader.
package cache

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("cache: key not found")

// ErrKeyExists is returned by Set when the key is already cached.
var ErrKeyExists = errors.New("cache: key exists")

// Store is a write-once blob cache.
type Store interface {
	Has(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// GetString fetches a cached value as a string.
func GetString(ctx context.Context, s Store, key string) (string, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetString caches a string value.
func SetString(ctx context.Context, s Store, key, value string) error {
	return s.Set(ctx, key, []byte(value))
}
