package cache

import (
	"bytes"
	"compress/zlib"
	"context"
	"fmt"
	"io"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("cache")

// BoltStore keeps entries in an embedded bbolt database, zlib-compressed on
// disk. Safe for concurrent use within one process; the database file is
// locked against other processes.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) a bolt-backed cache at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: init %s: %w", path, err)
	}
	return &BoltStore{db: db}, nil
}

func compress(value []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(value); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(blob []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// Has reports whether key is cached.
func (s *BoltStore) Has(_ context.Context, key string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(boltBucket).Get([]byte(key)) != nil
		return nil
	})
	return found, err
}

// Get returns the cached value for key.
func (s *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		blob = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decompress(blob)
}

// Set caches value under key. An existing key is rejected with ErrKeyExists.
func (s *BoltStore) Set(_ context.Context, key string, value []byte) error {
	blob, err := compress(value)
	if err != nil {
		return fmt.Errorf("cache: compress %s: %w", key, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)
		if b.Get([]byte(key)) != nil {
			return fmt.Errorf("%w: %s", ErrKeyExists, key)
		}
		return b.Put([]byte(key), blob)
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (s *BoltStore) Delete(_ context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
}

// Keys lists all cached keys in byte order.
func (s *BoltStore) Keys(_ context.Context) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// Count returns the number of cached entries.
func (s *BoltStore) Count(_ context.Context) (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(boltBucket).Stats().KeyN
		return nil
	})
	return n, err
}

// Close releases the database file.
func (s *BoltStore) Close() error { return s.db.Close() }
