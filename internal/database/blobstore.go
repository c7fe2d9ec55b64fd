// Package database provides the persistence layer for the cookbook: a tiny
// keyed blob store holding two JSON documents, the recipe collection and the
// favorites list. Each write replaces the whole blob.
package database

import (
	"context"
	"errors"
	"sync"
)

// Blob keys used by the recipe store. Existing backups use these exact
// names, so they must never change.
const (
	RecipesKey   = "shirleys_kitchen_recipes"
	FavoritesKey = "shirleys_kitchen_favorites"
)

// ErrKeyNotFound is returned by Get when no blob exists under the key.
// A fresh install has neither blob; that is not an error condition upstream.
var ErrKeyNotFound = errors.New("key not found")

// BlobStore is the persistence contract. Implementations must make Set
// visible to a subsequent Get on the same key.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// MemoryStore is an in-process BlobStore used by tests and by the seeder's
// dry-run mode.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.blobs[key] = v
	return nil
}
