package kvstore

import (
	"context"
)

// Store is the persistent key-value store.
type Store interface {
	// Get returns the value under key or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany writes all pairs atomically.
	SetMany(ctx context.Context, values map[string][]byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}
