// Package metadata is a small key/value repository over the local SQLite
// `metadata` table. The credential store keeps its slot here.
package metadata

import "context"

// Repository reads and writes opaque values by key.
type Repository interface {
	// Get reports ok=false for a missing key.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Put inserts or replaces key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes every listed key. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// List returns all entries whose key starts with prefix.
	List(ctx context.Context, prefix string) (map[string][]byte, error)
}
