// internal/kvstore/store.go
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists under the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value persistence contract every repository builds on.
// Each operation is atomic at the single-key level only; there are no
// multi-key transactions and no cross-key ordering guarantees. Callers
// performing read-modify-write sequences get last-write-wins semantics.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// ScanPrefix returns every key/value pair whose key starts with prefix.
	ScanPrefix(ctx context.Context, prefix string) (map[string][]byte, error)
}
