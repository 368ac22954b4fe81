// internal/kvstore/memory.go
package kvstore

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local development.
// It mirrors the redis adapter's semantics: single-key atomicity, no
// cross-key coordination.
type MemoryStore struct {
	mtx  sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.data, key)
	return nil
}

func (s *MemoryStore) ScanPrefix(ctx context.Context, prefix string) (map[string][]byte, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	result := make(map[string][]byte)
	for key, data := range s.data {
		if strings.HasPrefix(key, prefix) {
			out := make([]byte, len(data))
			copy(out, data)
			result[key] = out
		}
	}
	return result, nil
}
