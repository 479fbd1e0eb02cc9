package blob

import (
	"context"
	"sync"

	"jobtrack/internal/domain/repositories"
)

// MemoryStore is an in-memory BlobStore for tests
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

var _ repositories.BlobStore = (*MemoryStore)(nil)

// Get returns the slot's contents, or (nil, nil) if the slot is absent
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put replaces the slot's contents
func (s *MemoryStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.slots[key] = stored
	return nil
}
