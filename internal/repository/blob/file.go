// Package blob provides named-slot persistence for serialized collections.
// A slot holds one whole collection; writes replace the slot atomically.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"jobtrack/internal/domain"
	"jobtrack/internal/domain/repositories"
)

var slotKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// FileStore persists each slot as one JSON file under a directory.
// Writes go through a temp file and rename so readers never observe a
// partially written slot.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the directory if needed and returns the store
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.StorageUnavailableError{Message: fmt.Sprintf("create data directory: %v", err)}
	}
	return &FileStore{dir: dir}, nil
}

var _ repositories.BlobStore = (*FileStore)(nil)

// Get returns the slot's contents, or (nil, nil) if the slot is absent
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.slotPath(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.StorageUnavailableError{Message: fmt.Sprintf("read slot %q: %v", key, err)}
	}

	return data, nil
}

// Put replaces the slot's contents in a single atomic write
func (s *FileStore) Put(_ context.Context, key string, data []byte) error {
	path, err := s.slotPath(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return &domain.StorageUnavailableError{Message: fmt.Sprintf("write slot %q: %v", key, err)}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &domain.StorageUnavailableError{Message: fmt.Sprintf("write slot %q: %v", key, err)}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &domain.StorageUnavailableError{Message: fmt.Sprintf("write slot %q: %v", key, err)}
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &domain.StorageUnavailableError{Message: fmt.Sprintf("commit slot %q: %v", key, err)}
	}

	return nil
}

func (s *FileStore) slotPath(key string) (string, error) {
	if !slotKeyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid slot key %q: %w", key, domain.ErrValidation)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
