// Package file provides a local file-backed persistence adapter: one JSON
// blob per role key under a base directory. This is the "device storage"
// backend — no server dependencies.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"micoach/coaching-app/internal/repository"
)

// fileKeyValueStore implements repository.KeyValueStore on the filesystem.
type fileKeyValueStore struct {
	basePath string
}

// NewFileKeyValueStore creates the store and ensures the base directory
// exists.
func NewFileKeyValueStore(basePath string) (repository.KeyValueStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &fileKeyValueStore{basePath: basePath}, nil
}

func (s *fileKeyValueStore) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

func (s *fileKeyValueStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *fileKeyValueStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("failed to write state file for %s: %w", key, err)
	}
	return nil
}

func (s *fileKeyValueStore) Remove(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
