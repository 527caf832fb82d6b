package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each key as one file under a data directory.
// Writes go to a temp file first and are renamed into place, so a crash
// mid-write never leaves a half-written blob behind.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir, creating the directory
// if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv.NewFileStore: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the value stored for key. Returns ErrNoKey if it was never set.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoKey
		}
		return nil, fmt.Errorf("kv.FileStore.Get: %w", err)
	}
	return b, nil
}

// Set overwrites the value stored for key as a single atomic unit.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("kv.FileStore.Set: %w", err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("kv.FileStore.Set: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv.FileStore.Set: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv.FileStore.Set: %w", err)
	}
	return nil
}

// Delete removes the value stored for key. Deleting a missing key is a no-op.
func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("kv.FileStore.Delete: %w", err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
