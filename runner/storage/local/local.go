// Package local is the disk-backed storage.Store driver. Each blob is one
// file under the configured root directory, keyed by a random UUID.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/flowmech/flow-plugin-dropbox/runner/storage"
)

// Store is a local-disk implementation of storage.Store.
type Store struct {
	root string
}

// New returns a Store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage root directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create storage root failed: %w", err)
	}
	return &Store{root: dir}, nil
}

func (s *Store) Get(_ context.Context, uri string) (io.ReadCloser, error) {
	key, err := storage.KeyFor(uri)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.root, key))
	if err != nil {
		return nil, fmt.Errorf("open stored object %s failed: %w", uri, err)
	}
	return f, nil
}

func (s *Store) Put(_ context.Context, r io.Reader) (string, error) {
	key := uuid.NewString()

	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return "", fmt.Errorf("create stored object failed: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write stored object failed: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close stored object failed: %w", err)
	}

	return storage.URIFor(key), nil
}
