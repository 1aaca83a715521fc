package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore keeps artifacts as files under a cache directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a filesystem-backed store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	if dir == "" {
		dir = "cache"
	}
	return &LocalStore{dir: dir}
}

// Put writes the artifact, creating the cache directory on first use.
// The write goes through a temp file and rename so readers never observe a
// partially written artifact.
func (s *LocalStore) Put(ctx context.Context, name, contentType string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	target := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to publish artifact: %w", err)
	}
	return nil
}

// Get reads the artifact bytes from disk.
func (s *LocalStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return data, nil
}
