// Package lockstore implements lockfile persistence as a flat JSON file.
package lockstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LockfileStore using a flat JSON file.
type Store struct {
	path string
	mu   sync.RWMutex
}

// NewStore creates a new LockfileStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Read retrieves the current lockfile. Returns nil, nil if none exists yet.
func (s *Store) Read() (*domain.Lockfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var lock domain.Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockUnmarshalFailed.Error()), "path", s.path)
	}

	return &lock, nil
}

// Write stores the lockfile.
func (s *Store) Write(lock domain.Lockfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", s.path)
	}

	return nil
}
