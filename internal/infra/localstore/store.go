// Package localstore implements the persistence ports on a local keyed
// store: one JSON file per key, replaced wholesale on every write. It is the
// Go counterpart of the browser's origin-scoped key-value storage and is
// owned by the single active session; concurrent writers from another
// process would be last-write-wins, which is an accepted limitation.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"shopfront/internal/errors"
)

// Store is a keyed JSON store rooted at a directory.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// New creates the store directory if needed and returns the store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create store directory")
	}

	return &Store{dir: dir}, nil
}

// Get reads the record under key into v. The boolean reports whether the key
// exists at all.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to read key %s", key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "failed to decode key %s", key)
	}

	return true, nil
}

// Put serializes v and replaces the record under key. The write goes through
// a temp file and a rename so a crash never leaves a half-written record.
func (s *Store) Put(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode key %s", key)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to write key %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to close temp file for key %s", key)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to replace key %s", key)
	}

	return nil
}

// Delete removes the record under key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}

	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
