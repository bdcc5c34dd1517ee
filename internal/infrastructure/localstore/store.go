package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"qrstudio/pkg/logger"
)

// Store is a JSON-file-backed key-value store. Each key maps to one file
// under the data directory. It is the single storage substrate for every
// collection in the service; there are no transactions and concurrent
// writers follow last-writer-wins semantics.
type Store struct {
	dir string
	mu  sync.RWMutex

	watchMu  sync.RWMutex
	watchers []func(key string)
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get decodes the value stored under key into v. A missing key leaves v
// at its zero value and returns nil. A corrupted file is discarded and
// reset to the empty default.
func (s *Store) Get(key string, v interface{}) error {
	s.mu.RLock()
	data, err := os.ReadFile(s.path(key))
	s.mu.RUnlock()

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("Discarding corrupted store entry %q: %v", key, err)
		s.mu.Lock()
		os.Remove(s.path(key))
		s.mu.Unlock()
		return nil
	}
	return nil
}

// Put marshals v and atomically replaces the value under key, then
// notifies watchers.
func (s *Store) Put(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	s.mu.Lock()
	err = s.writeAtomic(key, data)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(key)
	return nil
}

// Delete removes the value under key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	err := os.Remove(s.path(key))
	s.mu.Unlock()

	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.notify(key)
	return nil
}

// Watch registers fn to be called with the key of every mutation. This is
// the "storage changed" broadcast that keeps open admin views current
// without polling.
func (s *Store) Watch(fn func(key string)) {
	s.watchMu.Lock()
	s.watchers = append(s.watchers, fn)
	s.watchMu.Unlock()
}

func (s *Store) notify(key string) {
	s.watchMu.RLock()
	defer s.watchMu.RUnlock()
	for _, fn := range s.watchers {
		fn(key)
	}
}

func (s *Store) writeAtomic(key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
