// Package client holds the storefront client's local state: the current
// session (token, user, role) and the shopping cart.  Both are plain
// structs fed by an explicitly injected Storage — no ambient globals — and
// follow a load-at-start/save-on-change discipline.  The cart is
// independent of server state until checkout and deliberately survives
// logout.
package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the key-value persistence boundary for client state.  Get
// reports whether the key existed so callers can distinguish "absent" from
// "empty".
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileStore persists keys as a single JSON object in one file, mirroring
// the string-keyed blob semantics of browser localStorage.  Safe for
// concurrent use; every mutation rewrites the file.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// NewFileStore loads (or initializes) a store backed by the given file.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, data: map[string]json.RawMessage{}}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return nil, err
	}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &fs.data); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

func (fs *FileStore) Get(key string) ([]byte, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	v, ok := fs.data[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (fs *FileStore) Set(key string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data[key] = json.RawMessage(value)
	return fs.flush()
}

func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.data, key)
	return fs.flush()
}

// flush writes the whole map atomically: temp file then rename.  Caller
// holds the lock.
func (fs *FileStore) flush() error {
	b, err := json.Marshal(fs.data)
	if err != nil {
		return err
	}
	tmp := fs.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path)
}
