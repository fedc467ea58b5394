package repositories

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	productsFile = "products.json"
	usersFile    = "users.json"
	ordersFile   = "orders.json"
)

// FileStore persists each resource as one pretty-printed JSON array file
// under dir. Every save is a whole-file overwrite, so a per-file mutex
// serializes each load-mutate-save cycle; without it two concurrent
// writers would race and the last one would silently win (lost-update).
// Single-instance only: the lock does not protect against a second
// process writing the same files.
type FileStore struct {
	dir   string
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
		locks: map[string]*sync.Mutex{
			productsFile: {},
			usersFile:    {},
			ordersFile:   {},
		},
	}
}

// lock acquires the named resource's mutex and returns its unlock func.
func (s *FileStore) lock(name string) func() {
	mu := s.locks[name]
	mu.Lock()
	return mu.Unlock
}

// read unmarshals the named file into v. A missing or empty file leaves
// v untouched so callers start from an empty slice.
func (s *FileStore) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// write overwrites the named file with v as indented JSON.
func (s *FileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
