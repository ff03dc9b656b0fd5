package nexo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Logical storage keys. They are stable identifiers: renaming one orphans
// the data previously stored under it.
const (
	KeyUsers        = "nexo_users"
	KeyUserSession  = "nexo_session"
	KeyAdminSession = "nexo_admin_session"
	KeyAccounts     = "nexo_accounts_v1"
	KeyTransactions = "nexo_transactions_v1"
	KeyTheme        = "nexo_theme"
)

// StorageKeys returns every logical key the core persists, in a fixed order.
func StorageKeys() []string {
	return []string{KeyUsers, KeyUserSession, KeyAdminSession, KeyAccounts, KeyTransactions, KeyTheme}
}

// Store is the key-value persistence contract every component writes
// through. Values are opaque serialized records; a Set is a full overwrite
// of whatever was stored under the key. There are no transactions, no
// locking and no versioning: the core assumes a single writer.
type Store interface {
	// Get returns the record stored under key, or ok=false when the key is
	// absent. An absent key is not an error.
	Get(key string) (value []byte, ok bool, err error)
	// Set overwrites the record stored under key.
	Set(key string, value []byte) error
	// Remove deletes the record stored under key. Removing an absent key is
	// a no-op.
	Remove(key string) error
}

// MemStore is an in-memory Store. It is used by tests and by ephemeral demo
// runs that should not touch the disk.
type MemStore struct {
	records map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.records[key]
	return v, ok, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	s.records[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemStore) Remove(key string) error {
	delete(s.records, key)
	return nil
}

// DirStore persists each logical key as one JSON file under a data
// directory. It is the durable analog of the browser's local storage: one
// blob per key, rewritten whole on every Set.
type DirStore struct {
	dir string
}

// OpenDirStore creates the data directory if needed and returns a store
// rooted at it.
func OpenDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *DirStore) Dir() string { return s.dir }

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read record %q: %w", key, err)
	}
	return data, true, nil
}

func (s *DirStore) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o600); err != nil {
		return fmt.Errorf("could not write record %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// loadRecord reads and decodes the record stored under key. ok is false
// when the key is absent; the caller supplies the documented default.
func loadRecord[T any](s Store, key string) (v T, ok bool, err error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return v, ok, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("could not decode record %q: %w", key, err)
	}
	return v, true, nil
}

// saveRecord encodes v and overwrites the record stored under key.
func saveRecord[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode record %q: %w", key, err)
	}
	return s.Set(key, raw)
}
