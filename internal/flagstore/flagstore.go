// ABOUTME: Badger-backed key-value store for out-of-band app flags.
// ABOUTME: Holds markers that must live outside the relational store.
package flagstore

import (
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"
)

// Store is a small string-keyed flag store. The relational schema keeps
// its "already initialized" marker here, outside the sqlite file, so a
// deleted database is re-created from scratch only when the marker is
// also gone.
type Store struct {
	db *badger.DB
}

// Open opens or creates the flag store in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create flag store directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open flag store: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get flag %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes key=value durably.
func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set flag %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete flag %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying badger database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
