// ABOUTME: SQLite store handle: connection lifecycle, pragmas, first-run init.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fitlog/fitlog/internal/flagstore"
)

// initializedFlag is the out-of-band marker consulted on startup. It lives
// in the flag store, not the sqlite file, so first-run table creation and
// seeding happen exactly once per installation.
const initializedFlag = "db_initialized_v1"

// timeLayout is the sqlite datetime text format. Matches the format the
// DATETIME column defaults produce, so explicit and defaulted timestamps
// sort together under datetime().
const timeLayout = "2006-01-02 15:04:05"

// Store owns the sqlite connection. Construct one with Open and pass it to
// whatever needs the database; there is no package-level singleton.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates a SQLite database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configurePragmas enables referential integrity and sets up sqlite for a
// single local writer.
func (s *Store) configurePragmas() error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// Initialize performs first-run table creation and seeding, guarded by the
// initialized marker in the flag store. Safe to call on every startup: once
// the marker is set, Initialize returns immediately. The marker is written
// only after creation and seeding have fully succeeded, so a failure leaves
// the next startup to try again.
func (s *Store) Initialize(flags *flagstore.Store) error {
	_, done, err := flags.Get(initializedFlag)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	// Tables first, in one transaction.
	err = s.withTx(func(tx *sql.Tx) error {
		for _, stmt := range createStatements {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("create table: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Seed defaults in a separate transaction. INSERT OR IGNORE keeps this
	// idempotent against the UNIQUE(name) constraint.
	err = s.withTx(func(tx *sql.Tx) error {
		for _, name := range defaultBodyParts {
			if _, err := tx.Exec(`INSERT OR IGNORE INTO body_parts (name) VALUES (?)`, name); err != nil {
				return fmt.Errorf("seed body part %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Mark the baseline schema as v1, unless the file already carries a
	// later version (flag store wiped but database kept).
	version, err := s.SchemaVersion()
	if err != nil {
		return err
	}
	if version == 0 {
		if _, err := s.db.Exec("PRAGMA user_version = 1"); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}

	return flags.Set(initializedFlag, "true")
}

// withTx runs fn inside one transaction: every statement applies, or none
// do. This is the atomic-unit primitive every multi-step write goes
// through.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// formatTime renders t in the store's datetime text format, in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseStoreTime parses a timestamp read back from the store.
func parseStoreTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp in database: %w", err)
	}
	return t, nil
}
