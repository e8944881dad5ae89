// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestStore for isolated, fully-migrated stores.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fitlog/fitlog/internal/flagstore"
)

// setupTestStore opens a fresh store plus flag store in a temp dir,
// initialized and migrated to the current schema version.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, _ := setupTestStoreWithFlags(t)
	return s
}

func setupTestStoreWithFlags(t *testing.T) (*Store, *flagstore.Store) {
	t.Helper()
	dir := t.TempDir()

	flags, err := flagstore.Open(filepath.Join(dir, "flags"))
	if err != nil {
		t.Fatalf("failed to open flag store: %v", err)
	}
	t.Cleanup(func() { flags.Close() })

	s, err := Open(filepath.Join(dir, "fitlog.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Initialize(flags); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	if _, err := s.Migrate(); err != nil {
		t.Fatalf("failed to migrate store: %v", err)
	}
	return s, flags
}

// mustUpsertWorkout creates (or fetches) a workout under the named body
// part and returns its id.
func mustUpsertWorkout(t *testing.T, s *Store, bodyPart, name string) int64 {
	t.Helper()
	bpID, err := s.UpsertBodyPart(bodyPart)
	if err != nil {
		t.Fatalf("UpsertBodyPart failed: %v", err)
	}
	wID, err := s.UpsertWorkout(name, bpID)
	if err != nil {
		t.Fatalf("UpsertWorkout failed: %v", err)
	}
	return wID
}

// at builds a fixed timestamp for deterministic ordering in tests.
func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return ts
}
