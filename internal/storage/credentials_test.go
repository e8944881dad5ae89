// ABOUTME: Tests for the single-row credential repository.
// ABOUTME: Covers replace-on-write and the at-most-one-row invariant.
package storage

import "testing"

func TestGetCredentialAbsent(t *testing.T) {
	s := setupTestStore(t)

	c, err := s.GetCredential()
	if err != nil {
		t.Fatalf("GetCredential failed: %v", err)
	}
	if c != nil {
		t.Errorf("expected nil credential, got %+v", c)
	}
}

func TestUpsertCredential(t *testing.T) {
	s := setupTestStore(t)

	if err := s.UpsertCredential("harper", "$2a$10$fakehash"); err != nil {
		t.Fatalf("UpsertCredential failed: %v", err)
	}

	c, err := s.GetCredential()
	if err != nil {
		t.Fatalf("GetCredential failed: %v", err)
	}
	if c == nil {
		t.Fatal("expected a stored credential")
	}
	if c.Username != "harper" || c.PasswordHash != "$2a$10$fakehash" {
		t.Errorf("got (%s, %s), want (harper, $2a$10$fakehash)", c.Username, c.PasswordHash)
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be populated by the store")
	}
}

func TestUpsertCredentialReplaces(t *testing.T) {
	s := setupTestStore(t)

	s.UpsertCredential("first", "hash1")
	if err := s.UpsertCredential("second", "hash2"); err != nil {
		t.Fatalf("second UpsertCredential failed: %v", err)
	}

	c, _ := s.GetCredential()
	if c == nil || c.Username != "second" {
		t.Fatalf("expected replacement credential, got %+v", c)
	}

	// At most one row ever exists.
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM user_credentials`).Scan(&count); err != nil {
		t.Fatalf("count credentials: %v", err)
	}
	if count != 1 {
		t.Errorf("credential rows = %d, want 1", count)
	}
}
