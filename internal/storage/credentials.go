// ABOUTME: Credential repository: the single stored username/hash pair.
// ABOUTME: Pure storage; hashing and comparison live with the caller.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/fitlog/fitlog/internal/models"
)

// UpsertCredential replaces the sole credential row: delete everything,
// insert the new pair, one transaction. Callers must pass an
// already-hashed value, never a plaintext password.
func (s *Store) UpsertCredential(username, passwordHash string) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM user_credentials`); err != nil {
			return fmt.Errorf("clear credentials: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO user_credentials (username, password_hash) VALUES (?, ?)`,
			username, passwordHash); err != nil {
			return fmt.Errorf("store credential for %q: %w", username, err)
		}
		return nil
	})
}

// GetCredential returns the stored credential, or nil if none exists.
func (s *Store) GetCredential() (*models.Credential, error) {
	var c models.Credential
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, username, password_hash, created_at FROM user_credentials LIMIT 1`).
		Scan(&c.ID, &c.Username, &c.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}
	if c.CreatedAt, err = parseStoreTime(createdAt); err != nil {
		return nil, err
	}
	return &c, nil
}
