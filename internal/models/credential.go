// ABOUTME: Credential model for the single stored username/hash pair.
// ABOUTME: The hash is opaque here; hashing happens in internal/auth.
package models

import "time"

// Credential is the sole stored login pair. At most one row exists;
// every write replaces it.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
