// ABOUTME: Body part repository: list, exact lookup, upsert, safe delete.
// ABOUTME: Safe delete refuses while any workout still references the row.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/fitlog/fitlog/internal/models"
)

// DeleteResult is the outcome of a guarded delete. A refusal is not an
// error: OK is false and Reason carries a message the caller can display.
type DeleteResult struct {
	OK     bool
	Reason string
}

// ListBodyParts returns all body parts in alphabetical order.
func (s *Store) ListBodyParts() ([]models.BodyPart, error) {
	rows, err := s.db.Query(`SELECT id, name FROM body_parts ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list body parts: %w", err)
	}
	defer rows.Close()

	var parts []models.BodyPart
	for rows.Next() {
		var bp models.BodyPart
		if err := rows.Scan(&bp.ID, &bp.Name); err != nil {
			return nil, fmt.Errorf("scan body part: %w", err)
		}
		parts = append(parts, bp)
	}
	return parts, rows.Err()
}

// FindBodyPartID looks up a body part id by exact, case-sensitive name.
// Returns ok=false when no row matches.
func (s *Store) FindBodyPartID(name string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM body_parts WHERE name = ? LIMIT 1`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find body part %q: %w", name, err)
	}
	return id, true, nil
}

// UpsertBodyPart creates the body part if absent and returns its id either
// way. Idempotent via the UNIQUE(name) constraint.
func (s *Store) UpsertBodyPart(name string) (int64, error) {
	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO body_parts (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("upsert body part %q: %w", name, err)
		}
		if err := tx.QueryRow(`SELECT id FROM body_parts WHERE name = ? LIMIT 1`, name).Scan(&id); err != nil {
			return fmt.Errorf("fetch body part %q: %w", name, err)
		}
		return nil
	})
	return id, err
}

// DeleteBodyPartSafe deletes the body part only if no workouts reference
// it. The reference check and the delete run in one transaction.
func (s *Store) DeleteBodyPartSafe(id int64) (DeleteResult, error) {
	var result DeleteResult
	err := s.withTx(func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM workouts WHERE body_part_id = ?`, id).Scan(&count); err != nil {
			return fmt.Errorf("count workouts for body part %d: %w", id, err)
		}
		if count > 0 {
			result = DeleteResult{OK: false, Reason: "Cannot delete: workouts are linked to this body part."}
			return nil
		}
		if _, err := tx.Exec(`DELETE FROM body_parts WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete body part %d: %w", id, err)
		}
		result = DeleteResult{OK: true}
		return nil
	})
	return result, err
}
