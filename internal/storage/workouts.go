// ABOUTME: Workout repository: create, upsert, rename, listings, safe delete.
// ABOUTME: Rename updates in place and rejects (body_part_id, name) collisions.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fitlog/fitlog/internal/models"
)

// ErrNotFound reports an operation on an id with no matching row.
var ErrNotFound = errors.New("not found")

// ErrNameConflict reports a rename that would collide with another workout
// under the same body part.
var ErrNameConflict = errors.New("workout name already exists for this body part")

// CreateWorkout inserts a workout unconditionally and returns its id.
// A duplicate (body_part_id, name) pair fails against the v2 unique index;
// callers wanting idempotency use UpsertWorkout.
func (s *Store) CreateWorkout(name string, bodyPartID int64) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO workouts (body_part_id, name) VALUES (?, ?)`, bodyPartID, name)
	if err != nil {
		return 0, fmt.Errorf("create workout %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create workout %q: %w", name, err)
	}
	return id, nil
}

// UpsertWorkout creates the workout for (bodyPartID, name) if absent and
// returns the id either way. Idempotent via the v2 unique index.
func (s *Store) UpsertWorkout(name string, bodyPartID int64) (int64, error) {
	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO workouts (body_part_id, name) VALUES (?, ?)`, bodyPartID, name); err != nil {
			return fmt.Errorf("upsert workout %q: %w", name, err)
		}
		err := tx.QueryRow(`SELECT id FROM workouts WHERE body_part_id = ? AND name = ? LIMIT 1`, bodyPartID, name).Scan(&id)
		if err != nil {
			return fmt.Errorf("fetch workout %q: %w", name, err)
		}
		return nil
	})
	return id, err
}

// RenameWorkout changes a workout's name in place, keeping its id and body
// part. Returns ErrNotFound if the id does not exist and ErrNameConflict if
// another workout under the same body part already has newName.
func (s *Store) RenameWorkout(id int64, newName string) error {
	return s.withTx(func(tx *sql.Tx) error {
		var bodyPartID int64
		err := tx.QueryRow(`SELECT body_part_id FROM workouts WHERE id = ?`, id).Scan(&bodyPartID)
		if err == sql.ErrNoRows {
			return fmt.Errorf("rename workout %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("rename workout %d: %w", id, err)
		}

		var existing int64
		err = tx.QueryRow(
			`SELECT id FROM workouts WHERE body_part_id = ? AND name = ? AND id <> ? LIMIT 1`,
			bodyPartID, newName, id).Scan(&existing)
		if err == nil {
			return fmt.Errorf("rename workout %d to %q: %w", id, newName, ErrNameConflict)
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("rename workout %d: %w", id, err)
		}

		if _, err := tx.Exec(`UPDATE workouts SET name = ? WHERE id = ?`, newName, id); err != nil {
			return fmt.Errorf("rename workout %d: %w", id, err)
		}
		return nil
	})
}

// ListWorkoutsByBodyPart returns a body part's workouts, alphabetical.
func (s *Store) ListWorkoutsByBodyPart(bodyPartID int64) ([]models.Workout, error) {
	rows, err := s.db.Query(
		`SELECT id, body_part_id, name FROM workouts WHERE body_part_id = ? ORDER BY name ASC`, bodyPartID)
	if err != nil {
		return nil, fmt.Errorf("list workouts for body part %d: %w", bodyPartID, err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.BodyPartID, &w.Name); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// ListWorkoutsWithBodyPart returns all workouts joined with their body
// part's name, ordered case-insensitively by body part then workout name.
// A non-empty query filters to rows whose workout or body part name
// contains it, case-insensitively.
func (s *Store) ListWorkoutsWithBodyPart(query string) ([]models.WorkoutWithBodyPart, error) {
	base := `SELECT w.id, w.body_part_id, w.name, bp.name AS body_part_name
	         FROM workouts w
	         JOIN body_parts bp ON bp.id = w.body_part_id`
	order := ` ORDER BY bp.name COLLATE NOCASE ASC, w.name COLLATE NOCASE ASC`

	var rows *sql.Rows
	var err error
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		like := "%" + trimmed + "%"
		rows, err = s.db.Query(base+` WHERE w.name LIKE ? OR bp.name LIKE ?`+order, like, like)
	} else {
		rows, err = s.db.Query(base + order)
	}
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.WorkoutWithBodyPart
	for rows.Next() {
		var w models.WorkoutWithBodyPart
		if err := rows.Scan(&w.ID, &w.BodyPartID, &w.Name, &w.BodyPartName); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// DeleteWorkoutSafe deletes the workout only if no sessions reference it.
// The reference check and the delete run in one transaction.
func (s *Store) DeleteWorkoutSafe(id int64) (DeleteResult, error) {
	var result DeleteResult
	err := s.withTx(func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM workout_logs WHERE workout_id = ?`, id).Scan(&count); err != nil {
			return fmt.Errorf("count logs for workout %d: %w", id, err)
		}
		if count > 0 {
			result = DeleteResult{OK: false, Reason: "Cannot delete: workout has logged sessions."}
			return nil
		}
		if _, err := tx.Exec(`DELETE FROM workouts WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete workout %d: %w", id, err)
		}
		result = DeleteResult{OK: true}
		return nil
	})
	return result, err
}
