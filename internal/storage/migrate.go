// ABOUTME: Schema migration runner keyed on PRAGMA user_version.
// ABOUTME: Applies pending steps in order, each step one transaction.
package storage

import (
	"database/sql"
	"fmt"
)

// targetSchemaVersion is the version Migrate brings the database to.
const targetSchemaVersion = 2

// A migration advances the schema to exactly version. Steps use IF NOT
// EXISTS so re-applying against an already-migrated file is a no-op.
type migration struct {
	version int
	apply   func(tx *sql.Tx) error
}

var migrations = []migration{
	{version: 2, apply: v2AddIndexesAndUniqueWorkout},
}

// SchemaVersion reads the persisted schema version.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Migrate applies all pending migration steps in order and returns the new
// version. Each step and its version bump commit in one transaction, so a
// step either fully applies or not at all. Safe to call on every startup;
// already-current databases are a no-op.
func (s *Store) Migrate() (int, error) {
	current, err := s.SchemaVersion()
	if err != nil {
		return 0, err
	}

	for _, m := range migrations {
		if current >= m.version {
			continue
		}
		err := s.withTx(func(tx *sql.Tx) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			// user_version lives in the database header and commits with
			// the transaction.
			if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
				return fmt.Errorf("set schema version %d: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return current, fmt.Errorf("migrate to v%d: %w", m.version, err)
		}
		current = m.version
	}

	return current, nil
}

// v2AddIndexesAndUniqueWorkout prevents duplicate workout names under the
// same body part and adds lookup indexes for the common joins.
func v2AddIndexesAndUniqueWorkout(tx *sql.Tx) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_workouts_unique ON workouts(body_part_id, name)`,
		`CREATE INDEX IF NOT EXISTS idx_workout_logs_workout_id ON workout_logs(workout_id)`,
		`CREATE INDEX IF NOT EXISTS idx_workout_sets_log_id ON workout_sets(workout_log_id)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
