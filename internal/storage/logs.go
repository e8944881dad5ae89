// ABOUTME: Session repository: create logs, append sets, history, summaries.
// ABOUTME: Saving a session with its sets is a single transaction.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/models"
)

// CreateLog inserts one session row for the workout and returns its id.
// A zero loggedAt uses the store's current time.
func (s *Store) CreateLog(workoutID int64, loggedAt time.Time) (int64, error) {
	var res sql.Result
	var err error
	if loggedAt.IsZero() {
		res, err = s.db.Exec(`INSERT INTO workout_logs (workout_id) VALUES (?)`, workoutID)
	} else {
		res, err = s.db.Exec(
			`INSERT INTO workout_logs (workout_id, logged_at) VALUES (?, ?)`,
			workoutID, formatTime(loggedAt))
	}
	if err != nil {
		return 0, fmt.Errorf("create log for workout %d: %w", workoutID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create log for workout %d: %w", workoutID, err)
	}
	return id, nil
}

// AddSet appends one set to an existing session. A zero performedAt uses
// the store's current time.
func (s *Store) AddSet(logID int64, setNumber, reps int, weight float64, performedAt time.Time) error {
	var err error
	if performedAt.IsZero() {
		_, err = s.db.Exec(
			`INSERT INTO workout_sets (workout_log_id, set_number, reps, weight) VALUES (?, ?, ?, ?)`,
			logID, setNumber, reps, weight)
	} else {
		_, err = s.db.Exec(
			`INSERT INTO workout_sets (workout_log_id, set_number, reps, weight, performed_at) VALUES (?, ?, ?, ?, ?)`,
			logID, setNumber, reps, weight, formatTime(performedAt))
	}
	if err != nil {
		return fmt.Errorf("add set %d to log %d: %w", setNumber, logID, err)
	}
	return nil
}

// AddSessionWithSets creates the session and all its sets in one
// transaction: an interruption leaves either the full session or nothing,
// and no reader ever sees a partially-saved session. This is the primary
// save path when a user finishes logging a workout.
func (s *Store) AddSessionWithSets(workoutID int64, sets []models.SetEntry, loggedAt time.Time) (int64, error) {
	var logID int64
	err := s.withTx(func(tx *sql.Tx) error {
		var res sql.Result
		var err error
		if loggedAt.IsZero() {
			res, err = tx.Exec(`INSERT INTO workout_logs (workout_id) VALUES (?)`, workoutID)
		} else {
			res, err = tx.Exec(
				`INSERT INTO workout_logs (workout_id, logged_at) VALUES (?, ?)`,
				workoutID, formatTime(loggedAt))
		}
		if err != nil {
			return fmt.Errorf("create log for workout %d: %w", workoutID, err)
		}
		logID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("create log for workout %d: %w", workoutID, err)
		}

		for _, entry := range sets {
			if entry.PerformedAt.IsZero() {
				_, err = tx.Exec(
					`INSERT INTO workout_sets (workout_log_id, set_number, reps, weight) VALUES (?, ?, ?, ?)`,
					logID, entry.SetNumber, entry.Reps, entry.Weight)
			} else {
				_, err = tx.Exec(
					`INSERT INTO workout_sets (workout_log_id, set_number, reps, weight, performed_at) VALUES (?, ?, ?, ?, ?)`,
					logID, entry.SetNumber, entry.Reps, entry.Weight, formatTime(entry.PerformedAt))
			}
			if err != nil {
				return fmt.Errorf("add set %d: %w", entry.SetNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return logID, nil
}

// ListSetsForLog returns a session's sets ordered by set number.
func (s *Store) ListSetsForLog(logID int64) ([]models.WorkoutSet, error) {
	rows, err := s.db.Query(
		`SELECT id, workout_log_id, set_number, reps, weight, performed_at
		 FROM workout_sets
		 WHERE workout_log_id = ?
		 ORDER BY set_number ASC`, logID)
	if err != nil {
		return nil, fmt.Errorf("list sets for log %d: %w", logID, err)
	}
	defer rows.Close()

	var sets []models.WorkoutSet
	for rows.Next() {
		var ws models.WorkoutSet
		var performedAt string
		if err := rows.Scan(&ws.ID, &ws.WorkoutLogID, &ws.SetNumber, &ws.Reps, &ws.Weight, &performedAt); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		if ws.PerformedAt, err = parseStoreTime(performedAt); err != nil {
			return nil, err
		}
		sets = append(sets, ws)
	}
	return sets, rows.Err()
}

// DeleteLog removes a session and its sets in one transaction, so no
// orphaned sets survive. Returns ErrNotFound if the log does not exist.
func (s *Store) DeleteLog(logID int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM workout_sets WHERE workout_log_id = ?`, logID); err != nil {
			return fmt.Errorf("delete sets for log %d: %w", logID, err)
		}
		res, err := tx.Exec(`DELETE FROM workout_logs WHERE id = ?`, logID)
		if err != nil {
			return fmt.Errorf("delete log %d: %w", logID, err)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return fmt.Errorf("delete log %d: %w", logID, ErrNotFound)
		}
		return nil
	})
}

// GetHistory returns one row per session of the workout, most recent
// first, each with its set count and total volume. TotalVolume is nil for
// a session with no sets.
func (s *Store) GetHistory(workoutID int64, limit, offset int) ([]models.HistoryRow, error) {
	rows, err := s.db.Query(
		`SELECT wl.id, wl.logged_at, COUNT(ws.id), SUM(ws.reps * ws.weight)
		 FROM workout_logs wl
		 LEFT JOIN workout_sets ws ON ws.workout_log_id = wl.id
		 WHERE wl.workout_id = ?
		 GROUP BY wl.id
		 ORDER BY datetime(wl.logged_at) DESC
		 LIMIT ? OFFSET ?`, workoutID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("history for workout %d: %w", workoutID, err)
	}
	defer rows.Close()

	var history []models.HistoryRow
	for rows.Next() {
		var row models.HistoryRow
		var loggedAt string
		var volume sql.NullFloat64
		if err := rows.Scan(&row.LogID, &loggedAt, &row.SetCount, &volume); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if row.LoggedAt, err = parseStoreTime(loggedAt); err != nil {
			return nil, err
		}
		if volume.Valid {
			v := volume.Float64
			row.TotalVolume = &v
		}
		history = append(history, row)
	}
	return history, rows.Err()
}

// summaryQuery aggregates one row per workout: session count, most-recent
// session time, and that session's volume. The last_volume CTE computes
// per-session volumes; joining it on the last_log timestamp picks out the
// most recent one.
const summaryQuery = `
WITH last_log AS (
    SELECT wl.workout_id,
           MAX(datetime(wl.logged_at)) AS last_logged_at
    FROM workout_logs wl
    GROUP BY wl.workout_id
),
last_volume AS (
    SELECT wl.workout_id,
           wl.logged_at,
           SUM(ws.reps * ws.weight) AS volume
    FROM workout_logs wl
    LEFT JOIN workout_sets ws ON ws.workout_log_id = wl.id
    GROUP BY wl.id
)
SELECT w.id              AS workout_id,
       w.name            AS workout_name,
       bp.id             AS body_part_id,
       bp.name           AS body_part_name,
       COUNT(wl.id)      AS sessions,
       ll.last_logged_at AS last_logged_at,
       lv.volume         AS last_volume
FROM workouts w
JOIN body_parts bp ON bp.id = w.body_part_id
LEFT JOIN workout_logs wl ON wl.workout_id = w.id
LEFT JOIN last_log ll ON ll.workout_id = w.id
LEFT JOIN last_volume lv ON lv.workout_id = w.id
                         AND datetime(lv.logged_at) = ll.last_logged_at
%s
GROUP BY w.id
ORDER BY datetime(ll.last_logged_at) DESC NULLS LAST,
         bp.name COLLATE NOCASE, w.name COLLATE NOCASE
%s`

// ListSummaries returns paginated per-workout summaries across all body
// parts: most recently logged first, never-logged workouts last, ties
// broken by body part then workout name.
func (s *Store) ListSummaries(limit, offset int) ([]models.WorkoutSummary, error) {
	query := fmt.Sprintf(summaryQuery, "", "LIMIT ? OFFSET ?")
	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// GetSummary returns the summary for one workout, or nil if the workout
// does not exist. The aggregate is filtered by workout id directly rather
// than paged, so it is correct for every workout, not just the top-ranked
// one.
func (s *Store) GetSummary(workoutID int64) (*models.WorkoutSummary, error) {
	query := fmt.Sprintf(summaryQuery, "WHERE w.id = ?", "")
	rows, err := s.db.Query(query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("summary for workout %d: %w", workoutID, err)
	}
	defer rows.Close()

	summaries, err := scanSummaries(rows)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, nil
	}
	return &summaries[0], nil
}

func scanSummaries(rows *sql.Rows) ([]models.WorkoutSummary, error) {
	var summaries []models.WorkoutSummary
	for rows.Next() {
		var ws models.WorkoutSummary
		var lastLoggedAt sql.NullString
		var lastVolume sql.NullFloat64
		err := rows.Scan(&ws.WorkoutID, &ws.WorkoutName, &ws.BodyPartID, &ws.BodyPartName,
			&ws.Sessions, &lastLoggedAt, &lastVolume)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		if lastLoggedAt.Valid {
			t, err := parseStoreTime(lastLoggedAt.String)
			if err != nil {
				return nil, err
			}
			ws.LastLoggedAt = &t
		}
		if lastVolume.Valid {
			v := lastVolume.Float64
			ws.LastVolume = &v
		}
		summaries = append(summaries, ws)
	}
	return summaries, rows.Err()
}
