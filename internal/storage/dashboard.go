// ABOUTME: Dashboard query: the full set series for one workout.
// ABOUTME: Feeds progress charts (weight and reps over time).
package storage

import (
	"fmt"

	"github.com/fitlog/fitlog/internal/models"
)

// GetSetsForWorkout returns every set ever logged for the workout as a
// chart series, ordered by session time then set number.
func (s *Store) GetSetsForWorkout(workoutID int64) ([]models.SetPoint, error) {
	rows, err := s.db.Query(
		`SELECT wl.logged_at, ws.set_number, ws.reps, ws.weight
		 FROM workout_logs wl
		 JOIN workout_sets ws ON ws.workout_log_id = wl.id
		 WHERE wl.workout_id = ?
		 ORDER BY datetime(wl.logged_at) ASC, ws.set_number ASC`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("sets for workout %d: %w", workoutID, err)
	}
	defer rows.Close()

	var points []models.SetPoint
	for rows.Next() {
		var p models.SetPoint
		var loggedAt string
		if err := rows.Scan(&loggedAt, &p.SetNumber, &p.Reps, &p.Weight); err != nil {
			return nil, fmt.Errorf("scan set point: %w", err)
		}
		if p.LoggedAt, err = parseStoreTime(loggedAt); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
