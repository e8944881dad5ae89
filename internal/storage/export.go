// ABOUTME: Export snapshots of the full database for backup and sharing.
// ABOUTME: Supports JSON, YAML, and flat CSV serialization.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/fitlog/fitlog/internal/models"
)

// ExportData is the full export format: every table, snapshotted together.
type ExportData struct {
	Version    string                       `json:"version" yaml:"version"`
	ExportID   uuid.UUID                    `json:"export_id" yaml:"export_id"`
	ExportedAt time.Time                    `json:"exported_at" yaml:"exported_at"`
	Tool       string                       `json:"tool" yaml:"tool"`
	BodyParts  []models.BodyPart            `json:"body_parts" yaml:"body_parts"`
	Workouts   []models.WorkoutWithBodyPart `json:"workouts" yaml:"workouts"`
	Logs       []models.WorkoutLog          `json:"logs" yaml:"logs"`
	Sets       []models.WorkoutSet          `json:"sets" yaml:"sets"`
}

// GetAllData reads every table for export.
func (s *Store) GetAllData() (*ExportData, error) {
	bodyParts, err := s.ListBodyParts()
	if err != nil {
		return nil, err
	}

	workouts, err := s.ListWorkoutsWithBodyPart("")
	if err != nil {
		return nil, err
	}

	logs, err := s.listAllLogs()
	if err != nil {
		return nil, err
	}

	sets, err := s.listAllSets()
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:    "1.0",
		ExportID:   uuid.New(),
		ExportedAt: time.Now(),
		Tool:       "fitlog",
		BodyParts:  bodyParts,
		Workouts:   workouts,
		Logs:       logs,
		Sets:       sets,
	}, nil
}

// ExportJSON exports all data as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportCSV exports one flat row per set, joined to its session, workout,
// and body part. Sessions without sets and workouts without sessions still
// appear, with the missing columns empty, so the file covers everything.
func (s *Store) ExportCSV() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}

	workoutsByID := make(map[int64]models.WorkoutWithBodyPart, len(data.Workouts))
	for _, w := range data.Workouts {
		workoutsByID[w.ID] = w
	}
	logsByID := make(map[int64]models.WorkoutLog, len(data.Logs))
	logsWithSets := make(map[int64]bool)
	for _, l := range data.Logs {
		logsByID[l.ID] = l
	}
	workoutsWithLogs := make(map[int64]bool)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"body_part", "workout", "log_id", "logged_at", "set_number", "reps", "weight", "performed_at"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, set := range data.Sets {
		log, ok := logsByID[set.WorkoutLogID]
		if !ok {
			continue
		}
		logsWithSets[log.ID] = true
		workoutsWithLogs[log.WorkoutID] = true
		workout := workoutsByID[log.WorkoutID]
		record := []string{
			workout.BodyPartName,
			workout.Name,
			strconv.FormatInt(log.ID, 10),
			formatTime(log.LoggedAt),
			strconv.Itoa(set.SetNumber),
			strconv.Itoa(set.Reps),
			strconv.FormatFloat(set.Weight, 'f', -1, 64),
			formatTime(set.PerformedAt),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	// Sessions with no sets.
	for _, log := range data.Logs {
		if logsWithSets[log.ID] {
			continue
		}
		workoutsWithLogs[log.WorkoutID] = true
		workout := workoutsByID[log.WorkoutID]
		record := []string{
			workout.BodyPartName, workout.Name,
			strconv.FormatInt(log.ID, 10), formatTime(log.LoggedAt),
			"", "", "", "",
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	// Workouts never logged.
	for _, workout := range data.Workouts {
		if workoutsWithLogs[workout.ID] {
			continue
		}
		record := []string{workout.BodyPartName, workout.Name, "", "", "", "", "", ""}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Store) listAllLogs() ([]models.WorkoutLog, error) {
	rows, err := s.db.Query(
		`SELECT id, workout_id, logged_at FROM workout_logs ORDER BY datetime(logged_at) ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var logs []models.WorkoutLog
	for rows.Next() {
		var l models.WorkoutLog
		var loggedAt string
		if err := rows.Scan(&l.ID, &l.WorkoutID, &loggedAt); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		if l.LoggedAt, err = parseStoreTime(loggedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *Store) listAllSets() ([]models.WorkoutSet, error) {
	rows, err := s.db.Query(
		`SELECT id, workout_log_id, set_number, reps, weight, performed_at
		 FROM workout_sets ORDER BY workout_log_id ASC, set_number ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
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
