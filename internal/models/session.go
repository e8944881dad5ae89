// ABOUTME: Session (WorkoutLog) and WorkoutSet models plus derived rows.
// ABOUTME: Includes volume helpers and the SetEntry input type for saves.
package models

import (
	"fmt"
	"time"
)

// WorkoutLog is one timestamped session of performing a workout.
type WorkoutLog struct {
	ID        int64     `json:"id" yaml:"id"`
	WorkoutID int64     `json:"workout_id" yaml:"workout_id"`
	LoggedAt  time.Time `json:"logged_at" yaml:"logged_at"`
}

// WorkoutSet is one recorded (reps, weight) pair within a session.
// Immutable after creation.
type WorkoutSet struct {
	ID           int64     `json:"id" yaml:"id"`
	WorkoutLogID int64     `json:"workout_log_id" yaml:"workout_log_id"`
	SetNumber    int       `json:"set_number" yaml:"set_number"`
	Reps         int       `json:"reps" yaml:"reps"`
	Weight       float64   `json:"weight" yaml:"weight"`
	PerformedAt  time.Time `json:"performed_at" yaml:"performed_at"`
}

// Volume returns reps × weight, the training-load proxy for one set.
func (s WorkoutSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// SetEntry is the caller-supplied shape for a set when saving a session.
// A zero PerformedAt means "use the store's current time".
type SetEntry struct {
	SetNumber   int
	Reps        int
	Weight      float64
	PerformedAt time.Time
}

// Validate checks the positivity conventions for a set entry.
func (e SetEntry) Validate() error {
	if e.SetNumber <= 0 {
		return fmt.Errorf("set number must be positive, got %d", e.SetNumber)
	}
	if e.Reps <= 0 {
		return fmt.Errorf("reps must be positive, got %d", e.Reps)
	}
	if e.Weight <= 0 {
		return fmt.Errorf("weight must be positive, got %g", e.Weight)
	}
	return nil
}

// Volume returns reps × weight for the entry.
func (e SetEntry) Volume() float64 {
	return float64(e.Reps) * e.Weight
}

// HistoryRow is one session of a workout with per-session aggregates.
// TotalVolume is nil for a session with no sets.
type HistoryRow struct {
	LogID       int64
	LoggedAt    time.Time
	SetCount    int
	TotalVolume *float64
}

// WorkoutSummary is the per-workout dashboard row: session count plus the
// most-recent session's timestamp and volume. LastLoggedAt and LastVolume
// are nil for a workout that has never been logged.
type WorkoutSummary struct {
	WorkoutID    int64
	WorkoutName  string
	BodyPartID   int64
	BodyPartName string
	Sessions     int
	LastLoggedAt *time.Time
	LastVolume   *float64
}

// SetPoint is one set in a workout's chart series, ordered by session
// time then set number.
type SetPoint struct {
	LoggedAt  time.Time
	SetNumber int
	Reps      int
	Weight    float64
}
