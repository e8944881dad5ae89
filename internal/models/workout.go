// ABOUTME: BodyPart and Workout models for the fitness tracker.
// ABOUTME: Workouts belong to a body part; names are unique per body part.
package models

// BodyPart is a reference-data row (Chest, Back, Legs, ...).
type BodyPart struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Workout is a named exercise under a body part.
// The (BodyPartID, Name) pair is unique from schema v2 onward.
type Workout struct {
	ID         int64  `json:"id" yaml:"id"`
	BodyPartID int64  `json:"body_part_id" yaml:"body_part_id"`
	Name       string `json:"name" yaml:"name"`
}

// WorkoutWithBodyPart is a workout row joined with its body part's
// display name, as returned by search/listing queries.
type WorkoutWithBodyPart struct {
	ID           int64  `json:"id" yaml:"id"`
	BodyPartID   int64  `json:"body_part_id" yaml:"body_part_id"`
	Name         string `json:"name" yaml:"name"`
	BodyPartName string `json:"body_part_name" yaml:"body_part_name"`
}
