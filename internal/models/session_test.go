// ABOUTME: Tests for set volume helpers and SetEntry validation.
// ABOUTME: Covers positivity conventions and the reps×weight calculation.
package models

import "testing"

func TestWorkoutSetVolume(t *testing.T) {
	s := WorkoutSet{Reps: 10, Weight: 135}
	if got := s.Volume(); got != 1350 {
		t.Errorf("Volume() = %g, want 1350", got)
	}
}

func TestSetEntryVolume(t *testing.T) {
	e := SetEntry{SetNumber: 2, Reps: 8, Weight: 145}
	if got := e.Volume(); got != 1160 {
		t.Errorf("Volume() = %g, want 1160", got)
	}
}

func TestSetEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   SetEntry
		wantErr bool
	}{
		{"valid", SetEntry{SetNumber: 1, Reps: 10, Weight: 135}, false},
		{"zero set number", SetEntry{SetNumber: 0, Reps: 10, Weight: 135}, true},
		{"negative reps", SetEntry{SetNumber: 1, Reps: -1, Weight: 135}, true},
		{"zero reps", SetEntry{SetNumber: 1, Reps: 0, Weight: 135}, true},
		{"zero weight", SetEntry{SetNumber: 1, Reps: 10, Weight: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
