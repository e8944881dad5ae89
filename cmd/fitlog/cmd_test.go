// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers parseTime, parseSetSpec, id parsing, and formatting.
package main

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"date and time with space", "2025-01-31 08:30", false},
		{"date and time with T", "2025-01-31T08:30", false},
		{"date and time with seconds", "2025-01-31 08:30:15", false},
		{"date only", "2025-01-31", false},
		{"RFC3339", "2025-01-31T08:30:00Z", false},
		{"invalid format", "31-01-2025", true},
		{"random string", "not a date", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTime(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("parseTime(%q) expected error, got nil", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("parseTime(%q) failed: %v", tt.input, err)
			}
		})
	}
}

func TestParseSetSpec(t *testing.T) {
	tests := []struct {
		input      string
		wantReps   int
		wantWeight float64
		wantErr    bool
	}{
		{"10x135", 10, 135, false},
		{"8x62.5", 8, 62.5, false},
		{"5X225", 5, 225, false},
		{"10", 0, 0, true},
		{"x135", 0, 0, true},
		{"tenx135", 0, 0, true},
		{"10xheavy", 0, 0, true},
	}

	for _, tt := range tests {
		reps, weight, err := parseSetSpec(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSetSpec(%q) expected error, got nil", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSetSpec(%q) failed: %v", tt.input, err)
			continue
		}
		if reps != tt.wantReps || weight != tt.wantWeight {
			t.Errorf("parseSetSpec(%q) = (%d, %g), want (%d, %g)",
				tt.input, reps, weight, tt.wantReps, tt.wantWeight)
		}
	}
}

func TestSetEntriesFromSpecs(t *testing.T) {
	entries, err := setEntriesFromSpecs([]string{"10x135", "8x145"})
	if err != nil {
		t.Fatalf("setEntriesFromSpecs failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].SetNumber != 1 || entries[1].SetNumber != 2 {
		t.Error("set numbers should be assigned by position from 1")
	}

	// Validation rejects non-positive values.
	if _, err := setEntriesFromSpecs([]string{"0x135"}); err == nil {
		t.Error("expected zero reps to be rejected")
	}
}

func TestParseID(t *testing.T) {
	if _, err := parseID("7", "workout"); err != nil {
		t.Errorf("parseID(7) failed: %v", err)
	}
	for _, bad := range []string{"0", "-3", "abc", ""} {
		if _, err := parseID(bad, "workout"); err == nil {
			t.Errorf("parseID(%q) expected error", bad)
		}
	}
}

func TestFormatVolume(t *testing.T) {
	if got := formatVolume(nil); got != "-" {
		t.Errorf("formatVolume(nil) = %q, want -", got)
	}
	v := 2510.0
	if got := formatVolume(&v); got != "2510" {
		t.Errorf("formatVolume(2510) = %q, want 2510", got)
	}
}

func TestFormatWhen(t *testing.T) {
	if got := formatWhen(nil); got != "never" {
		t.Errorf("formatWhen(nil) = %q, want never", got)
	}
	ts := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	if got := formatWhen(&ts); got != "2025-01-10 09:00" {
		t.Errorf("formatWhen = %q", got)
	}
}
