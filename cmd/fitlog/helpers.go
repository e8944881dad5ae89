// ABOUTME: Shared CLI helpers: timestamp parsing, set specs, formatting.
// ABOUTME: Used across the log, history, and summary commands.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fitlog/fitlog/internal/models"
)

// parseTime accepts the formats users actually type.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}

// parseSetSpec parses a REPSxWEIGHT spec like "10x135" or "8x62.5".
// Set numbers are assigned by position at the call site.
func parseSetSpec(spec string) (reps int, weight float64, err error) {
	parts := strings.SplitN(strings.ToLower(spec), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid set %q: expected REPSxWEIGHT, e.g. 10x135", spec)
	}
	reps, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reps in set %q", spec)
	}
	weight, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid weight in set %q", spec)
	}
	return reps, weight, nil
}

// parseID parses a positive integer id argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %s", what, arg)
	}
	return id, nil
}

// formatVolume renders a nullable volume for display.
func formatVolume(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatWhen renders a nullable timestamp for display.
func formatWhen(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format("2006-01-02 15:04")
}

// setEntriesFromSpecs converts positional REPSxWEIGHT specs into validated
// set entries numbered from 1.
func setEntriesFromSpecs(specs []string) ([]models.SetEntry, error) {
	entries := make([]models.SetEntry, 0, len(specs))
	for i, spec := range specs {
		reps, weight, err := parseSetSpec(spec)
		if err != nil {
			return nil, err
		}
		entry := models.SetEntry{SetNumber: i + 1, Reps: reps, Weight: weight}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("set %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
