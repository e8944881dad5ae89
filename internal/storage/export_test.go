// ABOUTME: Tests for export snapshots.
// ABOUTME: Covers JSON/YAML round trips and flat CSV coverage of all rows.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fitlog/fitlog/internal/models"
)

func seedExportData(t *testing.T, s *Store) {
	t.Helper()
	benchID := mustUpsertWorkout(t, s, "Chest", "Bench Press")
	mustUpsertWorkout(t, s, "Legs", "Squat") // never logged

	if _, err := s.AddSessionWithSets(benchID, []models.SetEntry{
		{SetNumber: 1, Reps: 10, Weight: 135},
		{SetNumber: 2, Reps: 8, Weight: 145},
	}, at(t, "2025-01-10 09:00:00")); err != nil {
		t.Fatalf("AddSessionWithSets failed: %v", err)
	}
	if _, err := s.CreateLog(benchID, at(t, "2025-01-17 09:00:00")); err != nil {
		t.Fatalf("CreateLog failed: %v", err)
	}
}

func TestGetAllData(t *testing.T) {
	s := setupTestStore(t)
	seedExportData(t, s)

	data, err := s.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	if len(data.BodyParts) != 6 {
		t.Errorf("body parts = %d, want 6 (seeded set)", len(data.BodyParts))
	}
	if len(data.Workouts) != 2 {
		t.Errorf("workouts = %d, want 2", len(data.Workouts))
	}
	if len(data.Logs) != 2 {
		t.Errorf("logs = %d, want 2", len(data.Logs))
	}
	if len(data.Sets) != 2 {
		t.Errorf("sets = %d, want 2", len(data.Sets))
	}
	if data.Tool != "fitlog" || data.Version != "1.0" {
		t.Errorf("snapshot header = (%s, %s)", data.Tool, data.Version)
	}
}

func TestExportJSON(t *testing.T) {
	s := setupTestStore(t)
	seedExportData(t, s)

	out, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var decoded ExportData
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded.Sets) != 2 {
		t.Errorf("decoded sets = %d, want 2", len(decoded.Sets))
	}
}

func TestExportYAML(t *testing.T) {
	s := setupTestStore(t)
	seedExportData(t, s)

	out, err := s.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if !strings.Contains(string(out), "body_parts:") {
		t.Error("yaml export missing body_parts section")
	}
}

func TestExportCSVCoversEverything(t *testing.T) {
	s := setupTestStore(t)
	seedExportData(t, s)

	out, err := s.ExportCSV()
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	// Header + 2 set rows + 1 empty-session row + 1 never-logged workout.
	if len(records) != 5 {
		t.Fatalf("csv rows = %d, want 5", len(records))
	}
	if records[0][0] != "body_part" {
		t.Errorf("header = %v", records[0])
	}

	var sawSquat, sawEmptySession bool
	for _, rec := range records[1:] {
		if rec[1] == "Squat" && rec[2] == "" {
			sawSquat = true
		}
		if rec[1] == "Bench Press" && rec[2] != "" && rec[4] == "" {
			sawEmptySession = true
		}
	}
	if !sawSquat {
		t.Error("never-logged workout missing from CSV")
	}
	if !sawEmptySession {
		t.Error("session without sets missing from CSV")
	}
}
