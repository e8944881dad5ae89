// ABOUTME: Integration tests for the fitlog CLI binary.
// ABOUTME: Builds the binary and drives a full tracking workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	fitlogBinary := filepath.Join(projectRoot, "fitlog")

	buildCmd := exec.Command("go", "build", "-o", fitlogBinary, "./cmd/fitlog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(fitlogBinary)

	// Use a temp data directory
	dataDir := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", dataDir}, args...)
		cmd := exec.Command(fitlogBinary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Default body parts are seeded on first run
	output, err := run("bodypart", "list")
	if err != nil {
		t.Fatalf("Failed to list body parts: %v\n%s", err, output)
	}
	for _, name := range []string{"Chest", "Back", "Legs", "Shoulders", "Arms", "Abs"} {
		if !strings.Contains(output, name) {
			t.Errorf("Expected seeded body part %s in output, got: %s", name, output)
		}
	}

	// Add a workout (idempotent both times)
	output, err = run("workout", "add", "Chest", "Bench Press")
	if err != nil {
		t.Fatalf("Failed to add workout: %v\n%s", err, output)
	}
	output2, err := run("workout", "add", "Chest", "Bench Press")
	if err != nil {
		t.Fatalf("Failed to re-add workout: %v\n%s", err, output2)
	}
	if output != output2 {
		t.Errorf("Re-adding an existing workout should return the same id:\n%s\nvs\n%s", output, output2)
	}

	// Search finds it by body part and by name, case-insensitively
	output, err = run("workout", "search", "bench")
	if err != nil {
		t.Fatalf("Failed to search: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench Press") {
		t.Errorf("Expected search to find Bench Press, got: %s", output)
	}

	// Log a session: workout id is 1 (first workout created)
	output, err = run("log", "add", "1", "--set", "10x135", "--set", "8x145")
	if err != nil {
		t.Fatalf("Failed to log session: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2 sets") || !strings.Contains(output, "2510") {
		t.Errorf("Expected 2 sets with volume 2510, got: %s", output)
	}

	// History shows one session with the right volume
	output, err = run("history", "1")
	if err != nil {
		t.Fatalf("Failed to get history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2 sets") || !strings.Contains(output, "2510") {
		t.Errorf("Expected history row with volume 2510, got: %s", output)
	}

	// The workout can't be deleted while it has sessions
	output, err = run("workout", "delete", "1")
	if err != nil {
		t.Fatalf("workout delete errored: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Cannot delete") {
		t.Errorf("Expected refusal reason, got: %s", output)
	}

	// Chest can't be deleted while the workout references it
	output, err = run("bodypart", "list")
	if err != nil {
		t.Fatalf("Failed to list body parts: %v\n%s", err, output)
	}
	chestID := ""
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "Chest") {
			chestID = strings.Fields(line)[0]
		}
	}
	if chestID == "" {
		t.Fatal("could not find Chest id in list output")
	}
	output, err = run("bodypart", "delete", chestID)
	if err != nil {
		t.Fatalf("bodypart delete errored: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Cannot delete") {
		t.Errorf("Expected refusal reason, got: %s", output)
	}

	// Summary ranks the logged workout first
	output, err = run("summary")
	if err != nil {
		t.Fatalf("Failed to get summary: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench Press") {
		t.Errorf("Expected Bench Press in summary, got: %s", output)
	}

	// Store and verify a credential
	if output, err = run("user", "set", "harper", "--password", "hunter2"); err != nil {
		t.Fatalf("Failed to set user: %v\n%s", err, output)
	}
	if output, err = run("user", "verify", "harper", "--password", "hunter2"); err != nil {
		t.Fatalf("Failed to verify user: %v\n%s", err, output)
	}
	if _, err = run("user", "verify", "harper", "--password", "wrong"); err == nil {
		t.Error("Expected wrong password to fail verification")
	}

	// CSV export carries the logged set
	output, err = run("export", "csv")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench Press") || !strings.Contains(output, "135") {
		t.Errorf("Expected exported set in CSV, got: %s", output)
	}
}
