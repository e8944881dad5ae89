// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, search, rename, and guarded delete.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitlog/fitlog/internal/storage"
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Workouts are named exercises under a body part. Names are unique
per body part; adding an existing (body part, name) pair returns the
existing workout.

WORKFLOW:

  1. Create a workout:   fitlog workout add Chest "Bench Press"
  2. Log a session:      fitlog log add <workout-id> --set 10x135
  3. Review progress:    fitlog history <workout-id>

COMMANDS:

  add      Create a workout under a body part (idempotent)
  list     List workouts for one body part
  search   List all workouts, optionally filtered by substring
  rename   Rename a workout in place
  delete   Delete a workout with no logged sessions`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <body-part> <name>",
	Short: "Add a workout under a body part",
	Long: `Add a workout under a body part. The body part is created if
missing; both operations are idempotent.

Examples:
  fitlog workout add Chest "Bench Press"
  fitlog workout add Legs Squat`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bpID, err := store.UpsertBodyPart(args[0])
		if err != nil {
			return err
		}
		id, err := store.UpsertWorkout(args[1], bpID)
		if err != nil {
			return err
		}
		color.Green("✓ %s / %s (id %d)", args[0], args[1], id)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list <body-part>",
	Short: "List a body part's workouts alphabetically",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bpID, ok, err := store.FindBodyPartID(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown body part: %s", args[0])
		}
		workouts, err := store.ListWorkoutsByBodyPart(bpID)
		if err != nil {
			return err
		}
		for _, w := range workouts {
			fmt.Printf("%4d  %s\n", w.ID, w.Name)
		}
		return nil
	},
}

var workoutSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "List all workouts with their body part",
	Long: `List every workout joined with its body part name, sorted by body
part then workout name. With a query, only workouts whose name or body
part contains it (case-insensitively) are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		workouts, err := store.ListWorkoutsWithBodyPart(query)
		if err != nil {
			return err
		}
		for _, w := range workouts {
			fmt.Printf("%4d  %-12s %s\n", w.ID, w.BodyPartName, w.Name)
		}
		return nil
	},
}

var workoutRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a workout in place",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		if err := store.RenameWorkout(id, args[1]); err != nil {
			if errors.Is(err, storage.ErrNameConflict) {
				color.Yellow("⚠ A workout named %q already exists under that body part", args[1])
				return nil
			}
			return err
		}
		color.Green("✓ Renamed workout %d to %s", id, args[1])
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout if it has no sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		result, err := store.DeleteWorkoutSafe(id)
		if err != nil {
			return err
		}
		if !result.OK {
			color.Yellow("⚠ %s", result.Reason)
			return nil
		}
		color.Green("✓ Deleted workout %d", id)
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutSearchCmd)
	workoutCmd.AddCommand(workoutRenameCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
