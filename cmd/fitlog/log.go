// ABOUTME: CLI commands for logging workout sessions.
// ABOUTME: Saving a session with its sets is one atomic write.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	logSets []string
	logAt   string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Log and inspect workout sessions",
	Long: `A session is one instance of performing a workout, holding the
sets you did. Sets are written REPSxWEIGHT.

Examples:
  fitlog log add 3 --set 10x135 --set 8x145 --set 6x155
  fitlog log add 3 --set 5x225 --at "2025-01-10 09:00"
  fitlog log sets 17
  fitlog log delete 17`,
}

var logAddCmd = &cobra.Command{
	Use:   "add <workout-id>",
	Short: "Log a session with its sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		if len(logSets) == 0 {
			return fmt.Errorf("at least one --set is required")
		}

		entries, err := setEntriesFromSpecs(logSets)
		if err != nil {
			return err
		}

		var loggedAt time.Time
		if logAt != "" {
			if loggedAt, err = parseTime(logAt); err != nil {
				return err
			}
		}

		logID, err := store.AddSessionWithSets(workoutID, entries, loggedAt)
		if err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		var volume float64
		for _, e := range entries {
			volume += e.Volume()
		}
		color.Green("✓ Logged session %d: %d sets, volume %g", logID, len(entries), volume)
		return nil
	},
}

var logSetsCmd = &cobra.Command{
	Use:   "sets <log-id>",
	Short: "Show a session's sets in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logID, err := parseID(args[0], "log")
		if err != nil {
			return err
		}
		sets, err := store.ListSetsForLog(logID)
		if err != nil {
			return err
		}
		for _, s := range sets {
			fmt.Printf("  set %d: %d x %g  (volume %g)\n", s.SetNumber, s.Reps, s.Weight, s.Volume())
		}
		return nil
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <log-id>",
	Short: "Delete a session and its sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logID, err := parseID(args[0], "log")
		if err != nil {
			return err
		}
		if err := store.DeleteLog(logID); err != nil {
			return err
		}
		color.Green("✓ Deleted session %d", logID)
		return nil
	},
}

func init() {
	logAddCmd.Flags().StringArrayVar(&logSets, "set", nil, "a set as REPSxWEIGHT (repeatable, in order)")
	logAddCmd.Flags().StringVar(&logAt, "at", "", "session timestamp (default: now)")
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logSetsCmd)
	logCmd.AddCommand(logDeleteCmd)
	rootCmd.AddCommand(logCmd)
}
