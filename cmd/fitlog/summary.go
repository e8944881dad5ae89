// ABOUTME: CLI command for workout summaries across all body parts.
// ABOUTME: Shows session counts and the most-recent session's volume.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitlog/fitlog/internal/models"
)

var (
	summaryLimit  int
	summaryOffset int
)

var summaryCmd = &cobra.Command{
	Use:   "summary [workout-id]",
	Short: "Show per-workout summaries",
	Long: `Without arguments, shows one row per workout across all body
parts: session count, last session time, and that session's volume.
Recently-logged workouts sort first; never-logged ones last. With a
workout id, shows just that workout's summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			workoutID, err := parseID(args[0], "workout")
			if err != nil {
				return err
			}
			summary, err := store.GetSummary(workoutID)
			if err != nil {
				return err
			}
			if summary == nil {
				return fmt.Errorf("workout not found: %d", workoutID)
			}
			printSummaryHeader()
			printSummaryRow(*summary)
			return nil
		}

		summaries, err := store.ListSummaries(summaryLimit, summaryOffset)
		if err != nil {
			return err
		}
		printSummaryHeader()
		for _, s := range summaries {
			printSummaryRow(s)
		}
		return nil
	},
}

func printSummaryHeader() {
	fmt.Printf("%4s  %-12s %-20s %8s  %-16s %s\n",
		"ID", "BODY PART", "WORKOUT", "SESSIONS", "LAST LOGGED", "LAST VOLUME")
}

func printSummaryRow(s models.WorkoutSummary) {
	fmt.Printf("%4d  %-12s %-20s %8d  %-16s %s\n",
		s.WorkoutID, s.BodyPartName, s.WorkoutName, s.Sessions,
		formatWhen(s.LastLoggedAt), formatVolume(s.LastVolume))
}

func init() {
	summaryCmd.Flags().IntVar(&summaryLimit, "limit", 50, "maximum workouts to show")
	summaryCmd.Flags().IntVar(&summaryOffset, "offset", 0, "workouts to skip")
	rootCmd.AddCommand(summaryCmd)
}
