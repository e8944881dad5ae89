// ABOUTME: CLI command for per-workout session history.
// ABOUTME: One row per session: set count and total volume, newest first.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyOffset int
)

var historyCmd = &cobra.Command{
	Use:   "history <workout-id>",
	Short: "Show a workout's session history",
	Long: `Show one row per logged session of a workout, most recent first,
with the session's set count and total volume (reps × weight summed).

Examples:
  fitlog history 3
  fitlog history 3 --limit 5 --offset 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		history, err := store.GetHistory(workoutID, historyLimit, historyOffset)
		if err != nil {
			return err
		}
		for _, row := range history {
			fmt.Printf("%4d  %s  %2d sets  volume %s\n",
				row.LogID, row.LoggedAt.Format("2006-01-02 15:04"), row.SetCount, formatVolume(row.TotalVolume))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum sessions to show")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "sessions to skip")
	rootCmd.AddCommand(historyCmd)
}
