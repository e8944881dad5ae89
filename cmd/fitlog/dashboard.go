// ABOUTME: CLI command for a workout's full set series.
// ABOUTME: Chronological weight/reps feed for charting progress.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <workout-id>",
	Short: "Show every set of a workout over time",
	Long: `Show the full set series for a workout, oldest session first,
set by set. Useful for eyeballing progress or piping into a plotting
tool.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		points, err := store.GetSetsForWorkout(workoutID)
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Printf("%s  set %d  %3d x %g\n",
				p.LoggedAt.Format("2006-01-02 15:04"), p.SetNumber, p.Reps, p.Weight)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
