// ABOUTME: Root Cobra command for the fitlog CLI.
// ABOUTME: Opens config, flag store, and database in PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitlog/fitlog/internal/config"
	"github.com/fitlog/fitlog/internal/flagstore"
	"github.com/fitlog/fitlog/internal/storage"
)

var (
	dataDirFlag string

	cfg       *config.Config
	flagStore *flagstore.Store
	store     *storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal fitness tracker",
	Long: `Fitlog is a CLI for tracking workouts: pick a body part, pick a
workout, log your sets, and browse history and summaries.

QUICK START:

  $ fitlog bodypart list                      # The six defaults are seeded
  $ fitlog workout add Chest "Bench Press"    # Create a workout
  $ fitlog log add 1 --set 10x135 --set 8x145 # Log a session of sets
  $ fitlog history 1                          # Per-session volume history
  $ fitlog summary                            # Dashboard across workouts

SETS:

  A set is written REPSxWEIGHT, e.g. 10x135 means 10 reps at 135.
  Volume is reps × weight summed over a session.

DATA STORAGE:

  Everything lives in a local SQLite file under ~/.local/share/fitlog
  (override with data_dir in ~/.config/fitlog/config.yaml or --data-dir).
  Export it any time:

  $ fitlog export csv -o workouts.csv`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch the database
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}

		flagStore, err = flagstore.Open(cfg.FlagsDir())
		if err != nil {
			return err
		}

		store, err = storage.Open(cfg.DBPath())
		if err != nil {
			return err
		}

		if err := store.Initialize(flagStore); err != nil {
			return fmt.Errorf("initialize database: %w", err)
		}
		if _, err := store.Migrate(); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			if err := store.Close(); err != nil {
				return err
			}
		}
		if flagStore != nil {
			return flagStore.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default: ~/.local/share/fitlog)")
}
