// ABOUTME: CLI commands for managing body parts.
// ABOUTME: Supports list, add (upsert), and guarded delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bodypartCmd = &cobra.Command{
	Use:     "bodypart",
	Aliases: []string{"bp"},
	Short:   "Manage body parts",
	Long: `Body parts group workouts (Chest, Back, Legs, Shoulders, Arms, Abs
are seeded on first run). Adding an existing name is a no-op; deleting is
refused while workouts still reference the body part.`,
}

var bodypartListCmd = &cobra.Command{
	Use:   "list",
	Short: "List body parts alphabetically",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, err := store.ListBodyParts()
		if err != nil {
			return err
		}
		for _, bp := range parts {
			fmt.Printf("%4d  %s\n", bp.ID, bp.Name)
		}
		return nil
	},
}

var bodypartAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a body part (idempotent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.UpsertBodyPart(args[0])
		if err != nil {
			return err
		}
		color.Green("✓ %s (id %d)", args[0], id)
		return nil
	},
}

var bodypartDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a body part if nothing references it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "body part")
		if err != nil {
			return err
		}
		result, err := store.DeleteBodyPartSafe(id)
		if err != nil {
			return err
		}
		if !result.OK {
			color.Yellow("⚠ %s", result.Reason)
			return nil
		}
		color.Green("✓ Deleted body part %d", id)
		return nil
	},
}

func init() {
	bodypartCmd.AddCommand(bodypartListCmd)
	bodypartCmd.AddCommand(bodypartAddCmd)
	bodypartCmd.AddCommand(bodypartDeleteCmd)
	rootCmd.AddCommand(bodypartCmd)
}
