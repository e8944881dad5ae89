// ABOUTME: CLI commands for the single stored credential pair.
// ABOUTME: Hashes with bcrypt before anything reaches the store.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitlog/fitlog/internal/auth"
)

var userPassword string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the stored credential",
	Long: `Fitlog stores exactly one username/password pair. Setting a new
one replaces the old. The password is bcrypt-hashed before storage; the
plaintext is never persisted.`,
}

var userSetCmd = &cobra.Command{
	Use:   "set <username>",
	Short: "Set the stored credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userPassword == "" {
			return fmt.Errorf("--password is required")
		}
		hash, err := auth.HashPassword(userPassword)
		if err != nil {
			return err
		}
		if err := store.UpsertCredential(args[0], hash); err != nil {
			return err
		}
		color.Green("✓ Stored credential for %s", args[0])
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored username",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := store.GetCredential()
		if err != nil {
			return err
		}
		if c == nil {
			fmt.Println("no credential stored")
			return nil
		}
		fmt.Printf("%s (since %s)\n", c.Username, c.CreatedAt.Format("2006-01-02"))
		return nil
	},
}

var userVerifyCmd = &cobra.Command{
	Use:   "verify <username>",
	Short: "Check a username/password pair against the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := store.GetCredential()
		if err != nil {
			return err
		}
		if c == nil || c.Username != args[0] || !auth.CheckPassword(c.PasswordHash, userPassword) {
			return fmt.Errorf("invalid credentials")
		}
		color.Green("✓ Credentials match")
		return nil
	},
}

func init() {
	userSetCmd.Flags().StringVar(&userPassword, "password", "", "password to store (hashed)")
	userVerifyCmd.Flags().StringVar(&userPassword, "password", "", "password to check")
	userCmd.AddCommand(userSetCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userVerifyCmd)
	rootCmd.AddCommand(userCmd)
}
