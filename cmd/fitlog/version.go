// ABOUTME: Version command for the fitlog CLI.
// ABOUTME: Prints the build version string.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fitlog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fitlog %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
