// ABOUTME: CLI command for exporting fitness data.
// ABOUTME: Supports CSV, JSON, and YAML output to stdout or a file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fitness data",
	Long: `Export all data in various formats.

FORMATS:

  csv    One flat row per set, joined to workout and body part (sharing)
  json   Full structured export (backup/restore)
  yaml   Full structured export (human-readable)

EXAMPLES:

  fitlog export csv                    # Print CSV to stdout
  fitlog export csv -o workouts.csv    # Save to file
  fitlog export json -o backup.json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error
		switch format {
		case "csv":
			data, err = store.ExportCSV()
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use csv, json, or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}

		fmt.Print(string(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
