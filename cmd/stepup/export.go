// ABOUTME: CLI commands for data backup and restore.
// ABOUTME: Exports and imports the full store as JSON or YAML.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stepup/internal/storage"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export accounts, workouts, and custom types as one document.

Examples:
  stepup export > backup.json
  stepup export --format yaml -o backup.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := store.GetAllData(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		raw, err := data.Marshal(exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(exportOutput, raw, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		themeCtx.Colors().Success.Printf("✓ Exported to %s\n", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from an export file",
	Long: `Merge an export file into the local store.

Workouts are matched by id and replaced when already present; custom types
and accounts that already exist are skipped. The current session is left
alone. The format is inferred from the file extension unless --format is
given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		format := exportFormat
		if !cmd.Flags().Changed("format") {
			if strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml") {
				format = "yaml"
			} else {
				format = "json"
			}
		}

		data, err := storage.ParseExport(raw, format)
		if err != nil {
			return err
		}

		if err := store.ImportData(cmd.Context(), data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		themeCtx.Colors().Success.Printf("✓ Imported %d workout(s), %d type(s), %d account(s)\n",
			len(data.Workouts), len(data.CustomTypes), len(data.Users))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	importCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "import format: json or yaml")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
