// ABOUTME: CLI commands for workout types.
// ABOUTME: Lists defaults plus customs and appends new custom types.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stepup/internal/models"
	"stepup/internal/storage"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Manage workout types",
	Long: `Workout types label each session.

Six types are built in: Strength, Cardio, Yoga, HIIT, Pilates, Other.
You can add your own; names must be new (case-sensitive) and there is no
way to remove a type once added.`,
}

var typesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all workout types",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		custom, err := store.GetCustomTypes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list types: %w", err)
		}

		faint := themeCtx.Colors().Faint
		for _, t := range models.DefaultTypes {
			fmt.Printf("%s %s\n", padRight(t, 12), faint.Sprint("built-in"))
		}
		for _, t := range custom {
			fmt.Printf("%s %s\n", padRight(t, 12), faint.Sprint("custom"))
		}
		return nil
	},
}

var typesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom workout type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		err := store.AddCustomType(cmd.Context(), args[0])
		if errors.Is(err, storage.ErrDuplicateType) {
			return fmt.Errorf("this workout type already exists")
		}
		if err != nil {
			return fmt.Errorf("failed to add type: %w", err)
		}

		themeCtx.Colors().Success.Printf("✓ Added workout type %s\n", args[0])
		return nil
	},
}

func init() {
	typesCmd.AddCommand(typesListCmd)
	typesCmd.AddCommand(typesAddCmd)
	rootCmd.AddCommand(typesCmd)
}
