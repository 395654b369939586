// ABOUTME: CLI command for the theme preference.
// ABOUTME: Shows or toggles dark mode; the choice persists in the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepup/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the color theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			mode := theme.Light
			if themeCtx.IsDark() {
				mode = theme.Dark
			}
			fmt.Println(mode)
			return nil
		}

		switch args[0] {
		case theme.Dark, theme.Light:
		default:
			return fmt.Errorf("unknown theme %q (want dark or light)", args[0])
		}

		if err := themeCtx.Toggle(cmd.Context(), args[0] == theme.Dark); err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}
		themeCtx.Colors().Success.Printf("✓ Theme set to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
