// ABOUTME: CLI command that runs the MCP server over stdio.
// ABOUTME: Exposes the workout store to MCP-compatible assistants.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepup/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long: `Run the Model Context Protocol server over stdio.

Tools: log_workout, list_workouts, update_workout, delete_workout,
add_workout_type, get_stats. Resources: stepup://recent,
stepup://calendar, stepup://summary.

The server shares the same local store as the CLI; nothing leaves this
machine except over the stdio pipe to the client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, cfg.GetWeeklyGoalMinutes())
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
