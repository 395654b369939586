// ABOUTME: Root Cobra command for stepup CLI.
// ABOUTME: Opens the store and builds auth/theme contexts in PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepup/internal/auth"
	"stepup/internal/config"
	"stepup/internal/kv"
	"stepup/internal/storage"
	"stepup/internal/theme"
)

// Shared state for all commands, built at startup and owned here. The auth
// and theme contexts are explicit objects handed to whatever needs them;
// nothing in the library packages holds globals.
var (
	cfg      *config.Config
	kvStore  *kv.BadgerStore
	store    *storage.Store
	authCtx  *auth.Context
	themeCtx *theme.Context
)

var rootCmd = &cobra.Command{
	Use:   "stepup",
	Short: "Personal workout tracker",
	Long: `StepUp is a local-first workout tracker.

All data lives in a key-value store on this machine: your account, your
session, your workout history, and your custom workout types. There is no
server and no sync.

QUICK START:

  $ stepup register --name Amy a@x.com p1    # Create an account (logs you in)
  $ stepup workout add --type Cardio --duration 30
  $ stepup workout list                      # History, newest first
  $ stepup workout calendar                  # Month view
  $ stepup stats                             # Streak and weekly goal

ACCOUNTS:

  $ stepup login a@x.com p1
  $ stepup whoami
  $ stepup logout

  Login state survives restarts; it is stored next to the roster under its
  own key. Passwords are kept in plain text -- treat this as a journal, not
  a vault.

WORKOUT TYPES:

  Built in: Strength, Cardio, Yoga, HIIT, Pilates, Other.

  $ stepup types add Climbing    # Add your own (no duplicates, no deletion)
  $ stepup types list

MCP INTEGRATION:

  Run 'stepup mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "stepup": { "command": "stepup", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives under ~/.local/share/stepup (XDG_DATA_HOME honored).
  Config: ~/.config/stepup/config.json (data_dir, weekly_goal_minutes).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		if kvStore != nil {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		kvStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		store = storage.New(kvStore)

		authCtx = auth.New(store)
		if err := authCtx.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}

		themeCtx = theme.New(store)
		if err := themeCtx.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}

		return nil
	},
}

// closeStore flushes and releases the key-value store. main calls it after
// Execute returns so the store closes even when a command fails; cobra skips
// PersistentPostRunE on error, so closing there would leak the handle.
func closeStore() error {
	if kvStore == nil {
		return nil
	}
	err := kvStore.Close()
	kvStore = nil
	return err
}

// requireLogin guards commands that only make sense inside a session.
func requireLogin() error {
	if authCtx.State() != auth.StateAuthenticated {
		return fmt.Errorf("not logged in (run 'stepup login' or 'stepup register')")
	}
	return nil
}
