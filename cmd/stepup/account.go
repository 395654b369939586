// ABOUTME: CLI commands for accounts: register, login, logout, whoami, profile.
// ABOUTME: Thin wrappers over the auth context; failures print generic messages.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stepup/internal/auth"
	"stepup/internal/models"
)

var registerName string

var registerCmd = &cobra.Command{
	Use:   "register <email> <password>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user := models.User{
			Name:     registerName,
			Email:    args[0],
			Password: args[1],
		}
		if user.Name == "" {
			user.Name = user.Email
		}

		err := authCtx.Register(cmd.Context(), user)
		if errors.Is(err, auth.ErrUserExists) {
			return fmt.Errorf("user already exists")
		}
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		themeCtx.Colors().Success.Printf("✓ Registered %s\n", user.Email)
		fmt.Printf("  Logged in as %s\n", user.Name)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in with an existing account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := authCtx.Login(cmd.Context(), args[0], args[1])
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// One message for unknown email and wrong password alike
			return fmt.Errorf("invalid email or password")
		}
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		themeCtx.Colors().Success.Printf("✓ Logged in as %s\n", user.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authCtx.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user := authCtx.Current()
		if user == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show profile and fitness summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		user := authCtx.Current()

		workouts, err := store.GetWorkouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}

		faint := themeCtx.Colors().Faint
		fmt.Printf("Name:  %s\n", user.Name)
		fmt.Printf("Email: %s\n", user.Email)
		fmt.Printf("Workouts logged: %d\n", len(workouts))
		faint.Println("Profile edits are not supported from the CLI.")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "display name")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(profileCmd)
}
