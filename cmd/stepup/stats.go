// ABOUTME: CLI command for the dashboard summary.
// ABOUTME: Prints totals, streak, and weekly goal progress.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stepup/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard stats",
	Long: `Show the dashboard numbers: total workouts, current streak, and
progress against the weekly goal.

The streak counts consecutive days with anything logged, rest days
included. The weekly goal defaults to 150 minutes; change it with
weekly_goal_minutes in ~/.config/stepup/config.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		workouts, err := store.GetWorkouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}

		s := stats.Summarize(workouts, time.Now(), cfg.GetWeeklyGoalMinutes())

		primary := themeCtx.Colors().Primary
		primary.Printf("Workouts: %d\n", s.TotalWorkouts)
		fmt.Printf("Streak: %d day(s)\n", s.StreakDays)
		fmt.Printf("This week: %d / %d min (%d%%)\n",
			s.MinutesThisWeek, s.WeeklyGoalMinutes, s.GoalPercent)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
