// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, edit, delete, and calendar subcommands.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stepup/internal/models"
	"stepup/internal/stats"
	"stepup/internal/storage"
)

// Each subcommand binds its own flag variables so one command's defaults
// never bleed into another's.
var (
	addDate      string
	addType      string
	addDuration  int
	addCalories  int
	addIntensity string
	addNotes     string
	addRest      bool

	editDate      string
	editType      string
	editDuration  int
	editCalories  int
	editIntensity string
	editNotes     string
	editRest      bool

	listType      string
	listLimit     int
	calendarMonth string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Log and browse workout sessions.

Each workout records a date, a type, duration and calories, an intensity
level (Low, Moderate, High, Extreme), and free-form notes. A rest day is a
workout too: log it with --rest and duration and calories are zeroed.

WORKFLOW:

  1. Log a session:   stepup workout add --type Cardio --duration 30
  2. Browse history:  stepup workout list
  3. Month view:      stepup workout calendar
  4. Fix a mistake:   stepup workout edit <id> --duration 45
  5. Remove it:       stepup workout delete <id>

The workout type is one of the built-in types or any custom type you have
added with 'stepup types add'.`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	Long: `Log a workout session.

Examples:
  stepup workout add --type Cardio --duration 30 --calories 200
  stepup workout add --type Strength -d 45 -i High --notes "Leg day"
  stepup workout add --rest --date 2024-01-07`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		if !addRest && addDuration <= 0 {
			return fmt.Errorf("please provide a duration (or log a rest day with --rest)")
		}
		if !models.ValidIntensity(addIntensity) {
			return fmt.Errorf("unknown intensity: %s", addIntensity)
		}

		date := addDate
		if date == "" {
			date = models.FormatDate(time.Now())
		} else if _, err := models.ParseDate(date); err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", addDate)
		}

		w, err := store.SaveWorkout(cmd.Context(), models.Workout{
			Date:      date,
			Type:      addType,
			Duration:  addDuration,
			Calories:  addCalories,
			Intensity: addIntensity,
			Notes:     addNotes,
			IsRestDay: addRest,
		})
		if err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}

		themeCtx.Colors().Success.Printf("✓ Logged %s on %s\n", w.Type, w.Date)
		fmt.Printf("  ID: %s\n", w.ID)
		if !w.IsRestDay {
			fmt.Printf("  %d min, %d kcal, %s\n", w.Duration, w.Calories, w.Intensity)
		}
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		workouts, err := store.GetWorkouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		history := stats.SortHistory(workouts)
		if listType != "" {
			filtered := history[:0]
			for _, w := range history {
				if w.Type == listType {
					filtered = append(filtered, w)
				}
			}
			history = filtered
		}
		if listLimit > 0 && len(history) > listLimit {
			history = history[:listLimit]
		}

		if len(history) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := themeCtx.Colors().Faint
		for _, w := range history {
			detail := fmt.Sprintf("%d min %s", w.Duration, w.Intensity)
			if w.IsRestDay {
				detail = "rest day"
			}
			notes := ""
			if w.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(w.Notes, 30))
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(w.ID),
				faint.Sprint(w.Date),
				padRight(w.Type, 12),
				detail,
				notes)
		}
		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a workout",
	Long: `Replace fields of an existing workout.

Only the flags you pass change; everything else keeps its stored value.

Examples:
  stepup workout edit uuid-1700000000000 --duration 45
  stepup workout edit uuid-1700000000000 --rest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		workouts, err := store.GetWorkouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}
		var current *models.Workout
		for i := range workouts {
			if workouts[i].ID == args[0] {
				current = &workouts[i]
				break
			}
		}
		if current == nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		w := *current
		if cmd.Flags().Changed("date") {
			if _, err := models.ParseDate(editDate); err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", editDate)
			}
			w.Date = editDate
		}
		if cmd.Flags().Changed("type") {
			w.Type = editType
		}
		if cmd.Flags().Changed("duration") {
			w.Duration = editDuration
		}
		if cmd.Flags().Changed("calories") {
			w.Calories = editCalories
		}
		if cmd.Flags().Changed("intensity") {
			if !models.ValidIntensity(editIntensity) {
				return fmt.Errorf("unknown intensity: %s", editIntensity)
			}
			w.Intensity = editIntensity
		}
		if cmd.Flags().Changed("notes") {
			w.Notes = editNotes
		}
		if cmd.Flags().Changed("rest") {
			w.IsRestDay = editRest
		}

		if err := store.UpdateWorkout(cmd.Context(), w); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("workout not found: %s", args[0])
			}
			return fmt.Errorf("failed to update workout: %w", err)
		}

		themeCtx.Colors().Success.Printf("✓ Updated %s\n", w.ID)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		if err := store.DeleteWorkout(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		themeCtx.Colors().Warning.Printf("✗ Deleted %s\n", args[0])
		return nil
	},
}

var workoutCalendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show a month of workouts",
	Long: `Render a calendar month with workout counts per day.

Examples:
  stepup workout calendar                  # Current month
  stepup workout calendar --month 2024-01  # A specific month`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}

		now := time.Now()
		year, month := now.Year(), now.Month()
		if calendarMonth != "" {
			parsed, err := time.Parse("2006-01", calendarMonth)
			if err != nil {
				return fmt.Errorf("invalid month %q (want YYYY-MM)", calendarMonth)
			}
			year, month = parsed.Year(), parsed.Month()
		}

		workouts, err := store.GetWorkouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load workouts: %w", err)
		}

		printCalendar(year, month, stats.MonthGrid(year, month, workouts))
		return nil
	},
}

// printCalendar renders the cells as a Sunday-first week grid; days with
// workouts show their count.
func printCalendar(year int, month time.Month, cells []*stats.Day) {
	primary := themeCtx.Colors().Primary
	faint := themeCtx.Colors().Faint

	primary.Printf("%s %d\n", month, year)
	fmt.Println("Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	pad := len(cells) - daysIn(year, month)
	col := 0
	for i, cell := range cells {
		if cell == nil {
			fmt.Print("     ")
		} else {
			day := i - pad + 1
			if len(cell.Workouts) > 0 {
				primary.Printf("%3d*", day)
				fmt.Print(" ")
			} else {
				faint.Printf("%3d ", day)
				fmt.Print(" ")
			}
		}
		col++
		if col == 7 {
			fmt.Println()
			col = 0
		}
	}
	if col != 0 {
		fmt.Println()
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

func init() {
	workoutAddCmd.Flags().StringVar(&addDate, "date", "", "calendar date (YYYY-MM-DD, default today)")
	workoutAddCmd.Flags().StringVarP(&addType, "type", "t", "Strength", "workout type")
	workoutAddCmd.Flags().IntVarP(&addDuration, "duration", "d", 0, "duration in minutes")
	workoutAddCmd.Flags().IntVarP(&addCalories, "calories", "c", 0, "calories burned")
	workoutAddCmd.Flags().StringVarP(&addIntensity, "intensity", "i", "Moderate", "Low, Moderate, High, or Extreme")
	workoutAddCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	workoutAddCmd.Flags().BoolVar(&addRest, "rest", false, "log a rest day")

	workoutEditCmd.Flags().StringVar(&editDate, "date", "", "calendar date (YYYY-MM-DD)")
	workoutEditCmd.Flags().StringVarP(&editType, "type", "t", "", "workout type")
	workoutEditCmd.Flags().IntVarP(&editDuration, "duration", "d", 0, "duration in minutes")
	workoutEditCmd.Flags().IntVarP(&editCalories, "calories", "c", 0, "calories burned")
	workoutEditCmd.Flags().StringVarP(&editIntensity, "intensity", "i", "", "Low, Moderate, High, or Extreme")
	workoutEditCmd.Flags().StringVar(&editNotes, "notes", "", "free-form notes")
	workoutEditCmd.Flags().BoolVar(&editRest, "rest", false, "log a rest day")

	workoutListCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by workout type")
	workoutListCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")

	workoutCalendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "month to show (YYYY-MM)")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutEditCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutCalendarCmd)
	rootCmd.AddCommand(workoutCmd)
}
