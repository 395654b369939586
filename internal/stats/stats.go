// ABOUTME: Derived views over workout history: sorting, calendar, dashboard.
// ABOUTME: Pure functions; storage access stays with the caller.
package stats

import (
	"sort"
	"time"

	"stepup/internal/models"
)

// SortHistory returns workouts ordered newest-first by date. Workouts on
// the same date keep their relative insertion order. The input is not
// modified.
func SortHistory(workouts []models.Workout) []models.Workout {
	sorted := make([]models.Workout, len(workouts))
	copy(sorted, workouts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

// ByDate buckets workouts by their date string.
func ByDate(workouts []models.Workout) map[string][]models.Workout {
	byDate := make(map[string][]models.Workout)
	for _, w := range workouts {
		byDate[w.Date] = append(byDate[w.Date], w)
	}
	return byDate
}

// Day is one cell of a calendar month grid. Nil cells pad the first week
// so that day 1 lands on its weekday column.
type Day struct {
	Date     string
	Workouts []models.Workout
}

// MonthGrid lays out a calendar month as a flat sequence of cells, weeks
// starting on Sunday. Cells before the 1st are nil.
func MonthGrid(year int, month time.Month, workouts []models.Workout) []*Day {
	byDate := ByDate(workouts)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var cells []*Day
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}
	for d := 1; d <= daysInMonth; d++ {
		date := models.FormatDate(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
		cells = append(cells, &Day{Date: date, Workouts: byDate[date]})
	}
	return cells
}

// Summary holds the dashboard numbers.
type Summary struct {
	TotalWorkouts     int `json:"total_workouts"`
	StreakDays        int `json:"streak_days"`
	MinutesThisWeek   int `json:"minutes_this_week"`
	WeeklyGoalMinutes int `json:"weekly_goal_minutes"`
	GoalPercent       int `json:"goal_percent"`
}

// Summarize computes the dashboard numbers as of now. The streak counts
// consecutive days with a logged record (rest days included) ending today
// or yesterday; the week runs Sunday through Saturday.
func Summarize(workouts []models.Workout, now time.Time, weeklyGoalMinutes int) Summary {
	s := Summary{
		TotalWorkouts:     len(workouts),
		WeeklyGoalMinutes: weeklyGoalMinutes,
	}

	byDate := ByDate(workouts)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Streak: walk backwards from today; a missing today does not break
	// the streak until yesterday is missing too.
	day := today
	if _, ok := byDate[models.FormatDate(day)]; !ok {
		day = day.AddDate(0, 0, -1)
	}
	for {
		if _, ok := byDate[models.FormatDate(day)]; !ok {
			break
		}
		s.StreakDays++
		day = day.AddDate(0, 0, -1)
	}

	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)
	for _, w := range workouts {
		d, err := models.ParseDate(w.Date)
		if err != nil {
			continue
		}
		if !d.Before(weekStart) && d.Before(weekEnd) {
			s.MinutesThisWeek += w.Duration
		}
	}

	if weeklyGoalMinutes > 0 {
		s.GoalPercent = s.MinutesThisWeek * 100 / weeklyGoalMinutes
		if s.GoalPercent > 100 {
			s.GoalPercent = 100
		}
	}
	return s
}
