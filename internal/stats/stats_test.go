// ABOUTME: Tests for derived workout views.
// ABOUTME: Covers history sorting, calendar layout, streaks, and weekly totals.
package stats

import (
	"testing"
	"time"

	"stepup/internal/models"
)

func w(id, date string, duration int) models.Workout {
	return models.Workout{ID: id, Date: date, Type: "Cardio", Duration: duration}
}

func TestSortHistoryNewestFirst(t *testing.T) {
	workouts := []models.Workout{
		w("a", "2024-01-01", 30),
		w("b", "2024-03-01", 30),
		w("c", "2024-02-01", 30),
	}

	sorted := SortHistory(workouts)

	want := []string{"b", "c", "a"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].ID, id)
		}
	}
	if workouts[0].ID != "a" {
		t.Error("SortHistory must not modify its input")
	}
}

func TestSortHistoryStableWithinDate(t *testing.T) {
	workouts := []models.Workout{
		w("first", "2024-01-01", 30),
		w("second", "2024-01-01", 45),
	}
	sorted := SortHistory(workouts)
	if sorted[0].ID != "first" || sorted[1].ID != "second" {
		t.Errorf("same-date order changed: %v, %v", sorted[0].ID, sorted[1].ID)
	}
}

func TestByDate(t *testing.T) {
	workouts := []models.Workout{
		w("a", "2024-01-01", 30),
		w("b", "2024-01-01", 45),
		w("c", "2024-01-02", 60),
	}

	byDate := ByDate(workouts)
	if len(byDate["2024-01-01"]) != 2 {
		t.Errorf("2024-01-01 bucket = %d entries, want 2", len(byDate["2024-01-01"]))
	}
	if len(byDate["2024-01-02"]) != 1 {
		t.Errorf("2024-01-02 bucket = %d entries, want 1", len(byDate["2024-01-02"]))
	}
}

func TestMonthGrid(t *testing.T) {
	// January 2024 starts on a Monday: one leading nil cell, 31 days.
	cells := MonthGrid(2024, time.January, []models.Workout{w("a", "2024-01-15", 30)})

	if len(cells) != 32 {
		t.Fatalf("cell count = %d, want 32", len(cells))
	}
	if cells[0] != nil {
		t.Error("first cell should be padding")
	}
	if cells[1] == nil || cells[1].Date != "2024-01-01" {
		t.Errorf("cells[1] = %+v, want Jan 1", cells[1])
	}

	day15 := cells[15]
	if day15 == nil || day15.Date != "2024-01-15" || len(day15.Workouts) != 1 {
		t.Errorf("Jan 15 cell = %+v, want one workout", day15)
	}
}

func TestMonthGridSundayStart(t *testing.T) {
	// September 2024 starts on a Sunday: no padding.
	cells := MonthGrid(2024, time.September, nil)
	if cells[0] == nil {
		t.Error("Sunday-starting month should have no padding")
	}
	if len(cells) != 30 {
		t.Errorf("cell count = %d, want 30", len(cells))
	}
}

func TestSummarizeStreak(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		w("a", "2024-01-10", 30),
		w("b", "2024-01-09", 30),
		w("c", "2024-01-08", 0), // rest day still counts
		w("d", "2024-01-05", 30),
	}

	s := Summarize(workouts, now, 150)
	if s.StreakDays != 3 {
		t.Errorf("streak = %d, want 3", s.StreakDays)
	}
	if s.TotalWorkouts != 4 {
		t.Errorf("total = %d, want 4", s.TotalWorkouts)
	}
}

func TestSummarizeStreakSurvivesMissingToday(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		w("a", "2024-01-09", 30),
		w("b", "2024-01-08", 30),
	}

	s := Summarize(workouts, now, 150)
	if s.StreakDays != 2 {
		t.Errorf("streak = %d, want 2 (today not yet logged)", s.StreakDays)
	}
}

func TestSummarizeWeeklyMinutes(t *testing.T) {
	// 2024-01-10 is a Wednesday; the week runs Sun 2024-01-07 to Sat 2024-01-13.
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		w("a", "2024-01-07", 30),
		w("b", "2024-01-10", 45),
		w("c", "2024-01-06", 60), // previous week
	}

	s := Summarize(workouts, now, 150)
	if s.MinutesThisWeek != 75 {
		t.Errorf("minutes this week = %d, want 75", s.MinutesThisWeek)
	}
	if s.GoalPercent != 50 {
		t.Errorf("goal percent = %d, want 50", s.GoalPercent)
	}
}

func TestSummarizeGoalCapsAtHundred(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	workouts := []models.Workout{w("a", "2024-01-10", 500)}

	s := Summarize(workouts, now, 150)
	if s.GoalPercent != 100 {
		t.Errorf("goal percent = %d, want capped at 100", s.GoalPercent)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Now(), 150)
	if s.TotalWorkouts != 0 || s.StreakDays != 0 || s.MinutesThisWeek != 0 || s.GoalPercent != 0 {
		t.Errorf("empty summary = %+v, want zeros", s)
	}
}
