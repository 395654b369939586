// ABOUTME: Tests for the workout model.
// ABOUTME: Validates rest-day normalization, intensity and type checks, ids.
package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewWorkoutID(t *testing.T) {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	id := NewWorkoutID(at)
	if !strings.HasPrefix(id, "uuid-") {
		t.Errorf("id = %q, want uuid- prefix", id)
	}
	if id != NewWorkoutID(at) {
		t.Error("id should be deterministic for a fixed instant")
	}
}

func TestNormalizeRestDay(t *testing.T) {
	w := Workout{
		ID:        "uuid-1",
		Date:      "2024-01-01",
		Type:      "Cardio",
		Duration:  30,
		Calories:  200,
		Intensity: IntensityHigh,
		Notes:     "felt tired, resting instead",
		IsRestDay: true,
	}
	w.Normalize()

	if w.Duration != 0 || w.Calories != 0 {
		t.Errorf("rest day kept duration=%d calories=%d, want zeros", w.Duration, w.Calories)
	}
	if w.Type != "Rest" || w.Intensity != IntensityRest {
		t.Errorf("rest day type=%q intensity=%q, want Rest/Rest", w.Type, w.Intensity)
	}
	if w.Notes != "felt tired, resting instead" {
		t.Error("notes should survive normalization")
	}
}

func TestNormalizeLeavesRegularWorkout(t *testing.T) {
	w := Workout{Type: "Yoga", Duration: 45, Calories: 150, Intensity: IntensityLow}
	w.Normalize()

	if w.Type != "Yoga" || w.Duration != 45 || w.Calories != 150 {
		t.Error("normalization must not touch non-rest workouts")
	}
}

func TestValidIntensity(t *testing.T) {
	for _, level := range []string{IntensityLow, IntensityModerate, IntensityHigh, IntensityExtreme, IntensityRest} {
		if !ValidIntensity(level) {
			t.Errorf("ValidIntensity(%q) = false, want true", level)
		}
	}
	for _, bad := range []string{"", "low", "Medium", "extreme"} {
		if ValidIntensity(bad) {
			t.Errorf("ValidIntensity(%q) = true, want false", bad)
		}
	}
}

func TestIsDefaultType(t *testing.T) {
	if !IsDefaultType("Cardio") {
		t.Error("Cardio is a default type")
	}
	if IsDefaultType("cardio") {
		t.Error("match must be case-sensitive")
	}
	if IsDefaultType("Climbing") {
		t.Error("Climbing is not a default type")
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-03-15" {
		t.Errorf("round trip = %q, want 2024-03-15", got)
	}

	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Error("ParseDate should reject non-ISO dates")
	}
}
