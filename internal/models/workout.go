// ABOUTME: Workout model with rest-day normalization and the default type list.
// ABOUTME: IDs follow the uuid-<unix-millis> format used in existing app data.
package models

import (
	"fmt"
	"time"
)

// Intensity levels selectable for a workout. Rest is reserved for rest days
// and is never offered as a pickable level.
const (
	IntensityLow      = "Low"
	IntensityModerate = "Moderate"
	IntensityHigh     = "High"
	IntensityExtreme  = "Extreme"
	IntensityRest     = "Rest"
)

// DefaultTypes is the fixed workout type list. Custom types extend it but
// may never collide with it.
var DefaultTypes = []string{"Strength", "Cardio", "Yoga", "HIIT", "Pilates", "Other"}

// Workout is a single logged session. Date is a bare calendar date with no
// time component; several workouts may share a date.
type Workout struct {
	ID        string `json:"id" yaml:"id"`
	Date      string `json:"date" yaml:"date"` // YYYY-MM-DD
	Type      string `json:"type" yaml:"type"`
	Duration  int    `json:"duration" yaml:"duration"` // minutes
	Calories  int    `json:"calories" yaml:"calories"`
	Intensity string `json:"intensity" yaml:"intensity"`
	Notes     string `json:"notes" yaml:"notes"`
	IsRestDay bool   `json:"isRestDay" yaml:"isRestDay"`
}

// NewWorkoutID derives an id from the creation instant, matching the
// uuid-<millis> ids already present in exported app data.
func NewWorkoutID(now time.Time) string {
	return fmt.Sprintf("uuid-%d", now.UnixMilli())
}

// Normalize enforces the rest-day invariant: a rest day has zero duration
// and calories, with both type and intensity forced to Rest.
func (w *Workout) Normalize() {
	if w.IsRestDay {
		w.Duration = 0
		w.Calories = 0
		w.Intensity = IntensityRest
		w.Type = "Rest"
	}
}

// ValidIntensity reports whether s is a known intensity level.
func ValidIntensity(s string) bool {
	switch s {
	case IntensityLow, IntensityModerate, IntensityHigh, IntensityExtreme, IntensityRest:
		return true
	}
	return false
}

// IsDefaultType reports whether name is one of the fixed default types.
// The match is exact; "cardio" is not "Cardio".
func IsDefaultType(name string) bool {
	for _, t := range DefaultTypes {
		if t == name {
			return true
		}
	}
	return false
}

// ParseDate parses a workout date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// FormatDate renders t as a workout date string.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
