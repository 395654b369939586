// ABOUTME: Workout and custom-type operations over the application-data document.
// ABOUTME: Whole-document read-modify-write; upsert semantics keyed by workout id.
package storage

import (
	"context"
	"fmt"
	"time"

	"stepup/internal/models"
)

// appData is the application-data document shape under KeyAppData.
type appData struct {
	Workouts []models.Workout `json:"workouts"`
}

// GetWorkouts returns all workouts in insertion order. A missing document
// reads as an empty history.
func (s *Store) GetWorkouts(ctx context.Context) ([]models.Workout, error) {
	var data appData
	if _, err := s.getJSON(ctx, KeyAppData, &data); err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	return data.Workouts, nil
}

// SaveWorkout appends workout to the history, assigning an id when none is
// present, and returns the stored record. Rest days are normalized before
// persisting. Generated ids come from the clock; if a generated id is
// already taken (two saves inside one millisecond) the clock value is bumped
// until the id is free, keeping ids unique. A caller-supplied id that is
// already in the history returns ErrDuplicateWorkout.
func (s *Store) SaveWorkout(ctx context.Context, workout models.Workout) (models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data appData
	if _, err := s.getJSON(ctx, KeyAppData, &data); err != nil {
		return models.Workout{}, fmt.Errorf("save workout: %w", err)
	}

	workout.Normalize()

	if workout.ID == "" {
		at := s.now()
		id := models.NewWorkoutID(at)
		for taken(data.Workouts, id) {
			at = at.Add(time.Millisecond)
			id = models.NewWorkoutID(at)
		}
		workout.ID = id
	} else if taken(data.Workouts, workout.ID) {
		return models.Workout{}, fmt.Errorf("save workout %s: %w", workout.ID, ErrDuplicateWorkout)
	}

	data.Workouts = append(data.Workouts, workout)
	if err := s.setJSON(ctx, KeyAppData, data); err != nil {
		return models.Workout{}, fmt.Errorf("save workout: %w", err)
	}
	return workout, nil
}

// UpdateWorkout replaces the workout whose id matches, preserving its
// position in the history. Returns ErrNotFound when no workout has that id.
func (s *Store) UpdateWorkout(ctx context.Context, workout models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data appData
	if _, err := s.getJSON(ctx, KeyAppData, &data); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}

	workout.Normalize()

	for i, w := range data.Workouts {
		if w.ID == workout.ID {
			data.Workouts[i] = workout
			if err := s.setJSON(ctx, KeyAppData, data); err != nil {
				return fmt.Errorf("update workout: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("update workout %s: %w", workout.ID, ErrNotFound)
}

// DeleteWorkout removes the workout with the matching id. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteWorkout(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data appData
	if _, err := s.getJSON(ctx, KeyAppData, &data); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	kept := data.Workouts[:0]
	removed := false
	for _, w := range data.Workouts {
		if w.ID == id {
			removed = true
			continue
		}
		kept = append(kept, w)
	}
	if !removed {
		return nil
	}

	data.Workouts = kept
	if err := s.setJSON(ctx, KeyAppData, data); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// GetCustomTypes returns the user-defined workout types in the order they
// were added.
func (s *Store) GetCustomTypes(ctx context.Context) ([]string, error) {
	var types []string
	if _, err := s.getJSON(ctx, KeyCustomTypes, &types); err != nil {
		return nil, fmt.Errorf("get custom types: %w", err)
	}
	return types, nil
}

// AddCustomType appends name to the custom type set. The name must differ
// (exact match) from every default type and every previously added custom
// type; collisions fail with ErrDuplicateType and leave the set unchanged.
// There is no removal path.
func (s *Store) AddCustomType(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.IsDefaultType(name) {
		return ErrDuplicateType
	}

	var types []string
	if _, err := s.getJSON(ctx, KeyCustomTypes, &types); err != nil {
		return fmt.Errorf("add custom type: %w", err)
	}

	for _, t := range types {
		if t == name {
			return ErrDuplicateType
		}
	}

	types = append(types, name)
	if err := s.setJSON(ctx, KeyCustomTypes, types); err != nil {
		return fmt.Errorf("add custom type: %w", err)
	}
	return nil
}

// AllTypes returns the default types followed by the custom types, the
// full list a workout can be logged under.
func (s *Store) AllTypes(ctx context.Context) ([]string, error) {
	custom, err := s.GetCustomTypes(ctx)
	if err != nil {
		return nil, err
	}
	all := make([]string, 0, len(models.DefaultTypes)+len(custom))
	all = append(all, models.DefaultTypes...)
	all = append(all, custom...)
	return all, nil
}

func taken(workouts []models.Workout, id string) bool {
	for _, w := range workouts {
		if w.ID == id {
			return true
		}
	}
	return false
}
