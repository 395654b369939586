// ABOUTME: Export and import of the full data set.
// ABOUTME: Supports JSON and YAML envelopes; import upserts workouts by id.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"stepup/internal/models"
)

// ExportData is the full export envelope.
type ExportData struct {
	Version     string           `json:"version" yaml:"version"`
	ExportID    string           `json:"export_id" yaml:"export_id"`
	ExportedAt  time.Time        `json:"exported_at" yaml:"exported_at"`
	Tool        string           `json:"tool" yaml:"tool"`
	Users       []models.User    `json:"users" yaml:"users"`
	Workouts    []models.Workout `json:"workouts" yaml:"workouts"`
	CustomTypes []string         `json:"custom_types" yaml:"custom_types"`
}

// GetAllData gathers every persisted collection for export.
func (s *Store) GetAllData(ctx context.Context) (*ExportData, error) {
	users, err := s.GetRegisteredUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}

	workouts, err := s.GetWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}

	types, err := s.GetCustomTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("export custom types: %w", err)
	}

	return &ExportData{
		Version:     "1.0",
		ExportID:    uuid.New().String(),
		ExportedAt:  time.Now(),
		Tool:        "stepup",
		Users:       users,
		Workouts:    workouts,
		CustomTypes: types,
	}, nil
}

// ImportData merges an export envelope into the store. Workouts are
// upserted by id (replace when the id exists, append otherwise), custom
// types are added skipping duplicates, and roster entries with already
// registered emails are skipped. The session is never touched.
func (s *Store) ImportData(ctx context.Context, data *ExportData) error {
	// RegisterUser establishes a session as a side effect; imports must not
	// change who is logged in, so the prior session is restored afterwards.
	prior, err := s.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("import users: %w", err)
	}

	for _, u := range data.Users {
		if err := s.RegisterUser(ctx, u); err != nil {
			if errors.Is(err, ErrDuplicateUser) {
				continue
			}
			return fmt.Errorf("import user %s: %w", u.Email, err)
		}
	}

	if len(data.Users) > 0 {
		if prior != nil {
			err = s.SaveUser(ctx, *prior)
		} else {
			err = s.Logout(ctx)
		}
		if err != nil {
			return fmt.Errorf("import users: %w", err)
		}
	}

	for _, w := range data.Workouts {
		if w.ID == "" {
			if _, err := s.SaveWorkout(ctx, w); err != nil {
				return fmt.Errorf("import workout: %w", err)
			}
			continue
		}
		err := s.UpdateWorkout(ctx, w)
		if errors.Is(err, ErrNotFound) {
			_, err = s.SaveWorkout(ctx, w)
		}
		if err != nil {
			return fmt.Errorf("import workout %s: %w", w.ID, err)
		}
	}

	for _, name := range data.CustomTypes {
		if err := s.AddCustomType(ctx, name); err != nil {
			if errors.Is(err, ErrDuplicateType) {
				continue
			}
			return fmt.Errorf("import custom type %s: %w", name, err)
		}
	}

	return nil
}

// Marshal renders the envelope in the given format ("json" or "yaml").
func (e *ExportData) Marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(e, "", "  ")
	case "yaml":
		return yaml.Marshal(e)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// ParseExport decodes an export envelope in the given format.
func ParseExport(data []byte, format string) (*ExportData, error) {
	var e ExportData
	switch format {
	case "json":
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("parse json export: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("parse yaml export: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
	return &e, nil
}
