// ABOUTME: MCP tool implementations for workouts and custom types.
// ABOUTME: Provides log/list/update/delete operations plus dashboard stats.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stepup/internal/models"
	"stepup/internal/stats"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout or a rest day",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workout history, newest first, optionally filtered by type",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Replace a workout by id",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by id",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout_type",
		Description: "Add a custom workout type",
	}, s.handleAddWorkoutType)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get dashboard stats: totals, streak, weekly goal progress",
	}, s.handleGetStats)
}

// Tool input/output types

type logWorkoutInput struct {
	Date      string `json:"date,omitempty" jsonschema:"Calendar date YYYY-MM-DD; defaults to today"`
	Type      string `json:"type,omitempty" jsonschema:"Workout type (default or custom)"`
	Duration  int    `json:"duration,omitempty" jsonschema:"Duration in minutes"`
	Calories  int    `json:"calories,omitempty" jsonschema:"Calories burned"`
	Intensity string `json:"intensity,omitempty" jsonschema:"Low Moderate High or Extreme"`
	Notes     string `json:"notes,omitempty" jsonschema:"Free-form notes"`
	IsRestDay bool   `json:"is_rest_day,omitempty" jsonschema:"Log a rest day instead of a workout"`
}

type listWorkoutsInput struct {
	Type  string `json:"type,omitempty" jsonschema:"Filter by workout type (exact match)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type updateWorkoutInput struct {
	ID        string `json:"id" jsonschema:"Id of the workout to replace"`
	Date      string `json:"date,omitempty"`
	Type      string `json:"type,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Calories  int    `json:"calories,omitempty"`
	Intensity string `json:"intensity,omitempty"`
	Notes     string `json:"notes,omitempty"`
	IsRestDay bool   `json:"is_rest_day,omitempty"`
}

type deleteWorkoutInput struct {
	ID string `json:"id" jsonschema:"Id of the workout to delete"`
}

type addWorkoutTypeInput struct {
	Name string `json:"name" jsonschema:"New custom workout type name"`
}

type getStatsInput struct{}

type workoutOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	date := input.Date
	if date == "" {
		date = models.FormatDate(time.Now())
	} else if _, err := models.ParseDate(date); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("invalid date: %s", input.Date)
	}

	intensity := input.Intensity
	if intensity == "" {
		intensity = models.IntensityModerate
	}
	if !models.ValidIntensity(intensity) {
		return nil, workoutOutput{}, fmt.Errorf("unknown intensity: %s", input.Intensity)
	}

	w, err := s.store.SaveWorkout(ctx, models.Workout{
		Date:      date,
		Type:      input.Type,
		Duration:  input.Duration,
		Calories:  input.Calories,
		Intensity: intensity,
		Notes:     input.Notes,
		IsRestDay: input.IsRestDay,
	})
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, workoutOutput{
		ID:      w.ID,
		Message: fmt.Sprintf("Logged %s on %s (ID: %s)", w.Type, w.Date, w.ID),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts, err := s.store.GetWorkouts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	history := stats.SortHistory(workouts)
	if input.Type != "" {
		filtered := history[:0]
		for _, w := range history {
			if w.Type == input.Type {
				filtered = append(filtered, w)
			}
		}
		history = filtered
	}
	if len(history) > input.Limit {
		history = history[:input.Limit]
	}

	if len(history) == 0 {
		return nil, map[string]any{"message": "No workouts found."}, nil
	}
	return nil, history, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Date != "" {
		if _, err := models.ParseDate(input.Date); err != nil {
			return nil, simpleOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
	}

	err := s.store.UpdateWorkout(ctx, models.Workout{
		ID:        input.ID,
		Date:      input.Date,
		Type:      input.Type,
		Duration:  input.Duration,
		Calories:  input.Calories,
		Intensity: input.Intensity,
		Notes:     input.Notes,
		IsRestDay: input.IsRestDay,
	})
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update workout: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Updated workout %s", input.ID)}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input deleteWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.DeleteWorkout(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout: %s", input.ID)}, nil
}

func (s *Server) handleAddWorkoutType(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutTypeInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.AddCustomType(ctx, input.Name); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add workout type: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Added workout type: %s", input.Name)}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input getStatsInput) (*mcp.CallToolResult, stats.Summary, error) {
	workouts, err := s.store.GetWorkouts(ctx)
	if err != nil {
		return nil, stats.Summary{}, fmt.Errorf("failed to get stats: %w", err)
	}
	return nil, stats.Summarize(workouts, time.Now(), s.weeklyGoalMinutes), nil
}
