// ABOUTME: MCP resource implementations for the workout store.
// ABOUTME: Provides stepup://recent, stepup://calendar, and stepup://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stepup/internal/stats"
)

func (s *Server) registerResources() {
	// stepup://recent - last 10 workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "stepup://recent",
		Name:        "Recent Workouts",
		Description: "Last 10 logged workouts, newest first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// stepup://calendar - current month grouped by date
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "stepup://calendar",
		Name:        "Workout Calendar",
		Description: "Current month's workouts grouped by date",
		MIMEType:    "application/json",
	}, s.handleCalendarResource)

	// stepup://summary - dashboard numbers
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "stepup://summary",
		Name:        "Dashboard Summary",
		Description: "Totals, streak, and weekly goal progress",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.store.GetWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	history := stats.SortHistory(workouts)
	if len(history) > 10 {
		history = history[:10]
	}

	return jsonResource("stepup://recent", history)
}

func (s *Server) handleCalendarResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.store.GetWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	now := time.Now()
	monthPrefix := now.Format("2006-01")
	byDate := map[string]any{}
	for date, entries := range stats.ByDate(workouts) {
		if len(date) >= len(monthPrefix) && date[:len(monthPrefix)] == monthPrefix {
			byDate[date] = entries
		}
	}

	return jsonResource("stepup://calendar", map[string]any{
		"month":    monthPrefix,
		"workouts": byDate,
	})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.store.GetWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	return jsonResource("stepup://summary", stats.Summarize(workouts, time.Now(), s.weeklyGoalMinutes))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
