package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/gymtracker/internal/tracker/analytics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dateLayout = "2006-01-02"

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// parseDateRange parses optional YYYY-MM-DD bounds, the upper one covering the whole day.
func parseDateRange(fromDate, toDate string) (WorkoutFilter, *mcp.CallToolResult) {
	var filter WorkoutFilter
	if fromDate != "" {
		from, err := time.Parse(dateLayout, fromDate)
		if err != nil {
			return filter, errorResult("Invalid from_date: use YYYY-MM-DD")
		}
		filter.From = &from
	}
	if toDate != "" {
		to, err := time.Parse(dateLayout, toDate)
		if err != nil {
			return filter, errorResult("Invalid to_date: use YYYY-MM-DD")
		}
		to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())
		filter.To = &to
	}
	return filter, nil
}

func (h *Handler) GetTrackerSummaryTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSummary(ctx)
		if err != nil {
			return errorResult("Error building summary: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ExerciseStatsInput is the input for get_exercise_stats.
type ExerciseStatsInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise id to compute the stats for"`
}

func (h *Handler) GetExerciseStatsTool() func(context.Context, *mcp.CallToolRequest, ExerciseStatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseStatsInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID == "" {
			return errorResult("exercise_id is required"), nil, nil
		}
		stats, err := h.service.GetExerciseStats(ctx, in.ExerciseID)
		if errors.Is(err, analytics.ErrExerciseNotFound) {
			return errorResult("Exercise not found: " + in.ExerciseID), nil, nil
		}
		if err != nil {
			return errorResult("Error computing stats: " + err.Error()), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

// ListExercisesInput is the input for list_exercises.
type ListExercisesInput struct {
	Query         string `json:"query,omitempty" jsonschema:"Case insensitive search in exercise name and muscle groups"`
	MuscleGroup   string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. Грудь, Ноги)"`
	FavoritesOnly bool   `json:"favorites_only,omitempty" jsonschema:"Only return exercises marked as favorite"`
}

func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, ListExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListExercisesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListExercises(ctx, ExerciseFilter{
			Query:         in.Query,
			MuscleGroup:   in.MuscleGroup,
			FavoritesOnly: in.FavoritesOnly,
		})
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// UserWorkoutsInput is the input for list_user_workouts.
type UserWorkoutsInput struct {
	FromDate   string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate     string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
	ExerciseID string `json:"exercise_id,omitempty" jsonschema:"Only workouts containing this exercise id"`
}

func (h *Handler) ListUserWorkoutsTool() func(context.Context, *mcp.CallToolRequest, UserWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserWorkoutsInput) (*mcp.CallToolResult, any, error) {
		filter, errRes := parseDateRange(in.FromDate, in.ToDate)
		if errRes != nil {
			return errRes, nil, nil
		}
		filter.ExerciseID = in.ExerciseID

		list, err := h.service.ListUserWorkouts(ctx, filter)
		if err != nil {
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// ExerciseHistoryInput is the input for get_exercise_history.
type ExerciseHistoryInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise id"`
	FromDate   string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate     string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
}

func (h *Handler) GetExerciseHistoryTool() func(context.Context, *mcp.CallToolRequest, ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID == "" {
			return errorResult("exercise_id is required"), nil, nil
		}
		filter, errRes := parseDateRange(in.FromDate, in.ToDate)
		if errRes != nil {
			return errRes, nil, nil
		}

		groups, err := h.service.GetExerciseHistory(ctx, in.ExerciseID, filter)
		if err != nil {
			return errorResult("Error fetching exercise history: " + err.Error()), nil, nil
		}
		return jsonResult(groups), nil, nil
	}
}
