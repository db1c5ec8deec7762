package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the tracker tools.
// The main service mounts it at /mcp over HTTP, cmd/tracker_mcp runs it over stdio.
func NewServer(tracker trackerReader, stats statsService) *mcp.Server {
	h := NewHandler(NewContextService(tracker, stats))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymtracker",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_tracker_summary",
		Description: "Returns a markdown overview of the tracker: current user, number of exercises and workouts, exercises per muscle group.",
	}, h.GetTrackerSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_stats",
		Description: "Returns the aggregated stats of an exercise from its whole workout history: average sets, reps range, weight range, rest, difficulty (Легкий, Средний, Сложный) and the per-workout set history. Arg: exercise_id.",
	}, h.GetExerciseStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercises known to the tracker. Optional filters: query (name or muscle group search), muscle_group, favorites_only.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_user_workouts",
		Description: "Returns the workouts created by the user, most recent first. Optional filters: from_date, to_date (YYYY-MM-DD), exercise_id.",
	}, h.ListUserWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_history",
		Description: "Returns the sets performed for an exercise grouped by workout, most recent first. Args: exercise_id; optional: from_date, to_date (YYYY-MM-DD).",
	}, h.GetExerciseHistoryTool())

	return s
}
