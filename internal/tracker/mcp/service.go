package mcp

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/tracker/analytics"
	"github.com/2beens/gymtracker/internal/tracker/model"
)

// trackerReader is the read side of the domain store used by the MCP tools.
type trackerReader interface {
	CurrentUser() (model.User, bool)
	Exercises() []model.Exercise
	SearchExercises(query string) []model.Exercise
	UserWorkouts() []model.Workout
	CatalogWorkouts() []model.Workout
}

type statsService interface {
	ExerciseStats(ctx context.Context, exerciseID string) (*analytics.ExerciseStats, error)
	ExerciseHistory(ctx context.Context, exerciseID string) []analytics.WorkoutGroup
}

// ExerciseFilter narrows down list_exercises results. Zero value lists everything.
type ExerciseFilter struct {
	Query         string
	MuscleGroup   string
	FavoritesOnly bool
}

// WorkoutFilter narrows down workouts by date (inclusive) and by a contained exercise.
type WorkoutFilter struct {
	From       *time.Time
	To         *time.Time
	ExerciseID string
}

func (f WorkoutFilter) matches(date time.Time) bool {
	if f.From != nil && date.Before(*f.From) {
		return false
	}
	if f.To != nil && date.After(*f.To) {
		return false
	}
	return true
}

// contextService provides tracker data for the MCP tools. Used by Handler for testability.
type contextService interface {
	GetSummary(ctx context.Context) (string, error)
	ListExercises(ctx context.Context, filter ExerciseFilter) ([]model.Exercise, error)
	ListUserWorkouts(ctx context.Context, filter WorkoutFilter) ([]model.Workout, error)
	GetExerciseStats(ctx context.Context, exerciseID string) (*analytics.ExerciseStats, error)
	GetExerciseHistory(ctx context.Context, exerciseID string, filter WorkoutFilter) ([]analytics.WorkoutGroup, error)
}

// ContextService answers MCP tool calls from the in-memory store and the analytics engine.
type ContextService struct {
	tracker trackerReader
	stats   statsService
}

func NewContextService(tracker trackerReader, stats statsService) *ContextService {
	return &ContextService{
		tracker: tracker,
		stats:   stats,
	}
}

// GetSummary returns a markdown overview of the current tracker state.
func (s *ContextService) GetSummary(_ context.Context) (string, error) {
	exercises := s.tracker.Exercises()
	userWorkouts := s.tracker.UserWorkouts()
	catalogWorkouts := s.tracker.CatalogWorkouts()

	var b strings.Builder
	b.WriteString("# Gym Tracker\n\n")
	if user, ok := s.tracker.CurrentUser(); ok {
		b.WriteString(fmt.Sprintf("User: %s (id %s)", user.Name, user.ID))
		if user.City != "" {
			b.WriteString(", " + user.City)
		}
		b.WriteString("\n\n")
	}

	b.WriteString("| Collection | Count |\n|------------|-------|\n")
	b.WriteString(fmt.Sprintf("| exercises | %d |\n", len(exercises)))
	b.WriteString(fmt.Sprintf("| user workouts | %d |\n", len(userWorkouts)))
	b.WriteString(fmt.Sprintf("| catalog workouts | %d |\n", len(catalogWorkouts)))

	byMuscle := make(map[string]int)
	for _, ex := range exercises {
		for _, mg := range ex.MuscleGroups {
			byMuscle[mg]++
		}
	}
	if len(byMuscle) > 0 {
		groups := make([]string, 0, len(byMuscle))
		for mg := range byMuscle {
			groups = append(groups, mg)
		}
		sort.Strings(groups)

		b.WriteString("\n## Muscle groups\n\n")
		for _, mg := range groups {
			b.WriteString(fmt.Sprintf("- %s: %d\n", mg, byMuscle[mg]))
		}
	}

	return b.String(), nil
}

func (s *ContextService) ListExercises(_ context.Context, filter ExerciseFilter) ([]model.Exercise, error) {
	found := s.tracker.SearchExercises(filter.Query)
	list := make([]model.Exercise, 0, len(found))
	for _, ex := range found {
		if filter.FavoritesOnly && !ex.Favorite {
			continue
		}
		if filter.MuscleGroup != "" && !slices.ContainsFunc(ex.MuscleGroups, func(mg string) bool {
			return strings.EqualFold(mg, filter.MuscleGroup)
		}) {
			continue
		}
		list = append(list, ex)
	}
	return list, nil
}

// ListUserWorkouts returns the user-created workouts matching the filter, most recent first.
func (s *ContextService) ListUserWorkouts(_ context.Context, filter WorkoutFilter) ([]model.Workout, error) {
	list := make([]model.Workout, 0)
	for _, w := range s.tracker.UserWorkouts() {
		if !filter.matches(w.Date) {
			continue
		}
		if filter.ExerciseID != "" && !w.ContainsExercise(filter.ExerciseID) {
			continue
		}
		list = append(list, w)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	return list, nil
}

func (s *ContextService) GetExerciseStats(ctx context.Context, exerciseID string) (*analytics.ExerciseStats, error) {
	return s.stats.ExerciseStats(ctx, exerciseID)
}

func (s *ContextService) GetExerciseHistory(ctx context.Context, exerciseID string, filter WorkoutFilter) ([]analytics.WorkoutGroup, error) {
	groups := s.stats.ExerciseHistory(ctx, exerciseID)
	filtered := make([]analytics.WorkoutGroup, 0, len(groups))
	for _, g := range groups {
		if filter.matches(g.WorkoutDate) {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}
