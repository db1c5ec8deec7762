package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/model"

	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=analytics_test

type workoutHistory interface {
	ExerciseWithHistory(exerciseID string) (model.Exercise, []model.Workout, bool)
	AllWorkouts() []model.Workout
}

// Service computes exercise stats from the current store contents on every call.
type Service struct {
	history workoutHistory
	metrics *metrics.Manager
}

func NewService(history workoutHistory, metricsManager *metrics.Manager) *Service {
	return &Service{
		history: history,
		metrics: metricsManager,
	}
}

func (s *Service) ExerciseStats(ctx context.Context, exerciseID string) (_ *ExerciseStats, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.exercise-stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	exercise, workouts, ok := s.history.ExerciseWithHistory(exerciseID)
	if !ok {
		return nil, ErrExerciseNotFound
	}

	start := time.Now()
	stats := Compute(exercise, workouts)
	if s.metrics != nil {
		s.metrics.HistStatsComputeDuration.Observe(time.Since(start).Seconds())
	}

	span.SetAttributes(
		attribute.Int("stats.total_sets", stats.TotalSets),
		attribute.Int("stats.workouts", len(stats.History)),
		attribute.String("stats.difficulty", stats.Difficulty.String()),
	)

	return &stats, nil
}

// ExerciseHistory returns the per-workout set history of an exercise, most recent first.
// Unknown exercise ids are fine here, they simply have no history.
func (s *Service) ExerciseHistory(ctx context.Context, exerciseID string) []WorkoutGroup {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.exercise-history")
	defer span.End()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	return History(exerciseID, s.history.AllWorkouts())
}
