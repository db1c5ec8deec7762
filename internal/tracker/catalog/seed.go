package catalog

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/model"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type catalogStore interface {
	ReplaceExercises(exercises []model.Exercise)
	ReplaceCatalog(workouts []model.Workout)
	ReplaceFriends(friends []model.Friend)
}

// Seed loads every catalog collection it can into the store. A failing collection
// leaves the store's current value for it untouched, and all failures are returned combined.
func Seed(ctx context.Context, source Source, store catalogStore, metricsManager *metrics.Manager) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	failed := func(collection string, cerr error) {
		log.Errorf("seed catalog [%s]: %s", collection, cerr)
		if metricsManager != nil {
			metricsManager.CounterCatalogSeedErrors.WithLabelValues(collection).Inc()
		}
		err = multierr.Append(err, fmt.Errorf("%s: %w", collection, cerr))
	}

	if exercises, eerr := source.Exercises(ctx); eerr != nil {
		failed("exercises", eerr)
	} else {
		store.ReplaceExercises(exercises)
		log.Debugf("seeded %d catalog exercises", len(exercises))
	}

	if workouts, werr := source.Workouts(ctx); werr != nil {
		failed("workouts", werr)
	} else {
		store.ReplaceCatalog(workouts)
		log.Debugf("seeded %d catalog workouts", len(workouts))
	}

	if friends, ferr := source.Friends(ctx); ferr != nil {
		failed("friends", ferr)
	} else {
		store.ReplaceFriends(friends)
		log.Debugf("seeded %d friends", len(friends))
	}

	return err
}
