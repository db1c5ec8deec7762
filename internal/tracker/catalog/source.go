package catalog

import (
	"context"
	"errors"

	"github.com/2beens/gymtracker/internal/tracker/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=catalog_test

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Source provides the catalog collections the store is seeded with.
type Source interface {
	Exercises(ctx context.Context) ([]model.Exercise, error)
	Workouts(ctx context.Context) ([]model.Workout, error)
	Friends(ctx context.Context) ([]model.Friend, error)
}
