package catalog

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Source = (*PsqlSource)(nil)

// Schema holds the tables PsqlSource reads from.
const Schema = `
CREATE TABLE IF NOT EXISTS exercise
(
    id              VARCHAR PRIMARY KEY,
    name            VARCHAR NOT NULL,
    description     TEXT    NOT NULL DEFAULT '',
    muscle_groups   TEXT[]  NOT NULL DEFAULT '{}',
    equipment       TEXT[]  NOT NULL DEFAULT '{}',
    min_weight      DOUBLE PRECISION,
    max_weight      DOUBLE PRECISION,
    rest_time       DOUBLE PRECISION,
    steps           TEXT[]  NOT NULL DEFAULT '{}',
    recommendations TEXT[]  NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS workout
(
    id                 VARCHAR PRIMARY KEY,
    title              VARCHAR     NOT NULL,
    description        TEXT        NOT NULL DEFAULT '',
    date               TIMESTAMPTZ NOT NULL,
    time               VARCHAR     NOT NULL DEFAULT '',
    gym                VARCHAR     NOT NULL DEFAULT '',
    estimated_duration INTEGER,
    exercises          JSONB       NOT NULL DEFAULT '[]',
    participants       JSONB       NOT NULL DEFAULT '[]',
    completed          BOOLEAN     NOT NULL DEFAULT FALSE,
    completed_at       TIMESTAMPTZ,
    created_by         VARCHAR     NOT NULL DEFAULT '',
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_date ON workout (date);

CREATE TABLE IF NOT EXISTS friend
(
    id    VARCHAR PRIMARY KEY,
    name  VARCHAR NOT NULL,
    photo VARCHAR NOT NULL DEFAULT ''
);
`

// PsqlSource reads the catalog from Postgres.
type PsqlSource struct {
	db *pgxpool.Pool
}

func NewPsqlSource(db *pgxpool.Pool) *PsqlSource {
	return &PsqlSource{
		db: db,
	}
}

func (s *PsqlSource) Exercises(ctx context.Context) (_ []model.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.psql.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(
		ctx,
		`
			SELECT
			    id, name, description, muscle_groups, equipment,
			    min_weight, max_weight, rest_time, steps, recommendations
			FROM exercise
			ORDER BY name
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	var exercises []model.Exercise
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Description,
			&e.MuscleGroups,
			&e.Equipment,
			&e.MinWeight,
			&e.MaxWeight,
			&e.RestTime,
			&e.Steps,
			&e.Recommendations,
		); err != nil {
			return nil, fmt.Errorf("exercises [scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows]: %w", err)
	}

	return exercises, nil
}

func (s *PsqlSource) Workouts(ctx context.Context) (_ []model.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.psql.workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(
		ctx,
		`
			SELECT
			    id, title, description, date, time, gym, estimated_duration,
			    exercises, participants, completed, completed_at, created_by, created_at
			FROM workout
			ORDER BY date
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts [query]: %w", err)
	}

	workouts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Workout, error) {
		w := model.Workout{Origin: model.OriginCatalog}
		err := row.Scan(
			&w.ID,
			&w.Title,
			&w.Description,
			&w.Date,
			&w.Time,
			&w.Gym,
			&w.EstimatedDuration,
			&w.Exercises,
			&w.Participants,
			&w.Completed,
			&w.CompletedAt,
			&w.CreatedBy,
			&w.CreatedAt,
		)
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("workouts [collect]: %w", err)
	}

	return workouts, nil
}

func (s *PsqlSource) Friends(ctx context.Context) (_ []model.Friend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.psql.friends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(ctx, `SELECT id, name, photo FROM friend ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("friends [query]: %w", err)
	}

	friends, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Friend])
	if err != nil {
		return nil, fmt.Errorf("friends [collect]: %w", err)
	}

	return friends, nil
}
