package prs

import (
	"context"
	"fmt"
	"time"

	"github.com/repstack/coachcore/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetWorkoutsBefore(ctx context.Context, userID int, before time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.prs.workoutsbefore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("before", before.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, performed_at FROM workout
			WHERE user_id = $1 AND performed_at < $2
		ORDER BY performed_at DESC;`,
		userID, before,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.PerformedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}

	return workouts, nil
}

func (r *Repo) GetExercisesByWorkoutIDsAndNames(
	ctx context.Context,
	workoutIDs []int,
	names []string,
) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.prs.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workouts.count", len(workoutIDs)))
	span.SetAttributes(attribute.Int("names.count", len(names)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, name FROM workout_exercise
			WHERE workout_id = ANY($1) AND name = ANY($2);`,
		workoutIDs, names,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}

	return exercises, nil
}

func (r *Repo) GetSetsByExerciseIDs(ctx context.Context, exerciseIDs []int) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.prs.sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exerciseIDs)))

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise_id, weight, reps, COALESCE(variant, '') FROM exercise_set
			WHERE exercise_id = ANY($1);`,
		exerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	sets := make([]ExerciseSet, 0)
	for rows.Next() {
		var s ExerciseSet
		if err := rows.Scan(&s.ExerciseID, &s.Weight, &s.Reps, &s.Variant); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, s)
	}

	return sets, nil
}
