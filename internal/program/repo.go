package program

import (
	"context"
	"errors"
	"time"

	"github.com/repstack/coachcore/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMaxesNotFound = errors.New("lift maxes not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetLiftMaxes(ctx context.Context, userID int) (_ *LiftMaxes, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.getmaxes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var maxes LiftMaxes
	err = r.db.QueryRow(
		ctx,
		`SELECT squat, bench, deadlift FROM user_lift_maxes WHERE user_id = $1;`,
		userID,
	).Scan(&maxes.Squat, &maxes.Bench, &maxes.Deadlift)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMaxesNotFound
	}
	if err != nil {
		return nil, err
	}

	return &maxes, nil
}

func (r *Repo) SetLiftMaxes(ctx context.Context, userID int, maxes LiftMaxes) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.setmaxes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_lift_maxes (user_id, squat, bench, deadlift, updated_at)
			VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
			SET squat = $2, bench = $3, deadlift = $4, updated_at = $5;`,
		userID, maxes.Squat, maxes.Bench, maxes.Deadlift, time.Now(),
	)
	return err
}
