package milestones

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/repstack/coachcore/internal/telemetry/tracing"
	"github.com/repstack/coachcore/pkg"

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

func (r *Repo) GetMilestones(ctx context.Context, userID int) (_ []Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT milestone_type, achieved_at, celebrated_at, metadata
			FROM milestone
			WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	milestones := make([]Milestone, 0)
	for rows.Next() {
		var (
			m             Milestone
			celebratedAt  *time.Time
			metadataBytes []byte
		)
		if err := rows.Scan(&m.Type, &m.AchievedAt, &celebratedAt, &metadataBytes); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		m.UserID = userID
		m.CelebratedAt = celebratedAt
		if len(metadataBytes) > 0 {
			if err := json.Unmarshal(metadataBytes, &m.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata for milestone %s: %w", m.Type, err)
			}
		}

		milestones = append(milestones, m)
	}

	return milestones, nil
}

func (r *Repo) GetWorkoutCount(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.workoutcount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("query workout count: %w", err)
	}
	return count, nil
}

func (r *Repo) GetCompletedMealCount(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.mealcount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM meal WHERE user_id = $1 AND completed IS TRUE;`,
		userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("query meal count: %w", err)
	}
	return count, nil
}

func (r *Repo) GetWorkoutDatesSince(ctx context.Context, userID int, since time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.workoutdates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("since", since.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`SELECT performed_at FROM workout
			WHERE user_id = $1 AND performed_at >= $2
		ORDER BY performed_at DESC;`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, nil
}

// UpsertMilestones stores newly detected milestones. Inserts are keyed on
// (user_id, milestone_type) with conflict-ignore semantics, so concurrent
// detection calls never create duplicates or error.
func (r *Repo) UpsertMilestones(ctx context.Context, milestones []Milestone) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("milestones.count", len(milestones)))

	for _, m := range milestones {
		var metadataJson []byte
		if m.Metadata != nil {
			metadataJson, err = json.Marshal(m.Metadata)
			if err != nil {
				return fmt.Errorf("marshal metadata: %w", err)
			}
		}

		_, err := r.db.Exec(
			ctx,
			`INSERT INTO milestone (user_id, milestone_type, achieved_at, metadata)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, milestone_type) DO NOTHING;`,
			m.UserID, m.Type, m.AchievedAt, metadataJson,
		)
		if err != nil && !pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("insert milestone %s: %w", m.Type, err)
		}
	}

	return nil
}

func (r *Repo) SetCelebrated(ctx context.Context, userID int, types []Type, celebratedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.setcelebrated")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("types.count", len(types)))

	typeStrings := make([]string, 0, len(types))
	for _, t := range types {
		typeStrings = append(typeStrings, string(t))
	}

	_, err = r.db.Exec(
		ctx,
		`UPDATE milestone SET celebrated_at = $1
			WHERE user_id = $2 AND milestone_type = ANY($3);`,
		celebratedAt, userID, typeStrings,
	)
	return err
}
