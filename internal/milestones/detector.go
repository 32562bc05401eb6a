package milestones

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/repstack/coachcore/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=detector_mocks_test.go -package=milestones_test

// streakLookbackDays bounds the history window fetched for streak
// calculation, the streak walk never looks further back than this.
const streakLookbackDays = 60

type milestonesRepo interface {
	GetMilestones(ctx context.Context, userID int) ([]Milestone, error)
	GetWorkoutCount(ctx context.Context, userID int) (int, error)
	GetCompletedMealCount(ctx context.Context, userID int) (int, error)
	GetWorkoutDatesSince(ctx context.Context, userID int, since time.Time) ([]time.Time, error)
	UpsertMilestones(ctx context.Context, milestones []Milestone) error
	SetCelebrated(ctx context.Context, userID int, types []Type, celebratedAt time.Time) error
}

// PRInfo carries the personal record that triggered this detection call, if any.
type PRInfo struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
}

type DetectParams struct {
	UserID int
	// PR is set when the caller just detected a personal record.
	PR *PRInfo
	// Today overrides the effective date, zero means the current local date.
	Today time.Time
}

type Detector struct {
	repo milestonesRepo
}

func NewDetector(repo milestonesRepo) *Detector {
	return &Detector{
		repo: repo,
	}
}

// CalculateStreak counts the unbroken run of training days ending at today.
// A single rest day does not break the streak, two consecutive rest days do.
func CalculateStreak(workoutDates []time.Time, today time.Time) int {
	daySet := make(map[string]struct{}, len(workoutDates))
	for _, d := range workoutDates {
		daySet[d.Format(time.DateOnly)] = struct{}{}
	}

	var streak, restDays int
	day := today
	for i := 0; i < streakLookbackDays; i++ {
		if _, ok := daySet[day.Format(time.DateOnly)]; ok {
			streak++
			restDays = 0
		} else {
			restDays++
			if restDays > 1 {
				break
			}
		}
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// DetectMilestones computes which milestones just became true for the user,
// stores them, and returns all pending (uncelebrated) milestones ordered by
// priority. Repeated calls with an unchanged history are idempotent.
func (d *Detector) DetectMilestones(ctx context.Context, params DetectParams) (_ []Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "detector.milestones.detect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))

	today := params.Today
	if today.IsZero() {
		today = time.Now()
	}

	existing, err := d.repo.GetMilestones(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("get milestones: %w", err)
	}

	achieved := make(map[Type]bool, len(existing))
	var pending []Milestone
	for _, m := range existing {
		achieved[m.Type] = true
		if m.CelebratedAt == nil {
			pending = append(pending, m)
		}
	}

	// the three history reads are independent, fetch them in parallel
	var (
		workoutCount int
		mealCount    int
		workoutDates []time.Time
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workoutCount, err = d.repo.GetWorkoutCount(gctx, params.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		mealCount, err = d.repo.GetCompletedMealCount(gctx, params.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		since := today.AddDate(0, 0, -streakLookbackDays)
		workoutDates, err = d.repo.GetWorkoutDatesSince(gctx, params.UserID, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch user history: %w", err)
	}

	streak := CalculateStreak(workoutDates, today)
	span.SetAttributes(attribute.Int("streak", streak))

	// the streak thresholds are deliberately independent: a user coming back
	// with e.g. a 10 day streak unlocks streak_7 and streak_3 in one call
	checks := []struct {
		milestoneType Type
		hit           bool
	}{
		{TypeFirstPR, params.PR != nil},
		{TypeStreak30, streak >= 30},
		{TypeStreak14, streak >= 14},
		{TypeStreak7, streak >= 7},
		{TypeStreak3, streak >= 3},
		{TypeWorkout100, workoutCount >= 100},
		{TypeWorkout50, workoutCount >= 50},
		{TypeFirstWorkout, workoutCount >= 1},
		{TypeFirstFoodEntry, mealCount >= 1},
	}

	var detected []Milestone
	for _, check := range checks {
		if !check.hit || achieved[check.milestoneType] {
			continue
		}
		m := Milestone{
			UserID:     params.UserID,
			Type:       check.milestoneType,
			AchievedAt: today,
		}
		if check.milestoneType == TypeFirstPR {
			m.Metadata = map[string]string{
				"exercise": params.PR.Exercise,
				"weight":   strconv.FormatFloat(params.PR.Weight, 'f', -1, 64),
				"reps":     strconv.Itoa(params.PR.Reps),
			}
		}
		detected = append(detected, m)
	}

	if len(detected) > 0 {
		if err := d.repo.UpsertMilestones(ctx, detected); err != nil {
			return nil, fmt.Errorf("upsert milestones: %w", err)
		}
	}

	// newly detected union previously uncelebrated, deduplicated by type
	seen := make(map[Type]bool, len(detected)+len(pending))
	result := make([]Milestone, 0, len(detected)+len(pending))
	for _, m := range append(detected, pending...) {
		if seen[m.Type] {
			continue
		}
		seen[m.Type] = true
		result = append(result, m)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return Rank(result[i].Type) < Rank(result[j].Type)
	})

	return result, nil
}

// MarkCelebrated flags the given milestones as shown to the user.
// A no-op on empty input, and harmless to repeat.
func (d *Detector) MarkCelebrated(ctx context.Context, userID int, milestones []Milestone) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "detector.milestones.celebrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(milestones) == 0 {
		return nil
	}

	types := make([]Type, 0, len(milestones))
	for _, m := range milestones {
		types = append(types, m.Type)
	}

	if err := d.repo.SetCelebrated(ctx, userID, types, time.Now()); err != nil {
		return fmt.Errorf("set celebrated: %w", err)
	}
	return nil
}
