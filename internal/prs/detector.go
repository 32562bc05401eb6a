package prs

import (
	"context"
	"fmt"
	"time"

	"github.com/repstack/coachcore/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=detector_mocks_test.go -package=prs_test

type historyRepo interface {
	GetWorkoutsBefore(ctx context.Context, userID int, before time.Time) ([]Workout, error)
	GetExercisesByWorkoutIDsAndNames(ctx context.Context, workoutIDs []int, names []string) ([]Exercise, error)
	GetSetsByExerciseIDs(ctx context.Context, exerciseIDs []int) ([]ExerciseSet, error)
}

type Detector struct {
	repo historyRepo
}

func NewDetector(repo historyRepo) *Detector {
	return &Detector{
		repo: repo,
	}
}

type exerciseBest struct {
	name string
	best Set
}

// DetectPRs compares a freshly logged workout against the user's history.
// The history queries are dependency-chained: workouts before the date, then
// their exercises matching the current names, then those exercises' sets.
// An empty stage short-circuits to "every lift with a working set is a PR".
func (d *Detector) DetectPRs(
	ctx context.Context,
	userID int,
	workoutDate time.Time,
	exercises []ExerciseLog,
) (_ []PR, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "detector.prs.detect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	// reduce the current workout to one best working set per exercise
	bests := make([]exerciseBest, 0, len(exercises))
	names := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		best := BestSet(ex.Sets)
		if best == nil {
			continue
		}
		bests = append(bests, exerciseBest{name: ex.Name, best: *best})
		names = append(names, ex.Name)
	}
	if len(bests) == 0 {
		return []PR{}, nil
	}

	workouts, err := d.repo.GetWorkoutsBefore(ctx, userID, workoutDate)
	if err != nil {
		return nil, fmt.Errorf("get workouts before %s: %w", workoutDate.Format(time.DateOnly), err)
	}
	if len(workouts) == 0 {
		return allPRs(bests), nil
	}

	workoutIDs := make([]int, 0, len(workouts))
	for _, w := range workouts {
		workoutIDs = append(workoutIDs, w.ID)
	}

	histExercises, err := d.repo.GetExercisesByWorkoutIDsAndNames(ctx, workoutIDs, names)
	if err != nil {
		return nil, fmt.Errorf("get historical exercises: %w", err)
	}
	if len(histExercises) == 0 {
		return allPRs(bests), nil
	}

	exerciseIDs := make([]int, 0, len(histExercises))
	exerciseName := make(map[int]string, len(histExercises))
	for _, ex := range histExercises {
		exerciseIDs = append(exerciseIDs, ex.ID)
		exerciseName[ex.ID] = ex.Name
	}

	histSets, err := d.repo.GetSetsByExerciseIDs(ctx, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("get historical sets: %w", err)
	}

	// reduce history to the best working set per exercise name
	histBest := make(map[string]Set, len(names))
	for _, hs := range histSets {
		if hs.Variant == VariantWarmup {
			continue
		}
		name, ok := exerciseName[hs.ExerciseID]
		if !ok {
			continue
		}
		candidate := Set{Weight: hs.Weight, Reps: hs.Reps}
		if current, ok := histBest[name]; !ok || beats(candidate, current) {
			histBest[name] = candidate
		}
	}

	prs := make([]PR, 0, len(bests))
	for _, eb := range bests {
		prev, ok := histBest[eb.name]
		if !ok {
			prs = append(prs, PR{
				Exercise: eb.name,
				Weight:   eb.best.Weight,
				Reps:     eb.best.Reps,
			})
			continue
		}
		if beats(eb.best, prev) {
			prevCopy := prev
			prs = append(prs, PR{
				Exercise:     eb.name,
				Weight:       eb.best.Weight,
				Reps:         eb.best.Reps,
				PreviousBest: &prevCopy,
			})
		}
	}

	span.SetAttributes(attribute.Int("prs.count", len(prs)))
	return prs, nil
}

func allPRs(bests []exerciseBest) []PR {
	prs := make([]PR, 0, len(bests))
	for _, eb := range bests {
		prs = append(prs, PR{
			Exercise: eb.name,
			Weight:   eb.best.Weight,
			Reps:     eb.best.Reps,
		})
	}
	return prs
}
