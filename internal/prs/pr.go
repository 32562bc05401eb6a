package prs

import "time"

// VariantWarmup marks sets that never count towards records.
const VariantWarmup = "warmup"

type Set struct {
	Weight  float64 `json:"weight"`
	Reps    int     `json:"reps"`
	Variant string  `json:"variant,omitempty"`
}

// ExerciseLog is one exercise of a freshly logged workout.
type ExerciseLog struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

// PR is a working set that beats (or has no) prior history for an exercise.
type PR struct {
	Exercise     string  `json:"exercise"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	PreviousBest *Set    `json:"previousBest"`
}

type Workout struct {
	ID          int       `json:"id"`
	PerformedAt time.Time `json:"performedAt"`
}

type Exercise struct {
	ID        int    `json:"id"`
	WorkoutID int    `json:"workoutId"`
	Name      string `json:"name"`
}

type ExerciseSet struct {
	ExerciseID int     `json:"exerciseId"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Variant    string  `json:"variant,omitempty"`
}

// beats reports whether a strictly beats b: greater weight wins, equal
// weight requires strictly more reps.
func beats(a, b Set) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	return a.Reps > b.Reps
}

// BestSet reduces the sets of an exercise to the single best working set,
// warmup sets excluded. Returns nil if no working set exists.
func BestSet(sets []Set) *Set {
	var best *Set
	for i := range sets {
		if sets[i].Variant == VariantWarmup {
			continue
		}
		if best == nil || beats(sets[i], *best) {
			best = &sets[i]
		}
	}
	return best
}
