package program

import (
	"fmt"
	"math"
)

// BarWeight is the weight of an empty olympic bar.
const BarWeight = 45.0

// maxFormulaReps caps the reps fed into the Brzycki formula, its accuracy
// degrades for higher rep counts.
const maxFormulaReps = 12

type warmupStep struct {
	percent float64
	reps    int
	label   string
}

// warmupRamp is the fixed warmup progression. The 0% step is the empty bar.
var warmupRamp = []warmupStep{
	{percent: 0, reps: 10, label: "Bar"},
	{percent: 0.50, reps: 5, label: "50%"},
	{percent: 0.70, reps: 3, label: "70%"},
	{percent: 0.90, reps: 1, label: "90%"},
}

// RoundToNearest5 rounds to the nearest multiple of 5, half up.
func RoundToNearest5(x float64) float64 {
	return math.Floor(x/5+0.5) * 5
}

// Estimate1RM estimates the one-rep max from a weight x reps set using the
// Brzycki relation: weight * 36 / (37 - reps). A single rep is returned as is.
func Estimate1RM(weight float64, reps int) float64 {
	if reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	if reps > maxFormulaReps {
		reps = maxFormulaReps
	}
	return RoundToNearest5(weight * 36 / float64(37-reps))
}

// CalculateWarmups builds the warmup ramp for a working-set target weight.
// Steps below the bar weight, duplicate-weight steps and steps reaching the
// target weight are dropped, step order is preserved.
func CalculateWarmups(targetWeight float64, lift, shortName string) LiftWarmup {
	warmup := LiftWarmup{
		Lift:  lift,
		Short: shortName,
		Sets:  make([]WarmupSet, 0, len(warmupRamp)),
	}

	for _, step := range warmupRamp {
		weight := BarWeight
		if step.percent > 0 {
			weight = RoundToNearest5(targetWeight * step.percent)
		}

		if weight < BarWeight {
			continue
		}
		if n := len(warmup.Sets); n > 0 && warmup.Sets[n-1].Weight == weight {
			continue
		}
		// a warmup must never reach the work weight, the bar is always allowed
		if step.percent > 0 && weight >= targetWeight {
			continue
		}

		warmup.Sets = append(warmup.Sets, WarmupSet{
			Weight: weight,
			Reps:   step.reps,
			Label:  step.label,
		})
	}

	return warmup
}

// GenerateDay builds one training session: per-lift working sets at the
// week's target intensity scaled by the session's H/L/M multiplier, plus the
// warmup ramp towards each working weight.
func GenerateDay(
	maxes LiftMaxes,
	weeklyTargetPercent float64,
	sets, reps int,
	dayName, shortDay, intensity string,
) DaySchedule {
	dayPercent := weeklyTargetPercent * dayMultipliers[intensity]

	var intensityLabel string
	switch intensity {
	case IntensityLight:
		intensityLabel = "LIGHT (80%)"
	case IntensityMedium:
		intensityLabel = "MEDIUM (90%)"
	default:
		intensityLabel = fmt.Sprintf("HEAVY %d%%", int(math.Round(weeklyTargetPercent*100)))
	}

	dayLift := func(max float64, lift, short string) DayLift {
		weight := RoundToNearest5(max * dayPercent)
		return DayLift{
			Work: LiftSet{
				Weight: weight,
				Sets:   sets,
				Reps:   reps,
			},
			Warmup: CalculateWarmups(weight, lift, short),
		}
	}

	return DaySchedule{
		Day:            dayName,
		ShortDay:       shortDay,
		Intensity:      intensity,
		IntensityLabel: intensityLabel,
		Squat:          dayLift(maxes.Squat, "Squat", "SQ"),
		Bench:          dayLift(maxes.Bench, "Bench Press", "BP"),
		Deadlift:       dayLift(maxes.Deadlift, "Deadlift", "DL"),
	}
}

// GenerateWeekSchedule builds the three weekly sessions for the given week.
// Monday is the heavy day and uses the week's own set/rep scheme, Wednesday
// and Friday are recovery volume at fixed 3x5.
func GenerateWeekSchedule(maxes LiftMaxes, week int) WeekSchedule {
	if week < 1 {
		week = 1
	}
	if week > len(weeklyTargets) {
		week = len(weeklyTargets)
	}
	target := weeklyTargets[week-1]

	return WeekSchedule{
		Week:          week,
		TargetPercent: target.Percent,
		Phase:         target.Phase,
		PhaseLabel:    target.Label,
		Days: []DaySchedule{
			GenerateDay(maxes, target.Percent, target.Sets, target.Reps, "Monday", "Mon", IntensityHeavy),
			GenerateDay(maxes, target.Percent, 3, 5, "Wednesday", "Wed", IntensityLight),
			GenerateDay(maxes, target.Percent, 3, 5, "Friday", "Fri", IntensityMedium),
		},
	}
}

// GenerateFullProgram expands the whole target table into the ordered
// 8-week plan.
func GenerateFullProgram(maxes LiftMaxes) []WeekSchedule {
	weeks := make([]WeekSchedule, 0, len(weeklyTargets))
	for week := 1; week <= len(weeklyTargets); week++ {
		weeks = append(weeks, GenerateWeekSchedule(maxes, week))
	}
	return weeks
}
