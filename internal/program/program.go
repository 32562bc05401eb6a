package program

// LiftMaxes holds the current one-rep-max estimates for the three main lifts.
type LiftMaxes struct {
	Squat    float64 `json:"squat"`
	Bench    float64 `json:"bench"`
	Deadlift float64 `json:"deadlift"`
}

// WarmupSet is a single step of the warmup ramp before the working sets.
type WarmupSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Label  string  `json:"label"`
}

type LiftWarmup struct {
	Lift  string      `json:"lift"`
	Short string      `json:"short"`
	Sets  []WarmupSet `json:"sets"`
}

type LiftSet struct {
	Weight float64 `json:"weight"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
}

type DayLift struct {
	Work   LiftSet    `json:"work"`
	Warmup LiftWarmup `json:"warmup"`
}

type DaySchedule struct {
	Day            string  `json:"day"`
	ShortDay       string  `json:"shortDay"`
	Intensity      string  `json:"intensity"`
	IntensityLabel string  `json:"intensityLabel"`
	Squat          DayLift `json:"squat"`
	Bench          DayLift `json:"bench"`
	Deadlift       DayLift `json:"deadlift"`
	// Completed is owned by the caller, never computed here.
	Completed bool `json:"completed"`
}

type WeekSchedule struct {
	Week          int           `json:"week"`
	TargetPercent float64       `json:"targetPercent"`
	Phase         string        `json:"phase"`
	PhaseLabel    string        `json:"phaseLabel"`
	Days          []DaySchedule `json:"days"`
	Completed     bool          `json:"completed"`
}

// WeeklyTarget is one row of the authored 8-week progression table.
type WeeklyTarget struct {
	Percent float64
	Sets    int
	Reps    int
	Phase   string
	Label   string
}

const (
	PhaseStrength  = "Strength"
	PhaseUnloading = "Unloading"
	PhasePower     = "Power"
)

// weeklyTargets is the authored progression table, one row per program week.
// It is a lookup table, not a formula - do not recompute these values.
var weeklyTargets = [8]WeeklyTarget{
	{Percent: 0.80, Sets: 3, Reps: 5, Phase: PhaseStrength, Label: "Strength 3x5 @ 80%"},
	{Percent: 0.83, Sets: 3, Reps: 5, Phase: PhaseStrength, Label: "Strength 3x5 @ 83%"},
	{Percent: 0.87, Sets: 3, Reps: 5, Phase: PhaseStrength, Label: "Strength 3x5 @ 87%"},
	{Percent: 0.90, Sets: 3, Reps: 5, Phase: PhaseStrength, Label: "Strength 3x5 @ 90%"},
	{Percent: 0.60, Sets: 3, Reps: 5, Phase: PhaseUnloading, Label: "Unloading 3x5 @ 60%"},
	{Percent: 0.90, Sets: 3, Reps: 3, Phase: PhasePower, Label: "Power 3x3 @ 90%"},
	{Percent: 0.95, Sets: 3, Reps: 2, Phase: PhasePower, Label: "Power 3x2 @ 95%"},
	{Percent: 1.00, Sets: 3, Reps: 1, Phase: PhasePower, Label: "Power 3x1 @ 100%"},
}

const (
	IntensityHeavy  = "heavy"
	IntensityLight  = "light"
	IntensityMedium = "medium"
)

// dayMultipliers implements the Heavy/Light/Medium split: the weekly target
// intensity is scaled per session.
var dayMultipliers = map[string]float64{
	IntensityHeavy:  1.0,
	IntensityLight:  0.8,
	IntensityMedium: 0.9,
}
