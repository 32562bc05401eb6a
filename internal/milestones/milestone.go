package milestones

import (
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	TypeFirstPR        Type = "first_pr"
	TypeStreak30       Type = "streak_30"
	TypeStreak14       Type = "streak_14"
	TypeStreak7        Type = "streak_7"
	TypeStreak3        Type = "streak_3"
	TypeWorkout100     Type = "workout_100"
	TypeWorkout50      Type = "workout_50"
	TypeFirstWorkout   Type = "first_workout"
	TypeFirstFoodEntry Type = "first_food_entry"
)

// priorityOrder decides in which order pending milestones are surfaced to the
// user, most significant first.
var priorityOrder = []Type{
	TypeFirstPR,
	TypeStreak30,
	TypeStreak14,
	TypeStreak7,
	TypeStreak3,
	TypeWorkout100,
	TypeWorkout50,
	TypeFirstWorkout,
	TypeFirstFoodEntry,
}

var priorityRank = func() map[Type]int {
	rank := make(map[Type]int, len(priorityOrder))
	for i, t := range priorityOrder {
		rank[t] = i
	}
	return rank
}()

// Rank returns the display priority of a milestone type, lower is more
// significant. Unknown types sort last.
func Rank(t Type) int {
	if r, ok := priorityRank[t]; ok {
		return r
	}
	return len(priorityOrder)
}

type Milestone struct {
	UserID       int               `json:"userId"`
	Type         Type              `json:"type"`
	AchievedAt   time.Time         `json:"achievedAt"`
	CelebratedAt *time.Time        `json:"celebratedAt,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Format maps a milestone to its achievement sentence. Unrecognized types
// fall back to a generic line instead of failing.
func Format(m Milestone) string {
	switch m.Type {
	case TypeFirstPR:
		exercise := m.Metadata["exercise"]
		weight := m.Metadata["weight"]
		if exercise != "" && weight != "" {
			return fmt.Sprintf("New personal record: %s %s!", exercise, weight)
		}
		return "First personal record in the books!"
	case TypeStreak30:
		return "30 day streak - a full month of showing up!"
	case TypeStreak14:
		return "Two week streak - momentum is building!"
	case TypeStreak7:
		return "One week streak - seven days strong!"
	case TypeStreak3:
		return "3 day streak - off to a great start!"
	case TypeWorkout100:
		return "100 workouts logged - welcome to the hundred club!"
	case TypeWorkout50:
		return "50 workouts logged - halfway to a hundred!"
	case TypeFirstWorkout:
		return "First workout logged - the journey begins!"
	case TypeFirstFoodEntry:
		return "First meal logged - fuel counts too!"
	default:
		return fmt.Sprintf("%s: ACHIEVEMENT UNLOCKED", strings.ToUpper(strings.ReplaceAll(string(m.Type), "_", " ")))
	}
}
