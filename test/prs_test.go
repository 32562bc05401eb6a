package test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/repstack/coachcore/internal/prs"
)

func (s *IntegrationTestSuite) addExerciseWithSets(workoutID int, name string, sets []prs.Set) {
	ctx := context.Background()

	var exerciseID int
	err := s.db.QueryRow(
		ctx,
		`INSERT INTO workout_exercise (workout_id, name) VALUES ($1, $2) RETURNING id;`,
		workoutID, name,
	).Scan(&exerciseID)
	s.Require().NoError(err)

	for _, set := range sets {
		_, err = s.db.Exec(
			ctx,
			`INSERT INTO exercise_set (exercise_id, weight, reps, variant) VALUES ($1, $2, $3, $4);`,
			exerciseID, set.Weight, set.Reps, set.Variant,
		)
		s.Require().NoError(err)
	}
}

func (s *IntegrationTestSuite) TestPRs_NoHistory() {
	resp := s.request(
		http.MethodPost,
		"/prs/user/900/detect",
		strings.NewReader(`{
			"date": "2024-03-15",
			"exercises": [
				{"name": "Squat", "sets": [{"weight": 225, "reps": 5}]}
			]
		}`),
	)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var detectResp prs.DetectResponse
	s.readJSON(resp, &detectResp)
	s.Require().Len(detectResp.PRs, 1)
	s.Equal("Squat", detectResp.PRs[0].Exercise)
	s.Nil(detectResp.PRs[0].PreviousBest)
}

func (s *IntegrationTestSuite) TestPRs_AgainstHistory() {
	userID := 901
	workoutDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	historyWorkoutID := s.addWorkout(userID, workoutDate.AddDate(0, 0, -7))
	s.addExerciseWithSets(historyWorkoutID, "Squat", []prs.Set{
		{Weight: 135, Reps: 5, Variant: prs.VariantWarmup},
		{Weight: 275, Reps: 5},
	})
	s.addExerciseWithSets(historyWorkoutID, "Bench Press", []prs.Set{
		{Weight: 185, Reps: 5},
	})

	resp := s.request(
		http.MethodPost,
		fmt.Sprintf("/prs/user/%d/detect", userID),
		strings.NewReader(`{
			"date": "2024-03-15",
			"exercises": [
				{"name": "Squat", "sets": [{"weight": 275, "reps": 6}]},
				{"name": "Bench Press", "sets": [{"weight": 180, "reps": 8}]}
			]
		}`),
	)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var detectResp prs.DetectResponse
	s.readJSON(resp, &detectResp)

	// squat beats 275x5 on reps, bench 180x8 does not beat 185x5
	s.Require().Len(detectResp.PRs, 1)
	s.Equal("Squat", detectResp.PRs[0].Exercise)
	s.Equal(275.0, detectResp.PRs[0].Weight)
	s.Equal(6, detectResp.PRs[0].Reps)
	s.Require().NotNil(detectResp.PRs[0].PreviousBest)
	s.Equal(275.0, detectResp.PRs[0].PreviousBest.Weight)
	s.Equal(5, detectResp.PRs[0].PreviousBest.Reps)
}
