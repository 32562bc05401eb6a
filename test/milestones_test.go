package test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/repstack/coachcore/internal/milestones"
)

func (s *IntegrationTestSuite) addWorkout(userID int, performedAt time.Time) int {
	var workoutID int
	err := s.db.QueryRow(
		context.Background(),
		`INSERT INTO workout (user_id, performed_at) VALUES ($1, $2) RETURNING id;`,
		userID, performedAt,
	).Scan(&workoutID)
	s.Require().NoError(err)
	return workoutID
}

func (s *IntegrationTestSuite) TestMilestones_DetectAndCelebrate() {
	userID := 800
	today := time.Now()
	s.addWorkout(userID, today)

	detectPath := fmt.Sprintf("/milestones/user/%d/detect", userID)
	resp := s.request(http.MethodPost, detectPath, strings.NewReader(`{}`))
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var detectResp milestones.DetectResponse
	s.readJSON(resp, &detectResp)
	s.Require().Len(detectResp.Milestones, 1)
	s.Equal(milestones.TypeFirstWorkout, detectResp.Milestones[0].Type)
	s.NotEmpty(detectResp.Milestones[0].Message)

	// detection is idempotent until the milestone gets celebrated
	resp = s.request(http.MethodPost, detectPath, strings.NewReader(`{}`))
	s.readJSON(resp, &detectResp)
	s.Require().Len(detectResp.Milestones, 1)

	resp = s.request(
		http.MethodPost,
		fmt.Sprintf("/milestones/user/%d/celebrate", userID),
		strings.NewReader(fmt.Sprintf(`{"types":["%s"]}`, milestones.TypeFirstWorkout)),
	)
	var celebrateResp milestones.CelebrateResponse
	s.readJSON(resp, &celebrateResp)
	s.Require().Len(celebrateResp.Celebrated, 1)

	resp = s.request(http.MethodPost, detectPath, strings.NewReader(`{}`))
	s.readJSON(resp, &detectResp)
	s.Empty(detectResp.Milestones)
}

func (s *IntegrationTestSuite) TestMilestones_StreakOrdering() {
	userID := 801
	today := time.Now()
	for i := 0; i < 3; i++ {
		s.addWorkout(userID, today.AddDate(0, 0, -i))
	}

	resp := s.request(
		http.MethodPost,
		fmt.Sprintf("/milestones/user/%d/detect", userID),
		strings.NewReader(`{}`),
	)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var detectResp milestones.DetectResponse
	s.readJSON(resp, &detectResp)
	s.Require().Len(detectResp.Milestones, 2)

	// streak_3 outranks first_workout
	s.Equal(milestones.TypeStreak3, detectResp.Milestones[0].Type)
	s.Equal(milestones.TypeFirstWorkout, detectResp.Milestones[1].Type)
}

func (s *IntegrationTestSuite) TestMilestones_FirstPR() {
	userID := 802
	s.addWorkout(userID, time.Now())

	resp := s.request(
		http.MethodPost,
		fmt.Sprintf("/milestones/user/%d/detect", userID),
		strings.NewReader(`{"pr":{"exercise":"Squat","weight":315,"reps":1}}`),
	)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var detectResp milestones.DetectResponse
	s.readJSON(resp, &detectResp)
	s.Require().Len(detectResp.Milestones, 2)

	// first_pr outranks everything else
	s.Equal(milestones.TypeFirstPR, detectResp.Milestones[0].Type)
	s.Equal("Squat", detectResp.Milestones[0].Metadata["exercise"])
	s.Equal("New personal record: Squat 315!", detectResp.Milestones[0].Message)
}
