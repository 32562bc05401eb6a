package test

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/repstack/coachcore/internal/program"
)

func (s *IntegrationTestSuite) TestProgram_MaxesNotSet() {
	resp := s.request(http.MethodGet, "/program/user/700/week/1", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestProgram_UpdateMaxesAndGetWeek() {
	userID := 701

	resp := s.request(
		http.MethodPut,
		fmt.Sprintf("/program/user/%d/maxes", userID),
		strings.NewReader(`{"squat":300,"bench":200,"deadlift":400}`),
	)
	var updateResp program.UpdateMaxesResponse
	s.readJSON(resp, &updateResp)
	s.Equal(userID, updateResp.UserID)
	s.Equal(300.0, updateResp.Maxes.Squat)

	resp = s.request(http.MethodGet, fmt.Sprintf("/program/user/%d/week/1", userID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var week program.WeekSchedule
	s.readJSON(resp, &week)
	s.Equal(1, week.Week)
	s.Equal(program.PhaseStrength, week.Phase)
	s.Require().Len(week.Days, 3)
	s.Equal(240.0, week.Days[0].Squat.Work.Weight)
	s.Equal(320.0, week.Days[0].Deadlift.Work.Weight)

	// updating the maxes changes the generated schedule
	resp = s.request(
		http.MethodPut,
		fmt.Sprintf("/program/user/%d/maxes", userID),
		strings.NewReader(`{"squat":400,"bench":250,"deadlift":500}`),
	)
	resp.Body.Close()

	resp = s.request(http.MethodGet, fmt.Sprintf("/program/user/%d/week/1", userID), nil)
	s.readJSON(resp, &week)
	s.Equal(320.0, week.Days[0].Squat.Work.Weight)
}

func (s *IntegrationTestSuite) TestProgram_FullProgram() {
	userID := 702

	resp := s.request(
		http.MethodPut,
		fmt.Sprintf("/program/user/%d/maxes", userID),
		strings.NewReader(`{"squat":300,"bench":200,"deadlift":400}`),
	)
	resp.Body.Close()

	resp = s.request(http.MethodGet, fmt.Sprintf("/program/user/%d", userID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var weeks []program.WeekSchedule
	s.readJSON(resp, &weeks)
	s.Require().Len(weeks, 8)
	s.Equal(program.PhaseStrength, weeks[0].Phase)
	s.Equal(program.PhaseUnloading, weeks[4].Phase)
	s.Equal(program.PhasePower, weeks[7].Phase)
}

func (s *IntegrationTestSuite) TestProgram_Estimate() {
	resp := s.request(
		http.MethodPost,
		"/program/estimate",
		strings.NewReader(`{"weight":225,"reps":5}`),
	)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var estimateResp program.EstimateResponse
	s.readJSON(resp, &estimateResp)
	s.Equal(255.0, estimateResp.Estimated1RM)
}
