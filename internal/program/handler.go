package program

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/repstack/coachcore/internal/telemetry/metrics"
	"github.com/repstack/coachcore/internal/telemetry/tracing"
	"github.com/repstack/coachcore/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=program_test

// full programs are pure functions of the maxes, cache entries only need to
// outlive a burst of page loads
const programCacheExpireSeconds = 3600

type maxesRepo interface {
	GetLiftMaxes(ctx context.Context, userID int) (*LiftMaxes, error)
	SetLiftMaxes(ctx context.Context, userID int, maxes LiftMaxes) error
}

type UpdateMaxesResponse struct {
	UserID int       `json:"userId"`
	Maxes  LiftMaxes `json:"maxes"`
}

type EstimateRequest struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type EstimateResponse struct {
	Estimated1RM float64 `json:"estimated1RM"`
}

type Handler struct {
	repo         maxesRepo
	programCache *freecache.Cache
	metrics      *metrics.Manager
}

func NewHandler(repo maxesRepo, cacheSizeBytes int, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:         repo,
		programCache: freecache.NewCache(cacheSizeBytes),
		metrics:      metricsManager,
	}
}

func (handler *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.week")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	week, err := strconv.Atoi(mux.Vars(r)["week"])
	if err != nil {
		http.Error(w, "error, week NaN", http.StatusBadRequest)
		return
	}

	maxes, err := handler.repo.GetLiftMaxes(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMaxesNotFound) {
			http.Error(w, "lift maxes not set", http.StatusNotFound)
			return
		}
		log.Errorf("get lift maxes for user %d: %s", userID, err)
		http.Error(w, "failed to get lift maxes", http.StatusInternalServerError)
		return
	}

	weekSchedule := GenerateWeekSchedule(*maxes, week)
	handler.metrics.CounterSchedules.Inc()

	weekScheduleJson, err := json.Marshal(weekSchedule)
	if err != nil {
		log.Errorf("failed to marshal week schedule: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weekScheduleJson, http.StatusOK)
}

func (handler *Handler) HandleGetProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.full")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	maxes, err := handler.repo.GetLiftMaxes(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMaxesNotFound) {
			http.Error(w, "lift maxes not set", http.StatusNotFound)
			return
		}
		log.Errorf("get lift maxes for user %d: %s", userID, err)
		http.Error(w, "failed to get lift maxes", http.StatusInternalServerError)
		return
	}

	cacheKey := []byte(fmt.Sprintf("program:%g:%g:%g", maxes.Squat, maxes.Bench, maxes.Deadlift))
	if programBytes, err := handler.programCache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, programBytes, http.StatusOK)
		return
	}

	fullProgram := GenerateFullProgram(*maxes)
	handler.metrics.CounterSchedules.Inc()

	programJson, err := json.Marshal(fullProgram)
	if err != nil {
		log.Errorf("failed to marshal full program: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.programCache.Set(cacheKey, programJson, programCacheExpireSeconds); err != nil {
		log.Warnf("failed to cache full program for user %d: %s", userID, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, programJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateMaxes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.updatemaxes")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var maxes LiftMaxes
	if err := json.NewDecoder(r.Body).Decode(&maxes); err != nil {
		log.Errorf("update lift maxes, unmarshal json params: %s", err)
		http.Error(w, "update lift maxes failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetLiftMaxes(ctx, userID, maxes); err != nil {
		log.Errorf("failed to update lift maxes for user %d: %s", userID, err)
		http.Error(w, "error, failed to update lift maxes", http.StatusInternalServerError)
		return
	}

	log.Debugf("lift maxes updated for user %d: %+v", userID, maxes)

	updateRespJson, err := json.Marshal(UpdateMaxesResponse{
		UserID: userID,
		Maxes:  maxes,
	})
	if err != nil {
		log.Errorf("failed to marshal update maxes response: %s", err)
		http.Error(w, "failed to marshal update maxes response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.program.estimate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("estimate 1rm, unmarshal json params: %s", err)
		http.Error(w, "estimate failed", http.StatusBadRequest)
		return
	}

	respJson, err := json.Marshal(EstimateResponse{
		Estimated1RM: Estimate1RM(req.Weight, req.Reps),
	})
	if err != nil {
		log.Errorf("failed to marshal estimate response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	userIDStr := mux.Vars(r)["userId"]
	if userIDStr == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return 0, false
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
