package prs

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/repstack/coachcore/internal/telemetry/metrics"
	"github.com/repstack/coachcore/internal/telemetry/tracing"
	"github.com/repstack/coachcore/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DetectRequest struct {
	Date      string        `json:"date"` // format: 2006-01-02
	Exercises []ExerciseLog `json:"exercises"`
}

type DetectResponse struct {
	PRs []PR `json:"prs"`
}

type Handler struct {
	detector *Detector
	metrics  *metrics.Manager
}

func NewHandler(detector *Detector, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		detector: detector,
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleDetect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.prs.detect")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userIDStr := mux.Vars(r)["userId"]
	if userIDStr == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("detect prs, unmarshal json params: %s", err)
		http.Error(w, "detect prs failed", http.StatusBadRequest)
		return
	}

	workoutDate, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	prs, err := handler.detector.DetectPRs(ctx, userID, workoutDate, req.Exercises)
	if err != nil {
		log.Errorf("failed to detect prs for user %d: %s", userID, err)
		http.Error(w, "error, failed to detect prs", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterPRsDetected.Add(float64(len(prs)))
	log.Debugf("detected %d PRs for user %d on %s", len(prs), userID, req.Date)

	respJson, err := json.Marshal(DetectResponse{
		PRs: prs,
	})
	if err != nil {
		log.Errorf("failed to marshal detect prs response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
