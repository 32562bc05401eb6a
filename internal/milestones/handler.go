package milestones

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
	// PR is set when the caller just detected a personal record
	PR *PRInfo `json:"pr,omitempty"`
	// Date optionally overrides the effective date (format: 2006-01-02)
	Date string `json:"date,omitempty"`
}

type PendingMilestone struct {
	Milestone
	Message string `json:"message"`
}

type DetectResponse struct {
	Milestones []PendingMilestone `json:"milestones"`
}

type CelebrateRequest struct {
	Types []Type `json:"types"`
}

type CelebrateResponse struct {
	Celebrated []Type `json:"celebrated"`
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
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.milestones.detect")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("detect milestones, unmarshal json params: %s", err)
		http.Error(w, "detect milestones failed", http.StatusBadRequest)
		return
	}

	params := DetectParams{
		UserID: userID,
		PR:     req.PR,
	}
	if req.Date != "" {
		today, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		params.Today = today
	}

	pending, err := handler.detector.DetectMilestones(ctx, params)
	if err != nil {
		log.Errorf("failed to detect milestones for user %d: %s", userID, err)
		http.Error(w, "error, failed to detect milestones", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMilestonesDetected.Add(float64(len(pending)))

	resp := DetectResponse{
		Milestones: make([]PendingMilestone, 0, len(pending)),
	}
	for _, m := range pending {
		resp.Milestones = append(resp.Milestones, PendingMilestone{
			Milestone: m,
			Message:   Format(m),
		})
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal detect milestones response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleCelebrate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.milestones.celebrate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req CelebrateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("celebrate milestones, unmarshal json params: %s", err)
		http.Error(w, "celebrate milestones failed", http.StatusBadRequest)
		return
	}

	toCelebrate := make([]Milestone, 0, len(req.Types))
	for _, t := range req.Types {
		toCelebrate = append(toCelebrate, Milestone{UserID: userID, Type: t})
	}

	if err := handler.detector.MarkCelebrated(ctx, userID, toCelebrate); err != nil {
		log.Errorf("failed to celebrate milestones for user %d: %s", userID, err)
		http.Error(w, "error, failed to celebrate milestones", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(CelebrateResponse{
		Celebrated: req.Types,
	})
	if err != nil {
		log.Errorf("failed to marshal celebrate response: %s", err)
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
