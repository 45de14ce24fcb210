package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kinetichq/kinetic/internal/assessment"
	"github.com/kinetichq/kinetic/internal/domain"
)

// AssessmentHandler handles assessment submission and retrieval
type AssessmentHandler struct {
	service *assessment.Service
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(service *assessment.Service) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// SubmitAssessmentRequest is the JSON body for submitting a new snapshot.
// Every test field is optional; absent means not attempted.
type SubmitAssessmentRequest struct {
	TakenAt *time.Time `json:"taken_at,omitempty"`

	Pushups          *int     `json:"pushups,omitempty"`
	PikePushups      *int     `json:"pike_pushups,omitempty"`
	Pullups          *int     `json:"pullups,omitempty"`
	Squats           *int     `json:"squats,omitempty"`
	WalkingLunges    *int     `json:"walking_lunges,omitempty"`
	SingleLegRDL     *int     `json:"single_leg_rdl,omitempty"`
	PlankHoldSeconds *int     `json:"plank_hold_seconds,omitempty"`
	MileTimeMinutes  *float64 `json:"mile_time_minutes,omitempty"`

	Squat1RM         *float64 `json:"squat_1rm,omitempty"`
	Deadlift1RM      *float64 `json:"deadlift_1rm,omitempty"`
	BenchPress1RM    *float64 `json:"bench_press_1rm,omitempty"`
	OverheadPress1RM *float64 `json:"overhead_press_1rm,omitempty"`
	BarbellRow1RM    *float64 `json:"barbell_row_1rm,omitempty"`
	DumbbellLunge1RM *float64 `json:"dumbbell_lunge_1rm,omitempty"`
	FarmersCarry1RM  *float64 `json:"farmers_carry_1rm,omitempty"`

	ExperienceLevel string            `json:"experience_level,omitempty"`
	Overrides       map[string]string `json:"overrides,omitempty"`
}

// AssessmentResponse mirrors a stored assessment in API responses
type AssessmentResponse struct {
	ID        string `json:"id"`
	TakenAt   string `json:"taken_at"`
	CreatedAt string `json:"created_at"`

	Pushups          *int     `json:"pushups,omitempty"`
	PikePushups      *int     `json:"pike_pushups,omitempty"`
	Pullups          *int     `json:"pullups,omitempty"`
	Squats           *int     `json:"squats,omitempty"`
	WalkingLunges    *int     `json:"walking_lunges,omitempty"`
	SingleLegRDL     *int     `json:"single_leg_rdl,omitempty"`
	PlankHoldSeconds *int     `json:"plank_hold_seconds,omitempty"`
	MileTimeMinutes  *float64 `json:"mile_time_minutes,omitempty"`

	Squat1RM         *float64 `json:"squat_1rm,omitempty"`
	Deadlift1RM      *float64 `json:"deadlift_1rm,omitempty"`
	BenchPress1RM    *float64 `json:"bench_press_1rm,omitempty"`
	OverheadPress1RM *float64 `json:"overhead_press_1rm,omitempty"`
	BarbellRow1RM    *float64 `json:"barbell_row_1rm,omitempty"`
	DumbbellLunge1RM *float64 `json:"dumbbell_lunge_1rm,omitempty"`
	FarmersCarry1RM  *float64 `json:"farmers_carry_1rm,omitempty"`

	ExperienceLevel string                                       `json:"experience_level,omitempty"`
	Overrides       map[domain.MovementPattern]domain.SkillLevel `json:"overrides,omitempty"`
}

// Submit handles POST /api/v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := req.toAssessment()
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Submit(r.Context(), a)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save assessment")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"assessment": toAssessmentResponse(result.Assessment),
		"levels":     result.Levels,
		"level_ups":  result.LevelUps,
	})
}

// Latest handles GET /api/v1/assessments/latest
func (h *AssessmentHandler) Latest(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.Latest(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrAssessmentNotFound) {
			jsonError(w, http.StatusNotFound, "no assessment on record")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to load assessment")
		return
	}

	jsonResponse(w, http.StatusOK, toAssessmentResponse(a))
}

// List handles GET /api/v1/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			jsonError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	history, err := h.service.History(r.Context(), limit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load assessments")
		return
	}

	response := make([]AssessmentResponse, 0, len(history))
	for _, a := range history {
		response = append(response, toAssessmentResponse(a))
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"assessments": response,
		"total":       len(response),
	})
}

func (req *SubmitAssessmentRequest) toAssessment() (*domain.Assessment, error) {
	a := &domain.Assessment{
		Pushups:          req.Pushups,
		PikePushups:      req.PikePushups,
		Pullups:          req.Pullups,
		Squats:           req.Squats,
		WalkingLunges:    req.WalkingLunges,
		SingleLegRDL:     req.SingleLegRDL,
		PlankHoldSeconds: req.PlankHoldSeconds,
		MileTimeMinutes:  req.MileTimeMinutes,
		Squat1RM:         req.Squat1RM,
		Deadlift1RM:      req.Deadlift1RM,
		BenchPress1RM:    req.BenchPress1RM,
		OverheadPress1RM: req.OverheadPress1RM,
		BarbellRow1RM:    req.BarbellRow1RM,
		DumbbellLunge1RM: req.DumbbellLunge1RM,
		FarmersCarry1RM:  req.FarmersCarry1RM,
		ExperienceLevel:  domain.ParseLevel(req.ExperienceLevel),
	}

	if req.TakenAt != nil {
		a.TakenAt = *req.TakenAt
	}

	if len(req.Overrides) > 0 {
		a.Overrides = make(map[domain.MovementPattern]domain.SkillLevel, len(req.Overrides))
		for k, v := range req.Overrides {
			pattern, ok := domain.ParsePattern(k)
			if !ok {
				return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPattern, k)
			}
			a.Overrides[pattern] = domain.ParseLevel(v)
		}
	}

	return a, nil
}

func toAssessmentResponse(a *domain.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:               a.ID.String(),
		TakenAt:          a.TakenAt.Format(time.RFC3339),
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
		Pushups:          a.Pushups,
		PikePushups:      a.PikePushups,
		Pullups:          a.Pullups,
		Squats:           a.Squats,
		WalkingLunges:    a.WalkingLunges,
		SingleLegRDL:     a.SingleLegRDL,
		PlankHoldSeconds: a.PlankHoldSeconds,
		MileTimeMinutes:  a.MileTimeMinutes,
		Squat1RM:         a.Squat1RM,
		Deadlift1RM:      a.Deadlift1RM,
		BenchPress1RM:    a.BenchPress1RM,
		OverheadPress1RM: a.OverheadPress1RM,
		BarbellRow1RM:    a.BarbellRow1RM,
		DumbbellLunge1RM: a.DumbbellLunge1RM,
		FarmersCarry1RM:  a.FarmersCarry1RM,
		ExperienceLevel:  string(a.ExperienceLevel),
		Overrides:        a.Overrides,
	}
}
