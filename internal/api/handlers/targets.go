package handlers

import (
	"net/http"
	"strconv"

	"github.com/kinetichq/kinetic/internal/assessment"
	"github.com/kinetichq/kinetic/internal/domain"
)

// TargetHandler serves progression targets
type TargetHandler struct {
	service *assessment.Service
}

// NewTargetHandler creates a new target handler
func NewTargetHandler(service *assessment.Service) *TargetHandler {
	return &TargetHandler{service: service}
}

// TargetResponse represents one pattern's progression targets
type TargetResponse struct {
	BodyweightTest         string `json:"bodyweight_test"`
	BodyweightIntermediate string `json:"bodyweight_intermediate"`
	BodyweightAdvanced     string `json:"bodyweight_advanced"`
	WeightedTest           string `json:"weighted_test"`
	WeightedIntermediate   string `json:"weighted_intermediate"`
	WeightedAdvanced       string `json:"weighted_advanced"`
}

// Targets handles GET /api/v1/targets. Explicit weight and unit query
// params win; without them the stored body profile is used.
func (h *TargetHandler) Targets(w http.ResponseWriter, r *http.Request) {
	var targets map[domain.MovementPattern]domain.ProgressionTarget

	if v := r.URL.Query().Get("weight"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil || weight < 0 {
			jsonError(w, http.StatusBadRequest, "weight must be a non-negative number")
			return
		}

		unit := domain.Imperial
		switch r.URL.Query().Get("unit") {
		case "", "imperial":
		case "metric":
			unit = domain.Metric
		default:
			jsonError(w, http.StatusBadRequest, "unit must be imperial or metric")
			return
		}

		targets = h.service.TargetsFor(weight, unit)
	} else {
		var err error
		targets, err = h.service.Targets(r.Context())
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to compute targets")
			return
		}
	}

	response := make(map[domain.MovementPattern]TargetResponse, len(targets))
	for pattern, t := range targets {
		response[pattern] = TargetResponse{
			BodyweightTest:         t.BodyweightTest,
			BodyweightIntermediate: t.BodyweightIntermediate,
			BodyweightAdvanced:     t.BodyweightAdvanced,
			WeightedTest:           t.WeightedTest,
			WeightedIntermediate:   t.WeightedIntermediate,
			WeightedAdvanced:       t.WeightedAdvanced,
		}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"targets": response,
	})
}
