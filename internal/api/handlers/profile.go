package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kinetichq/kinetic/internal/assessment"
	"github.com/kinetichq/kinetic/internal/domain"
)

// ProfileHandler serves the stored body profile
type ProfileHandler struct {
	service *assessment.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service *assessment.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// ProfileRequest is the JSON body for updating the body profile
type ProfileRequest struct {
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.BodyProfile(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"weight": profile.Weight,
		"unit":   profile.Unit,
	})
}

// Update handles PUT /api/v1/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Weight < 0 {
		jsonError(w, http.StatusBadRequest, "weight must be non-negative")
		return
	}

	unit := domain.Imperial
	switch req.Unit {
	case "", "imperial":
	case "metric":
		unit = domain.Metric
	default:
		jsonError(w, http.StatusBadRequest, "unit must be imperial or metric")
		return
	}

	profile := domain.BodyProfile{Weight: req.Weight, Unit: unit}
	if err := h.service.SetBodyProfile(r.Context(), profile); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"weight": profile.Weight,
		"unit":   profile.Unit,
	})
}
