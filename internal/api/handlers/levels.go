package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kinetichq/kinetic/internal/assessment"
	"github.com/kinetichq/kinetic/internal/domain"
)

// LevelHandler serves computed skill levels and manual overrides
type LevelHandler struct {
	service *assessment.Service
}

// NewLevelHandler creates a new level handler
func NewLevelHandler(service *assessment.Service) *LevelHandler {
	return &LevelHandler{service: service}
}

// Levels handles GET /api/v1/levels
func (h *LevelHandler) Levels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.service.Levels(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to compute levels")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"levels": levels,
	})
}

// OverrideRequest is the JSON body for a manual level override
type OverrideRequest struct {
	Level string `json:"level"`
}

// Override handles POST /api/v1/levels/{pattern}/override.
// An override can raise a computed level but never lower it.
func (h *LevelHandler) Override(w http.ResponseWriter, r *http.Request) {
	pattern, ok := domain.ParsePattern(r.PathValue("pattern"))
	if !ok {
		jsonError(w, http.StatusNotFound, "unknown movement pattern")
		return
	}

	var req OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Level == "" {
		jsonError(w, http.StatusBadRequest, "level is required")
		return
	}

	levels, err := h.service.ApplyOverride(r.Context(), pattern, domain.ParseLevel(req.Level))
	if err != nil {
		if errors.Is(err, domain.ErrAssessmentNotFound) {
			jsonError(w, http.StatusNotFound, "no assessment on record")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to apply override")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"levels": levels,
	})
}
