package handlers

import (
	"net/http"

	"github.com/kinetichq/kinetic/internal/assessment"
	"github.com/kinetichq/kinetic/internal/domain"
	"github.com/kinetichq/kinetic/internal/exercise"
)

// ExerciseHandler serves difficulty-gated exercise candidates
type ExerciseHandler struct {
	registry *exercise.Registry
	service  *assessment.Service
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(registry *exercise.Registry, service *assessment.Service) *ExerciseHandler {
	return &ExerciseHandler{registry: registry, service: service}
}

// ExerciseResponse represents an exercise in API responses
type ExerciseResponse struct {
	Name       string   `json:"name"`
	Pattern    string   `json:"pattern"`
	Difficulty string   `json:"difficulty"`
	Equipment  []string `json:"equipment,omitempty"`
}

// List handles GET /api/v1/exercises. The catalog is returned in priority
// order with exercises above the user's level pushed to the back.
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	levels, err := h.service.Levels(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to compute levels")
		return
	}

	candidates := h.registry.Candidates(levels, domain.LevelBeginner)

	jsonResponse(w, http.StatusOK, map[string]any{
		"exercises": toExerciseResponses(candidates),
		"total":     len(candidates),
	})
}

// ByPattern handles GET /api/v1/exercises/{pattern}
func (h *ExerciseHandler) ByPattern(w http.ResponseWriter, r *http.Request) {
	pattern, ok := domain.ParsePattern(r.PathValue("pattern"))
	if !ok {
		jsonError(w, http.StatusNotFound, "unknown movement pattern")
		return
	}

	levels, err := h.service.Levels(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to compute levels")
		return
	}

	candidates := h.registry.CandidatesForPattern(pattern, levels, domain.LevelBeginner)

	jsonResponse(w, http.StatusOK, map[string]any{
		"pattern":   pattern,
		"level":     levels.Level(pattern),
		"exercises": toExerciseResponses(candidates),
		"total":     len(candidates),
	})
}

func toExerciseResponses(exercises []domain.Exercise) []ExerciseResponse {
	response := make([]ExerciseResponse, 0, len(exercises))
	for _, ex := range exercises {
		response = append(response, ExerciseResponse{
			Name:       ex.Name,
			Pattern:    string(ex.Pattern),
			Difficulty: string(ex.Difficulty),
			Equipment:  ex.Equipment,
		})
	}
	return response
}
