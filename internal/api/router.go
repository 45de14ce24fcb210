package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kinetichq/kinetic/internal/api/handlers"
	"github.com/kinetichq/kinetic/internal/api/middleware"
)

// Router wraps the HTTP multiplexer with middleware and handlers
type Router struct {
	mux        *http.ServeMux
	app        *App
	assessment *handlers.AssessmentHandler
	levels     *handlers.LevelHandler
	targets    *handlers.TargetHandler
	profile    *handlers.ProfileHandler
	exercises  *handlers.ExerciseHandler
}

// NewRouter creates a new API router with all routes configured
func NewRouter(app *App) http.Handler {
	r := &Router{
		mux: http.NewServeMux(),
		app: app,
	}

	r.assessment = handlers.NewAssessmentHandler(app.Assessment)
	r.levels = handlers.NewLevelHandler(app.Assessment)
	r.targets = handlers.NewTargetHandler(app.Assessment)
	r.profile = handlers.NewProfileHandler(app.Assessment)
	r.exercises = handlers.NewExerciseHandler(app.Exercises, app.Assessment)

	r.registerRoutes()

	return r.buildMiddlewareChain(r.mux, app)
}

func (r *Router) registerRoutes() {
	// Health check
	r.mux.HandleFunc("GET /health", r.handleHealth)
	r.mux.HandleFunc("GET /ready", r.handleReady)

	// Assessments
	r.mux.HandleFunc("POST /api/v1/assessments", r.assessment.Submit)
	r.mux.HandleFunc("GET /api/v1/assessments", r.assessment.List)
	r.mux.HandleFunc("GET /api/v1/assessments/latest", r.assessment.Latest)

	// Skill levels and overrides
	r.mux.HandleFunc("GET /api/v1/levels", r.levels.Levels)
	r.mux.HandleFunc("POST /api/v1/levels/{pattern}/override", r.levels.Override)

	// Progression targets
	r.mux.HandleFunc("GET /api/v1/targets", r.targets.Targets)

	// Body profile
	r.mux.HandleFunc("GET /api/v1/profile", r.profile.Get)
	r.mux.HandleFunc("PUT /api/v1/profile", r.profile.Update)

	// Exercise candidates
	r.mux.HandleFunc("GET /api/v1/exercises", r.exercises.List)
	r.mux.HandleFunc("GET /api/v1/exercises/{pattern}", r.exercises.ByPattern)
}

func (r *Router) buildMiddlewareChain(handler http.Handler, app *App) http.Handler {
	// Applied in reverse order (last applied = first executed)
	handler = middleware.Recovery(handler)
	handler = middleware.Logger(handler)

	// Skip rate limiting in debug mode for easier development
	if !app.Config.Debug {
		handler = middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			RequestsPerMinute: app.Config.RateLimitPerMinute,
			Burst:             app.Config.RateLimitBurst,
		})(handler)
	}

	handler = middleware.RequestID(handler)
	handler = middleware.CORS(handler)

	return handler
}

// Health check handlers
func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	r.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (r *Router) handleReady(w http.ResponseWriter, req *http.Request) {
	checks := map[string]string{"database": "healthy"}
	ready := true

	if err := r.app.Ping(req.Context()); err != nil {
		slog.Error("database health check failed",
			"error", err,
			"request_id", middleware.GetRequestID(req.Context()),
		)
		checks["database"] = "unhealthy"
		ready = false
	}

	if r.app.Events != nil {
		checks["rabbitmq"] = "healthy"
		if !r.app.Events.IsConnected() {
			checks["rabbitmq"] = "unhealthy"
			ready = false
		}
	}

	if !ready {
		r.jsonResponse(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not ready",
			"checks": checks,
		})
		return
	}

	r.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "ready",
		"checks": checks,
	})
}

// Helper for JSON responses
func (r *Router) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
