package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kinetichq/kinetic/internal/api"
	"github.com/kinetichq/kinetic/internal/assessment"
	"github.com/kinetichq/kinetic/internal/config"
	"github.com/kinetichq/kinetic/internal/domain"
	"github.com/kinetichq/kinetic/internal/exercise"
	"github.com/kinetichq/kinetic/internal/storage/sqlite"
)

const testCatalog = `name: Test Catalog
version: "1"
exercises:
  - name: Push-up
    pattern: horizontal_push
    difficulty: beginner
    equipment: [bodyweight]
  - name: Bench Press
    pattern: horizontal_push
    difficulty: intermediate
    equipment: [barbell, bench]
  - name: Weighted Dip
    pattern: horizontal_push
    difficulty: advanced
    equipment: [dip belt]
  - name: Goblet Squat
    pattern: squat
    difficulty: beginner
    equipment: [dumbbell]
`

// setupRouter wires a router over a temp SQLite database and catalog.
func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	tmpDir := t.TempDir()

	db, err := sqlite.Open(filepath.Join(tmpDir, "kinetic.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	catalogDir := filepath.Join(tmpDir, "catalog")
	if err := os.Mkdir(catalogDir, 0755); err != nil {
		t.Fatalf("failed to create catalog dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(catalogDir, "catalog.yaml"), []byte(testCatalog), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	registry := exercise.NewRegistry(exercise.NewLoader(catalogDir))
	if err := registry.Load(); err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	store := sqlite.NewAssessmentStore(db)
	service := assessment.NewService(store, domain.DefaultThresholds(), nil)

	app := &api.App{
		Config:     &config.Config{Debug: true},
		Exercises:  registry,
		Assessment: service,
	}

	return api.NewRouter(app)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestRouter_Health(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "healthy" {
		t.Errorf("status = %q; want healthy", body["status"])
	}
}

func TestRouter_Ready(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
}

func TestRouter_SubmitAssessment(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/assessments", map[string]any{
		"pushups": 25,
		"squats":  45,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Assessment struct {
			ID      string `json:"id"`
			Pushups *int   `json:"pushups"`
		} `json:"assessment"`
		Levels   map[string]string `json:"levels"`
		LevelUps []struct {
			Pattern string `json:"pattern"`
			From    string `json:"from"`
			To      string `json:"to"`
		} `json:"level_ups"`
	}
	decodeBody(t, rec, &body)

	if body.Assessment.ID == "" {
		t.Error("expected assessment ID to be assigned")
	}
	if body.Assessment.Pushups == nil || *body.Assessment.Pushups != 25 {
		t.Errorf("pushups = %v; want 25", body.Assessment.Pushups)
	}
	if body.Levels["horizontal_push"] != "advanced" {
		t.Errorf("horizontal_push = %q; want advanced", body.Levels["horizontal_push"])
	}
	if body.Levels["squat"] != "advanced" {
		t.Errorf("squat = %q; want advanced", body.Levels["squat"])
	}
	if len(body.LevelUps) == 0 {
		t.Error("expected level-ups on first submission")
	}
}

func TestRouter_SubmitAssessment_InvalidBody(t *testing.T) {
	handler := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestRouter_LatestAssessment_NotFound(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/assessments/latest", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestRouter_Levels_NoAssessment(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/levels", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body struct {
		Levels map[string]string `json:"levels"`
	}
	decodeBody(t, rec, &body)

	if len(body.Levels) != len(domain.AllPatterns) {
		t.Errorf("got %d levels; want %d", len(body.Levels), len(domain.AllPatterns))
	}
	for pattern, level := range body.Levels {
		if level != "beginner" {
			t.Errorf("%s = %q; want beginner with no assessment", pattern, level)
		}
	}
}

func TestRouter_Override(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/assessments", map[string]any{
		"pushups": 5,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d; want 201", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/levels/horizontal_push/override", map[string]any{
		"level": "intermediate",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("override status = %d; want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Levels map[string]string `json:"levels"`
	}
	decodeBody(t, rec, &body)
	if body.Levels["horizontal_push"] != "intermediate" {
		t.Errorf("horizontal_push = %q; want intermediate after override", body.Levels["horizontal_push"])
	}
}

func TestRouter_Override_UnknownPattern(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/levels/bicep_curl/override", map[string]any{
		"level": "advanced",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestRouter_Override_NoAssessment(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/levels/squat/override", map[string]any{
		"level": "advanced",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestRouter_Targets_QueryParams(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/targets?weight=180&unit=imperial", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body struct {
		Targets map[string]struct {
			WeightedIntermediate string `json:"weighted_intermediate"`
		} `json:"targets"`
	}
	decodeBody(t, rec, &body)

	// 180 x 1.5 squat multiplier
	if got := body.Targets["squat"].WeightedIntermediate; got != "270 lbs" {
		t.Errorf("squat weighted intermediate = %q; want 270 lbs", got)
	}
}

func TestRouter_Targets_InvalidWeight(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/targets?weight=heavy", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestRouter_Targets_StoredProfile(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodPut, "/api/v1/profile", map[string]any{
		"weight": 100,
		"unit":   "metric",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("profile status = %d; want 200", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/targets", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("targets status = %d; want 200", rec.Code)
	}

	var body struct {
		Targets map[string]struct {
			WeightedIntermediate string `json:"weighted_intermediate"`
		} `json:"targets"`
	}
	decodeBody(t, rec, &body)

	if got := body.Targets["squat"].WeightedIntermediate; got != "150 kg" {
		t.Errorf("squat weighted intermediate = %q; want 150 kg", got)
	}
}

func TestRouter_Profile_RoundTrip(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodPut, "/api/v1/profile", map[string]any{
		"weight": 185.5,
		"unit":   "imperial",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d; want 200", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/profile", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d; want 200", rec.Code)
	}

	var body struct {
		Weight float64 `json:"weight"`
		Unit   string  `json:"unit"`
	}
	decodeBody(t, rec, &body)
	if body.Weight != 185.5 || body.Unit != "imperial" {
		t.Errorf("profile = %+v; want 185.5 imperial", body)
	}
}

func TestRouter_Exercises_Gating(t *testing.T) {
	handler := setupRouter(t)

	// No assessment: everything reads beginner, harder tiers sink to the back
	rec := doJSON(t, handler, http.MethodGet, "/api/v1/exercises/horizontal_push", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body struct {
		Level     string `json:"level"`
		Exercises []struct {
			Name       string `json:"name"`
			Difficulty string `json:"difficulty"`
		} `json:"exercises"`
	}
	decodeBody(t, rec, &body)

	if body.Level != "beginner" {
		t.Errorf("level = %q; want beginner", body.Level)
	}
	if len(body.Exercises) != 3 {
		t.Fatalf("got %d exercises; want 3", len(body.Exercises))
	}
	// Permitted tiers sort hardest first; intermediate is allowed at beginner
	if body.Exercises[0].Name != "Bench Press" {
		t.Errorf("first = %q; want Bench Press", body.Exercises[0].Name)
	}
	if body.Exercises[len(body.Exercises)-1].Difficulty != "advanced" {
		t.Errorf("last difficulty = %q; disallowed tiers should sort last", body.Exercises[len(body.Exercises)-1].Difficulty)
	}
}

func TestRouter_Exercises_UnknownPattern(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/exercises/curls", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestRouter_Exercises_List(t *testing.T) {
	handler := setupRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/exercises", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body struct {
		Total     int `json:"total"`
		Exercises []struct {
			Name string `json:"name"`
		} `json:"exercises"`
	}
	decodeBody(t, rec, &body)
	if body.Total != 4 {
		t.Errorf("total = %d; want 4", body.Total)
	}
}
