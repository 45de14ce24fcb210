package exercise

import (
	"errors"
	"testing"

	"github.com/kinetichq/kinetic/internal/domain"
)

func loadedRegistry(t *testing.T) *Registry {
	t.Helper()
	tmpDir := t.TempDir()
	writeCatalog(t, tmpDir, "catalog.yaml", `name: Test Catalog
exercises:
  - name: Wall Push-up
    pattern: horizontal_push
    difficulty: beginner
  - name: Push-up
    pattern: horizontal_push
    difficulty: beginner
  - name: Bench Press
    pattern: horizontal_push
    difficulty: intermediate
  - name: Ring Dip
    pattern: horizontal_push
    difficulty: advanced
  - name: Goblet Squat
    pattern: squat
    difficulty: beginner
  - name: Back Squat
    pattern: squat
    difficulty: intermediate
`)

	r := NewRegistry(NewLoader(tmpDir))
	if err := r.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return r
}

func TestRegistry_Get(t *testing.T) {
	r := loadedRegistry(t)

	e, err := r.Get("Bench Press")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if e.Difficulty != domain.DifficultyIntermediate {
		t.Errorf("difficulty = %s", e.Difficulty)
	}

	_, err = r.Get("Kettlebell Juggling")
	if !errors.Is(err, domain.ErrExerciseNotFound) {
		t.Errorf("error = %v, want ErrExerciseNotFound", err)
	}
}

func TestRegistry_ByPattern(t *testing.T) {
	r := loadedRegistry(t)

	push := r.ByPattern(domain.HorizontalPush)
	if len(push) != 4 {
		t.Fatalf("len = %d, want 4", len(push))
	}
	if push[0].Name != "Wall Push-up" {
		t.Errorf("catalog order not preserved: first = %s", push[0].Name)
	}

	if got := r.ByPattern(domain.Cardio); len(got) != 0 {
		t.Errorf("cardio should be empty, got %d", len(got))
	}
}

func TestRegistry_ByDifficulty(t *testing.T) {
	r := loadedRegistry(t)

	if got := len(r.ByDifficulty(domain.DifficultyBeginner)); got != 3 {
		t.Errorf("beginner count = %d, want 3", got)
	}
	if got := len(r.ByDifficulty(domain.DifficultyAdvanced)); got != 1 {
		t.Errorf("advanced count = %d, want 1", got)
	}
}

func TestRegistry_CandidatesForPattern(t *testing.T) {
	r := loadedRegistry(t)

	levels := domain.PatternLevels{domain.HorizontalPush: domain.LevelIntermediate}
	got := r.CandidatesForPattern(domain.HorizontalPush, levels, domain.LevelBeginner)

	if len(got) != 4 {
		t.Fatalf("len = %d, want 4 (disallowed kept)", len(got))
	}
	if got[0].Name != "Bench Press" {
		t.Errorf("first = %s, want Bench Press (hardest allowed tier first)", got[0].Name)
	}
	if got[len(got)-1].Name != "Ring Dip" {
		t.Errorf("last = %s, want Ring Dip (advanced tier gated)", got[len(got)-1].Name)
	}
	// Catalog order among the equal-tier pushups.
	if got[1].Name != "Wall Push-up" || got[2].Name != "Push-up" {
		t.Errorf("beginner tier order = [%s, %s], want catalog order", got[1].Name, got[2].Name)
	}
}

func TestRegistry_Stats(t *testing.T) {
	r := loadedRegistry(t)

	stats := r.Stats()
	if stats.ExerciseCount != 6 {
		t.Errorf("ExerciseCount = %d, want 6", stats.ExerciseCount)
	}
	if stats.ByPattern["squat"] != 2 {
		t.Errorf("squat count = %d, want 2", stats.ByPattern["squat"])
	}
	if stats.ByDifficulty["intermediate"] != 2 {
		t.Errorf("intermediate count = %d, want 2", stats.ByDifficulty["intermediate"])
	}
}

func TestRegistry_Reload(t *testing.T) {
	r := loadedRegistry(t)
	if err := r.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if r.Stats().ExerciseCount != 6 {
		t.Error("reload should restore the catalog")
	}
}
