package exercise

import (
	"fmt"
	"sync"

	"github.com/kinetichq/kinetic/internal/domain"
)

// Registry provides in-memory access to the exercise catalog. The catalog
// order is preserved end-to-end: it is the priority callers feed into the
// difficulty resolver's stable sort.
type Registry struct {
	loader    *Loader
	mu        sync.RWMutex
	exercises []domain.Exercise
	byName    map[string]int
	loaded    bool
}

// NewRegistry creates a registry backed by the given loader.
func NewRegistry(loader *Loader) *Registry {
	return &Registry{
		loader: loader,
		byName: make(map[string]int),
	}
}

// Load reads all catalog files into memory.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercises, err := r.loader.LoadAll()
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}

	r.exercises = exercises
	r.byName = make(map[string]int, len(exercises))
	for i, e := range exercises {
		r.byName[e.Name] = i
	}
	r.loaded = true
	return nil
}

// Reload discards the catalog and loads it again.
func (r *Registry) Reload() error {
	r.mu.Lock()
	r.exercises = nil
	r.byName = make(map[string]int)
	r.loaded = false
	r.mu.Unlock()

	return r.Load()
}

// Get returns an exercise by name.
func (r *Registry) Get(name string) (domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byName[name]
	if !ok {
		return domain.Exercise{}, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, name)
	}
	return r.exercises[i], nil
}

// List returns all exercises in catalog order.
func (r *Registry) List() []domain.Exercise {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Exercise, len(r.exercises))
	copy(out, r.exercises)
	return out
}

// ByPattern returns the exercises for one movement pattern in catalog order.
func (r *Registry) ByPattern(pattern domain.MovementPattern) []domain.Exercise {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Exercise
	for _, e := range r.exercises {
		if e.Pattern == pattern {
			out = append(out, e)
		}
	}
	return out
}

// ByDifficulty returns the exercises of one difficulty tier in catalog order.
func (r *Registry) ByDifficulty(difficulty domain.Difficulty) []domain.Exercise {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Exercise
	for _, e := range r.exercises {
		if e.Difficulty == difficulty {
			out = append(out, e)
		}
	}
	return out
}

// Candidates returns all exercises gated and ordered for the given
// per-pattern levels: allowed tiers first, hardest earned tier first,
// catalog order preserved among equals.
func (r *Registry) Candidates(levels domain.PatternLevels, fallback domain.SkillLevel) []domain.Exercise {
	return domain.SortExercisesByDifficultyPriority(r.List(), domain.AllowedForLevels(levels), fallback)
}

// CandidatesForPattern is Candidates restricted to one movement pattern.
func (r *Registry) CandidatesForPattern(pattern domain.MovementPattern, levels domain.PatternLevels, fallback domain.SkillLevel) []domain.Exercise {
	return domain.SortExercisesByDifficultyPriority(r.ByPattern(pattern), domain.AllowedForLevels(levels), fallback)
}

// Stats returns catalog statistics.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := RegistryStats{
		ExerciseCount: len(r.exercises),
		ByDifficulty:  make(map[string]int),
		ByPattern:     make(map[string]int),
	}
	for _, e := range r.exercises {
		stats.ByDifficulty[string(e.Difficulty)]++
		stats.ByPattern[string(e.Pattern)]++
	}
	return stats
}

// RegistryStats holds statistics about the loaded catalog.
type RegistryStats struct {
	ExerciseCount int
	ByDifficulty  map[string]int
	ByPattern     map[string]int
}
