// Package assessment orchestrates the skill engine over stored snapshots:
// submitting assessments, reading computed levels, applying overrides, and
// emitting level-up events. The engine itself stays pure; all I/O lives
// here.
package assessment

import (
	"context"
	"log/slog"

	"github.com/kinetichq/kinetic/internal/domain"
)

// LevelUp records one pattern whose level rose between two consecutive
// snapshots.
type LevelUp struct {
	Pattern domain.MovementPattern `json:"pattern"`
	From    domain.SkillLevel      `json:"from"`
	To      domain.SkillLevel      `json:"to"`
}

// SubmitResult is returned after persisting a new snapshot.
type SubmitResult struct {
	Assessment *domain.Assessment
	Levels     domain.PatternLevels
	LevelUps   []LevelUp
}

// Service handles assessment business logic.
type Service struct {
	store      Store
	classifier *domain.Classifier
	targets    *domain.TargetCalculator
	publisher  Publisher // nil when no broker is configured
}

// NewService creates an assessment service. publisher may be nil.
func NewService(store Store, table domain.ThresholdTable, publisher Publisher) *Service {
	return &Service{
		store:      store,
		classifier: domain.NewClassifier(table),
		targets:    domain.NewTargetCalculator(table),
		publisher:  publisher,
	}
}

// Submit persists a new snapshot, recomputes levels, and publishes a
// level-up event for every pattern whose level rose relative to the
// previous snapshot. Publishing is best-effort: a broker failure never
// fails the submission.
func (s *Service) Submit(ctx context.Context, a *domain.Assessment) (*SubmitResult, error) {
	profile, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}

	previous := domain.PatternLevels{}
	if prev, err := s.store.Latest(ctx); err == nil {
		previous = s.classifier.ComputeLevels(prev, profile)
	}

	if err := s.store.Save(ctx, a); err != nil {
		return nil, err
	}

	levels := s.classifier.ComputeLevels(a, profile)
	ups := DiffLevels(previous, levels)

	if s.publisher != nil && len(ups) > 0 {
		if err := s.publisher.PublishLevelUps(ctx, a.ID, ups); err != nil {
			slog.Error("publish level-ups", "assessment_id", a.ID, "error", err)
		}
	}

	return &SubmitResult{Assessment: a, Levels: levels, LevelUps: ups}, nil
}

// Latest returns the most recent snapshot.
func (s *Service) Latest(ctx context.Context) (*domain.Assessment, error) {
	return s.store.Latest(ctx)
}

// History returns snapshots newest first.
func (s *Service) History(ctx context.Context, limit int) ([]*domain.Assessment, error) {
	return s.store.History(ctx, limit)
}

// Levels computes per-pattern levels from the latest snapshot. With no
// snapshot on record every pattern reads beginner; a missing assessment is
// "no signal", not an error.
func (s *Service) Levels(ctx context.Context) (domain.PatternLevels, error) {
	profile, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.store.Latest(ctx)
	if err != nil {
		return s.classifier.ComputeLevels(nil, profile), nil
	}
	return s.classifier.ComputeLevels(latest, profile), nil
}

// ApplyOverride writes a manual level onto the latest snapshot and returns
// the recomputed levels. The value is stored unclamped; the classifier's
// read-side max rule decides its effect.
func (s *Service) ApplyOverride(ctx context.Context, pattern domain.MovementPattern, level domain.SkillLevel) (domain.PatternLevels, error) {
	latest, err := s.store.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetOverride(ctx, latest.ID, pattern, level); err != nil {
		return nil, err
	}
	return s.Levels(ctx)
}

// Targets computes progression targets from the stored body profile.
func (s *Service) Targets(ctx context.Context) (map[domain.MovementPattern]domain.ProgressionTarget, error) {
	profile, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	return s.targets.ProgressionTargets(profile.Weight, profile.Unit), nil
}

// TargetsFor computes progression targets for an explicit body weight and
// unit, bypassing the stored profile.
func (s *Service) TargetsFor(weight float64, unit domain.UnitSystem) map[domain.MovementPattern]domain.ProgressionTarget {
	return s.targets.ProgressionTargets(weight, unit)
}

// BodyProfile returns the stored body profile.
func (s *Service) BodyProfile(ctx context.Context) (domain.BodyProfile, error) {
	return s.store.Profile(ctx)
}

// SetBodyProfile updates the stored body profile.
func (s *Service) SetBodyProfile(ctx context.Context, p domain.BodyProfile) error {
	return s.store.SaveProfile(ctx, p)
}

// DiffLevels returns the patterns whose level rose from prev to next, in
// canonical pattern order. Drops are not reported; a superseding snapshot
// may legitimately lower a level, but only increases are announced.
func DiffLevels(prev, next domain.PatternLevels) []LevelUp {
	var ups []LevelUp
	for _, p := range domain.AllPatterns {
		from, to := prev.Level(p), next.Level(p)
		if to.Rank() > from.Rank() {
			ups = append(ups, LevelUp{Pattern: p, From: from, To: to})
		}
	}
	return ups
}
