package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kinetichq/kinetic/internal/domain"
)

// assessmentFile is the YAML shape the CLI reads. Absent test fields stay
// nil, meaning not attempted.
type assessmentFile struct {
	Weight float64 `yaml:"weight"`
	Unit   string  `yaml:"unit"`

	Pushups          *int     `yaml:"pushups"`
	PikePushups      *int     `yaml:"pike_pushups"`
	Pullups          *int     `yaml:"pullups"`
	Squats           *int     `yaml:"squats"`
	WalkingLunges    *int     `yaml:"walking_lunges"`
	SingleLegRDL     *int     `yaml:"single_leg_rdl"`
	PlankHoldSeconds *int     `yaml:"plank_hold_seconds"`
	MileTimeMinutes  *float64 `yaml:"mile_time_minutes"`

	Squat1RM         *float64 `yaml:"squat_1rm"`
	Deadlift1RM      *float64 `yaml:"deadlift_1rm"`
	BenchPress1RM    *float64 `yaml:"bench_press_1rm"`
	OverheadPress1RM *float64 `yaml:"overhead_press_1rm"`
	BarbellRow1RM    *float64 `yaml:"barbell_row_1rm"`
	DumbbellLunge1RM *float64 `yaml:"dumbbell_lunge_1rm"`
	FarmersCarry1RM  *float64 `yaml:"farmers_carry_1rm"`

	ExperienceLevel string            `yaml:"experience_level"`
	Overrides       map[string]string `yaml:"overrides"`
}

// loadAssessmentFile parses an assessment YAML file into the engine's
// input types.
func loadAssessmentFile(path string) (*domain.Assessment, domain.BodyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.BodyProfile{}, fmt.Errorf("read %s: %w", path, err)
	}

	var f assessmentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, domain.BodyProfile{}, fmt.Errorf("parse %s: %w", path, err)
	}

	unit, err := parseUnit(f.Unit)
	if err != nil {
		return nil, domain.BodyProfile{}, err
	}

	a := &domain.Assessment{
		Pushups:          f.Pushups,
		PikePushups:      f.PikePushups,
		Pullups:          f.Pullups,
		Squats:           f.Squats,
		WalkingLunges:    f.WalkingLunges,
		SingleLegRDL:     f.SingleLegRDL,
		PlankHoldSeconds: f.PlankHoldSeconds,
		MileTimeMinutes:  f.MileTimeMinutes,
		Squat1RM:         f.Squat1RM,
		Deadlift1RM:      f.Deadlift1RM,
		BenchPress1RM:    f.BenchPress1RM,
		OverheadPress1RM: f.OverheadPress1RM,
		BarbellRow1RM:    f.BarbellRow1RM,
		DumbbellLunge1RM: f.DumbbellLunge1RM,
		FarmersCarry1RM:  f.FarmersCarry1RM,
		ExperienceLevel:  domain.ParseLevel(f.ExperienceLevel),
	}

	if len(f.Overrides) > 0 {
		a.Overrides = make(map[domain.MovementPattern]domain.SkillLevel, len(f.Overrides))
		for k, v := range f.Overrides {
			pattern, ok := domain.ParsePattern(k)
			if !ok {
				return nil, domain.BodyProfile{}, fmt.Errorf("unknown movement pattern in overrides: %q", k)
			}
			a.Overrides[pattern] = domain.ParseLevel(v)
		}
	}

	return a, domain.BodyProfile{Weight: f.Weight, Unit: unit}, nil
}

func parseUnit(s string) (domain.UnitSystem, error) {
	switch s {
	case "", "imperial":
		return domain.Imperial, nil
	case "metric":
		return domain.Metric, nil
	default:
		return "", fmt.Errorf("unit must be imperial or metric, got %q", s)
	}
}
