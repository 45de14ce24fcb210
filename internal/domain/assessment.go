package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnitSystem is the user's preferred unit for body weight and loads.
type UnitSystem string

const (
	Imperial UnitSystem = "imperial"
	Metric   UnitSystem = "metric"
)

const lbsPerKg = 2.2046226218

// Label returns the display label for load values in this unit system.
func (u UnitSystem) Label() string {
	if u == Metric {
		return "kg"
	}
	return "lbs"
}

// BodyProfile carries the body data the engine needs. Weight is in the
// user's preferred unit; zero means unknown.
type BodyProfile struct {
	Weight float64
	Unit   UnitSystem
}

// WeightKg normalizes body weight to kilograms. Threshold ratios are always
// computed in kilograms so the stored unit never leaks into a comparison.
func (p BodyProfile) WeightKg() float64 {
	if p.Unit == Metric {
		return p.Weight
	}
	return p.Weight / lbsPerKg
}

// Assessment is one immutable fitness-test snapshot. A later assessment
// supersedes it; nothing ever mutates an existing one. All test fields are
// optional: nil means the test was not attempted, which is distinct from a
// recorded zero.
type Assessment struct {
	ID        uuid.UUID
	TakenAt   time.Time
	CreatedAt time.Time

	// Bodyweight tests (reps, seconds held, or minutes per mile).
	Pushups          *int
	PikePushups      *int
	Pullups          *int
	Squats           *int
	WalkingLunges    *int
	SingleLegRDL     *int
	PlankHoldSeconds *int
	MileTimeMinutes  *float64

	// Load tests, expressed in the user's preferred unit.
	Squat1RM         *float64
	Deadlift1RM      *float64
	BenchPress1RM    *float64
	OverheadPress1RM *float64
	BarbellRow1RM    *float64
	DumbbellLunge1RM *float64
	FarmersCarry1RM  *float64

	// Self-reported level, the fallback for patterns with no direct test.
	ExperienceLevel SkillLevel

	// Manual per-pattern overrides. An override can only raise the
	// computed level, never lower it; that rule is enforced on read by
	// the classifier, not on write.
	Overrides map[MovementPattern]SkillLevel
}

// Override returns the manual override for a pattern, or false when unset.
func (a *Assessment) Override(p MovementPattern) (SkillLevel, bool) {
	if a.Overrides == nil {
		return "", false
	}
	l, ok := a.Overrides[p]
	return l, ok
}

// reps reads an optional rep/seconds field, treating absent as zero. Zero
// reps and "not attempted" land in the same (lowest) band, so the collapse
// is safe for count-like metrics.
func reps(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
