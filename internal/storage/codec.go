// Package storage holds the row codecs shared by the SQLite and Postgres
// assessment stores. Test results are grouped into two JSON documents per
// row so new tests never need a schema change; absent fields stay absent
// instead of collapsing to zero.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/kinetichq/kinetic/internal/domain"
)

// bodyweightTests mirrors the optional bodyweight-test fields of an
// assessment for the JSON column.
type bodyweightTests struct {
	Pushups          *int     `json:"pushups,omitempty"`
	PikePushups      *int     `json:"pike_pushups,omitempty"`
	Pullups          *int     `json:"pullups,omitempty"`
	Squats           *int     `json:"squats,omitempty"`
	WalkingLunges    *int     `json:"walking_lunges,omitempty"`
	SingleLegRDL     *int     `json:"single_leg_rdl,omitempty"`
	PlankHoldSeconds *int     `json:"plank_hold_seconds,omitempty"`
	MileTimeMinutes  *float64 `json:"mile_time_minutes,omitempty"`
}

// loadTests mirrors the optional 1RM fields for the JSON column.
type loadTests struct {
	Squat1RM         *float64 `json:"squat_1rm,omitempty"`
	Deadlift1RM      *float64 `json:"deadlift_1rm,omitempty"`
	BenchPress1RM    *float64 `json:"bench_press_1rm,omitempty"`
	OverheadPress1RM *float64 `json:"overhead_press_1rm,omitempty"`
	BarbellRow1RM    *float64 `json:"barbell_row_1rm,omitempty"`
	DumbbellLunge1RM *float64 `json:"dumbbell_lunge_1rm,omitempty"`
	FarmersCarry1RM  *float64 `json:"farmers_carry_1rm,omitempty"`
}

// EncodeTests marshals an assessment's test fields into the two JSON
// documents stored per row.
func EncodeTests(a *domain.Assessment) (bodyweight, load []byte, err error) {
	bodyweight, err = json.Marshal(bodyweightTests{
		Pushups:          a.Pushups,
		PikePushups:      a.PikePushups,
		Pullups:          a.Pullups,
		Squats:           a.Squats,
		WalkingLunges:    a.WalkingLunges,
		SingleLegRDL:     a.SingleLegRDL,
		PlankHoldSeconds: a.PlankHoldSeconds,
		MileTimeMinutes:  a.MileTimeMinutes,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal bodyweight tests: %w", err)
	}

	load, err = json.Marshal(loadTests{
		Squat1RM:         a.Squat1RM,
		Deadlift1RM:      a.Deadlift1RM,
		BenchPress1RM:    a.BenchPress1RM,
		OverheadPress1RM: a.OverheadPress1RM,
		BarbellRow1RM:    a.BarbellRow1RM,
		DumbbellLunge1RM: a.DumbbellLunge1RM,
		FarmersCarry1RM:  a.FarmersCarry1RM,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal load tests: %w", err)
	}

	return bodyweight, load, nil
}

// DecodeTests unmarshals the two JSON documents back into the assessment.
func DecodeTests(a *domain.Assessment, bodyweight, load []byte) error {
	var bw bodyweightTests
	if err := json.Unmarshal(bodyweight, &bw); err != nil {
		return fmt.Errorf("unmarshal bodyweight tests: %w", err)
	}
	a.Pushups = bw.Pushups
	a.PikePushups = bw.PikePushups
	a.Pullups = bw.Pullups
	a.Squats = bw.Squats
	a.WalkingLunges = bw.WalkingLunges
	a.SingleLegRDL = bw.SingleLegRDL
	a.PlankHoldSeconds = bw.PlankHoldSeconds
	a.MileTimeMinutes = bw.MileTimeMinutes

	var lt loadTests
	if err := json.Unmarshal(load, &lt); err != nil {
		return fmt.Errorf("unmarshal load tests: %w", err)
	}
	a.Squat1RM = lt.Squat1RM
	a.Deadlift1RM = lt.Deadlift1RM
	a.BenchPress1RM = lt.BenchPress1RM
	a.OverheadPress1RM = lt.OverheadPress1RM
	a.BarbellRow1RM = lt.BarbellRow1RM
	a.DumbbellLunge1RM = lt.DumbbellLunge1RM
	a.FarmersCarry1RM = lt.FarmersCarry1RM

	return nil
}

// EncodeOverrides marshals the per-pattern override map.
func EncodeOverrides(overrides map[domain.MovementPattern]domain.SkillLevel) ([]byte, error) {
	if overrides == nil {
		overrides = map[domain.MovementPattern]domain.SkillLevel{}
	}
	data, err := json.Marshal(overrides)
	if err != nil {
		return nil, fmt.Errorf("marshal overrides: %w", err)
	}
	return data, nil
}

// DecodeOverrides unmarshals the per-pattern override map.
func DecodeOverrides(data []byte) (map[domain.MovementPattern]domain.SkillLevel, error) {
	overrides := make(map[domain.MovementPattern]domain.SkillLevel)
	if len(data) == 0 {
		return overrides, nil
	}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("unmarshal overrides: %w", err)
	}
	return overrides, nil
}
