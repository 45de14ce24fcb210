package domain

import (
	"fmt"
	"math"
)

// ProgressionTarget describes, for one movement pattern, the literal test
// results a user must hit to reach the next levels. Targets are recomputed
// from the current body profile on every call and never persisted.
type ProgressionTarget struct {
	BodyweightTest         string
	BodyweightIntermediate string
	BodyweightAdvanced     string
	WeightedTest           string
	WeightedIntermediate   string
	WeightedAdvanced       string
}

// notTested marks a slot with no corresponding test for the pattern.
const notTested = "N/A"

// TargetCalculator turns the shared threshold table into display-ready
// progression targets. It reads the same constants the classifier enforces,
// so the "what it takes" text can never disagree with the actual gate.
type TargetCalculator struct {
	table ThresholdTable
}

// NewTargetCalculator creates a calculator over the given threshold table.
func NewTargetCalculator(table ThresholdTable) *TargetCalculator {
	return &TargetCalculator{table: table}
}

// ProgressionTargets computes targets for every pattern. Weighted targets
// are bodyWeight x multiplier in the user's own unit; a zero body weight
// degrades them to "0 <unit>" rather than failing, since no division is
// ever performed.
func (c *TargetCalculator) ProgressionTargets(bodyWeight float64, unit UnitSystem) map[MovementPattern]ProgressionTarget {
	t := c.table
	return map[MovementPattern]ProgressionTarget{
		HorizontalPush: c.target(t.Pushups, &t.BenchPressLoad, bodyWeight, unit),
		VerticalPush:   c.target(t.PikePushups, &t.OverheadPressLoad, bodyWeight, unit),
		VerticalPull:   c.target(t.Pullups, nil, bodyWeight, unit),
		HorizontalPull: c.loadOnly(t.BarbellRowLoad, bodyWeight, unit),
		Squat:          c.target(t.BodySquats, &t.SquatLoad, bodyWeight, unit),
		Lunge:          c.target(t.WalkingLunges, &t.DumbbellLungeLoad, bodyWeight, unit),
		Hinge:          c.target(t.SingleLegRDL, &t.DeadliftLoad, bodyWeight, unit),
		Core:           c.target(t.PlankHold, nil, bodyWeight, unit),
		Rotation:       {BodyweightTest: notTested, BodyweightIntermediate: notTested, BodyweightAdvanced: notTested, WeightedTest: notTested, WeightedIntermediate: notTested, WeightedAdvanced: notTested},
		Carry:          c.loadOnly(t.FarmersCarryLoad, bodyWeight, unit),
		Cardio: {
			BodyweightTest:         t.Mile.Test,
			BodyweightIntermediate: fmt.Sprintf("%g min or less", t.Mile.Intermediate),
			BodyweightAdvanced:     fmt.Sprintf("under %g min", t.Mile.Advanced),
			WeightedTest:           notTested,
			WeightedIntermediate:   notTested,
			WeightedAdvanced:       notTested,
		},
	}
}

func (c *TargetCalculator) target(rep RepThreshold, load *LoadThreshold, bodyWeight float64, unit UnitSystem) ProgressionTarget {
	pt := ProgressionTarget{
		BodyweightTest:         rep.Test,
		BodyweightIntermediate: fmt.Sprintf("%d", rep.Intermediate),
		BodyweightAdvanced:     fmt.Sprintf("%d", rep.Advanced),
		WeightedTest:           notTested,
		WeightedIntermediate:   notTested,
		WeightedAdvanced:       notTested,
	}
	if load != nil {
		pt.WeightedTest = load.Test
		pt.WeightedIntermediate = formatLoad(bodyWeight*load.Intermediate, unit)
		pt.WeightedAdvanced = formatLoad(bodyWeight*load.Advanced, unit)
	}
	return pt
}

func (c *TargetCalculator) loadOnly(load LoadThreshold, bodyWeight float64, unit UnitSystem) ProgressionTarget {
	return ProgressionTarget{
		BodyweightTest:         notTested,
		BodyweightIntermediate: notTested,
		BodyweightAdvanced:     notTested,
		WeightedTest:           load.Test,
		WeightedIntermediate:   formatLoad(bodyWeight*load.Intermediate, unit),
		WeightedAdvanced:       formatLoad(bodyWeight*load.Advanced, unit),
	}
}

// formatLoad renders a load rounded to the nearest whole unit with its
// label, e.g. "270 lbs" or "85 kg".
func formatLoad(v float64, unit UnitSystem) string {
	return fmt.Sprintf("%d %s", int(math.Round(v)), unit.Label())
}
