package domain

import (
	"testing"
)

func TestTargetCalculator_WeightedTargetsMatchClassifierMultipliers(t *testing.T) {
	table := DefaultThresholds()
	calc := NewTargetCalculator(table)

	targets := calc.ProgressionTargets(180, Imperial)

	tests := []struct {
		pattern      MovementPattern
		load         LoadThreshold
	}{
		{Squat, table.SquatLoad},
		{Hinge, table.DeadliftLoad},
		{HorizontalPush, table.BenchPressLoad},
		{VerticalPush, table.OverheadPressLoad},
		{HorizontalPull, table.BarbellRowLoad},
		{Lunge, table.DumbbellLungeLoad},
		{Carry, table.FarmersCarryLoad},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			got := targets[tt.pattern]
			wantInt := formatLoad(180*tt.load.Intermediate, Imperial)
			wantAdv := formatLoad(180*tt.load.Advanced, Imperial)
			if got.WeightedIntermediate != wantInt {
				t.Errorf("intermediate = %q, want %q", got.WeightedIntermediate, wantInt)
			}
			if got.WeightedAdvanced != wantAdv {
				t.Errorf("advanced = %q, want %q", got.WeightedAdvanced, wantAdv)
			}
			if got.WeightedTest != tt.load.Test {
				t.Errorf("test name = %q, want %q", got.WeightedTest, tt.load.Test)
			}
		})
	}
}

func TestTargetCalculator_Formatting(t *testing.T) {
	calc := NewTargetCalculator(DefaultThresholds())

	targets := calc.ProgressionTargets(180, Imperial)
	if got := targets[Squat].WeightedIntermediate; got != "270 lbs" {
		t.Errorf("squat intermediate = %q, want \"270 lbs\"", got)
	}
	if got := targets[Squat].WeightedAdvanced; got != "360 lbs" {
		t.Errorf("squat advanced = %q, want \"360 lbs\"", got)
	}

	targets = calc.ProgressionTargets(80, Metric)
	if got := targets[Hinge].WeightedIntermediate; got != "140 kg" {
		t.Errorf("hinge intermediate = %q, want \"140 kg\"", got)
	}
	// 80 x 2.5 = 200
	if got := targets[Hinge].WeightedAdvanced; got != "200 kg" {
		t.Errorf("hinge advanced = %q, want \"200 kg\"", got)
	}
}

func TestTargetCalculator_ZeroBodyWeight(t *testing.T) {
	calc := NewTargetCalculator(DefaultThresholds())

	targets := calc.ProgressionTargets(0, Metric)

	for _, p := range AllPatterns {
		pt, ok := targets[p]
		if !ok {
			t.Fatalf("pattern %s missing from targets", p)
		}
		if pt.WeightedTest == notTested {
			continue
		}
		if pt.WeightedIntermediate != "0 kg" || pt.WeightedAdvanced != "0 kg" {
			t.Errorf("%s: zero weight should yield \"0 kg\" targets, got %q / %q",
				p, pt.WeightedIntermediate, pt.WeightedAdvanced)
		}
	}
}

func TestTargetCalculator_BodyweightTargets(t *testing.T) {
	calc := NewTargetCalculator(DefaultThresholds())
	targets := calc.ProgressionTargets(180, Imperial)

	if got := targets[HorizontalPush].BodyweightIntermediate; got != "10" {
		t.Errorf("pushup intermediate target = %q, want \"10\"", got)
	}
	if got := targets[Core].BodyweightAdvanced; got != "90" {
		t.Errorf("plank advanced target = %q, want \"90\"", got)
	}
	if got := targets[Cardio].BodyweightIntermediate; got != "9 min or less" {
		t.Errorf("mile intermediate target = %q", got)
	}
	if got := targets[Cardio].BodyweightAdvanced; got != "under 7 min" {
		t.Errorf("mile advanced target = %q", got)
	}
	if got := targets[Rotation].BodyweightTest; got != notTested {
		t.Errorf("rotation has no test, got %q", got)
	}
	if got := targets[HorizontalPull].BodyweightTest; got != notTested {
		t.Errorf("horizontal pull has no bodyweight test, got %q", got)
	}
}

func TestTargetCalculator_TotalOverPatterns(t *testing.T) {
	calc := NewTargetCalculator(DefaultThresholds())
	targets := calc.ProgressionTargets(75, Metric)

	if len(targets) != len(AllPatterns) {
		t.Fatalf("expected %d targets, got %d", len(AllPatterns), len(targets))
	}
}
