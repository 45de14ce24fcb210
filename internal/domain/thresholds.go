package domain

// RepThreshold holds the rep/seconds counts that unlock intermediate and
// advanced for one bodyweight test.
type RepThreshold struct {
	Test         string
	Intermediate int
	Advanced     int
}

// levelFor classifies a raw count against the threshold pair.
func (t RepThreshold) levelFor(count int) SkillLevel {
	switch {
	case count >= t.Advanced:
		return LevelAdvanced
	case count >= t.Intermediate:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// LoadThreshold holds the bodyweight-multiple bands for one load test.
// Below BeginnerBelow the result is an explicit beginner; at or above
// Intermediate/Advanced the corresponding level applies. In between
// BeginnerBelow and Intermediate the load test is inconclusive and the
// bodyweight-derived level stands.
type LoadThreshold struct {
	Test          string
	BeginnerBelow float64
	Intermediate  float64
	Advanced      float64
}

// levelFor classifies a load-to-bodyweight ratio. The second return is
// false when the ratio falls in the inconclusive band.
func (t LoadThreshold) levelFor(ratio float64) (SkillLevel, bool) {
	switch {
	case ratio >= t.Advanced:
		return LevelAdvanced, true
	case ratio >= t.Intermediate:
		return LevelIntermediate, true
	case ratio < t.BeginnerBelow:
		return LevelBeginner, true
	default:
		return LevelBeginner, false
	}
}

// MileThreshold holds the mile-time cutoffs in minutes. Lower is better:
// at or under Intermediate unlocks intermediate, strictly under Advanced
// unlocks advanced.
type MileThreshold struct {
	Test         string
	Intermediate float64
	Advanced     float64
}

func (t MileThreshold) levelFor(minutes float64) SkillLevel {
	switch {
	case minutes < t.Advanced:
		return LevelAdvanced
	case minutes <= t.Intermediate:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// ThresholdTable is the single shared parameter table behind the level
// classifier and the progression target calculator. Both read the same
// constants so the targets shown to a user can never drift from the
// thresholds actually enforced. The table is immutable after construction.
type ThresholdTable struct {
	// Bodyweight tests keyed by the pattern they gate.
	Pushups       RepThreshold
	PikePushups   RepThreshold
	Pullups       RepThreshold
	BodySquats    RepThreshold
	WalkingLunges RepThreshold
	SingleLegRDL  RepThreshold
	PlankHold     RepThreshold
	Mile          MileThreshold

	// Load tests as bodyweight multiples, keyed by lift.
	SquatLoad         LoadThreshold
	DeadliftLoad      LoadThreshold
	BenchPressLoad    LoadThreshold
	OverheadPressLoad LoadThreshold
	BarbellRowLoad    LoadThreshold
	DumbbellLungeLoad LoadThreshold
	FarmersCarryLoad  LoadThreshold
}

// DefaultThresholds returns the standard parameter table.
func DefaultThresholds() ThresholdTable {
	return ThresholdTable{
		Pushups:       RepThreshold{Test: "Push-ups", Intermediate: 10, Advanced: 20},
		PikePushups:   RepThreshold{Test: "Pike Push-ups", Intermediate: 8, Advanced: 15},
		Pullups:       RepThreshold{Test: "Pull-ups", Intermediate: 5, Advanced: 10},
		BodySquats:    RepThreshold{Test: "Bodyweight Squats", Intermediate: 25, Advanced: 40},
		WalkingLunges: RepThreshold{Test: "Walking Lunges", Intermediate: 20, Advanced: 30},
		SingleLegRDL:  RepThreshold{Test: "Single-leg RDL", Intermediate: 10, Advanced: 15},
		PlankHold:     RepThreshold{Test: "Plank Hold (seconds)", Intermediate: 60, Advanced: 90},
		Mile:          MileThreshold{Test: "Mile Time (minutes)", Intermediate: 9, Advanced: 7},

		SquatLoad:         LoadThreshold{Test: "Back Squat 1RM", BeginnerBelow: 1.0, Intermediate: 1.5, Advanced: 2.0},
		DeadliftLoad:      LoadThreshold{Test: "Deadlift 1RM", BeginnerBelow: 1.25, Intermediate: 1.75, Advanced: 2.5},
		BenchPressLoad:    LoadThreshold{Test: "Bench Press 1RM", BeginnerBelow: 0.75, Intermediate: 1.0, Advanced: 1.5},
		OverheadPressLoad: LoadThreshold{Test: "Overhead Press 1RM", BeginnerBelow: 0.5, Intermediate: 0.6, Advanced: 0.9},
		BarbellRowLoad:    LoadThreshold{Test: "Barbell Row 1RM", BeginnerBelow: 0.75, Intermediate: 1.0, Advanced: 1.5},
		DumbbellLungeLoad: LoadThreshold{Test: "Dumbbell Lunge 1RM", BeginnerBelow: 0.75, Intermediate: 1.0, Advanced: 1.5},
		FarmersCarryLoad:  LoadThreshold{Test: "Farmer's Carry 1RM", BeginnerBelow: 1.0, Intermediate: 1.5, Advanced: 2.0},
	}
}
