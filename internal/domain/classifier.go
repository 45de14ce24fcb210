package domain

// Classifier computes per-pattern skill levels from an assessment snapshot.
// It is stateless apart from the threshold table it was constructed with,
// so a single value is safe for any number of concurrent callers.
type Classifier struct {
	table ThresholdTable
}

// NewClassifier creates a classifier over the given threshold table.
func NewClassifier(table ThresholdTable) *Classifier {
	return &Classifier{table: table}
}

// ComputeLevels derives a skill level for every movement pattern. It is a
// pure function of the assessment and profile: missing tests read as "no
// signal" (beginner), it never fails, and it never touches shared state.
//
// Per pattern the passes run in order: the bodyweight test sets a level,
// a present load test replaces it (up or down), and a manual override can
// only raise the result.
func (c *Classifier) ComputeLevels(a *Assessment, p BodyProfile) PatternLevels {
	levels := make(PatternLevels, len(AllPatterns))
	if a == nil {
		a = &Assessment{}
	}

	levels[HorizontalPush] = c.table.Pushups.levelFor(reps(a.Pushups))
	levels[VerticalPush] = c.table.PikePushups.levelFor(reps(a.PikePushups))
	levels[VerticalPull] = c.table.Pullups.levelFor(reps(a.Pullups))
	levels[Core] = c.table.PlankHold.levelFor(reps(a.PlankHoldSeconds))

	// Squat reps double as a lower-body stability proxy for lunge and
	// hinge; their dedicated tests can only push the level higher.
	squatLevel := c.table.BodySquats.levelFor(reps(a.Squats))
	levels[Squat] = squatLevel
	levels[Lunge] = MaxLevel(squatLevel, c.table.WalkingLunges.levelFor(reps(a.WalkingLunges)))
	levels[Hinge] = MaxLevel(squatLevel, c.table.SingleLegRDL.levelFor(reps(a.SingleLegRDL)))

	// No bodyweight test exists for these; the load pass or the
	// self-reported fallback decides.
	levels[HorizontalPull] = LevelBeginner
	levels[Carry] = LevelBeginner
	levels[Rotation] = ParseLevel(string(a.ExperienceLevel))

	// Mile time has no natural zero: an absent run is no signal, not a
	// world-record sprint.
	if a.MileTimeMinutes != nil {
		levels[Cardio] = c.table.Mile.levelFor(*a.MileTimeMinutes)
	} else {
		levels[Cardio] = LevelBeginner
	}

	c.applyLoadPass(a, p, levels)

	for _, pattern := range AllPatterns {
		if override, ok := a.Override(pattern); ok {
			levels[pattern] = MaxLevel(levels[pattern], override)
		}
	}

	return levels
}

// applyLoadPass re-derives levels from 1RM results where present. A load
// result replaces the bodyweight result for its pattern rather than merging
// with it, except in the inconclusive band between the explicit-beginner
// cutoff and the intermediate multiplier.
func (c *Classifier) applyLoadPass(a *Assessment, p BodyProfile, levels PatternLevels) {
	weightKg := p.WeightKg()
	if weightKg <= 0 {
		return
	}

	apply := func(pattern MovementPattern, lift *float64, t LoadThreshold) {
		if lift == nil {
			return
		}
		loadKg := *lift
		if p.Unit != Metric {
			loadKg /= lbsPerKg
		}
		if level, decisive := t.levelFor(loadKg / weightKg); decisive {
			levels[pattern] = level
		}
	}

	apply(Squat, a.Squat1RM, c.table.SquatLoad)
	apply(Hinge, a.Deadlift1RM, c.table.DeadliftLoad)
	apply(HorizontalPush, a.BenchPress1RM, c.table.BenchPressLoad)
	apply(VerticalPush, a.OverheadPress1RM, c.table.OverheadPressLoad)
	apply(HorizontalPull, a.BarbellRow1RM, c.table.BarbellRowLoad)
	apply(Lunge, a.DumbbellLunge1RM, c.table.DumbbellLungeLoad)
	apply(Carry, a.FarmersCarry1RM, c.table.FarmersCarryLoad)
}
