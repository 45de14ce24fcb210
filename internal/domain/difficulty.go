package domain

import "sort"

// DifficultySet is the set of exercise tiers permitted for a pattern.
type DifficultySet map[Difficulty]bool

// Contains reports whether a tier is in the set.
func (s DifficultySet) Contains(d Difficulty) bool {
	return s[d]
}

// AllowedDifficultyMap maps each movement pattern to its permitted tiers.
// Derived from PatternLevels on demand, never persisted.
type AllowedDifficultyMap map[MovementPattern]DifficultySet

// AllowedDifficulties returns the exercise tiers a skill level unlocks.
// Beginner and intermediate both unlock {beginner, intermediate}: low-skill
// users deliberately get one tier of headroom so they still see variety,
// while advanced movements stay gated behind an actual advanced level. The
// asymmetry is intentional.
func AllowedDifficulties(level SkillLevel) DifficultySet {
	if level == LevelAdvanced {
		return DifficultySet{
			DifficultyBeginner:     true,
			DifficultyIntermediate: true,
			DifficultyAdvanced:     true,
		}
	}
	return DifficultySet{
		DifficultyBeginner:     true,
		DifficultyIntermediate: true,
	}
}

// AllowedForLevels derives the full per-pattern allowed map.
func AllowedForLevels(levels PatternLevels) AllowedDifficultyMap {
	allowed := make(AllowedDifficultyMap, len(AllPatterns))
	for _, p := range AllPatterns {
		allowed[p] = AllowedDifficulties(levels.Level(p))
	}
	return allowed
}

// SortExercisesByDifficultyPriority orders exercise candidates for the
// program generator. Exercises whose tier is allowed for their pattern come
// first, hardest tier first, so selection is biased toward the hardest tier
// the user has earned. Disallowed exercises are pushed to the end rather
// than dropped; callers may still need to know they exist. Patterns missing
// from the allowed map fall back to AllowedDifficulties(fallbackLevel).
//
// The sort is stable: equal-rank exercises keep their incoming catalog
// order. The input slice is not modified.
func SortExercisesByDifficultyPriority(exercises []Exercise, allowed AllowedDifficultyMap, fallbackLevel SkillLevel) []Exercise {
	ordered := make([]Exercise, len(exercises))
	copy(ordered, exercises)

	fallback := AllowedDifficulties(fallbackLevel)
	permitted := func(e Exercise) bool {
		set, ok := allowed[e.Pattern]
		if !ok {
			set = fallback
		}
		return set.Contains(e.Difficulty)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := permitted(ordered[i]), permitted(ordered[j])
		if pi != pj {
			return pi
		}
		if !pi {
			return false
		}
		return ordered[i].Difficulty.Rank() > ordered[j].Difficulty.Rank()
	})

	return ordered
}
