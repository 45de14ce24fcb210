package domain

// MovementPattern is a functional category of exercise. Skill is assessed
// independently per pattern; skill in one pattern never implies skill in
// another.
type MovementPattern string

const (
	HorizontalPush MovementPattern = "horizontal_push"
	VerticalPush   MovementPattern = "vertical_push"
	VerticalPull   MovementPattern = "vertical_pull"
	HorizontalPull MovementPattern = "horizontal_pull"
	Squat          MovementPattern = "squat"
	Lunge          MovementPattern = "lunge"
	Hinge          MovementPattern = "hinge"
	Core           MovementPattern = "core"
	Rotation       MovementPattern = "rotation"
	Carry          MovementPattern = "carry"
	Cardio         MovementPattern = "cardio"
)

// AllPatterns lists every movement pattern in canonical order.
var AllPatterns = []MovementPattern{
	HorizontalPush,
	VerticalPush,
	VerticalPull,
	HorizontalPull,
	Squat,
	Lunge,
	Hinge,
	Core,
	Rotation,
	Carry,
	Cardio,
}

// ParsePattern returns the pattern for a string, or false if unknown.
func ParsePattern(s string) (MovementPattern, bool) {
	for _, p := range AllPatterns {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// SkillLevel represents proficiency in a movement pattern. Levels are
// totally ordered; comparisons go through Rank, never string comparison.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// Rank returns the ordinal position of a level. Unknown values rank as
// beginner so an unvalidated string can never unlock anything.
func (l SkillLevel) Rank() int {
	switch l {
	case LevelAdvanced:
		return 3
	case LevelIntermediate:
		return 2
	default:
		return 1
	}
}

// MaxLevel returns the higher of two levels by ordinal.
func MaxLevel(a, b SkillLevel) SkillLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// ParseLevel normalizes a self-reported level string. Anything unrecognized
// resolves to beginner.
func ParseLevel(s string) SkillLevel {
	switch SkillLevel(s) {
	case LevelIntermediate:
		return LevelIntermediate
	case LevelAdvanced:
		return LevelAdvanced
	default:
		return LevelBeginner
	}
}

// PatternLevels maps every movement pattern to its computed skill level.
// The classifier always produces a total map.
type PatternLevels map[MovementPattern]SkillLevel

// Level returns the level for a pattern, defaulting to beginner when the
// pattern is absent.
func (pl PatternLevels) Level(p MovementPattern) SkillLevel {
	if l, ok := pl[p]; ok {
		return l
	}
	return LevelBeginner
}

// Difficulty represents an exercise difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank returns the ordinal position of a difficulty tier.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyAdvanced:
		return 3
	case DifficultyIntermediate:
		return 2
	default:
		return 1
	}
}

// Exercise is a catalog entry: a named movement with a single declared
// difficulty tier. The catalog itself lives outside the engine; the engine
// only filters and orders these values.
type Exercise struct {
	Name       string
	Pattern    MovementPattern
	Difficulty Difficulty
	Equipment  []string
}
