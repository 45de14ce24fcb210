package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/kinetichq/kinetic/internal/domain"
	"github.com/kinetichq/kinetic/internal/exercise"
)

// cmdExercises prints difficulty-gated exercise candidates
func cmdExercises(args []string) error {
	fs := flag.NewFlagSet("exercises", flag.ContinueOnError)
	file := fs.String("f", "assessment.yaml", "assessment YAML file")
	catalogDir := fs.String("catalog", "./catalog", "exercise catalog directory")
	patternFlag := fs.String("pattern", "", "restrict to one movement pattern")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, profile, err := loadAssessmentFile(*file)
	if err != nil {
		return err
	}

	registry := exercise.NewRegistry(exercise.NewLoader(*catalogDir))
	if err := registry.Load(); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	classifier := domain.NewClassifier(domain.DefaultThresholds())
	levels := classifier.ComputeLevels(a, profile)

	var candidates []domain.Exercise
	if *patternFlag != "" {
		pattern, ok := domain.ParsePattern(*patternFlag)
		if !ok {
			return fmt.Errorf("unknown movement pattern: %q", *patternFlag)
		}
		candidates = registry.CandidatesForPattern(pattern, levels, domain.LevelBeginner)
		fmt.Printf("Exercises for %s (%s):\n", pattern, levels.Level(pattern))
	} else {
		candidates = registry.Candidates(levels, domain.LevelBeginner)
		fmt.Println("Exercise Candidates:")
	}

	for _, ex := range candidates {
		equipment := ""
		if len(ex.Equipment) > 0 {
			equipment = " [" + strings.Join(ex.Equipment, ", ") + "]"
		}
		fmt.Printf("  %-28s %-16s %s%s\n", ex.Name, ex.Pattern, ex.Difficulty, equipment)
	}
	fmt.Printf("\n%d exercises\n", len(candidates))

	return nil
}
