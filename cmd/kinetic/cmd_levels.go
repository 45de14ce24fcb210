package main

import (
	"flag"
	"fmt"

	"github.com/kinetichq/kinetic/internal/domain"
)

// cmdLevels computes and prints per-pattern skill levels
func cmdLevels(args []string) error {
	fs := flag.NewFlagSet("levels", flag.ContinueOnError)
	file := fs.String("f", "assessment.yaml", "assessment YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, profile, err := loadAssessmentFile(*file)
	if err != nil {
		return err
	}

	classifier := domain.NewClassifier(domain.DefaultThresholds())
	levels := classifier.ComputeLevels(a, profile)

	fmt.Println("Skill Levels:")
	for _, pattern := range domain.AllPatterns {
		fmt.Printf("  %-16s %s\n", pattern, levels.Level(pattern))
	}

	return nil
}
