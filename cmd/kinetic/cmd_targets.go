package main

import (
	"flag"
	"fmt"

	"github.com/kinetichq/kinetic/internal/domain"
)

// cmdTargets prints progression targets for a body weight
func cmdTargets(args []string) error {
	fs := flag.NewFlagSet("targets", flag.ContinueOnError)
	weight := fs.Float64("weight", 0, "body weight")
	unitFlag := fs.String("unit", "imperial", "unit system (imperial or metric)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *weight <= 0 {
		return fmt.Errorf("-weight is required and must be positive")
	}

	unit, err := parseUnit(*unitFlag)
	if err != nil {
		return err
	}

	calc := domain.NewTargetCalculator(domain.DefaultThresholds())
	targets := calc.ProgressionTargets(*weight, unit)

	fmt.Printf("Progression Targets (%.1f %s):\n\n", *weight, unit.Label())
	for _, pattern := range domain.AllPatterns {
		t := targets[pattern]
		fmt.Printf("%s\n", pattern)
		if t.BodyweightTest != "N/A" {
			fmt.Printf("  %-24s intermediate: %-14s advanced: %s\n",
				t.BodyweightTest, t.BodyweightIntermediate, t.BodyweightAdvanced)
		}
		if t.WeightedTest != "N/A" {
			fmt.Printf("  %-24s intermediate: %-14s advanced: %s\n",
				t.WeightedTest, t.WeightedIntermediate, t.WeightedAdvanced)
		}
		if t.BodyweightTest == "N/A" && t.WeightedTest == "N/A" {
			fmt.Println("  no measured test; self-reported only")
		}
		fmt.Println()
	}

	return nil
}
