// kinetic is the offline CLI: it reads an assessment YAML file and runs
// the same engine the daemon uses, without touching a database or broker.
package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "levels":
		err = cmdLevels(os.Args[2:])
	case "targets":
		err = cmdTargets(os.Args[2:])
	case "exercises":
		err = cmdExercises(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("kinetic %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Kinetic - Movement Skill Assessment

Usage:
  kinetic <command> [arguments]

Commands:
  levels     Compute skill levels from an assessment file
  targets    Show progression targets for a body weight
  exercises  Show exercise candidates gated by skill level
  version    Show version information
  help       Show this help message

Examples:
  kinetic levels -f assessment.yaml
  kinetic targets -weight 180 -unit imperial
  kinetic exercises -f assessment.yaml -pattern squat`)
}
