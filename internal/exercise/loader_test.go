package exercise

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kinetichq/kinetic/internal/domain"
)

const testCatalog = `name: Test Catalog
version: "1"
exercises:
  - name: Push-up
    pattern: horizontal_push
    difficulty: beginner
    equipment: [bodyweight]
  - name: Bench Press
    pattern: horizontal_push
    difficulty: intermediate
    equipment: [barbell, bench]
  - name: Pistol Squat
    pattern: squat
    difficulty: advanced
    equipment: [bodyweight]
`

func writeCatalog(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeCatalog(t, tmpDir, "catalog.yaml", testCatalog)

	loader := NewLoader(tmpDir)
	exercises, err := loader.LoadFile("catalog.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if len(exercises) != 3 {
		t.Fatalf("len = %d, want 3", len(exercises))
	}
	if exercises[0].Name != "Push-up" {
		t.Errorf("first exercise = %q, file order must be preserved", exercises[0].Name)
	}
	if exercises[1].Pattern != domain.HorizontalPush {
		t.Errorf("pattern = %s, want horizontal_push", exercises[1].Pattern)
	}
	if exercises[2].Difficulty != domain.DifficultyAdvanced {
		t.Errorf("difficulty = %s, want advanced", exercises[2].Difficulty)
	}
	if len(exercises[1].Equipment) != 2 {
		t.Errorf("equipment = %v", exercises[1].Equipment)
	}
}

func TestLoader_LoadFile_UnknownPattern(t *testing.T) {
	tmpDir := t.TempDir()
	writeCatalog(t, tmpDir, "bad.yaml", `name: Bad
exercises:
  - name: Mystery Move
    pattern: sideways_wiggle
    difficulty: beginner
`)

	loader := NewLoader(tmpDir)
	_, err := loader.LoadFile("bad.yaml")
	if !errors.Is(err, domain.ErrUnknownPattern) {
		t.Errorf("error = %v, want ErrUnknownPattern", err)
	}
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	loader := NewLoader(t.TempDir())
	if _, err := loader.LoadFile("nope.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoader_LoadAll_LexicalOrder(t *testing.T) {
	tmpDir := t.TempDir()
	writeCatalog(t, tmpDir, "20-accessories.yaml", `name: Accessories
exercises:
  - name: Pallof Press
    pattern: rotation
    difficulty: beginner
`)
	writeCatalog(t, tmpDir, "10-main.yaml", `name: Main
exercises:
  - name: Back Squat
    pattern: squat
    difficulty: intermediate
`)
	writeCatalog(t, tmpDir, "notes.txt", "not yaml")

	loader := NewLoader(tmpDir)
	exercises, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	if len(exercises) != 2 {
		t.Fatalf("len = %d, want 2", len(exercises))
	}
	if exercises[0].Name != "Back Squat" || exercises[1].Name != "Pallof Press" {
		t.Errorf("order = [%s, %s], want lexical file order", exercises[0].Name, exercises[1].Name)
	}
}
