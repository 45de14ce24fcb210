package exercise

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kinetichq/kinetic/internal/domain"
	"gopkg.in/yaml.v3"
)

// CatalogFile represents the YAML structure for one exercise catalog file.
// Exercise order within a file is the catalog priority the resolver's
// stable sort preserves.
type CatalogFile struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Exercises []struct {
		Name       string   `yaml:"name"`
		Pattern    string   `yaml:"pattern"`
		Difficulty string   `yaml:"difficulty"`
		Equipment  []string `yaml:"equipment"`
	} `yaml:"exercises"`
}

// Loader reads exercise catalogs from YAML files.
type Loader struct {
	basePath string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(basePath string) *Loader {
	return &Loader{basePath: basePath}
}

// LoadFile loads a single catalog file.
func (l *Loader) LoadFile(name string) ([]domain.Exercise, error) {
	data, err := os.ReadFile(filepath.Join(l.basePath, name))
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", name, err)
	}

	exercises := make([]domain.Exercise, 0, len(file.Exercises))
	for _, e := range file.Exercises {
		pattern, ok := domain.ParsePattern(e.Pattern)
		if !ok {
			return nil, fmt.Errorf("catalog %s, exercise %q: %w: %s",
				name, e.Name, domain.ErrUnknownPattern, e.Pattern)
		}
		exercises = append(exercises, domain.Exercise{
			Name:       e.Name,
			Pattern:    pattern,
			Difficulty: domain.Difficulty(e.Difficulty),
			Equipment:  e.Equipment,
		})
	}

	return exercises, nil
}

// LoadAll loads every catalog file under the base path, files in lexical
// order so the combined catalog priority is deterministic.
func (l *Loader) LoadAll() ([]domain.Exercise, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, fmt.Errorf("read catalog directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".yaml") || strings.HasSuffix(entry.Name(), ".yml") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var exercises []domain.Exercise
	for _, name := range names {
		loaded, err := l.LoadFile(name)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", name, err)
		}
		exercises = append(exercises, loaded...)
	}

	return exercises, nil
}
