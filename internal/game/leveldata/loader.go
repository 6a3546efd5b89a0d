package leveldata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads custom level files from a directory. Files are YAML
// documents matching the Def structure.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Files that fail
// to parse are skipped; a broken custom level should not take down the
// campaign.
func (l *Loader) LoadAll() ([]Def, error) {
	var defs []Def

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		def, err := l.LoadFile(path)
		if err != nil {
			return nil // Skip invalid files
		}
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	return defs, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Def{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	var def Def
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Def{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if def.ID == "" {
		return Def{}, fmt.Errorf("level file %s: missing id", path)
	}
	if def.Mode == "" {
		def.Mode = "skate"
	}
	if def.Layout.Length <= 0 {
		def.Layout.Length = 4000
	}
	if def.Layout.ObstacleFrequency <= 0 {
		def.Layout.ObstacleFrequency = 1
	}
	if def.Layout.CollectibleFrequency <= 0 {
		def.Layout.CollectibleFrequency = 1
	}

	return def, nil
}

// LoadByID loads a specific custom level by ID.
func (l *Loader) LoadByID(id string) (Def, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Def{}, err
	}
	for _, d := range defs {
		if d.ID == id {
			return d, nil
		}
	}
	return Def{}, fmt.Errorf("level %q not found under %s", id, l.Root)
}
