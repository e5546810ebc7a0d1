package combat

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// tableFile is the top-level YAML structure for combat table documents.
type tableFile struct {
	Bands []Band `yaml:"bands"`
}

// LoadTableFromFile reads a combat table YAML document.
//
// Precondition: path must point to a valid YAML table file.
// Postcondition: returns a validated Table with bands ordered by Min, or a
// non-nil error.
func LoadTableFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading combat table file %s: %w", path, err)
	}
	t, err := LoadTableFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("combat table file %s: %w", path, err)
	}
	return t, nil
}

// LoadTableFromBytes parses a combat table from YAML bytes.
func LoadTableFromBytes(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing combat table YAML: %w", err)
	}

	for i, b := range file.Bands {
		if b.Min > b.Max {
			return nil, fmt.Errorf("combat table band %d: min %d exceeds max %d", i, b.Min, b.Max)
		}
		for j, r := range b.Rows {
			if r.Roll < 0 || r.Roll > 9 {
				return nil, fmt.Errorf("combat table band %d row %d: roll %d outside 0-9 die domain", i, j, r.Roll)
			}
			if r.PlayerLoss < 0 || r.EnemyLoss < 0 {
				return nil, fmt.Errorf("combat table band %d row %d: losses must not be negative", i, j)
			}
		}
	}

	sort.SliceStable(file.Bands, func(i, j int) bool {
		return file.Bands[i].Min < file.Bands[j].Min
	})
	return &Table{Bands: file.Bands}, nil
}
