// Package cli implements the command-line workflow: loading check files,
// running them and rendering reports.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/parley-dev/parley/pkg/adapters/httpapi"
)

// CheckFile is a YAML document describing a batch of checks.
type CheckFile struct {
	Checks []CheckEntry `yaml:"checks"`
}

// CheckEntry describes one comparison. Terms come from the scenario registry
// or as inline structural specs; the zero bounds fall back to the engine
// defaults.
type CheckEntry struct {
	Name          string            `yaml:"name"`
	Model         string            `yaml:"model"`
	Kind          string            `yaml:"kind"`
	LeftScenario  string            `yaml:"left_scenario"`
	RightScenario string            `yaml:"right_scenario"`
	Left          *httpapi.TermSpec `yaml:"left"`
	Right         *httpapi.TermSpec `yaml:"right"`
	Depth         int               `yaml:"depth"`
	MaxStates     int               `yaml:"max_states"`
	Alphabet      []string          `yaml:"alphabet"`
}

// LoadCheckFile reads and validates a YAML check file.
func LoadCheckFile(path string) (*CheckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read check file: %w", err)
	}
	var file CheckFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse check file: %w", err)
	}
	if len(file.Checks) == 0 {
		return nil, fmt.Errorf("check file %s contains no checks", path)
	}
	for i, c := range file.Checks {
		if c.Name == "" {
			return nil, fmt.Errorf("check %d has no name", i)
		}
		if c.Left == nil && c.LeftScenario == "" {
			return nil, fmt.Errorf("check %q has no left term", c.Name)
		}
		if c.Right == nil && c.RightScenario == "" {
			return nil, fmt.Errorf("check %q has no right term", c.Name)
		}
	}
	return &file, nil
}
