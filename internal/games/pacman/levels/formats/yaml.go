// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// Layout is an ASCII block, one row per line.
type YAMLLevel struct {
	Name     string            `yaml:"name"`
	Layout   string            `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file. fallbackName is used when the file
// carries no name.
func ParseYAML(fallbackName string, data []byte) (*maze.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	name := yl.Name
	if name == "" {
		name = fallbackName
	}

	rows := strings.Split(strings.TrimRight(yl.Layout, "\n"), "\n")
	return maze.ParseRows(name, rows)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".csv"}
}
