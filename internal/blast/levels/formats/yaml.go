package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
	"github.com/vovakirdan/blastgrid/internal/registry"
)

// YAMLLevel represents the YAML structure for a grid file.
type YAMLLevel struct {
	Name   string      `yaml:"name,omitempty"`
	Rows   []string    `yaml:"rows"`
	Target *YAMLTarget `yaml:"target,omitempty"`
}

// YAMLTarget is the default detonation coordinate.
type YAMLTarget struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type yamlFormat struct{}

func init() {
	registry.Register(yamlFormat{})
}

func (yamlFormat) Name() string { return "yaml" }

func (yamlFormat) Extensions() []string { return []string{".yaml", ".yml"} }

// Decode parses a YAML grid. Each entry of rows uses the text token grammar.
func (yamlFormat) Decode(data []byte) (registry.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return registry.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	g, err := core.ParseGrid(strings.Join(yl.Rows, "\n"))
	if err != nil {
		return registry.Level{}, err
	}

	lvl := registry.Level{Name: yl.Name, Grid: g}
	if yl.Target != nil {
		target := core.C(yl.Target.X, yl.Target.Y)
		lvl.Target = &target
	}
	return lvl, nil
}

func (yamlFormat) Encode(lvl registry.Level) ([]byte, error) {
	yl := YAMLLevel{Name: lvl.Name}
	for y := 0; y < lvl.Grid.H; y++ {
		tokens := make([]string, 0, lvl.Grid.W)
		for _, it := range lvl.Grid.Row(y) {
			tokens = append(tokens, it.String())
		}
		yl.Rows = append(yl.Rows, strings.Join(tokens, " "))
	}
	if lvl.Target != nil {
		yl.Target = &YAMLTarget{X: lvl.Target.X, Y: lvl.Target.Y}
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
