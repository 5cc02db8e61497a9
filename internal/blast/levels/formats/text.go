// Package formats provides pluggable grid file formats.
// Each format registers itself with the registry in init().
package formats

import (
	"github.com/vovakirdan/blastgrid/internal/blast/core"
	"github.com/vovakirdan/blastgrid/internal/registry"
)

// textFormat is the plain token grid: one row per line, tokens separated
// by whitespace.
type textFormat struct{}

func init() {
	registry.Register(textFormat{})
}

func (textFormat) Name() string { return "text" }

// Files without an extension are read as text.
func (textFormat) Extensions() []string { return []string{".txt", ".map", ""} }

func (textFormat) Decode(data []byte) (registry.Level, error) {
	g, err := core.ParseGrid(string(data))
	if err != nil {
		return registry.Level{}, err
	}
	return registry.Level{Grid: g}, nil
}

func (textFormat) Encode(lvl registry.Level) ([]byte, error) {
	return []byte(core.FormatGrid(lvl.Grid)), nil
}
