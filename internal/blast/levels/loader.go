// Package levels reads and writes grid files.
// Files are routed to a format by extension through the registry.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
	"github.com/vovakirdan/blastgrid/internal/registry"

	_ "github.com/vovakirdan/blastgrid/internal/blast/levels/formats" // Register built-in formats
)

// Level is a loaded grid file.
type Level struct {
	registry.Level
	FilePath string
	Format   string
}

// Loader reads and writes grid files.
type Loader struct {
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// NewLoader creates a loader that creates files and directories with the
// given permissions.
func NewLoader(dirPerm, filePerm os.FileMode) *Loader {
	return &Loader{DirPerm: dirPerm, FilePerm: filePerm}
}

// LoadFile loads a single grid file.
func (l *Loader) LoadFile(path string) (Level, error) {
	f, err := registry.ForPath(path)
	if err != nil {
		return Level{}, fmt.Errorf("loading %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := f.Decode(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if parsed.Name == "" {
		base := filepath.Base(path)
		parsed.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Level{
		Level:    parsed,
		FilePath: path,
		Format:   f.Name(),
	}, nil
}

// WriteFile encodes lvl in the format chosen by the extension of path.
// The default target of lvl is kept for formats that store one.
func (l *Loader) WriteFile(path string, lvl registry.Level) error {
	f, err := registry.ForPath(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	data, err := f.Encode(lvl)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return l.write(path, data)
}

// WriteError writes "ERROR: " and the message of err to path, replacing
// any previous content.
func (l *Loader) WriteError(path string, err error) error {
	return l.write(path, []byte("ERROR: "+err.Error()))
}

func (l *Loader) write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, l.DirPerm); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, l.FilePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// OutputPath returns where the result for input is written: the input path
// nested under outDir.
func OutputPath(outDir, input string) string {
	return filepath.Join(outDir, input)
}

// Detonate runs one turn on a copy of the loaded grid.
// The loaded level is left untouched.
func (lvl Level) Detonate(target core.Coord) (core.TurnResult, error) {
	return core.ExecuteTurn(lvl.Grid.Clone(), target)
}
