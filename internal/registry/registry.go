// Package registry provides a global registry for grid file formats.
// Formats register themselves in init() functions, allowing the loader
// to route files by extension without hardcoded dependencies.
package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
)

// Level is a parsed grid file: the grid plus optional metadata
// that some formats carry.
type Level struct {
	Name   string
	Grid   *core.Grid
	Target *core.Coord // Default detonation target, nil if the file has none
}

// Format is the interface every grid file format must implement.
type Format interface {
	// Name returns a unique identifier for this format (e.g., "text", "yaml").
	Name() string

	// Extensions returns the lower-case file extensions handled, including
	// the leading dot. The empty string claims files without an extension.
	Extensions() []string

	// Decode parses raw file contents into a level.
	Decode(data []byte) (Level, error)

	// Encode serializes a level back to file contents.
	Encode(lvl Level) ([]byte, error)
}

// FormatInfo contains metadata about a registered format.
type FormatInfo struct {
	Name       string
	Extensions []string
}

var (
	formats    = make(map[string]Format)
	extensions = make(map[string]string) // extension -> format name
	mu         sync.RWMutex
)

// Register adds a format to the registry.
// Typically called from a format's init() function.
// Panics if the name or any extension is already registered.
func Register(f Format) {
	mu.Lock()
	defer mu.Unlock()

	name := f.Name()
	if _, exists := formats[name]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", name))
	}
	for _, ext := range f.Extensions() {
		if owner, exists := extensions[ext]; exists {
			panic(fmt.Sprintf("registry: extension %q already registered by %q", ext, owner))
		}
	}

	formats[name] = f
	for _, ext := range f.Extensions() {
		extensions[ext] = name
	}
}

// List returns information about all registered formats, sorted by name.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(formats))
	for name, f := range formats {
		exts := append([]string(nil), f.Extensions()...)
		sort.Strings(exts)
		result = append(result, FormatInfo{
			Name:       name,
			Extensions: exts,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns a format by its name.
func Get(name string) (Format, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown format %q", name)
	}
	return f, nil
}

// ForPath returns the format registered for the extension of path.
func ForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	mu.RLock()
	defer mu.RUnlock()

	name, ok := extensions[ext]
	if !ok {
		return nil, fmt.Errorf("registry: unsupported extension %q", ext)
	}
	return formats[name], nil
}

// Exists checks if a format with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := formats[name]
	return ok
}
