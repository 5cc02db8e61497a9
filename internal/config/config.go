// Package config provides YAML-based configuration loading for blastgrid.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for the blastgrid CLI.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	History HistoryConfig `yaml:"history"`
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
}

// LogConfig defines logger parameters.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}

// HistoryConfig defines the run-history database.
type HistoryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	DBPath      string `yaml:"db_path"`
	RecentLimit int    `yaml:"recent_limit"` // Rows shown by `history`
}

// RenderConfig defines grid preview styling.
type RenderConfig struct {
	Color     bool   `yaml:"color"`
	Theme     string `yaml:"theme"`      // default, mono
	CellWidth int    `yaml:"cell_width"` // Columns per cell in styled output
}

// OutputConfig defines permissions for generated files.
type OutputConfig struct {
	DirPerm  os.FileMode `yaml:"dir_perm"`
	FilePerm os.FileMode `yaml:"file_perm"`
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: invalid log level %q", c.Log.Level)
	}
	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("config: history enabled but db_path is empty")
	}
	if c.History.RecentLimit <= 0 {
		return fmt.Errorf("config: history.recent_limit must be positive, got %d", c.History.RecentLimit)
	}
	if c.Render.CellWidth <= 0 {
		return fmt.Errorf("config: render.cell_width must be positive, got %d", c.Render.CellWidth)
	}
	if c.Output.DirPerm == 0 || c.Output.FilePerm == 0 {
		return fmt.Errorf("config: output permissions must be non-zero")
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
