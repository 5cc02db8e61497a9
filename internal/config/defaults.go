package config

import (
	_ "embed"
)

//go:embed defaults/blastgrid.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/blastgrid.yaml and is used if the embedded file is unreadable.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Timestamps: false,
		},
		History: HistoryConfig{
			Enabled:     true,
			DBPath:      "~/.blastgrid/history.db",
			RecentLimit: 20,
		},
		Render: RenderConfig{
			Color:     true,
			Theme:     "default",
			CellWidth: 3,
		},
		Output: OutputConfig{
			DirPerm:  0o755,
			FilePerm: 0o644,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
