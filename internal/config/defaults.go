package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/fishgrab.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			DBPath: "~/.fishgrab/runs.db",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Display: DisplayConfig{
			ASCIIGlyphs: false,
			BeadWidth:   2,
			Bell:        true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.fishgrab/fishgrab.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
