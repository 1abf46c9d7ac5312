// Package config provides YAML-based configuration loading for the Fish Grab
// platform: storage location, SSH server, display and logging settings.
// Game rules are fixed and not configurable.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all platform configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig defines where finished runs are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the SSH server settings for `fishgrab serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty = ~/.fishgrab/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// DisplayConfig defines how the board is drawn in the terminal.
type DisplayConfig struct {
	ASCIIGlyphs bool `yaml:"ascii_glyphs"`
	BeadWidth   int  `yaml:"bead_width"` // Terminal columns per cell
	Bell        bool `yaml:"bell"`       // Ring the bell on sound cues
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by play mode; serve logs to stderr
}

// Bead width limits.
const (
	MinBeadWidth = 1
	MaxBeadWidth = 4
)

// Validate checks the configuration for values the platform cannot use.
func (c Config) Validate() error {
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path is empty")
	}
	if c.SSH.Address == "" {
		return fmt.Errorf("config: ssh.address is empty")
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout)
	}
	if c.Display.BeadWidth < MinBeadWidth || c.Display.BeadWidth > MaxBeadWidth {
		return fmt.Errorf("config: display.bead_width must be in [%d, %d], got %d",
			MinBeadWidth, MaxBeadWidth, c.Display.BeadWidth)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
