// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/planner/internal/timeutil"
)

type (
	// Config holds all configuration settings
	Config struct {
		Sessions  SessionsConfig  `mapstructure:"sessions"`
		Grid      GridConfig      `mapstructure:"grid"`
		Storage   StorageConfig   `mapstructure:"storage"`
		Reminders ReminderConfig  `mapstructure:"reminders"`
		Display   DisplayConfig   `mapstructure:"display"`
		Path      string          `mapstructure:"-"`
	}

	// GridConfig holds the inputs for slot generation
	GridConfig struct {
		Start    string `mapstructure:"start"`
		End      string `mapstructure:"end"`
		Interval int    `mapstructure:"interval"`
	}

	// SessionsConfig holds session-related settings
	SessionsConfig struct {
		DefaultColor string `mapstructure:"default_color"`
	}

	// StorageConfig selects the persistence backend
	StorageConfig struct {
		Backend string `mapstructure:"backend"`
		Path    string `mapstructure:"path"`
	}

	// ReminderConfig holds reminder settings
	ReminderConfig struct {
		Mode     string        `mapstructure:"mode"`
		Sound    string        `mapstructure:"sound"`
		Cmd      string        `mapstructure:"cmd"`
		Interval time.Duration `mapstructure:"interval"`
		Enabled  bool          `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		TwentyFourHour bool `mapstructure:"24hr_clock"`
		DarkTheme      bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	BackendJSON = "json"
	BackendBolt = "bolt"
)

const (
	ModeWindow  = "window"
	ModeCatchUp = "catch-up"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Slots generates the grid slots described by the config.
func (c *Config) Slots() ([]timeutil.Slot, error) {
	start, err := timeutil.ParseClock(c.Grid.Start)
	if err != nil {
		return nil, errInvalidGridTime.Fmt("start", c.Grid.Start)
	}

	end, err := timeutil.ParseClock(c.Grid.End)
	if err != nil {
		return nil, errInvalidGridTime.Fmt("end", c.Grid.End)
	}

	return timeutil.GenerateSlots(start, end, c.Grid.Interval), nil
}
