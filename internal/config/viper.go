package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/osutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyGridStart         = "grid.start"
	keyGridEnd           = "grid.end"
	keyGridInterval      = "grid.interval"
	keyDefaultColor      = "sessions.default_color"
	keyStorageBackend    = "storage.backend"
	keyStoragePath       = "storage.path"
	keyRemindersEnabled  = "reminders.enabled"
	keyRemindersInterval = "reminders.interval"
	keyRemindersMode     = "reminders.mode"
	keyRemindersSound    = "reminders.sound"
	keyRemindersCmd      = "reminders.cmd"
	keyTwentyFourHour    = "display.24hr_clock"
	keyDarkTheme         = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper. A
// config file holding the defaults is written if none exists at configPath.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		c.Path = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) && !isConfigNotFound(err) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// isConfigNotFound matches the error viper returns for a missing file.
func isConfigNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	var pathErr *fs.PathError

	return errors.As(err, &notFound) || errors.As(err, &pathErr)
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyGridStart, "15:30")
	v.SetDefault(keyGridEnd, "22:00")
	v.SetDefault(keyGridInterval, 30)
	v.SetDefault(keyDefaultColor, models.DefaultColor)
	v.SetDefault(keyStorageBackend, BackendJSON)
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyRemindersEnabled, true)
	v.SetDefault(keyRemindersInterval, "60s")
	v.SetDefault(keyRemindersMode, ModeWindow)
	v.SetDefault(keyRemindersSound, "")
	v.SetDefault(keyRemindersCmd, "")
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	path := c.Path

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.Path = path

	return nil
}
