package config

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/planner/internal/timeutil"
)

var (
	minGridInterval = 5
	maxGridInterval = 240

	minReminderInterval = 1 * time.Second
	maxReminderInterval = 10 * time.Minute

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateGrid(); err != nil {
		return err
	}

	if !IsHexColor(c.Sessions.DefaultColor) {
		return errInvalidColor.Fmt("default session color", c.Sessions.DefaultColor)
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	return c.validateReminders()
}

// IsHexColor reports whether s is a #RGB or #RRGGBB colour.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

func (c *Config) validateGrid() error {
	start, err := timeutil.ParseClock(c.Grid.Start)
	if err != nil {
		return errInvalidGridTime.Fmt("start", c.Grid.Start)
	}

	end, err := timeutil.ParseClock(c.Grid.End)
	if err != nil {
		return errInvalidGridTime.Fmt("end", c.Grid.End)
	}

	if start >= end {
		return errInvalidGridRange.Fmt(c.Grid.Start, c.Grid.End)
	}

	if c.Grid.Interval < minGridInterval || c.Grid.Interval > maxGridInterval {
		return errInvalidGridInterval.Fmt(minGridInterval, maxGridInterval)
	}

	if len(timeutil.GenerateSlots(start, end, c.Grid.Interval)) == 0 {
		return errEmptyGrid.Fmt(c.Grid.Start, c.Grid.End, c.Grid.Interval)
	}

	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendBolt:
		return nil
	default:
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}
}

func (c *Config) validateReminders() error {
	if c.Reminders.Mode != ModeWindow && c.Reminders.Mode != ModeCatchUp {
		return errUnknownMode.Fmt(c.Reminders.Mode)
	}

	if c.Reminders.Interval < minReminderInterval ||
		c.Reminders.Interval > maxReminderInterval {
		return errInvalidReminderInterval.Fmt(
			minReminderInterval,
			maxReminderInterval,
		)
	}

	if c.Reminders.Sound != "" {
		ext := strings.ToLower(filepath.Ext(c.Reminders.Sound))
		if !slices.Contains(validSoundExts, ext) {
			return errInvalidSoundFormat.Fmt(c.Reminders.Sound)
		}
	}

	return nil
}
