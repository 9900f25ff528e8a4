package config

import "github.com/ayoisaiah/planner/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s must be a valid hex color code (e.g. #AED6F1), got %s",
	}

	errInvalidGridTime = &apperr.Error{
		Message: "grid %s must be a time in HH:MM format, got %q",
	}

	errInvalidGridRange = &apperr.Error{
		Message: "grid start (%s) must be earlier than grid end (%s)",
	}

	errInvalidGridInterval = &apperr.Error{
		Message: "grid interval must be between %d and %d minutes",
	}

	errEmptyGrid = &apperr.Error{
		Message: "the grid from %s to %s has no room for a %d minute slot",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %s (must be json or bolt)",
	}

	errUnknownMode = &apperr.Error{
		Message: "unknown reminder mode: %s (must be window or catch-up)",
	}

	errInvalidReminderInterval = &apperr.Error{
		Message: "reminder interval must be between %v and %v",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid reminder interval %q",
	}
)
