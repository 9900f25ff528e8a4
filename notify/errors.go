package notify

import "github.com/ayoisaiah/planner/internal/apperr"

var (
	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}

	errParseCmd = &apperr.Error{
		Message: "unable to parse reminder command %q",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound file %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file %s must be in mp3, ogg, flac, or wav format",
	}
)
