package app

import "github.com/ayoisaiah/planner/internal/apperr"

var (
	errMissingID = &apperr.Error{
		Message: "a session id is required",
	}

	errSlotArg = &apperr.Error{
		Message: "slot must be a grid slot index (see 'planner slots'), got %q",
	}

	errInvalidColor = &apperr.Error{
		Message: "color %q is not a hex value such as #AED6F1",
	}

	errInvalidAt = &apperr.Error{
		Message: "unable to parse --at value %q",
	}

	errRemindersDisabled = &apperr.Error{
		Message: "reminders are disabled (reminders.enabled or --no-notify)",
	}

	errUnreadableTimes = &apperr.Error{
		Message: "session %s has unreadable times (%q-%q), nothing removed",
	}

	errPaths = &apperr.Error{
		Message: "unable to resolve the planner directories",
	}
)
