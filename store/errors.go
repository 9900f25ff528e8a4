package store

import "github.com/ayoisaiah/planner/internal/apperr"

var (
	// ErrRead is returned when the stored sessions cannot be read or parsed.
	ErrRead = &apperr.Error{
		Message: "unable to read sessions from %s",
	}

	// ErrWrite is returned when the sessions cannot be written.
	ErrWrite = &apperr.Error{
		Message: "unable to save sessions to %s",
	}

	// ErrPlannerRunning is returned when the bolt file is locked by another
	// process.
	ErrPlannerRunning = &apperr.Error{
		Message: "is planner already running? Only one instance can use %s at a time",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %s",
	}
)
