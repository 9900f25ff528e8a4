package schedule

import "github.com/ayoisaiah/planner/internal/apperr"

var (
	// ErrValidation is returned when a required session field is empty or an
	// entry cannot be placed on the grid.
	ErrValidation = &apperr.Error{
		Message: "%s",
	}

	// ErrNotFound is returned for ids that are not in the store.
	ErrNotFound = &apperr.Error{
		Message: "session %s not found (it may have been deleted)",
	}

	// ErrAmbiguousID is returned when an id prefix matches several sessions.
	ErrAmbiguousID = &apperr.Error{
		Message: "%q matches %d sessions, use a longer prefix",
	}

	// ErrSlotIndex is returned for slot indices outside the grid.
	ErrSlotIndex = &apperr.Error{
		Message: "slot %d is outside the grid (0-%d)",
	}

	// ErrNotInSlot is returned when removing a block the session does not
	// occupy.
	ErrNotInSlot = &apperr.Error{
		Message: "session %s does not occupy slot %s",
	}

	// ErrPersist is returned when a mutation was applied in memory but could
	// not be saved.
	ErrPersist = &apperr.Error{
		Message: "changes may not survive a restart",
	}

	errUnknownAction = &apperr.Error{
		Message: "unknown action: %s",
	}
)
