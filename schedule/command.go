package schedule

import (
	"github.com/ayoisaiah/planner/internal/timeutil"
)

// Action names an edit requested by the presentation layer.
type Action string

const (
	ActionDelete     Action = "delete"
	ActionSplitBlock Action = "splitBlock"
)

// Command is a message emitted by the presentation layer and consumed by
// Dispatch. SlotIndex is ignored for ActionDelete.
type Command struct {
	Action    Action `json:"action"`
	SessionID string `json:"session_id"`
	SlotIndex int    `json:"slot_index"`
}

// Dispatch applies cmd to the store.
func (p *Planner) Dispatch(cmd Command) error {
	switch cmd.Action {
	case ActionDelete:
		return p.Remove(cmd.SessionID)
	case ActionSplitBlock:
		return p.RemoveBlock(cmd.SessionID, cmd.SlotIndex)
	default:
		return errUnknownAction.Fmt(cmd.Action)
	}
}

// CheckEntry validates user input for a new session before it reaches Add:
// the day must be one of timeutil.Weekdays and the clock fields must parse
// with start before end.
func CheckEntry(day, start, end string) error {
	if _, ok := timeutil.DayIndex(day); !ok {
		return ErrValidation.Fmt("day must be one of Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday")
	}

	s, err := timeutil.ParseClock(start)
	if err != nil {
		return ErrValidation.Fmt("start: " + err.Error())
	}

	e, err := timeutil.ParseClock(end)
	if err != nil {
		return ErrValidation.Fmt("end: " + err.Error())
	}

	if s >= e {
		return ErrValidation.Fmt("start must be earlier than end")
	}

	return nil
}
