// Package models defines the session records shared by the store, the
// schedule engine and the reminder tracker.
package models

import (
	"fmt"

	"github.com/ayoisaiah/planner/internal/timeutil"
)

// DefaultColor is applied when a session is added without a colour.
const DefaultColor = "#AED6F1"

// Session is a study block as persisted. Day, Start and End are kept as
// entered so that records written by other tools survive a load/save cycle
// untouched; use Interval to obtain the validated form.
type Session struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Color   string `json:"color"`
}

// Interval is the validated form of a session's placement.
type Interval struct {
	DayIndex int
	Start    int
	End      int
}

// Interval parses the day and clock fields of the session.
func (s *Session) Interval() (Interval, error) {
	day, ok := timeutil.DayIndex(s.Day)
	if !ok {
		return Interval{}, fmt.Errorf("unknown day %q", s.Day)
	}

	start, err := timeutil.ParseClock(s.Start)
	if err != nil {
		return Interval{}, fmt.Errorf("start: %w", err)
	}

	end, err := timeutil.ParseClock(s.End)
	if err != nil {
		return Interval{}, fmt.Errorf("end: %w", err)
	}

	return Interval{
		DayIndex: day,
		Start:    start,
		End:      end,
	}, nil
}

// Bounds parses only the clock fields of the session.
func (s *Session) Bounds() (start, end int, err error) {
	start, err = timeutil.ParseClock(s.Start)
	if err != nil {
		return 0, 0, err
	}

	end, err = timeutil.ParseClock(s.End)
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}

// Remainder returns a copy of the session covering [start, end) under a new
// id.
func (s *Session) Remainder(id string, start, end int) Session {
	return Session{
		ID:      id,
		Subject: s.Subject,
		Day:     s.Day,
		Start:   timeutil.FormatMin(start),
		End:     timeutil.FormatMin(end),
		Color:   s.Color,
	}
}
