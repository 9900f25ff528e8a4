// Package timeutil provides the planner's time representation: clock
// strings, minutes since midnight, weekdays and the fixed grid slots.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// Default grid: 15:30 to 22:00 in half-hour slots.
const (
	DefaultSlotStart    = 15*minutesInAnHour + 30
	DefaultSlotEnd      = 22 * minutesInAnHour
	DefaultSlotInterval = 30
)

var (
	errClockFormat = errors.New("expected a time in H:MM or HH:MM format")
	errClockValue  = errors.New("hours and minutes must be non-negative integers")
)

// Weekdays is the fixed, ordered enumeration of day names. Matching against
// it is exact and case-sensitive.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Slot is a half-open interval [Start, End) in minutes since midnight.
type Slot struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether the half-open interval [start, end) shares at
// least one minute with the slot.
func (s Slot) Overlaps(start, end int) bool {
	return start < s.End && end > s.Start
}

// Within reports whether [start, end) lies entirely inside the slot.
func (s Slot) Within(start, end int) bool {
	return start >= s.Start && end <= s.End
}

func (s Slot) String() string {
	return FormatMin(s.Start) + "-" + FormatMin(s.End)
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	return val / minutesInAnHour, val % minutesInAnHour
}

// FormatMin formats minutes since midnight as zero-padded HH:MM. Values past
// midnight are not wrapped (1500 is "25:00").
func FormatMin(total int) string {
	hrs, mins := MinsToHoursAndMins(total)

	return fmt.Sprintf("%02d:%02d", hrs, mins)
}

// ParseClock converts an H:MM or HH:MM string to minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, found := strings.Cut(s, ":")
	if !found || strings.Contains(mm, ":") {
		return 0, fmt.Errorf("%w: %q", errClockFormat, s)
	}

	hrs, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errClockFormat, s)
	}

	mins, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errClockFormat, s)
	}

	if hrs < 0 || mins < 0 {
		return 0, fmt.Errorf("%w: %q", errClockValue, s)
	}

	return hrs*minutesInAnHour + mins, nil
}

// GenerateSlots emits contiguous slots of width interval starting at start.
// Generation stops as soon as the next slot would end after end, so no
// partial slot is ever produced.
func GenerateSlots(start, end, interval int) []Slot {
	if interval <= 0 {
		return nil
	}

	var slots []Slot

	for current := start; current+interval <= end; current += interval {
		slots = append(slots, Slot{
			Start: current,
			End:   current + interval,
		})
	}

	return slots
}

// DefaultSlots returns the slots of the default grid.
func DefaultSlots() []Slot {
	return GenerateSlots(DefaultSlotStart, DefaultSlotEnd, DefaultSlotInterval)
}

// DayIndex returns the position of name in Weekdays.
func DayIndex(name string) (int, bool) {
	for i, d := range Weekdays {
		if d == name {
			return i, true
		}
	}

	return -1, false
}

// WeekdayName returns the Weekdays entry for t.
func WeekdayName(t time.Time) string {
	// time.Weekday starts the week on Sunday
	return Weekdays[(int(t.Weekday())+6)%7]
}

// MinutesSinceMidnight returns the wall-clock minute of t.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*minutesInAnHour + t.Minute()
}

// FromStr parses a natural-language date such as "monday 16:00" or
// "in 2 hours" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
