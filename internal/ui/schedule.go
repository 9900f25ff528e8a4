package ui

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/planner/internal/config"
	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/timeutil"
)

// TwentyFourHour selects the clock format used by Clock.
var TwentyFourHour = true

// Clock formats minutes since midnight for display.
func Clock(mins int) string {
	if TwentyFourHour {
		return timeutil.FormatMin(mins)
	}

	hrs, m := timeutil.MinsToHoursAndMins(mins)

	suffix := "AM"
	if hrs%24 >= 12 {
		suffix = "PM"
	}

	hrs %= 12
	if hrs == 0 {
		hrs = 12
	}

	return fmt.Sprintf("%d:%02d %s", hrs, m, suffix)
}

// SlotLabel formats a slot as "start-end".
func SlotLabel(slot timeutil.Slot) string {
	return Clock(slot.Start) + "-" + Clock(slot.End)
}

// Swatch renders text in the session's colour. Anything other than a #RGB or
// #RRGGBB colour leaves the text plain.
func Swatch(hex, text string) string {
	rgb, ok := parseHex(hex)
	if !ok {
		return text
	}

	return rgb.Sprint(text)
}

func parseHex(hex string) (pterm.RGB, bool) {
	if !config.IsHexColor(hex) {
		return pterm.RGB{}, false
	}

	digits := hex[1:]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return pterm.RGB{}, false
	}

	return pterm.NewRGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// ShortID returns the first eight characters of a session id.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}

	return id[:8]
}

// SortSessions orders sessions by weekday, then start time, then subject.
// Sessions with unknown days or unparseable times sort last.
func SortSessions(sessions []models.Session) {
	key := func(s *models.Session) (int, int) {
		day, ok := timeutil.DayIndex(s.Day)
		if !ok {
			day = len(timeutil.Weekdays)
		}

		start, err := timeutil.ParseClock(s.Start)
		if err != nil {
			start = -1
		}

		return day, start
	}

	slices.SortStableFunc(sessions, func(a, b models.Session) int {
		ad, as := key(&a)
		bd, bs := key(&b)

		if ad != bd {
			return ad - bd
		}

		if as != bs {
			return as - bs
		}

		switch {
		case natural.Less(a.Subject, b.Subject):
			return -1
		case natural.Less(b.Subject, a.Subject):
			return 1
		default:
			return 0
		}
	})
}

// PrintSessions writes one row per session.
func PrintSessions(sessions []models.Session, writer io.Writer) {
	sorted := slices.Clone(sessions)
	SortSessions(sorted)

	data := [][]string{
		{"ID", "SUBJECT", "DAY", "START", "END", "COLOR"},
	}

	for i := range sorted {
		s := &sorted[i]

		data = append(data, []string{
			ShortID(s.ID),
			Swatch(s.Color, s.Subject),
			s.Day,
			s.Start,
			s.End,
			s.Color,
		})
	}

	PrintTable(data, writer)
}

// PrintGrid writes the weekly grid with one row per slot. Each cell lists
// the subjects occupying it. When days is non-empty only those columns are
// shown.
func PrintGrid(
	slots []timeutil.Slot,
	cell func(slot, day int) []models.Session,
	days []string,
	writer io.Writer,
) {
	var columns []int

	for i, d := range timeutil.Weekdays {
		if len(days) == 0 || slices.Contains(days, d) {
			columns = append(columns, i)
		}
	}

	header := []string{"TIME"}
	for _, c := range columns {
		header = append(header, strings.ToUpper(timeutil.Weekdays[c][:3]))
	}

	data := [][]string{header}

	for i, slot := range slots {
		row := []string{SlotLabel(slot)}

		for _, c := range columns {
			var names []string

			for _, s := range cell(i, c) {
				names = append(names, Swatch(s.Color, s.Subject))
			}

			row = append(row, strings.Join(names, ", "))
		}

		data = append(data, row)
	}

	PrintTable(data, writer)
}
