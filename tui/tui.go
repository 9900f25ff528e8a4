// Package tui is the interactive weekly grid. It renders the planner's
// sessions, turns key presses into schedule commands and runs the reminder
// check on its own event loop.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/planner/internal/timeutil"
	"github.com/ayoisaiah/planner/notify"
	"github.com/ayoisaiah/planner/remind"
	"github.com/ayoisaiah/planner/schedule"
)

// reminderTickMsg carries the sampled clock for a reminder check.
type reminderTickMsg time.Time

// notifiedMsg reports the result of delivering a reminder.
type notifiedMsg struct {
	err   error
	event remind.Event
}

// Model is the bubbletea model for the grid.
type Model struct {
	planner  *schedule.Planner
	tracker  *remind.Tracker
	notifier notify.Notifier
	now      func() time.Time
	form     *huh.Form
	entry    *entry
	status   string
	styles   styles
	help     help.Model
	interval time.Duration
	slot     int
	day      int
	pick     int
	width    int
}

// Option configures a Model.
type Option func(*Model)

// WithReminders enables the reminder check every interval. Due reminders
// are passed to n.
func WithReminders(
	tracker *remind.Tracker,
	n notify.Notifier,
	interval time.Duration,
) Option {
	return func(m *Model) {
		m.tracker = tracker
		m.notifier = n
		m.interval = interval
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithDarkTheme selects the palette for a dark terminal background.
func WithDarkTheme(dark bool) Option {
	return func(m *Model) {
		m.styles = newStyles(dark)
	}
}

// New returns a grid model over p with the cursor on today's column.
func New(p *schedule.Planner, opts ...Option) *Model {
	m := &Model{
		planner: p,
		now:     time.Now,
		styles:  newStyles(true),
		help:    help.New(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.day, _ = timeutil.DayIndex(timeutil.WeekdayName(m.now()))

	return m
}

func (m *Model) Init() tea.Cmd {
	if m.tracker == nil {
		return nil
	}

	return func() tea.Msg {
		return reminderTickMsg(m.now())
	}
}

// scheduleReminder arms the next reminder check. It is called only after
// the previous check has run, so checks never overlap.
func (m *Model) scheduleReminder() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return reminderTickMsg(m.now())
	})
}

func (m *Model) deliver(ev remind.Event) tea.Cmd {
	n := m.notifier

	return func() tea.Msg {
		return notifiedMsg{event: ev, err: n.Notify(ev)}
	}
}

// Run starts the program and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}
