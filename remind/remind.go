// Package remind decides when a session's reminders are due. It samples the
// clock on a fixed cadence and fires each threshold at most once per session
// for the lifetime of the process.
package remind

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/timeutil"
)

// Threshold is a lead time before a session's start, in minutes.
type Threshold int

const (
	Threshold60    Threshold = 60
	Threshold30    Threshold = 30
	ThresholdStart Threshold = 0
)

// Thresholds lists the reminder thresholds in priority order.
var Thresholds = []Threshold{Threshold60, Threshold30, ThresholdStart}

// Label returns the threshold name used in events, e.g. "30min".
func (t Threshold) Label() string {
	switch t {
	case Threshold60:
		return "60min"
	case Threshold30:
		return "30min"
	default:
		return "0min"
	}
}

// window returns the inclusive range of minutes-until-start in which the
// threshold fires.
func (t Threshold) window() (lo, hi int) {
	if t == ThresholdStart {
		return 0, 1
	}

	return int(t) - 1, int(t) + 1
}

func (t Threshold) contains(until int) bool {
	lo, hi := t.window()

	return until >= lo && until <= hi
}

// Mode selects how thresholds are matched against the sampled clock.
type Mode string

const (
	// ModeWindow fires a threshold only while minutes-until-start is inside
	// its window. A tick that skips the whole window misses the reminder.
	ModeWindow Mode = "window"
	// ModeCatchUp fires the tightest threshold whose window has been
	// reached and retires every looser one, so each threshold is delivered
	// or superseded exactly once whatever the tick cadence.
	ModeCatchUp Mode = "catch-up"
)

// Event is a reminder that has just become due.
type Event struct {
	At        time.Time `json:"at"`
	SessionID string    `json:"session_id"`
	Subject   string    `json:"subject"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Threshold Threshold `json:"threshold"`
}

// Label returns the threshold label of the event.
func (e Event) Label() string {
	return e.Threshold.Label()
}

// Tracker remembers which thresholds have fired for each session id. The
// state is never persisted.
type Tracker struct {
	sent map[string]map[Threshold]bool
	now  func() time.Time
	mode Mode
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithMode sets the threshold matching mode.
func WithMode(mode Mode) Option {
	return func(t *Tracker) {
		t.mode = mode
	}
}

// NewTracker returns a tracker in ModeWindow.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		sent: make(map[string]map[Threshold]bool),
		now:  time.Now,
		mode: ModeWindow,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Sent reports whether th has already fired for the session id.
func (t *Tracker) Sent(id string, th Threshold) bool {
	return t.sent[id][th]
}

// Check evaluates every session scheduled for today at now and returns the
// reminders that became due, at most one per session. Sessions for other
// days and sessions whose start cannot be parsed are skipped.
func (t *Tracker) Check(now time.Time, sessions []models.Session) []Event {
	today := timeutil.WeekdayName(now)
	current := timeutil.MinutesSinceMidnight(now)

	var events []Event

	for i := range sessions {
		s := &sessions[i]

		if s.Day != today {
			continue
		}

		start, err := timeutil.ParseClock(s.Start)
		if err != nil {
			slog.Debug(
				"skipping reminder for unparseable session",
				slog.String("id", s.ID),
				slog.Any("error", err),
			)

			continue
		}

		until := start - current

		var (
			th  Threshold
			due bool
		)

		if t.mode == ModeCatchUp {
			th, due = t.catchUp(s.ID, until)
		} else {
			th, due = t.inWindow(s.ID, until)
		}

		if !due {
			continue
		}

		t.markSent(s.ID, th)

		events = append(events, Event{
			At:        now,
			SessionID: s.ID,
			Subject:   s.Subject,
			Start:     s.Start,
			End:       s.End,
			Threshold: th,
		})
	}

	return events
}

func (t *Tracker) inWindow(id string, until int) (Threshold, bool) {
	for _, th := range Thresholds {
		if th.contains(until) && !t.Sent(id, th) {
			return th, true
		}
	}

	return 0, false
}

func (t *Tracker) catchUp(id string, until int) (Threshold, bool) {
	_, hi := Threshold60.window()
	if until < 0 || until > hi {
		return 0, false
	}

	// tightest threshold whose window has been reached
	tightest := Threshold60

	for _, th := range Thresholds {
		if _, hi := th.window(); until <= hi {
			tightest = th
		}
	}

	if t.Sent(id, tightest) {
		return 0, false
	}

	for _, th := range Thresholds {
		if th > tightest {
			t.markSent(id, th)
		}
	}

	return tightest, true
}

func (t *Tracker) markSent(id string, th Threshold) {
	if t.sent[id] == nil {
		t.sent[id] = make(map[Threshold]bool)
	}

	t.sent[id][th] = true
}

// Source returns the current session collection.
type Source func() ([]models.Session, error)

// Handler receives fired reminders.
type Handler func(Event)

// Tick samples the clock once, evaluates the sessions from src and passes
// each due reminder to handle.
func (t *Tracker) Tick(src Source, handle Handler) error {
	sessions, err := src()
	if err != nil {
		return err
	}

	for _, ev := range t.Check(t.now(), sessions) {
		slog.Info(
			"reminder fired",
			slog.String("id", ev.SessionID),
			slog.String("subject", ev.Subject),
			slog.String("threshold", ev.Label()),
		)

		handle(ev)
	}

	return nil
}

// Run ticks immediately and then once per interval until ctx is done. The
// timer is re-armed only after a tick completes, so ticks never overlap. A
// failure to read the sessions is logged and the tick is skipped.
func (t *Tracker) Run(
	ctx context.Context,
	interval time.Duration,
	src Source,
	handle Handler,
) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		if err := t.Tick(src, handle); err != nil {
			slog.Warn("reminder tick skipped", slog.Any("error", err))
		}

		timer.Reset(interval)
	}
}

// Pending is a session later today.
type Pending struct {
	Session      models.Session
	MinutesUntil int
}

// Upcoming returns today's sessions that have not started yet at now,
// soonest first.
func Upcoming(now time.Time, sessions []models.Session) []Pending {
	today := timeutil.WeekdayName(now)
	current := timeutil.MinutesSinceMidnight(now)

	var upcoming []Pending

	for i := range sessions {
		if sessions[i].Day != today {
			continue
		}

		start, err := timeutil.ParseClock(sessions[i].Start)
		if err != nil || start < current {
			continue
		}

		upcoming = append(upcoming, Pending{
			Session:      sessions[i],
			MinutesUntil: start - current,
		})
	}

	slices.SortStableFunc(upcoming, func(a, b Pending) int {
		return a.MinutesUntil - b.MinutesUntil
	})

	return upcoming
}
