// Package schedule holds the in-memory session store and the engine that
// reconciles free-form sessions with the fixed slots of the weekly grid.
package schedule

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/timeutil"
	"github.com/ayoisaiah/planner/store"
)

const minIDPrefix = 4

// Planner owns the session collection. Every mutation is followed by a full
// save through the store. A Planner is not safe for concurrent use: all
// calls are expected to come from one event loop.
type Planner struct {
	db           store.DB
	newID        func() string
	defaultColor string
	sessions     []models.Session
	slots        []timeutil.Slot
}

// Option configures a Planner.
type Option func(*Planner)

// WithIDGenerator replaces the generator of fresh session ids.
func WithIDGenerator(fn func() string) Option {
	return func(p *Planner) {
		p.newID = fn
	}
}

// WithDefaultColor sets the colour used when a session is added without one.
func WithDefaultColor(color string) Option {
	return func(p *Planner) {
		p.defaultColor = color
	}
}

// WithSessions seeds the store without touching the database.
func WithSessions(sessions []models.Session) Option {
	return func(p *Planner) {
		p.sessions = slices.Clone(sessions)
	}
}

// New returns a planner over the given slots. The store starts empty; call
// Load to read the persisted sessions.
func New(db store.DB, slots []timeutil.Slot, opts ...Option) *Planner {
	p := &Planner{
		db:           db,
		slots:        slots,
		newID:        store.NewID,
		defaultColor: models.DefaultColor,
		sessions:     []models.Session{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Load replaces the store with the persisted sessions. On failure the store
// is left empty and the error is returned for the caller to report.
func (p *Planner) Load() error {
	sessions, err := p.db.Load()
	if err != nil {
		p.sessions = []models.Session{}

		return err
	}

	p.sessions = sessions

	return nil
}

// Sessions returns a copy of the store in insertion order.
func (p *Planner) Sessions() []models.Session {
	return slices.Clone(p.sessions)
}

// Slots returns the grid slots.
func (p *Planner) Slots() []timeutil.Slot {
	return p.slots
}

// Slot returns the slot at index i.
func (p *Planner) Slot(i int) (timeutil.Slot, error) {
	if i < 0 || i >= len(p.slots) {
		return timeutil.Slot{}, ErrSlotIndex.Fmt(i, len(p.slots)-1)
	}

	return p.slots[i], nil
}

// Get returns the session with the given id.
func (p *Planner) Get(id string) (models.Session, error) {
	i := p.index(id)
	if i < 0 {
		return models.Session{}, ErrNotFound.Fmt(id)
	}

	return p.sessions[i], nil
}

// Resolve expands an id or a unique id prefix of at least four characters
// into a full id.
func (p *Planner) Resolve(prefix string) (string, error) {
	if p.index(prefix) >= 0 {
		return prefix, nil
	}

	if len(prefix) < minIDPrefix {
		return "", ErrNotFound.Fmt(prefix)
	}

	var matches []string

	for i := range p.sessions {
		if strings.HasPrefix(p.sessions[i].ID, prefix) {
			matches = append(matches, p.sessions[i].ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrNotFound.Fmt(prefix)
	case 1:
		return matches[0], nil
	default:
		return "", ErrAmbiguousID.Fmt(prefix, len(matches))
	}
}

// Add appends a new session and returns its id. Subject, day, start and end
// are required; an empty color falls back to the default colour. When the
// save fails the session is still added and the returned error wraps
// ErrPersist.
func (p *Planner) Add(subject, day, start, end, color string) (string, error) {
	required := []struct {
		name, value string
	}{
		{"subject", subject},
		{"day", day},
		{"start", start},
		{"end", end},
	}

	for _, f := range required {
		if f.value == "" {
			return "", ErrValidation.Fmt(f.name + " is required")
		}
	}

	if color == "" {
		color = p.defaultColor
	}

	sess := models.Session{
		ID:      p.newID(),
		Subject: subject,
		Day:     day,
		Start:   start,
		End:     end,
		Color:   color,
	}

	p.sessions = append(p.sessions, sess)

	slog.Info(
		"session added",
		slog.String("id", sess.ID),
		slog.String("subject", subject),
		slog.String("day", day),
		slog.String("start", start),
		slog.String("end", end),
	)

	return sess.ID, p.persist()
}

// Remove deletes the session with the given id.
func (p *Planner) Remove(id string) error {
	i := p.index(id)
	if i < 0 {
		return ErrNotFound.Fmt(id)
	}

	p.sessions = slices.Delete(p.sessions, i, i+1)

	slog.Info("session removed", slog.String("id", id))

	return p.persist()
}

// RemoveBlock removes the part of a session that overlaps the slot at
// slotIndex. A session that fits inside the slot is removed outright;
// otherwise it is replaced by its left and right remainders, which are
// appended to the store under fresh ids. A session whose clock fields cannot
// be parsed is left untouched and no error is reported.
func (p *Planner) RemoveBlock(id string, slotIndex int) error {
	i := p.index(id)
	if i < 0 {
		return ErrNotFound.Fmt(id)
	}

	slot, err := p.Slot(slotIndex)
	if err != nil {
		return err
	}

	sess := p.sessions[i]

	remainders, whole, err := Split(&sess, slot, p.newID)
	if err != nil {
		if _, _, perr := sess.Bounds(); perr != nil {
			slog.Debug(
				"skipping block removal of unparseable session",
				slog.String("id", id),
				slog.Any("error", perr),
			)

			return nil
		}

		return err
	}

	if whole {
		return p.Remove(id)
	}

	p.sessions = slices.Delete(p.sessions, i, i+1)
	p.sessions = append(p.sessions, remainders...)

	attrs := []any{
		slog.String("id", id),
		slog.String("slot", slot.String()),
	}

	for _, r := range remainders {
		attrs = append(attrs, slog.String("remainder", r.ID+" "+r.Start+"-"+r.End))
	}

	slog.Info("session block removed", attrs...)

	return p.persist()
}

// Occupants returns the sessions occupying the slot at slotIndex on any day,
// in store order. Sessions with unparseable fields are skipped.
func (p *Planner) Occupants(slotIndex int) ([]Placement, error) {
	slot, err := p.Slot(slotIndex)
	if err != nil {
		return nil, err
	}

	var placements []Placement

	for i := range p.sessions {
		iv, err := p.sessions[i].Interval()
		if err != nil {
			continue
		}

		if slot.Overlaps(iv.Start, iv.End) {
			placements = append(placements, Placement{
				Session:  p.sessions[i],
				DayIndex: iv.DayIndex,
			})
		}
	}

	return placements, nil
}

// SlotsFor returns the indices of the slots occupied by the session.
func (p *Planner) SlotsFor(id string) ([]int, error) {
	i := p.index(id)
	if i < 0 {
		return nil, ErrNotFound.Fmt(id)
	}

	_, occupied, _ := Place(&p.sessions[i], p.slots)

	return occupied, nil
}

// Grid places every session on the grid.
func (p *Planner) Grid() Grid {
	g := make(Grid, len(p.slots))
	for i := range g {
		g[i] = make([][]models.Session, len(timeutil.Weekdays))
	}

	for i := range p.sessions {
		day, occupied, ok := Place(&p.sessions[i], p.slots)
		if !ok {
			slog.Debug(
				"session not placed on grid",
				slog.String("id", p.sessions[i].ID),
			)

			continue
		}

		for _, slot := range occupied {
			g[slot][day] = append(g[slot][day], p.sessions[i])
		}
	}

	return g
}

// Conflicts returns the sessions on day whose interval overlaps
// [start, end).
func (p *Planner) Conflicts(day, start, end string) ([]models.Session, error) {
	s, err := timeutil.ParseClock(start)
	if err != nil {
		return nil, ErrValidation.Fmt("start: " + err.Error())
	}

	e, err := timeutil.ParseClock(end)
	if err != nil {
		return nil, ErrValidation.Fmt("end: " + err.Error())
	}

	var conflicts []models.Session

	for i := range p.sessions {
		if p.sessions[i].Day != day {
			continue
		}

		ss, se, err := p.sessions[i].Bounds()
		if err != nil {
			continue
		}

		if ss < e && se > s {
			conflicts = append(conflicts, p.sessions[i])
		}
	}

	return conflicts, nil
}

func (p *Planner) index(id string) int {
	return slices.IndexFunc(p.sessions, func(s models.Session) bool {
		return s.ID == id
	})
}

func (p *Planner) persist() error {
	if err := p.db.Save(p.sessions); err != nil {
		slog.Error("saving sessions failed", slog.Any("error", err))

		return ErrPersist.Wrap(err)
	}

	return nil
}
