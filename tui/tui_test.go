package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/timeutil"
	"github.com/ayoisaiah/planner/notify"
	"github.com/ayoisaiah/planner/remind"
	"github.com/ayoisaiah/planner/schedule"
)

type memDB struct {
	saved []models.Session
}

func (m *memDB) Load() ([]models.Session, error) {
	return append([]models.Session(nil), m.saved...), nil
}

func (m *memDB) Save(sessions []models.Session) error {
	m.saved = append([]models.Session(nil), sessions...)
	return nil
}

func (m *memDB) Close() error {
	return nil
}

// 2026-10-19 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2026, time.October, 19, hour, minute, 0, 0, time.Local)
}

func newModel(t *testing.T, sessions []models.Session, opts ...Option) (*Model, *schedule.Planner) {
	t.Helper()

	n := 0

	p := schedule.New(
		&memDB{},
		timeutil.GenerateSlots(540, 720, 30),
		schedule.WithSessions(sessions),
		schedule.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)

	opts = append([]Option{WithClock(func() time.Time { return monday(8, 0) })}, opts...)

	return New(p, opts...), p
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

// run executes cmd and any batched commands, returning the messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()

	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, run(c)...)
		}

		return msgs
	}

	return []tea.Msg{msg}
}

func TestNewStartsOnToday(t *testing.T) {
	m, _ := newModel(t, nil)

	assert.Equal(t, 0, m.day)
	assert.Equal(t, 0, m.slot)
	assert.Nil(t, m.Init())
}

func TestNavigationClamps(t *testing.T) {
	m, _ := newModel(t, nil)

	press(m, "k", "h")
	assert.Equal(t, 0, m.slot)
	assert.Equal(t, 0, m.day)

	press(m, "j", "j", "l")
	assert.Equal(t, 2, m.slot)
	assert.Equal(t, 1, m.day)

	for range 20 {
		press(m, "j", "l")
	}

	assert.Equal(t, 5, m.slot)
	assert.Equal(t, 6, m.day)
}

func TestDeleteKeyDispatchesDelete(t *testing.T) {
	m, p := newModel(t, []models.Session{
		{ID: "s1", Subject: "Math", Day: "Monday", Start: "09:00", End: "10:00", Color: "#fff"},
	})

	press(m, "d")

	assert.Empty(t, p.Sessions())
	assert.Equal(t, "deleted Math", m.status)

	press(m, "d")
	assert.Equal(t, "no session in this cell", m.status)
}

func TestRemoveBlockKeySplitsSession(t *testing.T) {
	m, p := newModel(t, []models.Session{
		{ID: "s1", Subject: "Math", Day: "Monday", Start: "09:00", End: "10:30", Color: "#fff"},
	})

	press(m, "j", "x")

	sessions := p.Sessions()
	require.Len(t, sessions, 2)

	assert.Equal(t, "09:00", sessions[0].Start)
	assert.Equal(t, "09:30", sessions[0].End)
	assert.Equal(t, "10:00", sessions[1].Start)
	assert.Equal(t, "10:30", sessions[1].End)
	assert.Equal(t, "removed 09:30-10:00 from Math", m.status)
}

func TestCycleOccupants(t *testing.T) {
	m, _ := newModel(t, []models.Session{
		{ID: "a", Subject: "Math", Day: "Monday", Start: "09:00", End: "10:00"},
		{ID: "b", Subject: "Physics", Day: "Monday", Start: "09:00", End: "09:30"},
	})

	sess, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "a", sess.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	sess, ok = m.selected()
	require.True(t, ok)
	assert.Equal(t, "b", sess.ID)
}

func TestAddOpensForm(t *testing.T) {
	m, _ := newModel(t, nil)

	press(m, "j", "a")

	require.NotNil(t, m.form)
	assert.Equal(t, &entry{day: "Monday", start: "09:30", end: "10:00"}, m.entry)
}

func TestSubmit(t *testing.T) {
	m, p := newModel(t, []models.Session{
		{ID: "a", Subject: "Math", Day: "Monday", Start: "09:00", End: "10:00"},
	})

	m.entry = &entry{subject: "Physics", day: "Monday", start: "09:30", end: "10:30"}
	m.submit()

	sessions := p.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, "Physics", sessions[1].Subject)
	assert.Equal(t, models.DefaultColor, sessions[1].Color)
	assert.Equal(t, "added Physics (overlaps Math)", m.status)

	m.entry = &entry{subject: "Art", day: "Monday", start: "11:00", end: "10:00"}
	m.submit()

	assert.Len(t, p.Sessions(), 2)
	assert.Contains(t, m.status, "start must be earlier than end")
}

func TestReminderTick(t *testing.T) {
	var delivered []remind.Event

	n := notify.Func(func(ev remind.Event) error {
		delivered = append(delivered, ev)
		return nil
	})

	m, _ := newModel(
		t,
		[]models.Session{
			{ID: "a", Subject: "Math", Day: "Monday", Start: "16:00", End: "17:00"},
		},
		WithReminders(remind.NewTracker(), n, time.Millisecond),
	)

	require.NotNil(t, m.Init())

	_, cmd := m.Update(reminderTickMsg(monday(15, 0)))
	assert.Equal(t, "Math starts in 60 minutes", m.status)

	msgs := run(cmd)

	require.Len(t, delivered, 1)
	assert.Equal(t, remind.Threshold60, delivered[0].Threshold)
	assert.Contains(t, msgs, tea.Msg(notifiedMsg{event: delivered[0]}))

	// the next check is always re-armed
	var rearmed bool

	for _, msg := range msgs {
		if _, ok := msg.(reminderTickMsg); ok {
			rearmed = true
		}
	}

	assert.True(t, rearmed)

	// a second tick inside the same window fires nothing
	_, cmd = m.Update(reminderTickMsg(monday(15, 1)))
	run(cmd)
	assert.Len(t, delivered, 1)
}

func TestView(t *testing.T) {
	m, _ := newModel(t, []models.Session{
		{ID: "a", Subject: "Math", Day: "Monday", Start: "09:00", End: "10:00", Color: "#AED6F1"},
	})

	view := m.View()

	assert.Contains(t, view, "Mon")
	assert.Contains(t, view, "Sun")
	assert.Contains(t, view, "09:00-09:30")
	assert.Contains(t, view, "Math")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Math", truncate("Math", 11))
	assert.Equal(t, "Linear Alg…", truncate("Linear Algebra", 11))
}
