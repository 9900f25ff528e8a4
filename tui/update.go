package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/timeutil"
	"github.com/ayoisaiah/planner/notify"
	"github.com/ayoisaiah/planner/schedule"
)

// handleReminderTick fires due reminders and arms the next check.
func (m *Model) handleReminderTick(msg reminderTickMsg) (tea.Model, tea.Cmd) {
	events := m.tracker.Check(time.Time(msg), m.planner.Sessions())

	cmds := make([]tea.Cmd, 0, len(events)+1)

	for _, ev := range events {
		slog.Info(
			"reminder fired",
			slog.String("id", ev.SessionID),
			slog.String("subject", ev.Subject),
			slog.String("threshold", ev.Label()),
		)

		m.status = notify.Title(ev)

		if m.notifier != nil {
			cmds = append(cmds, m.deliver(ev))
		}
	}

	cmds = append(cmds, m.scheduleReminder())

	return m, tea.Batch(cmds...)
}

// selected returns the session under the cursor.
func (m *Model) selected() (models.Session, bool) {
	cell := m.planner.Grid().Cell(m.slot, m.day)
	if len(cell) == 0 {
		return models.Session{}, false
	}

	return cell[m.pick%len(cell)], true
}

func (m *Model) dispatch(action schedule.Action) {
	sess, ok := m.selected()
	if !ok {
		m.status = "no session in this cell"
		return
	}

	if action == schedule.ActionSplitBlock {
		if _, _, err := sess.Bounds(); err != nil {
			m.status = "cannot split " + sess.Subject + ": unreadable times"
			return
		}
	}

	err := m.planner.Dispatch(schedule.Command{
		Action:    action,
		SessionID: sess.ID,
		SlotIndex: m.slot,
	})
	if err != nil {
		m.status = err.Error()
		return
	}

	m.pick = 0

	if action == schedule.ActionDelete {
		m.status = "deleted " + sess.Subject
	} else {
		slot, _ := m.planner.Slot(m.slot)
		m.status = "removed " + slot.String() + " from " + sess.Subject
	}
}

func (m *Model) move(dSlot, dDay int) {
	last := len(m.planner.Slots()) - 1

	m.slot = min(max(m.slot+dSlot, 0), max(last, 0))
	m.day = min(max(m.day+dDay, 0), len(timeutil.Weekdays)-1)
	m.pick = 0
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.up):
		m.move(-1, 0)

	case key.Matches(msg, defaultKeymap.down):
		m.move(1, 0)

	case key.Matches(msg, defaultKeymap.left):
		m.move(0, -1)

	case key.Matches(msg, defaultKeymap.right):
		m.move(0, 1)

	case key.Matches(msg, defaultKeymap.next):
		m.pick++

	case key.Matches(msg, defaultKeymap.add):
		slot, err := m.planner.Slot(m.slot)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}

		m.entry = newEntry(timeutil.Weekdays[m.day], slot)
		m.form = newForm(m.entry)

		return m, m.form.Init()

	case key.Matches(msg, defaultKeymap.remove):
		m.dispatch(schedule.ActionDelete)

	case key.Matches(msg, defaultKeymap.removeBlock):
		m.dispatch(schedule.ActionSplitBlock)

	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, defaultKeymap.esc):
		m.status = ""
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reminderTickMsg:
		return m.handleReminderTick(msg)

	case notifiedMsg:
		if msg.err != nil {
			slog.Warn(
				"reminder not delivered",
				slog.String("id", msg.event.SessionID),
				slog.Any("error", msg.err),
			)

			m.status = msg.err.Error()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil
	}

	if m.form != nil {
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
			return m, tea.Quit
		}

		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}
