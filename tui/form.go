package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/planner/internal/config"
	"github.com/ayoisaiah/planner/internal/timeutil"
	"github.com/ayoisaiah/planner/schedule"
)

// entry holds the values of the add form.
type entry struct {
	subject string
	day     string
	start   string
	end     string
	color   string
}

func requireClock(s string) error {
	_, err := timeutil.ParseClock(s)
	return err
}

func optionalColor(s string) error {
	if s == "" || config.IsHexColor(s) {
		return nil
	}

	return errColor
}

// newEntry prefills the form with the slot under the cursor.
func newEntry(day string, slot timeutil.Slot) *entry {
	return &entry{
		day:   day,
		start: timeutil.FormatMin(slot.Start),
		end:   timeutil.FormatMin(slot.End),
	}
}

func newForm(e *entry) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Value(&e.subject).
				Validate(func(s string) error {
					if s == "" {
						return errSubject
					}

					return nil
				}),
			huh.NewSelect[string]().
				Title("Day").
				Options(huh.NewOptions(timeutil.Weekdays...)...).
				Value(&e.day),
			huh.NewInput().
				Title("Start (HH:MM)").
				Value(&e.start).
				Validate(requireClock),
			huh.NewInput().
				Title("End (HH:MM)").
				Value(&e.end).
				Validate(requireClock),
			huh.NewInput().
				Title("Color").
				Placeholder("#AED6F1").
				Value(&e.color).
				Validate(optionalColor),
		),
	).WithShowHelp(true)
}

// updateForm forwards msg to the add form and submits it once complete.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submit()
		m.form, m.entry = nil, nil

		return m, nil
	case huh.StateAborted:
		m.form, m.entry = nil, nil

		return m, nil
	}

	return m, cmd
}

func (m *Model) submit() {
	e := m.entry

	if err := schedule.CheckEntry(e.day, e.start, e.end); err != nil {
		m.status = err.Error()
		return
	}

	conflicts, _ := m.planner.Conflicts(e.day, e.start, e.end)

	id, err := m.planner.Add(e.subject, e.day, e.start, e.end, e.color)
	if err != nil && id == "" {
		m.status = err.Error()
		return
	}

	m.status = "added " + e.subject
	if len(conflicts) > 0 {
		m.status += " (overlaps " + conflicts[0].Subject + ")"
	}

	// the session is kept in memory when the save fails
	if err != nil {
		m.status = err.Error()
	}
}
