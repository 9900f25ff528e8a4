package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/timeutil"
	"github.com/ayoisaiah/planner/internal/ui"
)

const cellWidth = 12

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	empty  lipgloss.Style
	cursor lipgloss.Style
	status lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#1F2937")
	muted := lipgloss.Color("#9CA3AF")

	if dark {
		fg = lipgloss.Color("#F3F4F6")
		muted = lipgloss.Color("#6B7280")
	}

	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(fg).MarginBottom(1),
		header: lipgloss.NewStyle().Bold(true).Foreground(fg).Width(cellWidth).Align(lipgloss.Center),
		label:  lipgloss.NewStyle().Foreground(muted).Width(cellWidth),
		empty:  lipgloss.NewStyle().Foreground(muted).Width(cellWidth),
		cursor: lipgloss.NewStyle().Reverse(true),
		status: lipgloss.NewStyle().Foreground(muted).Italic(true).MarginTop(1),
	}
}

// truncate shortens s to fit inside a grid cell.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}

	return string(r[:width-1]) + "…"
}

func (m *Model) cellView(cell []models.Session, selected bool) string {
	if len(cell) == 0 {
		text := "·"
		if selected {
			return m.styles.cursor.Inherit(m.styles.empty).Render(text)
		}

		return m.styles.empty.Render(text)
	}

	sess := cell[0]
	if selected {
		sess = cell[m.pick%len(cell)]
	}

	text := sess.Subject
	if len(cell) > 1 {
		text = "+" + text
	}

	style := lipgloss.NewStyle().
		Width(cellWidth).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(sess.Color))

	if selected {
		style = style.Bold(true).Underline(true)
	}

	return style.Render(truncate(text, cellWidth-1))
}

func (m *Model) gridView() string {
	grid := m.planner.Grid()

	var rows []string

	header := []string{m.styles.label.Render("")}
	for _, d := range timeutil.Weekdays {
		header = append(header, m.styles.header.Render(d[:3]))
	}

	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for i, slot := range m.planner.Slots() {
		row := []string{m.styles.label.Render(ui.SlotLabel(slot))}

		for d := range timeutil.Weekdays {
			selected := i == m.slot && d == m.day
			row = append(row, m.cellView(grid.Cell(i, d), selected))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) detailView() string {
	sess, ok := m.selected()
	if !ok {
		return ""
	}

	return ui.Swatch(sess.Color, sess.Subject) + " " + sess.Day + " " +
		sess.Start + "-" + sess.End + " (" + ui.ShortID(sess.ID) + ")"
}

func (m *Model) View() string {
	if m.form != nil {
		return m.form.View()
	}

	var s strings.Builder

	s.WriteString(m.styles.title.Render("Weekly study planner"))
	s.WriteString("\n")
	s.WriteString(m.gridView())
	s.WriteString("\n\n")
	s.WriteString(m.detailView())

	if m.status != "" {
		s.WriteString("\n" + m.styles.status.Render(m.status))
	}

	s.WriteString("\n\n" + m.help.View(defaultKeymap))

	return s.String()
}
