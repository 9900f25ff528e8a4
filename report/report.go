// Package report prints the outcome of planner commands.
package report

import (
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/ui"
)

func SessionAdded(id string) {
	pterm.Success.Printfln("session added (%s)", ui.Highlight(ui.ShortID(id)))
}

func SessionRemoved(id string) {
	pterm.Success.Printfln("session %s removed", ui.Highlight(ui.ShortID(id)))
}

func BlockRemoved(id, slot string) {
	pterm.Success.Printfln(
		"removed %s from session %s",
		ui.Cyan(slot),
		ui.Highlight(ui.ShortID(id)),
	)
}

// Conflicts warns about sessions that overlap a newly added one.
func Conflicts(conflicts []models.Session) {
	if len(conflicts) == 0 {
		return
	}

	names := make([]string, 0, len(conflicts))
	for i := range conflicts {
		c := &conflicts[i]
		names = append(names, c.Subject+" "+c.Start+"-"+c.End)
	}

	pterm.Warning.Printfln("overlaps with %s", strings.Join(names, ", "))
}

func NoSessions() {
	pterm.Info.Println("no sessions scheduled")
}

func Warn(err error) {
	pterm.Warning.Println(err)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
