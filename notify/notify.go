// Package notify delivers fired reminders to the user: a desktop
// notification, an optional alert sound and an optional shell command.
package notify

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/planner/internal/pathutil"
	"github.com/ayoisaiah/planner/remind"
)

// Notifier delivers a single reminder.
type Notifier interface {
	Notify(ev remind.Event) error
}

// Func adapts an ordinary function to the Notifier interface.
type Func func(ev remind.Event) error

func (f Func) Notify(ev remind.Event) error {
	return f(ev)
}

// Title returns the notification heading for ev.
func Title(ev remind.Event) string {
	if ev.Threshold == remind.ThresholdStart {
		return ev.Subject + " is starting now"
	}

	return fmt.Sprintf("%s starts in %d minutes", ev.Subject, int(ev.Threshold))
}

// Body returns the notification text for ev.
func Body(ev remind.Event) string {
	return ev.Start + " - " + ev.End
}

// Desktop shows reminders as desktop notifications.
type Desktop struct {
	// Sound is a path to an mp3, ogg, flac or wav file. Empty means silent.
	Sound string
	// Cmd is run after each notification with the event in its environment.
	Cmd string
}

// Notify shows the notification, then plays the sound and runs the command
// if configured. Sound and command failures are logged but do not fail the
// notification.
func (d *Desktop) Notify(ev remind.Event) error {
	// empty if the icon is not installed
	icon, _ := xdg.SearchDataFile(filepath.Join(pathutil.Dir(), "icon.png"))

	err := beeep.Notify(Title(ev), Body(ev), icon)
	if err != nil {
		return errNotify.Wrap(err)
	}

	if d.Sound != "" {
		if err := PlaySound(d.Sound); err != nil {
			slog.Warn("unable to play reminder sound",
				slog.String("sound", d.Sound),
				slog.Any("error", err),
			)
		}
	}

	if d.Cmd != "" {
		cmd, err := Command(d.Cmd, ev)
		if err != nil {
			return err
		}

		if cmd == nil {
			return nil
		}

		if err := cmd.Run(); err != nil {
			slog.Warn("reminder command failed",
				slog.String("cmd", d.Cmd),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// Command builds the command described by cmdLine. The process inherits the
// current environment plus PLANNER_SUBJECT, PLANNER_START, PLANNER_END and
// PLANNER_THRESHOLD. It returns nil and no error for a blank command line.
func Command(cmdLine string, ev remind.Event) (*exec.Cmd, error) {
	args, err := shellquote.Split(cmdLine)
	if err != nil {
		return nil, errParseCmd.Fmt(cmdLine).Wrap(err)
	}

	if len(args) == 0 {
		return nil, nil
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(), Env(ev)...)

	return cmd, nil
}

// Env returns the environment variables describing ev.
func Env(ev remind.Event) []string {
	return []string{
		"PLANNER_SUBJECT=" + ev.Subject,
		"PLANNER_START=" + ev.Start,
		"PLANNER_END=" + ev.End,
		"PLANNER_THRESHOLD=" + ev.Label(),
	}
}
