// Package app wires the planner's command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/planner/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the planner app instance.
func Get() *cli.App {
	plannerApp := &cli.App{
		Name: "planner",
		Usage: `
		Planner keeps a weekly study timetable on a grid of fixed time slots and
		reminds you before each session starts.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Add a study session",
				Flags:  []cli.Flag{subjectFlag, dayFlag, startFlag, endFlag, colorFlag},
				Action: addAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all sessions",
				Flags:   []cli.Flag{daysFlag, jsonFlag},
				Action:  listAction,
			},
			{
				Name:   "grid",
				Usage:  "Print the weekly grid",
				Flags:  []cli.Flag{daysFlag},
				Action: gridAction,
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Delete a session",
				ArgsUsage: "<id>",
				Action:    removeAction,
			},
			{
				Name:      "remove-block",
				Usage:     "Remove the part of a session that falls in one grid slot",
				ArgsUsage: "<id> <slot>",
				Action:    removeBlockAction,
			},
			{
				Name:   "slots",
				Usage:  "Print the grid slots and their indices",
				Action: slotsAction,
			},
			{
				Name:   "upcoming",
				Usage:  "List the sessions still ahead today",
				Flags:  []cli.Flag{atFlag},
				Action: upcomingAction,
			},
			{
				Name:   "remind",
				Usage:  "Run the reminder loop in the foreground",
				Flags:  []cli.Flag{onceFlag, atFlag},
				Action: remindAction,
			},
			{
				Name:   "tui",
				Usage:  "Open the interactive weekly grid (default)",
				Action: tuiAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			configFlag,
			noColorFlag,
			debugFlag,
			storageFlag,
			dbFlag,
			intervalFlag,
			modeFlag,
			noNotifyFlag,
			soundFlag,
			cmdFlag,
			gridStartFlag,
			gridEndFlag,
			gridIntervalFlag,
		},
		Action: tuiAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return plannerApp
}
