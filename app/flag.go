package app

import "github.com/urfave/cli/v2"

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the config file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug records to the log file",
	}

	storageFlag = &cli.StringFlag{
		Name:  "storage",
		Usage: "Storage backend: json or bolt (default: json)",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the session file or database",
	}

	intervalFlag = &cli.StringFlag{
		Name:  "interval",
		Usage: "How often reminders are checked, e.g. 30s (default: 60s)",
	}

	modeFlag = &cli.StringFlag{
		Name:  "mode",
		Usage: "Reminder mode: window or catch-up (default: window)",
	}

	noNotifyFlag = &cli.BoolFlag{
		Name:    "no-notify",
		Aliases: []string{"n"},
		Usage:   "Disable reminders",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Audio file (mp3, ogg, flac, wav) played with each reminder. Disable sound by setting to 'off'",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each reminder",
	}

	gridStartFlag = &cli.StringFlag{
		Name:  "grid-start",
		Usage: "Start of the first grid slot (default: 15:30)",
	}

	gridEndFlag = &cli.StringFlag{
		Name:  "grid-end",
		Usage: "Latest end of the last grid slot (default: 22:00)",
	}

	gridIntervalFlag = &cli.UintFlag{
		Name:  "grid-interval",
		Usage: "Slot length in minutes (default: 30)",
	}

	subjectFlag = &cli.StringFlag{
		Name:    "subject",
		Aliases: []string{"s"},
		Usage:   "Subject of the session",
	}

	dayFlag = &cli.StringFlag{
		Name:    "day",
		Aliases: []string{"d"},
		Usage:   "Weekday of the session, e.g. Monday",
	}

	daysFlag = &cli.StringSliceFlag{
		Name:    "day",
		Aliases: []string{"d"},
		Usage:   "Only show these weekdays (repeatable)",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Start time in HH:MM",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "End time in HH:MM",
	}

	colorFlag = &cli.StringFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "Hex colour of the session (default: sessions.default_color)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	atFlag = &cli.StringFlag{
		Name:  "at",
		Usage: "Evaluate at this time instead of now (e.g. 'monday 15:00', 'in 2 hours')",
	}

	onceFlag = &cli.BoolFlag{
		Name:  "once",
		Usage: "Run a single reminder check and exit",
	}
)
