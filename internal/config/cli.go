package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Storage      string
	DBPath       string
	Interval     string
	Mode         string
	Sound        string
	Cmd          string
	GridStart    string
	GridEnd      string
	GridInterval uint
	NoNotify     bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Storage:      ctx.String("storage"),
			DBPath:       ctx.String("db"),
			Interval:     ctx.String("interval"),
			Mode:         ctx.String("mode"),
			Sound:        ctx.String("sound"),
			Cmd:          ctx.String("cmd"),
			GridStart:    ctx.String("grid-start"),
			GridEnd:      ctx.String("grid-end"),
			GridInterval: ctx.Uint("grid-interval"),
			NoNotify:     ctx.Bool("no-notify"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Storage != "" {
		c.Storage.Backend = opts.Storage
	}

	if opts.DBPath != "" {
		c.Storage.Path = opts.DBPath
	}

	if err := applyCLIReminders(c, opts); err != nil {
		return err
	}

	if opts.GridStart != "" {
		c.Grid.Start = opts.GridStart
	}

	if opts.GridEnd != "" {
		c.Grid.End = opts.GridEnd
	}

	if opts.GridInterval > 0 {
		c.Grid.Interval = int(opts.GridInterval)
	}

	return nil
}

// applyCLIReminders handles reminder-related CLI options.
func applyCLIReminders(c *Config, opts CLIOptions) error {
	if opts.Interval != "" {
		dur, err := time.ParseDuration(opts.Interval)
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.Interval).Wrap(err)
		}

		c.Reminders.Interval = dur
	}

	if opts.Mode != "" {
		c.Reminders.Mode = opts.Mode
	}

	if opts.NoNotify {
		c.Reminders.Enabled = false
	}

	if opts.Sound != "" {
		if opts.Sound == "off" {
			c.Reminders.Sound = ""
		} else {
			c.Reminders.Sound = opts.Sound
		}
	}

	if opts.Cmd != "" {
		c.Reminders.Cmd = opts.Cmd
	}

	return nil
}
