package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/planner/internal/config"
	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/osutil"
	"github.com/ayoisaiah/planner/internal/pathutil"
	"github.com/ayoisaiah/planner/internal/timeutil"
	"github.com/ayoisaiah/planner/internal/ui"
	"github.com/ayoisaiah/planner/notify"
	"github.com/ayoisaiah/planner/remind"
	"github.com/ayoisaiah/planner/report"
	"github.com/ayoisaiah/planner/schedule"
	"github.com/ayoisaiah/planner/store"
	"github.com/ayoisaiah/planner/tui"
)

const (
	envNoColor        = "NO_COLOR"
	envPlannerNoColor = "PLANNER_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := firstNonEmptyString(ctx.String("config"), pathutil.ConfigFilePath())

	return config.New(
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
}

// storagePath returns the file backing the configured storage backend.
func storagePath(cfg *config.Config) string {
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}

	if cfg.Storage.Backend == config.BackendBolt {
		return pathutil.DBFilePath()
	}

	return pathutil.SessionsFilePath()
}

// openPlanner builds a planner from the config and loads the stored
// sessions. A load failure is reported and the planner starts empty. The
// caller must close the returned store.
func openPlanner(
	ctx *cli.Context,
) (*schedule.Planner, store.DB, *config.Config, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	slots, err := cfg.Slots()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := store.Open(cfg.Storage.Backend, storagePath(cfg))
	if err != nil {
		return nil, nil, nil, err
	}

	p := schedule.New(
		db,
		slots,
		schedule.WithDefaultColor(cfg.Sessions.DefaultColor),
	)

	if err := p.Load(); err != nil {
		slog.Warn("starting with an empty store", slog.Any("error", err))
		report.Warn(err)
	}

	ui.DarkTheme = cfg.Display.DarkTheme
	ui.TwentyFourHour = cfg.Display.TwentyFourHour

	return p, db, cfg, nil
}

// evalTime returns the --at time if set, or the current time.
func evalTime(ctx *cli.Context) (time.Time, error) {
	now := time.Now()

	at := ctx.String("at")
	if at == "" {
		return now, nil
	}

	t, err := timeutil.FromStr(at, now)
	if err != nil {
		return time.Time{}, errInvalidAt.Fmt(at).Wrap(err)
	}

	return t, nil
}

// resolveArg expands the id argument at position n.
func resolveArg(ctx *cli.Context, p *schedule.Planner, n int) (string, error) {
	arg := ctx.Args().Get(n)
	if arg == "" {
		return "", errMissingID
	}

	return p.Resolve(arg)
}

// addAction handles the add command. Overlapping sessions are reported but
// do not prevent the session from being added.
func addAction(ctx *cli.Context) error {
	p, db, _, err := openPlanner(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	subject := ctx.String("subject")
	day := ctx.String("day")
	start := ctx.String("start")
	end := ctx.String("end")
	color := ctx.String("color")

	if color != "" && !config.IsHexColor(color) {
		return errInvalidColor.Fmt(color)
	}

	if err := schedule.CheckEntry(day, start, end); err != nil {
		return err
	}

	conflicts, err := p.Conflicts(day, start, end)
	if err != nil {
		return err
	}

	id, err := p.Add(subject, day, start, end, color)
	if id == "" {
		return err
	}

	report.SessionAdded(id)
	report.Conflicts(conflicts)

	return err
}

// listAction prints every session, optionally limited to some weekdays.
func listAction(ctx *cli.Context) error {
	p, db, _, err := openPlanner(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sessions := filterDays(p.Sessions(), ctx.StringSlice("day"))

	if ctx.Bool("json") {
		if sessions == nil {
			sessions = []models.Session{}
		}

		ui.SortSessions(sessions)

		b, err := json.MarshalIndent(sessions, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(sessions) == 0 {
		report.NoSessions()
		return nil
	}

	ui.PrintSessions(sessions, config.Stdout)

	return nil
}

// gridAction prints the weekly grid.
func gridAction(ctx *cli.Context) error {
	p, db, _, err := openPlanner(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	ui.PrintGrid(p.Slots(), p.Grid().Cell, ctx.StringSlice("day"), config.Stdout)

	return nil
}

// removeAction deletes the session named by its id or id prefix.
func removeAction(ctx *cli.Context) error {
	p, db, _, err := openPlanner(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	id, err := resolveArg(ctx, p, 0)
	if err != nil {
		return err
	}

	err = p.Dispatch(schedule.Command{
		Action:    schedule.ActionDelete,
		SessionID: id,
	})
	if err != nil {
		return err
	}

	report.SessionRemoved(id)

	return nil
}

// removeBlockAction removes one slot's worth of a session.
func removeBlockAction(ctx *cli.Context) error {
	p, db, _, err := openPlanner(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	id, err := resolveArg(ctx, p, 0)
	if err != nil {
		return err
	}

	arg := ctx.Args().Get(1)

	slotIndex, err := strconv.Atoi(arg)
	if err != nil {
		return errSlotArg.Fmt(arg)
	}

	sess, err := p.Get(id)
	if err != nil {
		return err
	}

	if _, _, err = sess.Bounds(); err != nil {
		report.Warn(errUnreadableTimes.Fmt(ui.ShortID(id), sess.Start, sess.End))
		return nil
	}

	err = p.Dispatch(schedule.Command{
		Action:    schedule.ActionSplitBlock,
		SessionID: id,
		SlotIndex: slotIndex,
	})
	if err != nil {
		return err
	}

	slot, _ := p.Slot(slotIndex)

	report.BlockRemoved(id, ui.SlotLabel(slot))

	return nil
}

// slotsAction prints the grid slots with their indices.
func slotsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	slots, err := cfg.Slots()
	if err != nil {
		return err
	}

	ui.TwentyFourHour = cfg.Display.TwentyFourHour

	data := [][]string{{"#", "START", "END"}}

	for i, slot := range slots {
		data = append(data, []string{
			strconv.Itoa(i),
			ui.Clock(slot.Start),
			ui.Clock(slot.End),
		})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

// upcomingAction lists today's sessions that have not started yet.
func upcomingAction(ctx *cli.Context) error {
	p, db, _, err := openPlanner(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	now, err := evalTime(ctx)
	if err != nil {
		return err
	}

	pending := remind.Upcoming(now, p.Sessions())
	if len(pending) == 0 {
		pterm.Info.Printfln("nothing else scheduled for %s", timeutil.WeekdayName(now))
		return nil
	}

	data := [][]string{{"SUBJECT", "START", "END", "STARTS IN"}}

	for _, u := range pending {
		hrs, mins := timeutil.MinsToHoursAndMins(u.MinutesUntil)

		data = append(data, []string{
			ui.Swatch(u.Session.Color, u.Session.Subject),
			u.Session.Start,
			u.Session.End,
			ui.Green(fmt.Sprintf("%dh %02dm", hrs, mins)),
		})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

func newNotifier(cfg *config.Config) *notify.Desktop {
	return &notify.Desktop{
		Sound: cfg.Reminders.Sound,
		Cmd:   cfg.Reminders.Cmd,
	}
}

func newTracker(cfg *config.Config, opts ...remind.Option) *remind.Tracker {
	opts = append(opts, remind.WithMode(remind.Mode(cfg.Reminders.Mode)))

	return remind.NewTracker(opts...)
}

// remindAction runs the reminder loop until interrupted. Sessions are read
// from the store on every tick so that edits from other invocations are
// picked up.
func remindAction(ctx *cli.Context) error {
	p, db, cfg, err := openPlanner(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if !cfg.Reminders.Enabled {
		return errRemindersDisabled
	}

	var opts []remind.Option

	if ctx.String("at") != "" {
		at, err := evalTime(ctx)
		if err != nil {
			return err
		}

		opts = append(opts, remind.WithClock(func() time.Time { return at }))
	}

	tracker := newTracker(cfg, opts...)
	n := newNotifier(cfg)

	src := func() ([]models.Session, error) {
		if err := p.Load(); err != nil {
			return nil, err
		}

		return p.Sessions(), nil
	}

	handle := func(ev remind.Event) {
		pterm.Info.Printfln("%s (%s)", notify.Title(ev), notify.Body(ev))

		if err := n.Notify(ev); err != nil {
			slog.Warn("reminder not delivered", slog.Any("error", err))
			report.Error(err)
		}
	}

	if ctx.Bool("once") {
		return tracker.Tick(src, handle)
	}

	sigCtx, stop := signal.NotifyContext(
		ctxOrBackground(ctx.Context),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	pterm.Info.Printfln(
		"checking reminders every %s, press Ctrl+C to stop",
		cfg.Reminders.Interval,
	)

	return tracker.Run(sigCtx, cfg.Reminders.Interval, src, handle)
}

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}

// tuiAction opens the interactive grid.
func tuiAction(ctx *cli.Context) error {
	p, db, cfg, err := openPlanner(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	opts := []tui.Option{tui.WithDarkTheme(cfg.Display.DarkTheme)}

	if cfg.Reminders.Enabled {
		opts = append(opts, tui.WithReminders(
			newTracker(cfg),
			newNotifier(cfg),
			cfg.Reminders.Interval,
		))
	}

	return tui.Run(tui.New(p, opts...))
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.Path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PLANNER_NO_COLOR is set
	if _, exists := os.LookupEnv(envPlannerNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return errPaths.Wrap(err)
	}

	setupLogger(ctx.Bool("debug"))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctxOrBackground(ctx.Context), "exiting planner")

	return nil
}
