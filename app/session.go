package app

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ottorg/jtravail/internal/config"
	"github.com/ottorg/jtravail/internal/lock"
	"github.com/ottorg/jtravail/internal/logging"
	"github.com/ottorg/jtravail/internal/pathutil"
	"github.com/ottorg/jtravail/internal/ui"
	"github.com/ottorg/jtravail/intervallog"
	"github.com/ottorg/jtravail/pomodoro"
	"github.com/ottorg/jtravail/report"
	"github.com/ottorg/jtravail/store"
	"github.com/ottorg/jtravail/timer"
)

// invocation is the resolved configuration of one command run.
type invocation struct {
	app    *App
	cfg    *config.Config
	format *ui.Format
	logger *slog.Logger
	closer io.Closer
	store  *store.Store
	log    *intervallog.Log

	// diagnostics receives state file reset notices.
	diagnostics io.Writer
}

func (a *App) loadConfig(ctx *cli.Context, extra ...config.Option) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	p := pathutil.Must()

	configPath := p.ConfigFilePath()
	required := false

	if c := config.FlagContext(ctx, "config"); c != nil {
		configPath = c.String("config")
		required = true
	}

	opts := []config.Option{
		config.WithViperConfig(configPath, required),
		config.WithCLIConfig(ctx),
		config.WithPaths(
			configPath,
			p.StateFilePath(),
			p.LogFilePath(),
			p.DebugLogFilePath(),
		),
	}

	return config.New(append(opts, extra...)...)
}

func (a *App) newInvocation(ctx *cli.Context) (*invocation, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Display.NoColor {
		report.DisableStyling()
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	format, err := ui.ParseFormat(cfg.Display.Format)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.System.Debug, cfg.System.DebugLogPath)
	if err != nil {
		return nil, err
	}

	logger.Debug(
		"config resolved",
		slog.String("command", commandName(ctx)),
		slog.String("config", cfg.System.ConfigPath),
		slog.String("state", cfg.System.StatePath),
		slog.String("log", cfg.System.LogPath),
	)

	return &invocation{
		app:    a,
		cfg:    cfg,
		format: format,
		logger: logger,
		closer: closer,
		store:  store.New(a.fs, cfg.System.StatePath),
		log:    intervallog.New(a.fs, cfg.System.LogPath),

		diagnostics: a.stderr,
	}, nil
}

func commandName(ctx *cli.Context) string {
	if ctx.Command == nil || ctx.Command.Name == "" {
		return "status"
	}

	return ctx.Command.Name
}

func (r *invocation) Close() error {
	return r.closer.Close()
}

// withEngine loads the session under the state lock, runs fn and releases
// the lock.
func (r *invocation) withEngine(fn func(e *pomodoro.Engine) error) (*pomodoro.Engine, error) {
	l, err := lock.Acquire(r.cfg.System.StatePath+".lock", lock.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := l.Release(); err != nil {
			r.logger.Warn("releasing state lock", slog.Any("error", err))
		}
	}()

	if prev := l.Previous(); prev != nil {
		r.logger.Debug(
			"state lock acquired",
			slog.Int("previous_pid", prev.PID),
			slog.String("previous_command", prev.Command),
			slog.Time("previous_acquired_at", prev.AcquiredAt),
		)
	}

	e, err := pomodoro.New(
		r.store,
		r.log,
		pomodoro.WithClock(r.app.clock),
		pomodoro.WithStderr(r.diagnostics),
		pomodoro.WithLogger(r.logger),
	)
	if err != nil {
		return nil, err
	}

	if fn != nil {
		if err := fn(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func (r *invocation) statusLine(e *pomodoro.Engine) ui.StatusLine {
	return ui.StatusLine{
		Status:          e.Status(),
		Remaining:       e.RemainingTime(r.cfg.Durations()),
		Iteration:       e.Iteration(),
		LongPausePeriod: r.cfg.Session.LongPausePeriod,
	}
}

func (r *invocation) snapshot(e *pomodoro.Engine) timer.Snapshot {
	start, _ := e.StartTime()

	return timer.Snapshot{
		Status:    e.Status(),
		Line:      r.format.Render(r.statusLine(e)),
		Remaining: e.RemainingTime(r.cfg.Durations()),
		Duration:  r.cfg.Durations().For(e.Status()),
		StartTime: start,
	}
}

// watchSession adapts an invocation to the live view. The lock is only held
// for the duration of each call.
type watchSession struct {
	r *invocation
}

func (w watchSession) do(fn func(e *pomodoro.Engine) error) (timer.Snapshot, error) {
	e, err := w.r.withEngine(fn)
	if err != nil {
		return timer.Snapshot{}, err
	}

	return w.r.snapshot(e), nil
}

func (w watchSession) Refresh() (timer.Snapshot, error) {
	return w.do(nil)
}

func (w watchSession) Advance() (timer.Snapshot, error) {
	var transitioned *pomodoro.Engine

	snap, err := w.do(func(e *pomodoro.Engine) error {
		if err := e.Advance(w.r.cfg.Session.LongPausePeriod); err != nil {
			return err
		}

		transitioned = e

		return nil
	})
	if err != nil {
		return snap, err
	}

	w.r.runHooks(transitioned)

	return snap, nil
}

func (w watchSession) Stop() (timer.Snapshot, error) {
	return w.do(func(e *pomodoro.Engine) error {
		return e.Stop()
	})
}
