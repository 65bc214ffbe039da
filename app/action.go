package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ottorg/jtravail/internal/config"
	"github.com/ottorg/jtravail/internal/osutil"
	"github.com/ottorg/jtravail/intervallog"
	"github.com/ottorg/jtravail/pomodoro"
	"github.com/ottorg/jtravail/report"
	"github.com/ottorg/jtravail/stats"
	"github.com/ottorg/jtravail/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envJTravailNoColor = "JTRAVAIL_NO_COLOR"
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

// run resolves the invocation, applies op to the session under the state
// lock and prints the resulting status line. Hooks run after the lock is
// released when withHooks is set.
func (a *App) run(
	ctx *cli.Context,
	op func(r *invocation, e *pomodoro.Engine) error,
	withHooks bool,
) (err error) {
	r, err := a.newInvocation(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var fn func(e *pomodoro.Engine) error
	if op != nil {
		fn = func(e *pomodoro.Engine) error {
			return op(r, e)
		}
	}

	e, err := r.withEngine(fn)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, r.format.Render(r.statusLine(e)))

	if op != nil {
		r.logger.Info(
			"command finished",
			slog.String("command", commandName(ctx)),
			slog.String("status", string(e.Status())),
			slog.Int("iteration", e.Iteration()),
		)
	}

	if withHooks {
		r.runHooks(e)
	}

	return nil
}

// statusAction prints the current status line.
func (a *App) statusAction(ctx *cli.Context) error {
	return a.run(ctx, nil, false)
}

// nextAction moves the session to its next status and runs the hooks.
func (a *App) nextAction(ctx *cli.Context) error {
	return a.run(ctx, func(r *invocation, e *pomodoro.Engine) error {
		return e.Advance(r.cfg.Session.LongPausePeriod)
	}, true)
}

// stopAction ends the session.
func (a *App) stopAction(ctx *cli.Context) error {
	return a.run(ctx, func(_ *invocation, e *pomodoro.Engine) error {
		return e.Stop()
	}, false)
}

// logAction reports the intervals completed within a period.
func (a *App) logAction(ctx *cli.Context) error {
	r, err := a.newInvocation(ctx)
	if err != nil {
		return err
	}

	defer r.Close()

	filter, err := config.Filter(ctx, a.clock.Now())
	if err != nil {
		return err
	}

	var entries []intervallog.Entry

	for entry, err := range r.log.Entries() {
		if err != nil {
			report.Warning("skipping %s: %v", r.log.Path(), err)
			continue
		}

		if !filter.Overlaps(entry.Start, entry.End) {
			continue
		}

		entries = append(entries, entry)
	}

	summary := stats.Compute(entries, filter.StartTime, filter.EndTime)

	if filter.JSON {
		return summary.WriteJSON(a.stdout)
	}

	return summary.Show(a.stdout)
}

// watchAction shows the live view.
func (a *App) watchAction(ctx *cli.Context) error {
	r, err := a.newInvocation(ctx)
	if err != nil {
		return err
	}

	defer r.Close()

	t, err := timer.New(watchSession{r: r}, r.logger)
	if err != nil {
		return err
	}

	// A corrupt state file was reported by the first refresh.
	r.diagnostics = io.Discard

	return t.Run()
}

// configureAction prompts for the session options and saves them to the
// config file.
func (a *App) configureAction(ctx *cli.Context) error {
	cfg, err := a.loadConfig(ctx, config.WithPromptConfig())
	if err != nil {
		return err
	}

	if err := cfg.Save(cfg.System.ConfigPath); err != nil {
		return err
	}

	report.Success("configuration saved to %s", cfg.System.ConfigPath)

	return nil
}

// editConfigAction opens the config file in the user's default text
// editor. The file is created with the current options if missing.
func (a *App) editConfigAction(ctx *cli.Context) error {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}

	path := cfg.System.ConfigPath

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := cfg.Save(path); err != nil {
			return err
		}

		report.Info("created %s with the current options", path)
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func (a *App) beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	report.SetOutput(a.stderr)

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if lookupEnv(envNoColor, envJTravailNoColor) || ctx.Bool("no-color") {
		report.DisableStyling()
	}

	return nil
}
