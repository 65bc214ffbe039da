// Package app implements the jtravail command-line interface
package app

import (
	"io"
	"os"

	"github.com/gen2brain/beeep"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/ottorg/jtravail/internal/clock"
	"github.com/ottorg/jtravail/internal/config"
)

// Notifier shows a desktop notification.
type Notifier func(title, message string) error

// App holds the dependencies shared by all commands.
type App struct {
	clock  clock.Clock
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	notify Notifier
}

// Option configures an App.
type Option func(*App)

// WithClock sets the time source.
func WithClock(c clock.Clock) Option {
	return func(a *App) {
		a.clock = c
	}
}

// WithOutput sets where status lines and diagnostics are written.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n Notifier) Option {
	return func(a *App) {
		a.notify = n
	}
}

// New returns an App using the real clock, file system and terminal.
func New(opts ...Option) *App {
	a := &App{
		clock:  clock.System{},
		fs:     afero.NewOsFs(),
		stdin:  config.Stdin,
		stdout: config.Stdout,
		stderr: config.Stderr,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Get retrieves the jtravail app instance.
func Get() *cli.App {
	return New().CLI()
}

// CLI builds the command-line app.
func (a *App) CLI() *cli.App {
	return &cli.App{
		Name: "jtravail",
		Usage: `
		jtravail is a Pomodoro timer for the shell prompt and status bar. Each
		invocation prints the current status; 'next' moves through work, pause
		and long pause, 'stop' ends the session.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Reader:               a.stdin,
		Writer:               a.stdout,
		ErrWriter:            a.stderr,
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Print the current status (the default command)",
				Flags:  sessionFlags(),
				Action: a.statusAction,
			},
			{
				Name:   "next",
				Usage:  "End the current status and start the next one",
				Flags:  sessionFlags(),
				Action: a.nextAction,
			},
			{
				Name:   "stop",
				Usage:  "End the session without logging the current interval",
				Flags:  sessionFlags(),
				Action: a.stopAction,
			},
			{
				Name:   "log",
				Usage:  "Report the completed intervals of a period. Defaults to today",
				Flags:  logFlags(),
				Action: a.logAction,
			},
			{
				Name:   "watch",
				Usage:  "Show the session in a live view",
				Flags:  sessionFlags(),
				Action: a.watchAction,
			},
			{
				Name:   "configure",
				Usage:  "Choose durations interactively and save them to the config file",
				Flags:  sessionFlags(),
				Action: a.configureAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Flags:  sessionFlags(),
				Action: a.editConfigAction,
			},
		},
		Flags:  sessionFlags(),
		Action: a.statusAction,
		Before: a.beforeAction,
	}
}

func lookupEnv(names ...string) bool {
	for _, name := range names {
		if _, exists := os.LookupEnv(name); exists {
			return true
		}
	}

	return false
}
