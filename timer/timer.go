// Package timer displays the pomodoro session in a live terminal view
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ottorg/jtravail/internal/session"
)

const (
	padding  = 2
	maxWidth = 60

	refreshInterval = time.Second
)

// Snapshot is what the view shows of the session at one instant.
type Snapshot struct {
	Status    session.Status
	Line      string
	Remaining time.Duration
	Duration  time.Duration
	StartTime time.Time
}

// Session gives the view access to the persisted session. Each call reads
// the current state so that changes made by other invocations show up.
type Session interface {
	Refresh() (Snapshot, error)
	Advance() (Snapshot, error)
	Stop() (Snapshot, error)
}

type (
	tickMsg time.Time

	snapshotMsg Snapshot

	errMsg struct {
		err error
	}
)

// Timer is the bubbletea model of the live view.
type Timer struct {
	sess     Session
	logger   *slog.Logger
	current  Snapshot
	err      error
	help     help.Model
	progress progress.Model
	quitting bool
}

// New returns a live view over sess.
func New(sess Session, logger *slog.Logger) (*Timer, error) {
	if sess == nil {
		return nil, errNoSession
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	snap, err := sess.Refresh()
	if err != nil {
		return nil, err
	}

	return &Timer{
		sess:    sess,
		logger:  logger,
		current: snap,
		help:    help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(maxWidth),
			progress.WithoutPercentage(),
		),
	}, nil
}

// Run shows the view until the user quits.
func (t *Timer) Run() error {
	m, err := tea.NewProgram(t).Run()
	if err != nil {
		return err
	}

	if final, ok := m.(*Timer); ok && final.err != nil {
		return final.err
	}

	return nil
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func run(op func() (Snapshot, error)) tea.Cmd {
	return func() tea.Msg {
		snap, err := op()
		if err != nil {
			return errMsg{err}
		}

		return snapshotMsg(snap)
	}
}

func (t *Timer) Init() tea.Cmd {
	return tick()
}

// Err returns the error that ended the view, if any.
func (t *Timer) Err() error {
	return t.err
}
