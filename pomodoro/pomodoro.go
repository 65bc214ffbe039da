// Package pomodoro implements the session engine: the work, pause and long
// pause cycle, its persistence across invocations and the logging of
// completed intervals.
package pomodoro

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ottorg/jtravail/internal/clock"
	"github.com/ottorg/jtravail/internal/session"
	"github.com/ottorg/jtravail/intervallog"
	"github.com/ottorg/jtravail/store"
)

// StateStore persists the session state between invocations.
type StateStore interface {
	Load() (session.State, error)
	Save(state session.State) error
	Delete() error
}

// IntervalLog receives completed intervals.
type IntervalLog interface {
	Append(e intervallog.Entry) error
}

// Durations holds the configured length of each non-idle status.
type Durations struct {
	Work      time.Duration
	Pause     time.Duration
	LongPause time.Duration
}

// For returns the configured duration of status.
func (d Durations) For(status session.Status) time.Duration {
	//nolint:exhaustive // idle has no duration
	switch status {
	case session.Work:
		return d.Work
	case session.Pause:
		return d.Pause
	case session.LongPause:
		return d.LongPause
	default:
		return 0
	}
}

// Engine is the pomodoro session state machine.
type Engine struct {
	store  StateStore
	log    IntervalLog
	clock  clock.Clock
	stderr io.Writer
	logger *slog.Logger
	state  session.State
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithStderr sets where state file diagnostics are written.
func WithStderr(w io.Writer) Option {
	return func(e *Engine) {
		e.stderr = w
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine and loads the persisted state. A corrupt state file
// is reported and treated as an idle session; only I/O failures are
// returned as errors.
func New(st StateStore, log IntervalLog, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:  st,
		log:    log,
		clock:  clock.System{},
		stderr: io.Discard,
		logger: slog.New(slog.DiscardHandler),
		state:  session.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.Reload(); err != nil {
		return nil, err
	}

	return e, nil
}

// Reload re-reads the persisted state.
func (e *Engine) Reload() error {
	state, err := e.store.Load()
	if err != nil {
		if !errors.Is(err, store.ErrCorruptState) {
			return err
		}

		fmt.Fprintf(e.stderr, "%s. State was reset.\n", err)
		e.logger.Warn("state reset", slog.Any("error", err))
	}

	e.state = state

	return nil
}

// Status returns the current status.
func (e *Engine) Status() session.Status {
	return e.state.Status
}

// Iteration returns the work iteration within the current long pause
// period.
func (e *Engine) Iteration() int {
	return e.state.Iteration
}

// StartTime returns when the current status began. ok is false when idle.
func (e *Engine) StartTime() (start time.Time, ok bool) {
	if e.state.Status == session.Idle {
		return time.Time{}, false
	}

	return e.state.StartTime, true
}

// State returns a copy of the current state.
func (e *Engine) State() session.State {
	return e.state
}

// Advance ends the current status and starts the next one in the cycle.
// The new state is saved before the ended interval is logged, so a failed
// save never leaves a logged interval behind.
func (e *Engine) Advance(longPausePeriod int) error {
	if longPausePeriod < 1 {
		return ErrInvalidPeriod.Fmt(longPausePeriod)
	}

	now := e.clock.Now()
	prev := e.state

	status, iteration := session.Next(
		prev.Status,
		prev.Iteration,
		longPausePeriod,
	)

	next := session.State{
		Status:    status,
		Iteration: iteration,
		StartTime: now,
	}

	if err := e.store.Save(next); err != nil {
		return err
	}

	e.state = next

	e.logger.Info(
		"session advanced",
		slog.String("from", string(prev.Status)),
		slog.String("to", string(status)),
		slog.Int("iteration", iteration),
		slog.Int("long_pause_period", longPausePeriod),
	)

	if prev.Status == session.Idle {
		return nil
	}

	entry := intervallog.Entry{
		Start: prev.StartTime,
		End:   now,
		Kind:  prev.Status,
	}

	if err := e.log.Append(entry); err != nil {
		return err
	}

	e.logger.Debug(
		"interval logged",
		slog.String("kind", string(entry.Kind)),
		slog.Duration("duration", entry.Duration()),
	)

	return nil
}

// Stop ends the session without logging the current interval. Stopping an
// idle session is a no-op.
func (e *Engine) Stop() error {
	if err := e.store.Delete(); err != nil {
		return err
	}

	e.logger.Info("session stopped", slog.String("from", string(e.state.Status)))

	return e.Reload()
}

// RemainingTime returns how long is left in the current status. It is zero
// when idle and negative once the configured duration has elapsed.
func (e *Engine) RemainingTime(d Durations) time.Duration {
	if e.state.Status == session.Idle {
		return 0
	}

	return d.For(e.state.Status) - e.state.Elapsed(e.clock.Now())
}
