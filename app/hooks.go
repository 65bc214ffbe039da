package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/ottorg/jtravail/internal/apperr"
	"github.com/ottorg/jtravail/internal/session"
	"github.com/ottorg/jtravail/pomodoro"
	"github.com/ottorg/jtravail/report"
)

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse cmd option",
	}

	errRunCmd = &apperr.Error{
		Message: "cmd hook %q failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)

func notificationText(e *pomodoro.Engine, period int) (title, message string) {
	title = "jtravail"

	if e.Status() == session.Idle {
		return title, "Session stopped"
	}

	return title, fmt.Sprintf(
		"%s started (%d/%d)",
		e.Status().Label(),
		e.Iteration(),
		period,
	)
}

// runSessionCmd executes the configured command with the new status in its
// environment.
func (r *invocation) runSessionCmd(e *pomodoro.Engine) error {
	if r.cfg.Hooks.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(r.cfg.Hooks.Cmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(
		os.Environ(),
		"JTRAVAIL_STATUS="+string(e.Status()),
		"JTRAVAIL_ITERATION="+strconv.Itoa(e.Iteration()),
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return errRunCmd.Fmt(r.cfg.Hooks.Cmd).Wrap(err)
	}

	r.logger.Debug(
		"cmd hook finished",
		slog.String("cmd", r.cfg.Hooks.Cmd),
		slog.String("output", string(out)),
	)

	return nil
}

// runHooks notifies and runs the configured command after a transition.
// Failures are reported but never undo the transition.
func (r *invocation) runHooks(e *pomodoro.Engine) {
	if r.cfg.Hooks.Notify {
		title, msg := notificationText(e, r.cfg.Session.LongPausePeriod)

		if err := r.app.notify(title, msg); err != nil {
			r.logger.Warn("notification failed", slog.Any("error", err))
			report.Error(errNotify.Wrap(err))
		}
	}

	if err := r.runSessionCmd(e); err != nil {
		r.logger.Warn("cmd hook failed", slog.Any("error", err))
		report.Error(err)
	}
}
