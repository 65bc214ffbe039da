package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.next):
		return t, run(t.sess.Advance)

	case key.Matches(msg, defaultKeymap.stop):
		return t, run(t.sess.Stop)

	case key.Matches(msg, defaultKeymap.quit):
		t.quitting = true

		return t, tea.Quit
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.logger.Debug("timer message", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t, tea.Batch(run(t.sess.Refresh), tick())

	case snapshotMsg:
		t.current = Snapshot(msg)

		return t, nil

	case errMsg:
		t.err = msg.err
		t.quitting = true

		return t, tea.Quit

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
