package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ottorg/jtravail/internal/session"
)

const timeFormat = "15:04:05"

// elapsedFraction is the share of the status duration already spent,
// capped at 1.
func (t *Timer) elapsedFraction() float64 {
	if t.current.Duration <= 0 {
		return 0
	}

	f := 1 - t.current.Remaining.Seconds()/t.current.Duration.Seconds()

	return min(max(f, 0), 1)
}

func (t *Timer) hintView() string {
	switch {
	case t.current.Status == session.Idle:
		return hintStyle.Render("press n to start working")
	case t.current.Remaining < 0:
		return overdueStyle.Render("overdue, press n to move on")
	default:
		end := t.current.StartTime.Add(t.current.Duration)
		return hintStyle.Render("until " + end.Format(timeFormat))
	}
}

func (t *Timer) helpView() string {
	bindings := []key.Binding{defaultKeymap.next}

	if t.current.Status != session.Idle {
		bindings = append(bindings, defaultKeymap.stop)
	}

	return t.help.ShortHelpView(append(bindings, defaultKeymap.quit))
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(statusStyle(t.current.Status).Render(t.current.Status.Label()))
	s.WriteString(" ")
	s.WriteString(t.hintView())
	s.WriteString("\n\n")
	s.WriteString(mainStyle.Render(t.current.Line))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.elapsedFraction()))
	s.WriteString("\n\n")
	s.WriteString(t.helpView())

	return baseStyle.Render(s.String())
}
