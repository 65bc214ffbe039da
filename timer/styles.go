package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ottorg/jtravail/internal/session"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, padding)

	mainStyle = lipgloss.NewStyle().Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#9B9B9B"})

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	statusStyles = map[session.Status]lipgloss.Style{
		session.Idle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9B9B9B")),
		session.Work: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0DB43")).
			Bold(true),
		session.Pause: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#12EAEA")).
			Bold(true),
		session.LongPause: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C492B1")).
			Bold(true),
	}
)

func statusStyle(s session.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}

	return mainStyle
}
