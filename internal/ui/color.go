package ui

import (
	"github.com/pterm/pterm"

	"github.com/ottorg/jtravail/internal/session"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

// StatusColor colors a label according to the status it describes.
func StatusColor(status session.Status, a any) string {
	//nolint:exhaustive // idle is uncolored
	switch status {
	case session.Work:
		return Red(a)
	case session.Pause:
		return Green(a)
	case session.LongPause:
		return Blue(a)
	default:
		return pterm.Sprint(a)
	}
}
