// Package report prints user facing messages to the terminal
package report

import (
	"io"

	"github.com/pterm/pterm"
)

// SetOutput redirects all messages to w.
func SetOutput(w io.Writer) {
	pterm.Error.Writer = w
	pterm.Warning.Writer = w
	pterm.Info.Writer = w
	pterm.Success.Writer = w
}

// DisableStyling turns off colors and message prefixes.
func DisableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Warning(format string, a ...any) {
	pterm.Warning.Printfln(format, a...)
}

func Info(format string, a ...any) {
	pterm.Info.Printfln(format, a...)
}

func Success(format string, a ...any) {
	pterm.Success.Printfln(format, a...)
}
