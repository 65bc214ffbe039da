package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ottorg/jtravail/internal/ui"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		ui.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		ui.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		ui.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		ui.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		ui.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		ui.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + commands + options + env
}

// formatVariables lists the status format variables as {name} placeholders.
func formatVariables() string {
	vars := make([]string, 0, len(ui.Variables))
	for _, v := range ui.Variables {
		vars = append(vars, "{"+v+"}")
	}

	return strings.Join(vars, ", ")
}

func envHelp() string {
	return `
JTRAVAIL_WORK_DURATION, JTRAVAIL_PAUSE_DURATION, JTRAVAIL_LONG_PAUSE_DURATION: durations in minutes.

JTRAVAIL_LONG_PAUSE_PERIOD: the number of work sessions before a long pause.

JTRAVAIL_STATUS_FORMAT: the status line template. Variables: ` + formatVariables() + `.

JTRAVAIL_DARK_THEME: use colors suited to a dark terminal background.

JTRAVAIL_NOTIFY, JTRAVAIL_CMD: the desktop notification and command run after each transition.

JTRAVAIL_DEBUG: set to 1 to write a debug log.

JTRAVAIL_ENV: keep files for a separate environment, e.g. config_dev.yml.

JTRAVAIL_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.`
}
