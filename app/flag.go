package app

import "github.com/urfave/cli/v2"

// sessionFlags returns the options shared by the app and every command so
// that they may be given on either side of the command name.
func sessionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "work-duration",
			Aliases: []string{"w"},
			Usage:   "Work duration in minutes (default: 25)",
		},
		&cli.IntFlag{
			Name:    "pause-duration",
			Aliases: []string{"p"},
			Usage:   "Pause duration in minutes (default: 5)",
		},
		&cli.IntFlag{
			Name:    "long-pause-duration",
			Aliases: []string{"l"},
			Usage:   "Long pause duration in minutes (default: 15)",
		},
		&cli.IntFlag{
			Name:    "long-pause-period",
			Aliases: []string{"P"},
			Usage:   "The number of work sessions before a long pause (default: 4)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Status line template, e.g. '{status}: {minutes:02}:{seconds:02}'",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Read options from this config file",
		},
		&cli.StringFlag{
			Name:  "state-file",
			Usage: "Keep the session state in this file",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Append completed intervals to this file",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "Write a debug log to the data directory",
			EnvVars: []string{"JTRAVAIL_DEBUG"},
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable coloured output",
		},
	}
}

func logFlags() []cli.Flag {
	return append(sessionFlags(),
		&cli.StringFlag{
			Name:  "period",
			Usage: "Reporting period: all-time, today, yesterday, 7days, 14days, 30days, 90days, 180days or 365days",
			Value: "today",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Report intervals from this date (e.g. 'yesterday 9am', '2024-03-01')",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Report intervals up to this date",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Print the report as JSON",
		},
	)
}
