package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options. Only flags
// the user actually set are applied.
type CLIOptions struct {
	WorkDuration      *int
	PauseDuration     *int
	LongPauseDuration *int
	LongPausePeriod   *int
	Format            *string
	StateFile         string
	LogFile           string
	Debug             bool
	NoColor           bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags may be given before or after the command name; the command's own
// value wins.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			WorkDuration:      intFlag(ctx, "work-duration"),
			PauseDuration:     intFlag(ctx, "pause-duration"),
			LongPauseDuration: intFlag(ctx, "long-pause-duration"),
			LongPausePeriod:   intFlag(ctx, "long-pause-period"),
			Format:            stringFlag(ctx, "format"),
			Debug:             boolFlag(ctx, "debug"),
			NoColor:           boolFlag(ctx, "no-color"),
		}

		if v := stringFlag(ctx, "state-file"); v != nil {
			opts.StateFile = *v
		}

		if v := stringFlag(ctx, "log-file"); v != nil {
			opts.LogFile = *v
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// FlagContext returns the innermost context in which name was set, or nil.
func FlagContext(ctx *cli.Context, name string) *cli.Context {
	for _, c := range ctx.Lineage() {
		if c.IsSet(name) {
			return c
		}
	}

	return nil
}

func intFlag(ctx *cli.Context, name string) *int {
	c := FlagContext(ctx, name)
	if c == nil {
		return nil
	}

	v := c.Int(name)

	return &v
}

func stringFlag(ctx *cli.Context, name string) *string {
	c := FlagContext(ctx, name)
	if c == nil {
		return nil
	}

	v := c.String(name)

	return &v
}

func boolFlag(ctx *cli.Context, name string) bool {
	c := FlagContext(ctx, name)
	if c == nil {
		return false
	}

	return c.Bool(name)
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	durations := []struct {
		flag  *int
		field *time.Duration
	}{
		{opts.WorkDuration, &c.Session.WorkDuration},
		{opts.PauseDuration, &c.Session.PauseDuration},
		{opts.LongPauseDuration, &c.Session.LongPauseDuration},
	}

	for _, d := range durations {
		if d.flag != nil {
			*d.field = time.Duration(*d.flag) * time.Minute
		}
	}

	if opts.LongPausePeriod != nil {
		c.Session.LongPausePeriod = *opts.LongPausePeriod
	}

	if opts.Format != nil {
		c.Display.Format = *opts.Format
	}

	if opts.StateFile != "" {
		c.System.StatePath = opts.StateFile
	}

	if opts.LogFile != "" {
		c.System.LogPath = opts.LogFile
	}

	c.System.Debug = opts.Debug
	c.Display.NoColor = opts.NoColor
}
