package config

import (
	"time"

	"github.com/ottorg/jtravail/internal/ui"
)

var (
	minDuration = 1 * time.Minute
	maxDuration = 720 * time.Minute

	minLongPausePeriod = 1
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"work", c.Session.WorkDuration},
		{"pause", c.Session.PauseDuration},
		{"long pause", c.Session.LongPauseDuration},
	}

	for _, d := range durations {
		if d.value < minDuration || d.value > maxDuration {
			return errInvalidDuration.Fmt(d.name, minDuration, maxDuration, d.value)
		}
	}

	if c.Session.LongPausePeriod < minLongPausePeriod {
		return errInvalidLongPausePeriod.Fmt(
			minLongPausePeriod,
			c.Session.LongPausePeriod,
		)
	}

	if _, err := ui.ParseFormat(c.Display.Format); err != nil {
		return errInvalidFormat.Wrap(err)
	}

	return nil
}
