package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ottorg/jtravail/internal/timeutil"
)

// FilterConfig selects the interval log entries to report on.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Period    timeutil.Period
	JSON      bool
}

// Filter reads the log filter flags. --since and --until take precedence
// over --period.
func Filter(ctx *cli.Context, now time.Time) (*FilterConfig, error) {
	f := &FilterConfig{
		Period: timeutil.Period(ctx.String("period")),
		JSON:   ctx.Bool("json"),
	}

	if f.Period == "" {
		f.Period = timeutil.PeriodToday
	}

	if !slices.Contains(timeutil.PeriodCollection, f.Period) {
		names := make([]string, len(timeutil.PeriodCollection))
		for i, p := range timeutil.PeriodCollection {
			names[i] = string(p)
		}

		return nil, errInvalidPeriod.Fmt(strings.Join(names, ", "))
	}

	f.StartTime, f.EndTime = timeutil.PeriodRange(f.Period, now)

	if since := ctx.String("since"); since != "" {
		t, err := timeutil.FromStr(since, now)
		if err != nil {
			return nil, errInvalidDate.Fmt("since", since).Wrap(err)
		}

		f.StartTime = t
		f.EndTime = now
	}

	if until := ctx.String("until"); until != "" {
		t, err := timeutil.FromStr(until, now)
		if err != nil {
			return nil, errInvalidDate.Fmt("until", until).Wrap(err)
		}

		f.EndTime = t
	}

	if !f.StartTime.IsZero() && f.EndTime.Before(f.StartTime) {
		return nil, errInvalidRange.Fmt(
			f.StartTime.Format(time.DateTime),
			f.EndTime.Format(time.DateTime),
		)
	}

	return f, nil
}

// Overlaps reports whether an interval from start to end shares any time
// with the filter range. A zero StartTime or EndTime leaves that side open.
func (f *FilterConfig) Overlaps(start, end time.Time) bool {
	if !f.StartTime.IsZero() && !end.After(f.StartTime) {
		return false
	}

	if !f.EndTime.IsZero() && !start.Before(f.EndTime) {
		return false
	}

	return true
}
