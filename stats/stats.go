// Package stats summarizes the interval log over a reporting period
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ottorg/jtravail/internal/session"
	"github.com/ottorg/jtravail/internal/timeutil"
	"github.com/ottorg/jtravail/internal/ui"
	"github.com/ottorg/jtravail/intervallog"
)

const (
	barChartChar  = "▇"
	dayFormat     = "2006-01-02"
	hoursInADay   = 24
	NoEntriesMsg  = "No intervals found for the specified time range"
	reportingDate = "January 02, 2006"
)

var kinds = []session.Status{session.Work, session.Pause, session.LongPause}

// Total is the time spent in one status.
type Total struct {
	Duration time.Duration `json:"-"`
	Minutes  float64       `json:"minutes"`
	Count    int           `json:"count"`
}

// Summary aggregates the intervals that overlap a reporting period.
type Summary struct {
	Start   time.Time                `json:"start"`
	End     time.Time                `json:"end"`
	Totals  map[session.Status]Total `json:"totals"`
	Daily   map[string]time.Duration `json:"-"`
	Entries []intervallog.Entry      `json:"entries"`
}

// Compute builds a summary of entries between start and end. Intervals
// crossing a boundary only count the part inside the period. A zero start
// means the period begins with the first entry.
func Compute(entries []intervallog.Entry, start, end time.Time) *Summary {
	s := &Summary{
		Start:  start,
		End:    end,
		Totals: make(map[session.Status]Total),
		Daily:  make(map[string]time.Duration),
	}

	for _, e := range entries {
		if e.End.Before(e.Start) {
			continue
		}

		from, d := overlap(e, start, end)
		if d <= 0 {
			continue
		}

		total := s.Totals[e.Kind]
		total.Duration += d
		total.Minutes = total.Duration.Minutes()
		total.Count++
		s.Totals[e.Kind] = total

		if e.Kind == session.Work {
			s.Daily[from.Format(dayFormat)] += d
		}

		s.Entries = append(s.Entries, e)
	}

	if s.Start.IsZero() && len(s.Entries) > 0 {
		s.Start = timeutil.RoundToStart(s.Entries[0].Start)
	}

	return s
}

func overlap(e intervallog.Entry, start, end time.Time) (time.Time, time.Duration) {
	from, to := e.Start, e.End

	if !start.IsZero() && from.Before(start) {
		from = start
	}

	if !end.IsZero() && to.After(end) {
		to = end
	}

	return from, to.Sub(from)
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)

	h := d / time.Hour
	m := (d % time.Hour) / time.Minute

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %02dm", h, m)
}

func (s *Summary) totalsSection() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", ui.Blue("Summary")))

	for _, kind := range kinds {
		total := s.Totals[kind]

		b.WriteString(fmt.Sprintf(
			"%s: %s (%d)\n",
			kind.Label(),
			ui.StatusColor(kind, formatDuration(total.Duration)),
			total.Count,
		))
	}

	return b.String()
}

func (s *Summary) dailyChart() string {
	if s.End.Sub(s.Start) <= hoursInADay*time.Hour || len(s.Daily) == 0 {
		return ""
	}

	days := make([]string, 0, len(s.Daily))
	for day := range s.Daily {
		days = append(days, day)
	}

	slices.Sort(days)

	bars := make(pterm.Bars, 0, len(days))

	for _, day := range days {
		bars = append(bars, pterm.Bar{
			Label: day,
			Value: timeutil.Round(s.Daily[day].Minutes()),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return ui.Blue("\nDaily work (minutes)") + chart
}

// Show prints the entries table followed by the totals.
func (s *Summary) Show(w io.Writer) error {
	if len(s.Entries) == 0 {
		pterm.Info.WithWriter(w).Println(NoEntriesMsg)
		return nil
	}

	timePeriod := "Reporting period: " + s.Start.Format(reportingDate) +
		" - " + s.End.Format(reportingDate)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	fmt.Fprint(w, header)

	if err := printEntriesTable(w, s.Entries); err != nil {
		return err
	}

	fmt.Fprintln(w, strings.TrimSpace(s.totalsSection()+s.dailyChart()))

	return nil
}
