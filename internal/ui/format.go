package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ottorg/jtravail/internal/apperr"
	"github.com/ottorg/jtravail/internal/session"
	"github.com/ottorg/jtravail/internal/timeutil"
)

// DefaultFormat renders e.g. "1/4 Work: 24:59".
const DefaultFormat = "{iteration}/{long_pause_period} {status}: {remaining_sign}{minutes:02}:{seconds:02}"

var (
	errUnclosedBrace = &apperr.Error{
		Message: "invalid format %q: unclosed '{'",
	}

	errSingleCloseBrace = &apperr.Error{
		Message: "invalid format %q: single '}' encountered",
	}

	errUnknownVariable = &apperr.Error{
		Message: "invalid format %q: unknown variable %q",
	}

	errInvalidSpec = &apperr.Error{
		Message: "invalid format %q: bad format spec %q for %q",
	}
)

// Variables lists the names a status format may reference.
var Variables = []string{
	"status",
	"minutes",
	"seconds",
	"total_seconds",
	"iteration",
	"long_pause_period",
	"remaining_sign",
}

// StatusLine holds the values substituted into a status format.
type StatusLine struct {
	Status          session.Status
	Remaining       time.Duration
	Iteration       int
	LongPausePeriod int
}

func (l StatusLine) lookup(name string) any {
	r := timeutil.SplitDuration(l.Remaining)

	switch name {
	case "status":
		return l.Status.Label()
	case "minutes":
		return r.Minutes
	case "seconds":
		return r.Seconds
	case "total_seconds":
		return r.Total
	case "iteration":
		return l.Iteration
	case "long_pause_period":
		return l.LongPausePeriod
	case "remaining_sign":
		return r.Sign
	}

	return nil
}

type segment struct {
	literal string
	name    string
	width   int
	zero    bool
}

// Format is a parsed status line template. Variables are written as
// {name}, optionally with a width such as {minutes:02}. Literal braces are
// written {{ and }}.
type Format struct {
	raw      string
	segments []segment
}

// ParseFormat parses and validates a status line template.
func ParseFormat(tmpl string) (*Format, error) {
	f := &Format{raw: tmpl}

	var lit strings.Builder

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]

		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				lit.WriteByte('{')
				i++

				continue
			}

			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return nil, errUnclosedBrace.Fmt(tmpl)
			}

			seg, err := parseField(tmpl, tmpl[i+1:i+end])
			if err != nil {
				return nil, err
			}

			if lit.Len() > 0 {
				f.segments = append(f.segments, segment{literal: lit.String()})
				lit.Reset()
			}

			f.segments = append(f.segments, seg)
			i += end
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				lit.WriteByte('}')
				i++

				continue
			}

			return nil, errSingleCloseBrace.Fmt(tmpl)
		default:
			lit.WriteByte(c)
		}
	}

	if lit.Len() > 0 {
		f.segments = append(f.segments, segment{literal: lit.String()})
	}

	return f, nil
}

func parseField(tmpl, field string) (segment, error) {
	name, spec, hasSpec := strings.Cut(field, ":")

	if !slices.Contains(Variables, name) {
		return segment{}, errUnknownVariable.Fmt(tmpl, name)
	}

	seg := segment{name: name}

	if !hasSpec {
		return seg, nil
	}

	digits := strings.TrimSuffix(spec, "d")
	if strings.HasSuffix(spec, "d") && (name == "status" || name == "remaining_sign") {
		return segment{}, errInvalidSpec.Fmt(tmpl, spec, name)
	}

	seg.zero = strings.HasPrefix(digits, "0") && len(digits) > 1

	width, err := strconv.Atoi(digits)
	if err != nil || width < 0 {
		return segment{}, errInvalidSpec.Fmt(tmpl, spec, name)
	}

	seg.width = width

	return seg, nil
}

// String returns the template the format was parsed from.
func (f *Format) String() string {
	return f.raw
}

// Render substitutes the values of line into the format.
func (f *Format) Render(line StatusLine) string {
	var b strings.Builder

	for _, seg := range f.segments {
		if seg.name == "" {
			b.WriteString(seg.literal)
			continue
		}

		v := line.lookup(seg.name)

		switch val := v.(type) {
		case int:
			if seg.zero {
				fmt.Fprintf(&b, "%0*d", seg.width, val)
			} else {
				fmt.Fprintf(&b, "%*d", seg.width, val)
			}
		default:
			fmt.Fprintf(&b, "%-*v", seg.width, val)
		}
	}

	return b.String()
}
