package intervallog

import (
	"strings"
	"time"

	"github.com/ottorg/jtravail/internal/apperr"
	"github.com/ottorg/jtravail/internal/session"
	"github.com/ottorg/jtravail/internal/timeutil"
)

const separator = ";"

var (
	errMalformedLine = &apperr.Error{
		Message: "malformed log line %q",
	}

	errInvalidTimestamp = &apperr.Error{
		Message: "invalid timestamp %q",
	}

	errUnknownKind = &apperr.Error{
		Message: "unknown interval kind %q",
	}
)

// Entry is one completed interval.
type Entry struct {
	Start time.Time      `json:"start"`
	End   time.Time      `json:"end"`
	Kind  session.Status `json:"kind"`
}

// Duration returns the length of the interval.
func (e Entry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// String formats the entry as a log line without the trailing newline.
func (e Entry) String() string {
	return strings.Join([]string{
		timeutil.FormatISO(e.Start),
		timeutil.FormatISO(e.End),
		string(e.Kind),
	}, separator)
}

// ParseEntry parses a single log line.
func ParseEntry(line string) (Entry, error) {
	line = strings.TrimSpace(line)

	columns := strings.SplitN(line, separator, 3)
	if len(columns) != 3 {
		return Entry{}, errMalformedLine.Fmt(line)
	}

	start, err := timeutil.ParseISO(columns[0])
	if err != nil {
		return Entry{}, errInvalidTimestamp.Fmt(columns[0])
	}

	end, err := timeutil.ParseISO(columns[1])
	if err != nil {
		return Entry{}, errInvalidTimestamp.Fmt(columns[1])
	}

	// idle time is never logged
	kind := session.Status(strings.TrimSpace(columns[2]))
	if !kind.Valid() || kind == session.Idle {
		return Entry{}, errUnknownKind.Fmt(kind)
	}

	return Entry{
		Start: start,
		End:   end,
		Kind:  kind,
	}, nil
}
