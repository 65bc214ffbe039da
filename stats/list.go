package stats

import (
	"fmt"
	"io"

	"github.com/ottorg/jtravail/internal/ui"
	"github.com/ottorg/jtravail/intervallog"
)

const rowTimeFormat = "January 02, 2006 03:04 PM"

func printEntriesTable(w io.Writer, entries []intervallog.Entry) error {
	data := [][]string{
		{"#", "START", "END", "KIND", "DURATION"},
	}

	for i, e := range entries {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			e.Start.Format(rowTimeFormat),
			e.End.Format(rowTimeFormat),
			ui.StatusColor(e.Kind, e.Kind.Label()),
			formatDuration(e.Duration()),
		})
	}

	return ui.PrintTable(data, w)
}
