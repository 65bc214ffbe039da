// Package intervallog records completed work and pause intervals in an
// append-only text file, one `start;end;kind` line per interval.
package intervallog

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/ottorg/jtravail/internal/osutil"
)

// Log is an interval log file.
type Log struct {
	fs   afero.Fs
	path string
}

// New returns the interval log stored at path on fsys.
func New(fsys afero.Fs, path string) *Log {
	return &Log{
		fs:   fsys,
		path: path,
	}
}

// Path returns the location of the log file.
func (l *Log) Path() string {
	return l.path
}

// Append adds e to the end of the log.
func (l *Log) Append(e Entry) error {
	if err := l.fs.MkdirAll(filepath.Dir(l.path), osutil.DirPermission); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := l.fs.OpenFile(
		l.path,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		osutil.FilePermission,
	)
	if err != nil {
		return fmt.Errorf("opening interval log: %w", err)
	}

	_, err = f.WriteString(e.String() + "\n")
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("writing interval log: %w", err)
	}

	return f.Close()
}

// Entries returns the logged intervals in file order. The file is opened
// when iteration starts and closed when it ends, so the sequence can be
// ranged over any number of times. A missing log yields no entries.
// Malformed lines are yielded as errors without stopping the iteration.
func (l *Log) Entries() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		f, err := l.fs.Open(l.path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				yield(Entry{}, fmt.Errorf("opening interval log: %w", err))
			}

			return
		}

		defer f.Close()

		scanner := bufio.NewScanner(f)

		for lineNum := 1; scanner.Scan(); lineNum++ {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			entry, err := ParseEntry(line)
			if err != nil {
				err = fmt.Errorf("line %d: %w", lineNum, err)
			}

			if !yield(entry, err) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(Entry{}, fmt.Errorf("reading interval log: %w", err))
		}
	}
}
