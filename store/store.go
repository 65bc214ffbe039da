// Package store persists the current pomodoro session state to a single
// JSON file
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/ottorg/jtravail/internal/session"
	"github.com/ottorg/jtravail/internal/timeutil"
)

const fileMode fs.FileMode = 0o600

// record is the on-disk representation of the session state.
type record struct {
	StartTime *time.Time     `json:"start_time"`
	Status    session.Status `json:"status"`
	Iteration int            `json:"iteration"`
}

// Store is a file backed session state store.
type Store struct {
	fs   afero.Fs
	path string
}

// New returns a store that keeps its record at path on fsys.
func New(fsys afero.Fs, path string) *Store {
	return &Store{
		fs:   fsys,
		path: path,
	}
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the session state. A missing file yields the idle defaults.
// A file that cannot be understood yields the idle defaults along with an
// error matching ErrCorruptState and the specific condition.
func (s *Store) Load() (session.State, error) {
	b, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return session.Default(), nil
		}

		return session.Default(), fmt.Errorf("reading state file: %w", err)
	}

	state, err := decode(b)
	if err != nil {
		return session.Default(), ErrCorruptState.Fmt(s.path).Wrap(err)
	}

	return state, nil
}

// Save overwrites the state file with state.
func (s *Store) Save(state session.State) error {
	rec := record{
		Status:    state.Status,
		Iteration: state.Iteration,
	}

	if !state.StartTime.IsZero() {
		start := state.StartTime.Round(0)
		rec.StartTime = &start
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	b = append(b, '\n')

	if err := writeFileAtomic(s.fs, s.path, b, fileMode); err != nil {
		return fmt.Errorf("saving state file: %w", err)
	}

	return nil
}

// Delete removes the state file. A missing file is not an error.
func (s *Store) Delete() error {
	err := s.fs.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting state file: %w", err)
	}

	return nil
}

func decode(b []byte) (session.State, error) {
	state := session.Default()

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return state, nil
	}

	var v any

	if err := json.Unmarshal(b, &v); err != nil {
		return state, ErrParse.Wrap(err)
	}

	data, ok := v.(map[string]any)
	if !ok {
		return state, ErrUnexpectedContent
	}

	if raw, ok := data["status"]; ok {
		str, isStr := raw.(string)

		status := session.Status(str)
		if !isStr || !status.Valid() {
			return state, ErrUnknownStatus.Fmt(valueString(raw))
		}

		state.Status = status
	}

	if state.Status == session.Idle {
		return state, nil
	}

	start, err := decodeStartTime(data)
	if err != nil {
		return session.Default(), err
	}

	iteration, err := decodeIteration(data)
	if err != nil {
		return session.Default(), err
	}

	state.StartTime = start
	state.Iteration = iteration

	return state, nil
}

func decodeStartTime(data map[string]any) (time.Time, error) {
	raw := data["start_time"]
	if raw == nil {
		return time.Time{}, ErrNoStartTime
	}

	str, ok := raw.(string)
	if !ok {
		return time.Time{}, ErrInvalidStartTime.Fmt(valueString(raw))
	}

	t, err := timeutil.ParseISO(str)
	if err != nil {
		return time.Time{}, ErrInvalidStartTime.Fmt(str)
	}

	return t, nil
}

func decodeIteration(data map[string]any) (int, error) {
	raw := data["iteration"]
	if raw == nil {
		return 0, ErrNoIteration
	}

	invalid := ErrInvalidIteration.Fmt(valueString(raw))

	var n int

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 {
			return 0, invalid
		}

		n = int(v)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, invalid
		}

		n = i
	default:
		return 0, invalid
	}

	if n < 1 {
		return 0, invalid
	}

	return n, nil
}

func valueString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(b)
}
