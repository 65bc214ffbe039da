// Package session defines the pomodoro session statuses and the transition
// table that cycles between them
package session

import "time"

// Status is the state of the pomodoro session.
type Status string

const (
	Idle      Status = "idle"
	Work      Status = "work"
	Pause     Status = "pause"
	LongPause Status = "long-pause"
)

// DefaultLongPausePeriod is the number of work sessions before a long pause.
const DefaultLongPausePeriod = 4

var labels = map[Status]string{
	Idle:      "Idle",
	Work:      "Work",
	Pause:     "Pause",
	LongPause: "Long Pause",
}

// Label returns the human readable name of the status.
func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}

	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Next returns the status and iteration that follow status. period must be
// at least 1.
func Next(status Status, iteration, period int) (Status, int) {
	switch status {
	case Work:
		if iteration%period != 0 {
			return Pause, iteration
		}

		return LongPause, iteration
	case Pause:
		return Work, iteration + 1
	case LongPause:
		if iteration%period != 0 {
			return Work, iteration + 1
		}

		return Work, 1
	default:
		return Work, 1
	}
}

// State is the persisted session state.
type State struct {
	// StartTime is when the current status began. It is the zero time
	// when the session is idle.
	StartTime time.Time
	Status    Status
	Iteration int
}

// Default returns the state of a session that is not in progress.
func Default() State {
	return State{
		Status:    Idle,
		Iteration: 1,
	}
}

// Elapsed returns the time spent in the current status as of now.
func (s State) Elapsed(now time.Time) time.Duration {
	if s.Status == Idle || s.StartTime.IsZero() {
		return 0
	}

	return now.Sub(s.StartTime)
}
