// Package lock serializes state changes across concurrent invocations. The
// lock is a small bbolt database whose file lock is held while a command
// loads, mutates and saves the session state.
package lock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
	bolterrors "go.etcd.io/bbolt/errors"

	"github.com/ottorg/jtravail/internal/apperr"
	"github.com/ottorg/jtravail/internal/osutil"
)

const (
	fileMode fs.FileMode = 0o600

	// DefaultTimeout is how long to wait for another invocation to finish.
	DefaultTimeout = 2 * time.Second
)

var (
	holderBucket = []byte("holder")
	holderKey    = []byte("last")
)

var errLocked = &apperr.Error{
	Message: "another jtravail invocation is holding %s",
}

// ErrLocked is returned when the lock could not be acquired in time.
var ErrLocked = errLocked

// Holder describes the process that acquired the lock.
type Holder struct {
	AcquiredAt time.Time `json:"acquired_at"`
	Command    string    `json:"command"`
	PID        int       `json:"pid"`
}

// Lock is an acquired lock.
type Lock struct {
	db       *bolt.DB
	previous *Holder
}

// Acquire takes the lock at path, waiting up to timeout for a concurrent
// holder to release it.
func Acquire(path string, timeout time.Duration) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: timeout})
	if err != nil {
		if errors.Is(err, bolterrors.ErrTimeout) {
			return nil, errLocked.Fmt(path)
		}

		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	l := &Lock{db: db}

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(holderBucket)
		if err != nil {
			return err
		}

		if prev := b.Get(holderKey); prev != nil {
			var h Holder
			if json.Unmarshal(prev, &h) == nil {
				l.previous = &h
			}
		}

		current, err := json.Marshal(Holder{
			PID:        os.Getpid(),
			Command:    strings.Join(os.Args, " "),
			AcquiredAt: time.Now(),
		})
		if err != nil {
			return err
		}

		return b.Put(holderKey, current)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("recording lock holder: %w", err)
	}

	return l, nil
}

// Previous returns the holder recorded by the last invocation, if any.
func (l *Lock) Previous() *Holder {
	return l.previous
}

// Release frees the lock.
func (l *Lock) Release() error {
	return l.db.Close()
}
