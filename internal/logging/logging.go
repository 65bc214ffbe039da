// Package logging sets up the structured debug logger
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ottorg/jtravail/internal/osutil"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// New returns a JSON logger writing to a rotating file at path when debug
// is set. Otherwise all records are discarded. The returned closer must be
// called before exit.
func New(debug bool, path string) (*slog.Logger, io.Closer, error) {
	if !debug || path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	})

	logger := slog.New(handler).With(slog.Int("pid", os.Getpid()))

	return logger, w, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
