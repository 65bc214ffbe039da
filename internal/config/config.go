// Package config resolves jtravail options from built-in defaults, the
// config file, the environment and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ottorg/jtravail/pomodoro"
)

type (
	// Config holds all configuration settings
	Config struct {
		Session SessionConfig
		Display DisplayConfig
		Hooks   HooksConfig
		System  SystemConfig
	}

	// SessionConfig holds the pomodoro cycle settings
	SessionConfig struct {
		WorkDuration      time.Duration
		PauseDuration     time.Duration
		LongPauseDuration time.Duration
		LongPausePeriod   int
	}

	// DisplayConfig holds output settings
	DisplayConfig struct {
		Format    string
		NoColor   bool
		DarkTheme bool
	}

	// HooksConfig holds the actions run after each transition
	HooksConfig struct {
		Cmd    string
		Notify bool
	}

	// SystemConfig holds file locations
	SystemConfig struct {
		ConfigPath   string
		StatePath    string
		LogPath      string
		DebugLogPath string
		Debug        bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.4.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Durations returns the configured status durations.
func (c *Config) Durations() pomodoro.Durations {
	return pomodoro.Durations{
		Work:      c.Session.WorkDuration,
		Pause:     c.Session.PauseDuration,
		LongPause: c.Session.LongPauseDuration,
	}
}

// New creates a new Config and applies options in order. Later options
// override earlier ones.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}

// WithPaths sets the default file locations. Paths already set by another
// option are kept.
func WithPaths(configPath, statePath, logPath, debugLogPath string) Option {
	return func(c *Config) error {
		setDefault(&c.System.ConfigPath, configPath)
		setDefault(&c.System.StatePath, statePath)
		setDefault(&c.System.LogPath, logPath)
		setDefault(&c.System.DebugLogPath, debugLogPath)

		return nil
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
