package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ottorg/jtravail/internal/osutil"
	"github.com/ottorg/jtravail/internal/session"
	"github.com/ottorg/jtravail/internal/ui"
)

// Keys live under the options section of the config file.
const (
	keyWorkDuration      = "options.work_duration"
	keyPauseDuration     = "options.pause_duration"
	keyLongPauseDuration = "options.long_pause_duration"
	keyLongPausePeriod   = "options.long_pause_period"
	keyFormat            = "options.format"
	keyDarkTheme         = "options.dark_theme"
	keyNotify            = "options.notify"
	keyCmd               = "options.cmd"
)

var envBindings = map[string]string{
	keyWorkDuration:      "JTRAVAIL_WORK_DURATION",
	keyPauseDuration:     "JTRAVAIL_PAUSE_DURATION",
	keyLongPauseDuration: "JTRAVAIL_LONG_PAUSE_DURATION",
	keyLongPausePeriod:   "JTRAVAIL_LONG_PAUSE_PERIOD",
	keyFormat:            "JTRAVAIL_STATUS_FORMAT",
	keyDarkTheme:         "JTRAVAIL_DARK_THEME",
	keyNotify:            "JTRAVAIL_NOTIFY",
	keyCmd:               "JTRAVAIL_CMD",
}

// WithViperConfig returns an Option that loads configuration from the
// built-in defaults, the config file at configPath and the environment.
// A missing config file is only an error when required is set.
func WithViperConfig(configPath string, required bool) Option {
	return func(c *Config) error {
		v := newViper(configPath)

		err := v.ReadInConfig()
		if err != nil {
			if required || !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Fmt(configPath).Wrap(err)
			}
		}

		c.System.ConfigPath = configPath

		return loadViperConfig(v, c)
	}
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)

	if filepath.Ext(configPath) == "" {
		v.SetConfigType("yaml")
	}

	setupViper(v)

	return v
}

// setupViper configures Viper with defaults and environment bindings.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyWorkDuration, 25)
	v.SetDefault(keyPauseDuration, 5)
	v.SetDefault(keyLongPauseDuration, 15)
	v.SetDefault(keyLongPausePeriod, session.DefaultLongPausePeriod)
	v.SetDefault(keyFormat, ui.DefaultFormat)
	v.SetDefault(keyDarkTheme, false)
	v.SetDefault(keyNotify, false)
	v.SetDefault(keyCmd, "")

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	var err error

	durations := []struct {
		key   string
		field *time.Duration
	}{
		{keyWorkDuration, &c.Session.WorkDuration},
		{keyPauseDuration, &c.Session.PauseDuration},
		{keyLongPauseDuration, &c.Session.LongPauseDuration},
	}

	for _, d := range durations {
		*d.field, err = parseMinutes(d.key, v.GetString(d.key))
		if err != nil {
			return err
		}
	}

	period := strings.TrimSpace(v.GetString(keyLongPausePeriod))

	c.Session.LongPausePeriod, err = strconv.Atoi(period)
	if err != nil {
		return errInvalidPeriodOption.Fmt(period)
	}

	c.Display.Format = v.GetString(keyFormat)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Hooks.Notify = v.GetBool(keyNotify)
	c.Hooks.Cmd = v.GetString(keyCmd)

	return nil
}

// parseMinutes reads a duration given as a whole number of minutes.
func parseMinutes(key, s string) (time.Duration, error) {
	mins, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		name := strings.TrimPrefix(key, "options.")
		return 0, errInvalidOption.Fmt(name, s)
	}

	return time.Duration(mins) * time.Minute, nil
}

// Save writes the file-backed options of c to path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	v := viper.New()

	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}

	v.Set(keyWorkDuration, int(c.Session.WorkDuration/time.Minute))
	v.Set(keyPauseDuration, int(c.Session.PauseDuration/time.Minute))
	v.Set(keyLongPauseDuration, int(c.Session.LongPauseDuration/time.Minute))
	v.Set(keyLongPausePeriod, c.Session.LongPausePeriod)
	v.Set(keyFormat, c.Display.Format)
	v.Set(keyDarkTheme, c.Display.DarkTheme)
	v.Set(keyNotify, c.Hooks.Notify)
	v.Set(keyCmd, c.Hooks.Cmd)

	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return errWriteConfig.Fmt(path).Wrap(err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return errWriteConfig.Fmt(path).Wrap(err)
	}

	return nil
}
