package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ottorg/jtravail/internal/config"
	"github.com/ottorg/jtravail/internal/testutil"
	"github.com/ottorg/jtravail/internal/ui"
)

type TestCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func defaultConfig(configPath string) *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			WorkDuration:      25 * time.Minute,
			PauseDuration:     5 * time.Minute,
			LongPauseDuration: 15 * time.Minute,
			LongPausePeriod:   4,
		},
		Display: config.DisplayConfig{
			Format: ui.DefaultFormat,
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}
}

func writeConfig(t *testing.T, options map[string]any) string {
	t.Helper()

	b, err := yaml.Marshal(map[string]any{"options": options})
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, b, 0o600))

	return configPath
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, env := range []string{
		"JTRAVAIL_WORK_DURATION",
		"JTRAVAIL_PAUSE_DURATION",
		"JTRAVAIL_LONG_PAUSE_DURATION",
		"JTRAVAIL_LONG_PAUSE_PERIOD",
		"JTRAVAIL_STATUS_FORMAT",
		"JTRAVAIL_NOTIFY",
		"JTRAVAIL_CMD",
		"JTRAVAIL_DARK_THEME",
	} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestViperDefaults(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath, false))
	require.NoError(t, err)

	if diff := cmp.Diff(defaultConfig(configPath), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err), "reading must not create the file")
}

func TestViperRequiredFileMissing(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "missing.yml")

	_, err := config.New(config.WithViperConfig(configPath, true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), configPath)
}

func TestViperReadConfig(t *testing.T) {
	clearEnv(t)

	configPath := writeConfig(t, map[string]any{
		"work_duration":       50,
		"pause_duration":      "10",
		"long_pause_duration": 30,
		"long_pause_period":   6,
		"format":              "{status} {minutes}",
		"notify":              true,
		"cmd":                 "notify-send jtravail",
		"dark_theme":          true,
	})

	cfg, err := config.New(config.WithViperConfig(configPath, true))
	require.NoError(t, err)

	want := &config.Config{
		Session: config.SessionConfig{
			WorkDuration:      50 * time.Minute,
			PauseDuration:     10 * time.Minute,
			LongPauseDuration: 30 * time.Minute,
			LongPausePeriod:   6,
		},
		Display: config.DisplayConfig{
			Format:    "{status} {minutes}",
			DarkTheme: true,
		},
		Hooks: config.HooksConfig{
			Cmd:    "notify-send jtravail",
			Notify: true,
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)

	configPath := writeConfig(t, map[string]any{
		"pause_duration":    30,
		"long_pause_period": 6,
	})

	t.Setenv("JTRAVAIL_PAUSE_DURATION", "40")
	t.Setenv("JTRAVAIL_STATUS_FORMAT", "{status}")
	t.Setenv("JTRAVAIL_NOTIFY", "true")
	t.Setenv("JTRAVAIL_DARK_THEME", "true")

	cfg, err := config.New(config.WithViperConfig(configPath, false))
	require.NoError(t, err)

	assert.Equal(t, 40*time.Minute, cfg.Session.PauseDuration)
	assert.Equal(t, 6, cfg.Session.LongPausePeriod)
	assert.Equal(t, "{status}", cfg.Display.Format)
	assert.True(t, cfg.Hooks.Notify)
	assert.True(t, cfg.Display.DarkTheme)
}

func TestInvalidEnvironmentValue(t *testing.T) {
	clearEnv(t)

	t.Setenv("JTRAVAIL_WORK_DURATION", "soon")

	_, err := config.New(
		config.WithViperConfig(filepath.Join(t.TempDir(), "config.yml"), false),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `work_duration must be a whole number of minutes, got "soon"`)
}

func runCLI(t *testing.T, configPath string, args ...string) *config.Config {
	t.Helper()

	var cfg *config.Config

	app := &cli.App{
		Name: "jtravail",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "work-duration", Aliases: []string{"w"}},
			&cli.IntFlag{Name: "pause-duration", Aliases: []string{"p"}},
			&cli.IntFlag{Name: "long-pause-duration", Aliases: []string{"l"}},
			&cli.IntFlag{Name: "long-pause-period", Aliases: []string{"P"}},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}},
			&cli.StringFlag{Name: "state-file"},
			&cli.StringFlag{Name: "log-file"},
			&cli.BoolFlag{Name: "debug"},
			&cli.BoolFlag{Name: "no-color"},
		},
		Action: func(ctx *cli.Context) error {
			var err error

			cfg, err = config.New(
				config.WithViperConfig(configPath, false),
				config.WithCLIConfig(ctx),
				config.WithPaths("", "/cache/state", "/data/log.db", "/data/jtravail.log"),
			)

			return err
		},
	}

	require.NoError(t, app.Run(append([]string{"jtravail"}, args...)))

	return cfg
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)

	configPath := writeConfig(t, map[string]any{"pause_duration": 30})

	t.Setenv("JTRAVAIL_PAUSE_DURATION", "40")

	cfg := runCLI(t, configPath)
	assert.Equal(t, 40*time.Minute, cfg.Session.PauseDuration)

	cfg = runCLI(t, configPath, "-p", "50")
	assert.Equal(t, 50*time.Minute, cfg.Session.PauseDuration)

	cfg = runCLI(t, configPath, "--pause-duration", "50", "-P", "2", "-f", "{status}")
	assert.Equal(t, 50*time.Minute, cfg.Session.PauseDuration)
	assert.Equal(t, 2, cfg.Session.LongPausePeriod)
	assert.Equal(t, "{status}", cfg.Display.Format)
	assert.Equal(t, 25*time.Minute, cfg.Session.WorkDuration)
}

func TestFlagPaths(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := runCLI(t, configPath)
	assert.Equal(t, "/cache/state", cfg.System.StatePath)
	assert.Equal(t, "/data/log.db", cfg.System.LogPath)
	assert.Equal(t, configPath, cfg.System.ConfigPath)
	assert.False(t, cfg.System.Debug)

	cfg = runCLI(t, configPath, "--state-file", "/tmp/s", "--log-file", "/tmp/l", "--debug")
	assert.Equal(t, "/tmp/s", cfg.System.StatePath)
	assert.Equal(t, "/tmp/l", cfg.System.LogPath)
	assert.Equal(t, "/data/jtravail.log", cfg.System.DebugLogPath)
	assert.True(t, cfg.System.Debug)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		Name   string
		Modify func(c *config.Config)
		Err    string
	}{
		{
			Name:   "zero work duration",
			Modify: func(c *config.Config) { c.Session.WorkDuration = 0 },
			Err:    "work duration must be between",
		},
		{
			Name:   "negative pause duration",
			Modify: func(c *config.Config) { c.Session.PauseDuration = -time.Minute },
			Err:    "pause duration must be between",
		},
		{
			Name:   "zero long pause period",
			Modify: func(c *config.Config) { c.Session.LongPausePeriod = 0 },
			Err:    "long pause period must be at least 1, got 0",
		},
		{
			Name:   "bad format",
			Modify: func(c *config.Config) { c.Display.Format = "{nope}" },
			Err:    "invalid status format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := defaultConfig("")
			tc.Modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.Err)
		})
	}

	require.NoError(t, defaultConfig("").Validate())
}

func TestSave(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg := defaultConfig(configPath)
	cfg.Session.WorkDuration = 50 * time.Minute
	cfg.Hooks.Cmd = "echo done"

	require.NoError(t, cfg.Save(configPath))

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, TestCase{
		Name:       "save config",
		GoldenFile: "saved_config",
		Snapshot:   b,
	})

	got, err := config.New(config.WithViperConfig(configPath, true))
	require.NoError(t, err)

	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
