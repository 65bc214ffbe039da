package app_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ottorg/jtravail/app"
	"github.com/ottorg/jtravail/internal/clock"
	"github.com/ottorg/jtravail/internal/osutil"
	"github.com/ottorg/jtravail/stats"
)

var jtravailEnv = []string{
	"JTRAVAIL_WORK_DURATION",
	"JTRAVAIL_PAUSE_DURATION",
	"JTRAVAIL_LONG_PAUSE_DURATION",
	"JTRAVAIL_LONG_PAUSE_PERIOD",
	"JTRAVAIL_STATUS_FORMAT",
	"JTRAVAIL_NOTIFY",
	"JTRAVAIL_CMD",
	"JTRAVAIL_DARK_THEME",
	"JTRAVAIL_DEBUG",
	"JTRAVAIL_ENV",
}

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "jtravail-app-test")
	if err != nil {
		panic(err)
	}

	for _, env := range jtravailEnv {
		os.Unsetenv(env)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	os.Setenv("NO_COLOR", "1")
	xdg.Reload()

	code := m.Run()

	os.RemoveAll(home)
	os.Exit(code)
}

type harness struct {
	t         *testing.T
	clock     *clock.Mock
	statePath string
	logPath   string
	notified  []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dir := t.TempDir()

	return &harness{
		t:         t,
		clock:     clock.NewMock(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)),
		statePath: filepath.Join(dir, "cache", "state"),
		logPath:   filepath.Join(dir, "data", "log.db"),
	}
}

// run invokes the app as a fresh process would.
func (h *harness) run(args ...string) (stdout, stderr string, err error) {
	h.t.Helper()

	var out, errOut bytes.Buffer

	a := app.New(
		app.WithClock(h.clock),
		app.WithOutput(&out, &errOut),
		app.WithNotifier(func(title, message string) error {
			h.notified = append(h.notified, title+": "+message)
			return nil
		}),
	)

	argv := append([]string{"jtravail"}, args...)
	argv = append(argv, "--state-file", h.statePath, "--log-file", h.logPath)

	err = a.CLI().Run(argv)

	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()

	stdout, stderr, err := h.run(args...)
	require.NoError(h.t, err)
	assert.Empty(h.t, stderr)

	return stdout
}

func TestFreshInstallStatus(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "1/4 Idle: 00:00\n", h.mustRun())
	assert.Equal(t, "1/4 Idle: 00:00\n", h.mustRun("status"))
}

func TestNextStartsWork(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "1/4 Work: 25:00\n", h.mustRun("next"))

	h.clock.Advance(time.Minute)

	assert.Equal(t, "1/4 Work: 24:00\n", h.mustRun("status"))

	h.clock.Advance(25*time.Minute + 7*time.Second)

	assert.Equal(t, "1/4 Work: -01:07\n", h.mustRun("status"))
}

func TestEightNextsReachLongPause(t *testing.T) {
	h := newHarness(t)

	h.mustRun("stop")

	var last string
	for range 8 {
		last = h.mustRun("next")
	}

	assert.Equal(t, "4/4 Long Pause: 15:00\n", last)
	assert.Equal(t, "4/4 Long Pause: 15:00\n", h.mustRun("status"))
	assert.Equal(t, "4/4 Long Pause: 30:00\n", h.mustRun("status", "-l", "30"))
	assert.Equal(t, "4/4 Long Pause: 50:00\n", h.mustRun("--long-pause-duration", "50", "status"))

	assert.Equal(t, "1/4 Work: 25:00\n", h.mustRun("next"))
}

func TestCorruptStateIsReported(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(h.statePath), osutil.DirPermission))
	require.NoError(t, os.WriteFile(h.statePath, []byte("not json"), 0o600))

	diagnostic := "error while loading state file " + h.statePath +
		": parse error: invalid character 'o' in literal null (expecting 'u'). State was reset.\n"

	stdout, stderr, err := h.run("status")
	require.NoError(t, err)
	assert.Equal(t, diagnostic, stderr)
	assert.Equal(t, "1/4 Idle: 00:00\n", stdout)

	// the file is only replaced by the next save
	stdout, stderr, err = h.run("next")
	require.NoError(t, err)
	assert.Equal(t, diagnostic, stderr)
	assert.Equal(t, "1/4 Work: 25:00\n", stdout)

	assert.Equal(t, "1/4 Work: 25:00\n", h.mustRun("status"))
}

func TestStopIsIdempotent(t *testing.T) {
	h := newHarness(t)

	h.mustRun("next")

	assert.Equal(t, "1/4 Idle: 00:00\n", h.mustRun("stop"))
	assert.Equal(t, "1/4 Idle: 00:00\n", h.mustRun("stop"))

	_, err := os.Stat(h.statePath)
	assert.True(t, os.IsNotExist(err))
}

func TestOptionPrecedence(t *testing.T) {
	h := newHarness(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("options:\n  pause_duration: 30\n"), 0o600))

	h.mustRun("next")
	h.mustRun("next")

	assert.Equal(t, "1/4 Pause: 05:00\n", h.mustRun("status"))
	assert.Equal(t, "1/4 Pause: 30:00\n", h.mustRun("status", "-c", configPath))

	t.Setenv("JTRAVAIL_PAUSE_DURATION", "40")

	assert.Equal(t, "1/4 Pause: 40:00\n", h.mustRun("status", "-c", configPath))
	assert.Equal(t, "1/4 Pause: 50:00\n", h.mustRun("status", "-c", configPath, "-p", "50"))
	assert.Equal(t, "1/4 Pause: 50:00\n", h.mustRun("-p", "50", "status", "--config", configPath))
}

func TestFormatVariables(t *testing.T) {
	h := newHarness(t)

	h.mustRun("next")
	h.mustRun("next")

	assert.Equal(t, "5\n", h.mustRun("status", "-f", "{minutes}"))
	assert.Equal(t, "0\n", h.mustRun("status", "-f", "{seconds}"))
	assert.Equal(t, "300\n", h.mustRun("status", "-f", "{total_seconds}"))

	t.Setenv("JTRAVAIL_STATUS_FORMAT", "{status} {{{iteration}}}")

	assert.Equal(t, "Pause {1}\n", h.mustRun("status"))
}

func TestInvalidOptions(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("next", "-P", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "long pause period must be at least 1, got 0")

	_, _, err = h.run("status", "-f", "{nope}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown variable "nope"`)

	_, _, err = h.run("status", "-c", filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")

	assert.Equal(t, "1/4 Idle: 00:00\n", h.mustRun("status"))
}

func TestLogJSON(t *testing.T) {
	h := newHarness(t)

	h.mustRun("next")
	h.clock.Advance(24 * time.Minute)
	h.mustRun("next")
	h.clock.Advance(5 * time.Minute)
	h.mustRun("next")

	stdout := h.mustRun("log", "--json", "--period", "all-time")

	var summary struct {
		Totals map[string]struct {
			Minutes float64 `json:"minutes"`
			Count   int     `json:"count"`
		} `json:"totals"`
		Entries []struct {
			Kind string `json:"kind"`
		} `json:"entries"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))

	assert.InDelta(t, 24.0, summary.Totals["work"].Minutes, 0.001)
	assert.Equal(t, 1, summary.Totals["work"].Count)
	assert.InDelta(t, 5.0, summary.Totals["pause"].Minutes, 0.001)
	require.Len(t, summary.Entries, 2)
	assert.Equal(t, "work", summary.Entries[0].Kind)
	assert.Equal(t, "pause", summary.Entries[1].Kind)
}

func TestLogWithoutIntervals(t *testing.T) {
	h := newHarness(t)

	h.mustRun("next")

	assert.Contains(t, h.mustRun("log"), stats.NoEntriesMsg)
}

func TestLogLeavesOutOtherDays(t *testing.T) {
	h := newHarness(t)

	h.mustRun("next")
	h.clock.Advance(25 * time.Minute)
	h.mustRun("next")
	h.mustRun("stop")

	h.clock.Advance(48 * time.Hour)
	h.mustRun("next")
	h.clock.Advance(20 * time.Minute)
	h.mustRun("next")

	stdout := h.mustRun("log", "--json")

	var summary struct {
		Entries []struct {
			Kind string `json:"kind"`
		} `json:"entries"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	require.Len(t, summary.Entries, 1)
	assert.Equal(t, "work", summary.Entries[0].Kind)

	stdout = h.mustRun("log", "--json", "--period", "all-time")
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Len(t, summary.Entries, 2)
}

func TestLogSkipsMalformedLines(t *testing.T) {
	h := newHarness(t)

	h.mustRun("next")
	h.clock.Advance(25 * time.Minute)
	h.mustRun("next")

	f, err := os.OpenFile(h.logPath, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("garbage\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	stdout, stderr, err := h.run("log")
	require.NoError(t, err)

	assert.Contains(t, stderr, "skipping")
	assert.Contains(t, stderr, "line 2")
	assert.Contains(t, stdout, "Work: 25m (1)")
}

func TestNextRunsHooks(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("hook command uses sh")
	}

	h := newHarness(t)

	out := filepath.Join(t.TempDir(), "hook.out")

	t.Setenv("JTRAVAIL_NOTIFY", "true")
	t.Setenv("JTRAVAIL_CMD", `sh -c 'echo "$JTRAVAIL_STATUS $JTRAVAIL_ITERATION" > `+out+`'`)

	h.mustRun("next")

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "work 1\n", string(b))
	assert.Equal(t, []string{"jtravail: Work started (1/4)"}, h.notified)

	h.mustRun("status")
	assert.Len(t, h.notified, 1)
}

func TestFailingHookDoesNotUndoTransition(t *testing.T) {
	h := newHarness(t)

	t.Setenv("JTRAVAIL_CMD", "jtravail-hook-that-does-not-exist")

	stdout, stderr, err := h.run("next")
	require.NoError(t, err)

	assert.Equal(t, "1/4 Work: 25:00\n", stdout)
	assert.True(t, strings.Contains(stderr, "cmd hook"), stderr)
	assert.Equal(t, "1/4 Work: 25:00\n", h.mustRun("status"))
}
