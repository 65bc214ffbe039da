// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const appDir = "jean-travail"

// Paths holds all application path configurations.
type Paths struct {
	configFileName   string
	stateFileName    string
	logFileName      string
	debugLogFileName string

	// Computed absolute paths
	configFilePath   string
	stateFilePath    string
	logFilePath      string
	debugLogFilePath string
}

var (
	paths   *Paths
	initErr error
	once    sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			configFileName:   "config.yml",
			stateFileName:    "state",
			logFileName:      "log.db",
			debugLogFileName: "jtravail.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) StateFilePath() string {
	return p.stateFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

func (p *Paths) DebugLogFilePath() string {
	return p.debugLogFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv("JTRAVAIL_ENV"))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.stateFileName = fmt.Sprintf("state_%s", env)
		p.logFileName = fmt.Sprintf("log_%s.db", env)
		p.debugLogFileName = fmt.Sprintf("jtravail_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(appDir, p.configFileName))
	if err != nil {
		return err
	}

	p.stateFilePath, err = xdg.CacheFile(filepath.Join(appDir, p.stateFileName))
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return err
	}

	p.logFilePath = filepath.Join(dataDir, p.logFileName)

	p.debugLogFilePath = filepath.Join(dataDir, "log", p.debugLogFileName)

	return nil
}
