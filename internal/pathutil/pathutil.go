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

const envPlannerEnv = "PLANNER_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	jsonFileName   string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	jsonFilePath   string
	dbFilePath     string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "planner",
			configFileName: "config.yml",
			jsonFileName:   "sessions.json",
			dbFileName:     "planner.db",
			logFileName:    "planner.log",
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

// Dir is the directory name used under the XDG config and data homes.
func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// SessionsFilePath is the location of the JSON session file.
func SessionsFilePath() string {
	return Must().jsonFilePath
}

// DBFilePath is the location of the bolt database.
func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envPlannerEnv))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.jsonFileName = fmt.Sprintf("sessions_%s.json", env)
		p.dbFileName = fmt.Sprintf("planner_%s.db", env)
		p.logFileName = fmt.Sprintf("planner_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	p.jsonFilePath = filepath.Join(dataDir, p.jsonFileName)

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
