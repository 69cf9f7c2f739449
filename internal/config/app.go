package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// AppPaths locates the snapshot database and the optional engine config file.
type AppPaths struct {
	DBPath     string
	ConfigPath string
	LogCalls   bool
}

// LoadAppPaths reads GANTT_DB, GANTT_CONFIG and GANTT_LOG_CALLS, defaulting
// the database to ~/.gantt/gantt.db.
func LoadAppPaths() (AppPaths, error) {
	paths := AppPaths{
		DBPath:     os.Getenv("GANTT_DB"),
		ConfigPath: os.Getenv("GANTT_CONFIG"),
	}
	if paths.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return AppPaths{}, fmt.Errorf("finding home directory: %w", err)
		}
		paths.DBPath = filepath.Join(home, ".gantt", "gantt.db")
	}
	if v := os.Getenv("GANTT_LOG_CALLS"); v != "" {
		paths.LogCalls, _ = strconv.ParseBool(v)
	}
	return paths, nil
}
