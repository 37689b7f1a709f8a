package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultListName is the todo list file used when no --list-name is given.
	DefaultListName = "TODO.txt"

	// ConfigName is the viper config file name, without extension.
	ConfigName = ".todo"

	// EnvPrefix prefixes every environment override (TODO_LOG_LEVEL, ...).
	EnvPrefix = "TODO"

	// CrashLogDir is the directory for crash logs relative to the global config dir.
	CrashLogDir = "crash_logs"
)

// ResolveListName returns name, or DefaultListName when name is empty.
// The --list-name flag is the only override for the list file.
func ResolveListName(name string) string {
	if name == "" {
		return DefaultListName
	}
	return name
}

// GetGlobalConfigDir returns the path to the global configuration directory (~/.todo).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigName), nil
}

// GetCrashLogDir returns where crash logs are written, falling back to
// ./.todo/crash_logs when the home directory cannot be resolved.
func GetCrashLogDir() string {
	dir, err := GetGlobalConfigDir()
	if err != nil || dir == "" {
		dir = ConfigName
	}
	return filepath.Join(dir, CrashLogDir)
}
