package config

import (
	"log"
	"os"
	"path/filepath"
)

// HomeDirName is the per-user directory holding config.yaml and logs/
const HomeDirName = ".minitel"

// HomeDir returns ~/.minitel, creating it on first use. When the user's
// home cannot be determined the working directory is used.
func HomeDir() string {
	base, err := os.UserHomeDir()
	if err != nil {
		log.Printf("No home directory (%v), keeping files in the working directory", err)
		return "."
	}

	dir := filepath.Join(base, HomeDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Cannot create %s: %v", dir, err)
	}
	return dir
}

// LogsDir is where relative log file names are resolved
func LogsDir() string {
	return filepath.Join(HomeDir(), "logs")
}

// DefaultPath is the config file used when -config is not given
func DefaultPath() string {
	return filepath.Join(HomeDir(), "config.yaml")
}
