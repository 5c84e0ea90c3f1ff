// Package fsutil provides utility functions and constants for file system
// operations.
package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "asmp"

	// ConfigDirName is the per-user directory holding all client state
	// (config, package cache, installed ledger).
	ConfigDirName = ".asmp"
)

// DefaultConfigDir returns the per-user state directory, ~/.asmp.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigDirName), nil
}
