// Package dirs provides XDG Base Directory Specification compliant paths
// for all qoderbridge directories.
package dirs

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the qoderbridge configuration directory.
// Resolution order: XDG_CONFIG_HOME/qoderbridge > ~/.config/qoderbridge.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "qoderbridge")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "qoderbridge")
	}
	return filepath.Join(home, ".config", "qoderbridge")
}

// StateDir returns the qoderbridge state directory.
// Resolution order: QODERBRIDGE_STATE_DIR > XDG_STATE_HOME/qoderbridge > ~/.local/state/qoderbridge.
func StateDir() string {
	if dir := os.Getenv("QODERBRIDGE_STATE_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "qoderbridge")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "state", "qoderbridge")
	}
	return filepath.Join(home, ".local", "state", "qoderbridge")
}

// TasksDir returns the directory task context records are written to
// (StateDir/tasks).
func TasksDir() string {
	return filepath.Join(StateDir(), "tasks")
}

// WorkspaceDir returns the default project directory for workflow runs
// (StateDir/workspace).
func WorkspaceDir() string {
	return filepath.Join(StateDir(), "workspace")
}
