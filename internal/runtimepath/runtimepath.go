// Package runtimepath resolves the fixed filesystem layout the engine
// and its companion CLI agree on: everything lives under
// $HOME/.config/yaxwm, not an XDG runtime directory — the socket and
// logs need to survive logout, since autostart and config edits happen
// independently of any running session.
package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "yaxwm"

// Dir returns $HOME/.config/yaxwm, creating it if absent.
func Dir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("runtimepath: HOME is not set")
	}
	dir := filepath.Join(home, ".config", appName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("runtimepath: create %s: %w", dir, err)
	}
	return dir, nil
}

// SocketPath returns the control-protocol Unix socket path.
func SocketPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ipc"), nil
}

// AutostartPath returns the autostart script path, spawned once at
// engine start.
func AutostartPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "autostart.sh"), nil
}

// LogPath returns the engine's log file path.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "log.txt"), nil
}

// ConfigPath returns the bootstrap YAML config path.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
