// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// ConfigDir creates a temporary working directory containing an empty .todo directory.
// Returns the working directory and the .todo path.
// The temp dir is automatically cleaned up when the test completes.
func ConfigDir(t *testing.T) (workingDir, configDir string) {
	t.Helper()
	workingDir = t.TempDir()
	configDir = filepath.Join(workingDir, ".todo")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	return workingDir, configDir
}

// WriteConfig writes content to .todo/config.toml under a fresh working directory.
// Returns the working directory and the config file path.
func WriteConfig(t *testing.T, content string) (workingDir, configPath string) {
	t.Helper()
	workingDir, configDir := ConfigDir(t)
	configPath = filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return workingDir, configPath
}

// Chdir changes into dir for the rest of the test and restores the
// previous working directory on cleanup.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}
