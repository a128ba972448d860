package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Executable returns the absolute path of the running launcher with
// symlinks resolved, so a linked entry point still finds the binaries
// installed next to the real file.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate launcher executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve launcher executable %s: %w", exe, err)
	}
	return filepath.Abs(resolved)
}

// ExecutableDir returns the directory holding the running launcher
func ExecutableDir() (string, error) {
	exe, err := Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
