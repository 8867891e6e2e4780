/*
Package osaccess answers access questions about paths for the running process.
*/
package osaccess

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// Checker implements ports.AccessChecker against the real filesystem.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() ports.AccessChecker {
	return &Checker{}
}

// Exists reports whether path can be confirmed to exist. An empty path never exists.
func (c *Checker) Exists(path string) bool {
	return path != "" && access(path, modeExists)
}

// CanRead reports whether the process may read path.
func (c *Checker) CanRead(path string) bool {
	return path != "" && access(path, modeRead)
}

// CanWrite reports whether the process may write path.
func (c *Checker) CanWrite(path string) bool {
	return path != "" && access(path, modeWrite)
}

// CanExecute reports whether the process may execute path, or search it for a directory.
func (c *Checker) CanExecute(path string) bool {
	return path != "" && access(path, modeExecute)
}

// Abs returns the absolute form of path without resolving symlinks.
func (c *Checker) Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
	}
	return abs, nil
}

// Size returns the size in bytes reported by stat.
func (c *Checker) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Size(), nil
}

// Contents reads the whole file at path.
func (c *Checker) Contents(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
