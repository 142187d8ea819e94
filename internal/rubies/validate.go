// SPDX-License-Identifier: MPL-2.0

package rubies

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// ExecutableName is the interpreter binary expected inside an install.
	ExecutableName = "ruby"

	// binDir is the fixed subdirectory holding the interpreter and the
	// entry injected into the search path.
	binDir = "bin"
)

var (
	// ErrNotInstalled is returned when the candidate directory does not
	// exist under the rubies root.
	ErrNotInstalled = errors.New("ruby not installed")
	// ErrExecutableMissing is returned when the candidate directory
	// exists but bin/ruby is absent or not executable.
	ErrExecutableMissing = errors.New("ruby executable missing")
)

// Validate maps a version identifier to its install directory under
// rubiesDir. The identifier is valid only when the directory exists
// and contains an executable bin/ruby; the two failure modes carry
// distinguishable sentinel errors so callers can emit precise
// diagnostics.
func Validate(identifier, rubiesDir string) (string, error) {
	candidate := filepath.Join(rubiesDir, identifier)

	info, err := os.Stat(candidate)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%q not found under %s: %w", identifier, rubiesDir, ErrNotInstalled)
	}

	exe := ExecutablePath(candidate)
	if !isExecutable(exe) {
		return "", fmt.Errorf("expected executable at %s: %w", exe, ErrExecutableMissing)
	}

	return candidate, nil
}

// ExecutablePath returns the interpreter path inside an install
// directory.
func ExecutablePath(rubyRoot string) string {
	return filepath.Join(rubyRoot, binDir, ExecutableName)
}

// BinDir returns the search-path entry for an install or gem home.
func BinDir(root string) string {
	return filepath.Join(root, binDir)
}

// isExecutable reports whether path is a regular file the process can
// execute. On Windows existence is enough; elsewhere an execute bit
// must be set.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0o111 != 0
}
