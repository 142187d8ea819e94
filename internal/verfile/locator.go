// SPDX-License-Identifier: MPL-2.0

package verfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// FileName is the version-declaration file searched for in the
	// ancestor chain of the working directory.
	FileName = ".ruby-version"

	// enginePrefix qualifies bare semantic triples: "3.2.1" is read as
	// the CRuby install "ruby-3.2.1".
	enginePrefix = "ruby-"
)

// ErrNotFound is returned when no ancestor directory contains the
// version-declaration file.
var ErrNotFound = errors.New("no " + FileName + " found")

// bareVersion matches an unqualified MAJOR.MINOR.PATCH triple.
var bareVersion = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

type (
	// FileSystem is the capability the locator needs from the host
	// filesystem. Production code uses OSFileSystem; tests use an
	// in-memory tree.
	FileSystem interface {
		// FileExists reports whether path exists and is a regular file.
		FileExists(path string) bool
		// ReadFile returns the full contents of path.
		ReadFile(path string) ([]byte, error)
	}

	// Locator finds the nearest version declaration above a directory.
	Locator struct {
		fs FileSystem
	}

	// OSFileSystem is the FileSystem backed by the real filesystem.
	OSFileSystem struct{}
)

// FileExists reports whether path is an existing regular file.
func (OSFileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads path from disk.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// NewLocator creates a Locator over the given filesystem capability.
// A nil fs falls back to the real filesystem.
func NewLocator(fs FileSystem) *Locator {
	if fs == nil {
		fs = OSFileSystem{}
	}
	return &Locator{fs: fs}
}

// Locate walks upward from startDir (inclusive) until a directory
// containing the declaration file is found, then returns the
// normalized version identifier. It returns ErrNotFound when the
// filesystem root is reached without a hit, and never returns an
// empty identifier: an empty or whitespace-only file is reported as
// ErrNotFound for the directory that contained it.
func (l *Locator) Locate(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		candidate := filepath.Join(dir, FileName)
		if l.fs.FileExists(candidate) {
			data, err := l.fs.ReadFile(candidate)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", candidate, err)
			}
			id := Normalize(string(data))
			if id == "" {
				return "", fmt.Errorf("%s is empty: %w", candidate, ErrNotFound)
			}
			return id, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Normalize trims the raw declaration content and qualifies bare
// semantic triples with the CRuby engine prefix. Anything that is not
// a bare triple passes through trimmed but otherwise unchanged, so
// identifiers like "jruby-9.4.0" or "truffleruby-23.1.1" keep their
// literal spelling.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if bareVersion.MatchString(trimmed) {
		return enginePrefix + trimmed
	}
	return trimmed
}
