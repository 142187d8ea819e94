// SPDX-License-Identifier: MPL-2.0

package envstore

import (
	"os"
	"path/filepath"
	"strings"
)

// pathVar is the variable backing the executable search path.
const pathVar = "PATH"

// ProcessStore is the Store backed by the real process environment.
// Variables go through os.Getenv/os.Setenv/os.Unsetenv; the search
// path is the PATH variable split on the platform list separator.
type ProcessStore struct{}

// NewProcessStore returns a Store over the current process environment.
func NewProcessStore() *ProcessStore {
	return &ProcessStore{}
}

// Get returns the value of name from the process environment.
func (p *ProcessStore) Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Set assigns name in the process environment.
func (p *ProcessStore) Set(name, value string) {
	// os.Setenv only fails on invalid names, which callers never produce.
	_ = os.Setenv(name, value)
}

// Unset removes name from the process environment.
func (p *ProcessStore) Unset(name string) {
	_ = os.Unsetenv(name)
}

// SearchPath returns the PATH entries in order.
func (p *ProcessStore) SearchPath() []string {
	value, ok := os.LookupEnv(pathVar)
	if !ok || value == "" {
		return nil
	}
	return filepath.SplitList(value)
}

// SetSearchPath joins entries with the platform list separator and
// writes them back to PATH.
func (p *ProcessStore) SetSearchPath(entries []string) {
	_ = os.Setenv(pathVar, strings.Join(entries, string(os.PathListSeparator)))
}
