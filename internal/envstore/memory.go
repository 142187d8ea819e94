// SPDX-License-Identifier: MPL-2.0

package envstore

import "slices"

// MemStore is an in-memory Store for tests. It starts empty (no
// variables, no search-path entries), mirroring a fresh process.
type MemStore struct {
	vars map[string]string
	path []string
}

// NewMemStore returns an empty in-memory Store.
func NewMemStore() *MemStore {
	return &MemStore{vars: make(map[string]string)}
}

// Get returns the value of name and whether it is set.
func (m *MemStore) Get(name string) (string, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Set assigns name.
func (m *MemStore) Set(name, value string) {
	m.vars[name] = value
}

// Unset removes name.
func (m *MemStore) Unset(name string) {
	delete(m.vars, name)
}

// SearchPath returns a copy of the search-path entries.
func (m *MemStore) SearchPath() []string {
	return slices.Clone(m.path)
}

// SetSearchPath replaces the search-path entries.
func (m *MemStore) SetSearchPath(entries []string) {
	m.path = slices.Clone(entries)
}
