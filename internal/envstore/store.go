// SPDX-License-Identifier: MPL-2.0

package envstore

import "path/filepath"

type (
	// Store is the process environment seen as a mutable record:
	// named variables plus the ordered search-path list. There is one
	// real environment per process, so implementations are expected to
	// behave like views onto a singleton resource, not value copies.
	Store interface {
		// Get returns the value of a variable and whether it is set.
		// An empty value with ok=true is distinct from an unset variable.
		Get(name string) (value string, ok bool)
		// Set assigns a variable, creating or overwriting it.
		Set(name, value string)
		// Unset removes a variable entirely.
		Unset(name string)
		// SearchPath returns the search-path entries in order.
		SearchPath() []string
		// SetSearchPath replaces the search-path entries wholesale.
		SetSearchPath(entries []string)
	}
)

// AppendPath appends dir to the store's search path unless an equal
// entry (after filepath.Clean) is already present. The search path is
// treated as an ordered set: appending never introduces duplicates.
func AppendPath(s Store, dir string) {
	cleaned := filepath.Clean(dir)
	entries := s.SearchPath()
	for _, e := range entries {
		if filepath.Clean(e) == cleaned {
			return
		}
	}
	s.SetSearchPath(append(entries, dir))
}

// RemovePath removes the first entry equal to dir (after
// filepath.Clean) from the store's search path. Removing an absent
// entry is a no-op; at most one occurrence is removed.
func RemovePath(s Store, dir string) {
	cleaned := filepath.Clean(dir)
	entries := s.SearchPath()
	for i, e := range entries {
		if filepath.Clean(e) == cleaned {
			s.SetSearchPath(append(entries[:i:i], entries[i+1:]...))
			return
		}
	}
}

// ContainsPath reports whether dir is present in the store's search
// path (compared after filepath.Clean).
func ContainsPath(s Store, dir string) bool {
	cleaned := filepath.Clean(dir)
	for _, e := range s.SearchPath() {
		if filepath.Clean(e) == cleaned {
			return true
		}
	}
	return false
}
