// SPDX-License-Identifier: MPL-2.0

package envstore

import (
	"slices"
	"testing"
)

// TestStore_InterfaceContract verifies that both implementations
// satisfy the Store interface.
func TestStore_InterfaceContract(t *testing.T) {
	t.Parallel()

	var _ Store = &ProcessStore{}
	var _ Store = &MemStore{}
}

func TestMemStore_GetDistinguishesUnsetFromEmpty(t *testing.T) {
	t.Parallel()

	s := NewMemStore()

	if _, ok := s.Get("RUBY_ROOT"); ok {
		t.Fatal("Get() on fresh store should report unset")
	}

	s.Set("RUBY_ROOT", "")
	if v, ok := s.Get("RUBY_ROOT"); !ok || v != "" {
		t.Errorf("Get() = (%q, %v), want (\"\", true)", v, ok)
	}

	s.Unset("RUBY_ROOT")
	if _, ok := s.Get("RUBY_ROOT"); ok {
		t.Error("Get() after Unset() should report unset")
	}
}

func TestAppendPath_KeepsOrderAndUniqueness(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	AppendPath(s, "/usr/bin")
	AppendPath(s, "/opt/rubies/ruby-3.2.1/bin")
	AppendPath(s, "/usr/bin") // duplicate, must be ignored

	want := []string{"/usr/bin", "/opt/rubies/ruby-3.2.1/bin"}
	if got := s.SearchPath(); !slices.Equal(got, want) {
		t.Errorf("SearchPath() = %v, want %v", got, want)
	}
}

func TestAppendPath_ComparesCleanedPaths(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	AppendPath(s, "/usr/local/bin")
	AppendPath(s, "/usr/local/bin/") // same entry after Clean

	if got := len(s.SearchPath()); got != 1 {
		t.Errorf("SearchPath() has %d entries, want 1", got)
	}
}

func TestRemovePath_RemovesFirstOccurrenceOnly(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	s.SetSearchPath([]string{"/a/bin", "/b/bin", "/a/bin"})

	RemovePath(s, "/a/bin")

	want := []string{"/b/bin", "/a/bin"}
	if got := s.SearchPath(); !slices.Equal(got, want) {
		t.Errorf("SearchPath() = %v, want %v", got, want)
	}
}

func TestRemovePath_TolerantOfAbsence(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	s.SetSearchPath([]string{"/a/bin"})

	RemovePath(s, "/never/added/bin")

	want := []string{"/a/bin"}
	if got := s.SearchPath(); !slices.Equal(got, want) {
		t.Errorf("SearchPath() = %v, want %v", got, want)
	}
}

func TestContainsPath(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	s.SetSearchPath([]string{"/a/bin", "/b/bin"})

	if !ContainsPath(s, "/a/bin/") {
		t.Error("ContainsPath(/a/bin/) = false, want true")
	}
	if ContainsPath(s, "/c/bin") {
		t.Error("ContainsPath(/c/bin) = true, want false")
	}
}

func TestMemStore_SearchPathReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	s.SetSearchPath([]string{"/a/bin"})

	got := s.SearchPath()
	got[0] = "/mutated"

	if s.SearchPath()[0] != "/a/bin" {
		t.Error("SearchPath() should return a copy, not the backing slice")
	}
}
