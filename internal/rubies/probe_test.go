// SPDX-License-Identifier: MPL-2.0

package rubies

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// TestProber_InterfaceContract verifies that both implementations
// satisfy the Prober interface.
func TestProber_InterfaceContract(t *testing.T) {
	t.Parallel()

	var _ Prober = &ExecProber{}
	var _ Prober = &MockProber{}
}

func TestParseIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    Identity
		wantErr bool
	}{
		{"canonical output", "ruby 3.2.1", Identity{"ruby", "3.2.1"}, false},
		{"trailing newline", "jruby 9.4.0.0\n", Identity{"jruby", "9.4.0.0"}, false},
		{"extra whitespace", "  truffleruby   23.1.1  ", Identity{"truffleruby", "23.1.1"}, false},
		{"zero tokens", "", Identity{}, true},
		{"one token", "ruby", Identity{}, true},
		{"three tokens", "ruby 3.2.1 p123", Identity{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseIdentity(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrIdentityMalformed) {
					t.Fatalf("ParseIdentity(%q) error = %v, want ErrIdentityMalformed", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIdentity(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseIdentity(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseIdentity_ErrorIncludesRawOutput(t *testing.T) {
	t.Parallel()

	_, err := ParseIdentity("segfault at 0xdeadbeef")
	if err == nil {
		t.Fatal("ParseIdentity() expected error")
	}
	if got := err.Error(); !strings.Contains(got, "segfault at 0xdeadbeef") {
		t.Errorf("error %q should include the raw captured output", got)
	}
}

func TestMockProber_ReturnsCannedIdentity(t *testing.T) {
	t.Parallel()

	mock := &MockProber{Identity: Identity{Engine: "ruby", Version: "3.2.1"}}

	got, err := mock.Identify(context.Background(), "/ignored/bin/ruby")
	if err != nil {
		t.Fatalf("Identify() unexpected error: %v", err)
	}
	if got.String() != "ruby 3.2.1" {
		t.Errorf("Identify() = %q, want %q", got.String(), "ruby 3.2.1")
	}
}

func TestMockProber_ReturnsError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("probe failed")
	mock := &MockProber{Err: wantErr}

	_, err := mock.Identify(context.Background(), "/ignored/bin/ruby")
	if !errors.Is(err, wantErr) {
		t.Errorf("Identify() error = %v, want %v", err, wantErr)
	}
}

// fakeInterpreter writes an executable shell script that mimics an
// interpreter printing the given output.
func fakeInterpreter(t *testing.T, output string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ruby")
	script := "#!/bin/sh\nprintf '%s' '" + output + "'\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecProber_ParsesRealOutput(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("fixture relies on a shell script interpreter")
	}

	exe := fakeInterpreter(t, "ruby 3.2.1")
	p := NewExecProber()

	got, err := p.Identify(context.Background(), exe)
	if err != nil {
		t.Fatalf("Identify() unexpected error: %v", err)
	}
	if (got != Identity{Engine: "ruby", Version: "3.2.1"}) {
		t.Errorf("Identify() = %+v, want ruby 3.2.1", got)
	}
}

func TestExecProber_MalformedOutput(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("fixture relies on a shell script interpreter")
	}

	exe := fakeInterpreter(t, "ruby 3.2.1 extra junk")
	p := NewExecProber()

	_, err := p.Identify(context.Background(), exe)
	if !errors.Is(err, ErrIdentityMalformed) {
		t.Errorf("Identify() error = %v, want ErrIdentityMalformed", err)
	}
}

func TestExecProber_MissingBinary(t *testing.T) {
	t.Parallel()

	p := NewExecProber()

	_, err := p.Identify(context.Background(), filepath.Join(t.TempDir(), "no-such-ruby"))
	if !errors.Is(err, ErrIdentityMalformed) {
		t.Errorf("Identify() error = %v, want ErrIdentityMalformed", err)
	}
}

func TestExecProber_TimeoutIsMalformed(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("fixture relies on a shell script interpreter")
	}

	path := filepath.Join(t.TempDir(), "ruby")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nsleep 5\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	p := &ExecProber{Timeout: 50 * time.Millisecond}

	_, err := p.Identify(context.Background(), path)
	if !errors.Is(err, ErrIdentityMalformed) {
		t.Errorf("Identify() error = %v, want ErrIdentityMalformed on timeout", err)
	}
}
