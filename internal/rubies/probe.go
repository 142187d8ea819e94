// SPDX-License-Identifier: MPL-2.0

package rubies

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// identityScript makes the interpreter print its engine and version
// joined by a single space, e.g. "ruby 3.2.1" or "jruby 9.4.0.0".
const identityScript = `print RUBY_ENGINE, " ", RUBY_VERSION`

// DefaultProbeTimeout bounds the interpreter invocation. A hung or
// slow interpreter must not stall the calling shell hook.
const DefaultProbeTimeout = 10 * time.Second

// ErrIdentityMalformed is returned when the interpreter's output does
// not parse into exactly two whitespace-separated tokens.
var ErrIdentityMalformed = errors.New("malformed ruby identity")

type (
	// Identity is the interpreter's self-reported engine and version.
	// It may differ from the requested identifier (alias resolution,
	// patch-level suffixes).
	Identity struct {
		Engine  string
		Version string
	}

	// Prober obtains the identity of an installed interpreter.
	// The exec-backed implementation spawns the binary; tests use
	// MockProber to avoid spawning anything.
	Prober interface {
		Identify(ctx context.Context, exePath string) (Identity, error)
	}

	// ExecProber probes by running the interpreter and parsing its
	// standard output.
	ExecProber struct {
		// Timeout bounds each invocation. Zero means DefaultProbeTimeout.
		Timeout time.Duration
	}

	// MockProber is a test helper returning a canned identity or error.
	MockProber struct {
		Identity Identity
		Err      error
	}
)

// String returns the identity as printed by the interpreter.
func (id Identity) String() string {
	return id.Engine + " " + id.Version
}

// NewExecProber creates an ExecProber with the default timeout.
func NewExecProber() *ExecProber {
	return &ExecProber{}
}

// Identify runs exePath with an evaluate-and-print argument and parses
// the captured output. Any outcome other than exactly two tokens —
// including timeout expiry, a crashing interpreter (missing shared
// libraries, corrupted install), or unexpected output — is reported as
// ErrIdentityMalformed with the raw output attached.
func (p *ExecProber) Identify(ctx context.Context, exePath string) (Identity, error) {
	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, exePath, "-e", identityScript)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return Identity{}, fmt.Errorf("run %s: %v: %w", exePath, err, ErrIdentityMalformed)
	}

	return ParseIdentity(stdout.String())
}

// ParseIdentity splits raw interpreter output into an engine/version
// pair. Exactly two whitespace-separated tokens are required.
func ParseIdentity(raw string) (Identity, error) {
	tokens := strings.Fields(strings.TrimSpace(raw))
	if len(tokens) != 2 {
		return Identity{}, fmt.Errorf("want two tokens, got %d in %q: %w", len(tokens), raw, ErrIdentityMalformed)
	}
	return Identity{Engine: tokens[0], Version: tokens[1]}, nil
}

// Identify returns the canned identity or error.
func (m *MockProber) Identify(context.Context, string) (Identity, error) {
	if m.Err != nil {
		return Identity{}, m.Err
	}
	return m.Identity, nil
}
