// SPDX-License-Identifier: MPL-2.0

package switcher

// Outcome is the terminal state of one pipeline invocation.
type Outcome int

const (
	// OutcomeSkipped means the working directory is on a remote or
	// virtualized filesystem and the operation declined to run. This
	// is an intentional silent no-op, not a failure.
	OutcomeSkipped Outcome = iota
	// OutcomeNotFound means no ancestor directory carries a version
	// declaration.
	OutcomeNotFound
	// OutcomeInvalid means the declared ruby is not installed, lacks
	// its executable, or failed the identity probe.
	OutcomeInvalid
	// OutcomeUnchanged means the resolved ruby matches the recorded
	// state and nothing was mutated.
	OutcomeUnchanged
	// OutcomeApplied means the environment now points at the resolved
	// ruby.
	OutcomeApplied
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNotFound:
		return "not found"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeApplied:
		return "applied"
	default:
		return "unknown"
	}
}
