// SPDX-License-Identifier: MPL-2.0

package switcher

import (
	"io"
	"path/filepath"
	"sync"

	"chrb-cli/internal/envstore"
	"chrb-cli/internal/rubies"

	"github.com/charmbracelet/log"
)

const (
	// EnvRubyRoot records the active install directory.
	EnvRubyRoot = "RUBY_ROOT"
	// EnvGemHome records the active gem home.
	EnvGemHome = "GEM_HOME"
)

type (
	// Reconciler applies a resolved ruby to the environment store. The
	// two variables it owns are the only durable record of what was
	// added last time; removal on switch derives the stale search-path
	// entries from them rather than from any separate log.
	Reconciler struct {
		// mu serializes the whole read-compare-mutate sequence. The
		// environment is one shared resource; interleaved reconciles
		// would corrupt the search path for the rest of the session.
		mu      sync.Mutex
		env     envstore.Store
		gemsDir string
		logger  *log.Logger
	}
)

// NewReconciler creates a Reconciler mutating env, deriving gem homes
// under gemsDir. A nil logger discards the informational message.
func NewReconciler(env envstore.Store, gemsDir string, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Reconciler{env: env, gemsDir: gemsDir, logger: logger}
}

// GemHome derives the gem home for an identity: <gemsDir>/<engine>/<version>.
func (r *Reconciler) GemHome(id rubies.Identity) string {
	return filepath.Join(r.gemsDir, id.Engine, id.Version)
}

// Reconcile points the environment at rubyRoot. It reads the
// previously recorded state, and either applies the switch or leaves
// everything untouched:
//
//   - nothing recorded yet: set both variables, append the two bin
//     directories, report Applied.
//   - recorded state identical: mutate nothing, emit nothing, report
//     Unchanged. Repeated invocation with an unchanged resolution must
//     never touch the search path.
//   - recorded state differs in either variable: set both variables,
//     remove the previously injected bin directories, append the new
//     ones, report Applied.
func (r *Reconciler) Reconcile(rubyRoot string, id rubies.Identity) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	newGemHome := r.GemHome(id)

	// Both variables are read before any mutation.
	oldRoot, hadRoot := r.env.Get(EnvRubyRoot)
	oldGemHome, _ := r.env.Get(EnvGemHome)

	if hadRoot && oldRoot == rubyRoot && oldGemHome == newGemHome {
		return OutcomeUnchanged
	}

	r.env.Set(EnvRubyRoot, rubyRoot)
	r.env.Set(EnvGemHome, newGemHome)

	if hadRoot {
		envstore.RemovePath(r.env, rubies.BinDir(oldRoot))
		if oldGemHome != "" {
			envstore.RemovePath(r.env, rubies.BinDir(oldGemHome))
		}
	}

	envstore.AppendPath(r.env, rubies.BinDir(rubyRoot))
	envstore.AppendPath(r.env, rubies.BinDir(newGemHome))

	r.logger.Info("switched ruby", "root", rubyRoot, "identity", id.String())

	return OutcomeApplied
}
