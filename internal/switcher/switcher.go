// SPDX-License-Identifier: MPL-2.0

package switcher

import (
	"context"
	"errors"
	"io"

	"chrb-cli/internal/config"
	"chrb-cli/internal/envstore"
	"chrb-cli/internal/issue"
	"chrb-cli/internal/rubies"
	"chrb-cli/internal/verfile"

	"github.com/charmbracelet/log"
)

type (
	// Switcher wires the pipeline stages together. Configuration is
	// loaded by the caller per invocation; the stages themselves are
	// injected so each one can be replaced in tests.
	Switcher struct {
		locator    *verfile.Locator
		prober     rubies.Prober
		reconciler *Reconciler
		logger     *log.Logger

		// remote classifies the working directory; overridable in tests.
		remote func(dir string) bool

		cfg *config.Config
	}
)

// New assembles a Switcher over env with the given configuration.
// A nil prober defaults to the exec-backed implementation.
func New(cfg *config.Config, env envstore.Store, prober rubies.Prober, logger *log.Logger) *Switcher {
	if prober == nil {
		prober = rubies.NewExecProber()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Switcher{
		locator:    verfile.NewLocator(nil),
		prober:     prober,
		reconciler: NewReconciler(env, cfg.GemsDir, logger),
		logger:     logger,
		remote:     isRemoteDir,
		cfg:        cfg,
	}
}

// Run executes one full resolution from startDir: remote-check →
// locate → validate → probe → reconcile. Every failure is terminal for
// this invocation and reported as (outcome, err); no stage retries and
// no error propagates as a panic or crosses its stage undetected. The
// remote case is the one intentionally silent outcome.
func (s *Switcher) Run(ctx context.Context, startDir string) (Outcome, error) {
	if s.remote(startDir) {
		s.logger.Debug("remote working directory, skipping", "dir", startDir)
		return OutcomeSkipped, nil
	}

	identifier, err := s.locator.Locate(startDir)
	if err != nil {
		if errors.Is(err, verfile.ErrNotFound) {
			return OutcomeNotFound, issue.NewErrorContext().
				WithOperation("locate " + verfile.FileName).
				WithResource(startDir).
				WithSuggestion("Create one with: echo 3.2.1 > " + verfile.FileName).
				Wrap(err).
				BuildError()
		}
		return OutcomeNotFound, issue.NewErrorContext().
			WithOperation("read " + verfile.FileName).
			Wrap(err).
			BuildError()
	}

	rubyRoot, err := rubies.Validate(identifier, s.cfg.RubiesDir)
	if err != nil {
		ec := issue.NewErrorContext().
			WithOperation("validate ruby install").
			WithResource(identifier).
			Wrap(err)
		if errors.Is(err, rubies.ErrNotInstalled) {
			ec.WithSuggestion("Install it, e.g.: ruby-install " + identifier).
				WithSuggestion("Check the rubies root with: chrb config show")
		}
		return OutcomeInvalid, ec.BuildError()
	}

	s.logger.Debug("resolved version declaration", "identifier", identifier, "root", rubyRoot)

	identity, err := s.prober.Identify(ctx, rubies.ExecutablePath(rubyRoot))
	if err != nil {
		return OutcomeInvalid, issue.NewErrorContext().
			WithOperation("probe ruby identity").
			WithResource(rubies.ExecutablePath(rubyRoot)).
			WithSuggestion("Run the interpreter by hand to inspect its output").
			Wrap(err).
			BuildError()
	}

	return s.reconciler.Reconcile(rubyRoot, identity), nil
}
