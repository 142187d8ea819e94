// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"chrb-cli/internal/config"
	"chrb-cli/internal/envstore"
	"chrb-cli/internal/issue"
	"chrb-cli/internal/rubies"
	"chrb-cli/internal/switcher"
	"chrb-cli/internal/verfile"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// switchDir overrides the starting directory for resolution.
	switchDir string
	// switchExport prints export lines for shell eval on Applied.
	switchExport bool

	switchCmd = &cobra.Command{
		Use:     "switch",
		Aliases: []string{"sw"},
		Short:   "Resolve the project ruby and reconfigure the environment",
		Long: `Resolve the nearest .ruby-version, validate the declared ruby under
the rubies root, probe it for its canonical identity, and point
RUBY_ROOT, GEM_HOME and PATH at the result.

The command is cheap to run on every prompt: an unchanged resolution
performs no mutation and prints nothing.`,
		Args: cobra.NoArgs,
		RunE: runSwitch,
	}
)

func init() {
	switchCmd.Flags().StringVar(&switchDir, "dir", "", "starting directory (default is the working directory)")
	switchCmd.Flags().BoolVar(&switchExport, "export", false, "print export lines for shell eval")
}

func runSwitch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}

	startDir := switchDir
	if startDir == "" {
		startDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
	}

	store := envstore.NewProcessStore()
	sw := switcher.New(cfg, store, nil, newLogger())

	outcome, err := sw.Run(cmd.Context(), startDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		if verbose {
			renderIssueHelp(os.Stderr, err)
		}
		return &ExitError{Code: 1}
	}

	if outcome == switcher.OutcomeApplied && switchExport {
		if err := printExports(cmd.OutOrStdout(), store); err != nil {
			return err
		}
	}

	return nil
}

// printExports writes eval-safe export lines reflecting the reconciled
// environment. Values are quoted with the mvdan/sh printer so paths
// with spaces or metacharacters survive the round trip through eval.
func printExports(w io.Writer, store envstore.Store) error {
	for _, name := range []string{switcher.EnvRubyRoot, switcher.EnvGemHome} {
		value, ok := store.Get(name)
		if !ok {
			continue
		}
		if err := printExport(w, name, value); err != nil {
			return err
		}
	}
	if path := store.SearchPath(); len(path) > 0 {
		return printExport(w, "PATH", strings.Join(path, string(os.PathListSeparator)))
	}
	return nil
}

func printExport(w io.Writer, name, value string) error {
	quoted, err := syntax.Quote(value, syntax.LangBash)
	if err != nil {
		return fmt.Errorf("failed to quote %s value: %w", name, err)
	}
	_, err = fmt.Fprintf(w, "export %s=%s\n", name, quoted)
	return err
}

// renderIssueHelp prints the catalog entry matching a resolution error.
func renderIssueHelp(w *os.File, err error) {
	var id issue.Id
	switch {
	case errors.Is(err, verfile.ErrNotFound):
		id = issue.VersionFileNotFoundId
	case errors.Is(err, rubies.ErrNotInstalled):
		id = issue.RubyNotInstalledId
	case errors.Is(err, rubies.ErrExecutableMissing):
		id = issue.RubyExecutableMissingId
	case errors.Is(err, rubies.ErrIdentityMalformed):
		id = issue.IdentityProbeMalformedId
	default:
		return
	}

	entry := issue.Get(id)
	if entry == nil {
		return
	}
	if rendered, renderErr := entry.Render("auto"); renderErr == nil {
		fmt.Fprint(w, rendered)
	}
}
