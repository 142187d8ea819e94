// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"chrb-cli/internal/config"
	"chrb-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "chrb",
		Short: "A per-project ruby switcher",
		Long: TitleStyle.Render("chrb") + SubtitleStyle.Render(" - A per-project ruby switcher") + `

chrb reads the nearest .ruby-version above the working directory,
resolves it against your installed rubies, and points RUBY_ROOT,
GEM_HOME and PATH at the result. Re-running with an unchanged
resolution touches nothing; switching rubies cleans up after the
previous one.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Install a ruby under ~/.rubies (e.g. with ruby-install)
  2. Declare it:  echo "3.2.1" > .ruby-version
  3. Wire the shell hook:  eval "$(chrb hook bash)"

` + SubtitleStyle.Render("Examples:") + `
  chrb switch               Resolve and apply the project ruby
  chrb switch --export      Print export lines for shell eval
  chrb config show          Show current configuration
  chrb doc                  Read the manual in the terminal`,
	}
)

// ExitError carries an exit code through fang back to main.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/chrb/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(docCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig applies the --config flag before any command runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
}

// newLogger creates the CLI logger. Diagnostics go to stderr so that
// --export output on stdout stays clean for shell eval.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// formatErrorForDisplay formats an error for user display. If the
// error is an ActionableError, suggestions are included; verbose mode
// adds the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
