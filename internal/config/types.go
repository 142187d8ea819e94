// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
)

type (
	// Config holds the two externally settable values the switcher
	// reads at each invocation.
	Config struct {
		// RubiesDir is the root under which installed rubies live,
		// one directory per version identifier.
		RubiesDir string `mapstructure:"rubies_dir"`

		// GemsDir is the base below which gem homes are derived as
		// <GemsDir>/<engine>/<version>.
		GemsDir string `mapstructure:"gems_dir"`
	}
)

// DefaultConfig returns the built-in defaults: the user-scoped
// ~/.rubies and ~/.gem directories.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		// Without a home directory the relative fallbacks still produce
		// usable paths for explicit configuration to override.
		home = "."
	}
	return &Config{
		RubiesDir: filepath.Join(home, ".rubies"),
		GemsDir:   filepath.Join(home, ".gem"),
	}
}
