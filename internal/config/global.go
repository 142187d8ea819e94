// SPDX-License-Identifier: MPL-2.0

package config

var (
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably
	// respect the HOME environment variable on all platforms
	// (e.g., macOS in CI).
	configDirOverride string

	// configFileOverride forces loading from a specific config file,
	// set from the --config flag.
	configFileOverride string
)

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFileOverride = ""
}

// SetConfigDirOverride sets a custom config directory path, primarily
// for testing.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces loading from a specific file.
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}
