// SPDX-License-Identifier: MPL-2.0

// Package rubies maps version identifiers to installed Ruby
// directories and probes interpreters for their canonical identity.
// An install is valid when <rubies_dir>/<identifier>/bin/ruby exists
// and is executable.
package rubies
