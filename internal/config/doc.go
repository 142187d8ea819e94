// SPDX-License-Identifier: MPL-2.0

// Package config loads chrb configuration: the rubies search root and
// the gem base directory. Values come from defaults, an optional
// config.cue (or config.toml) under the platform config directory, and
// CHRB_* environment overrides. Configuration is read per invocation
// and never cached.
package config
