// SPDX-License-Identifier: MPL-2.0

// Package verfile locates and normalizes project-local .ruby-version
// declarations. The locator walks the ancestor chain of a starting
// directory and reads the nearest declaration it finds.
package verfile
