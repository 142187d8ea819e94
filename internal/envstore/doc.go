// SPDX-License-Identifier: MPL-2.0

// Package envstore abstracts the process-wide environment: named
// variables plus the ordered executable search path. The switcher
// mutates the environment only through a Store, which keeps the
// reconciliation logic testable against an in-memory implementation.
package envstore
