// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and the catalog of
// known failure modes. Resolution errors are wrapped in an
// ActionableError carrying the failed operation, the offending path,
// and fix suggestions; the catalog renders longer markdown help for
// each failure class.
package issue
