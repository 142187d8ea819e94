// SPDX-License-Identifier: MPL-2.0

// Package switcher contains the resolution pipeline and the
// environment reconciler. The pipeline runs remote-check → locate →
// validate → probe → reconcile; only a fully successful chain reaches
// the reconciler, and every stage short-circuits to a terminal outcome
// on failure.
package switcher
