// SPDX-License-Identifier: MIT
// Package atommat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// atommat package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors caught at
// wiring time (nil operands on documented non-nil contracts).

package atommat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "atommat: ..." for consistency and easy
// grepping. DO NOT %w wrap these sentinels when returning directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the
// failing boundary — callers still match via errors.Is.
//
// ERROR CLASSES (and where they surface):
// construction shape -> New; index bounds -> At/Set. Nothing else in this
// package can fail: Mul, Equal, Snapshot and MulRecord operate on fixed
// 4×4 shapes and have no error modes.

var (
	// ErrTooManyRows is returned by New when more than Size row vectors
	// are supplied. Construction validates shape before storing anything.
	ErrTooManyRows = errors.New("atommat: too many rows for a 4x4 matrix")

	// ErrTooManyCols is returned by New when any supplied row holds more
	// than Size values.
	ErrTooManyCols = errors.New("atommat: too many columns for a 4x4 matrix")

	// ErrOutOfRange indicates that a row or column index is outside [0,Size).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("atommat: index out of range")
)
