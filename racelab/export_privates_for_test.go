// SPDX-License-Identifier: MIT
// Package: atomrace/racelab
//
// export_privates_for_test.go — test-only bridge to unexported symbols.
//
// Purpose:
//   - Expose the internal panic-message constants to the external suite so
//     wiring-contract tests can pin exact messages without magic strings.
//   - The _test.go suffix keeps this file out of production builds while
//     the package name keeps it white-box.

package racelab

// Panic message exports; the suite pins them with require.PanicsWithValue.
const (
	PanicNilLock_TestOnly   = panicNilLock
	PanicNilRand_TestOnly   = panicNilRand
	PanicNilTarget_TestOnly = panicNilTarget
)
