// SPDX-License-Identifier: MIT
// Package racelab: sentinel error set.
// Operations return these sentinels and tests match them via errors.Is.
// Lifecycle methods (Start/Stop/Join, RunCycle) have no error modes at
// all: cancellation is cooperative and every cycle is a local computation.
// Panics are reserved for wiring-time programmer errors (nil targets, nil
// RNG) and live as constants in options.go.

package racelab

import "errors"

// ErrNoCycles is returned by Harness.Accuracy when no cycles have been
// recorded, and by Trial.Run when a non-positive cycle count is requested.
// The accuracy ratio divides by the record count; rather than inheriting
// an unspecified division, the zero case surfaces explicitly.
var ErrNoCycles = errors.New("racelab: no recorded cycles")
