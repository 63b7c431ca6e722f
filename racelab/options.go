// SPDX-License-Identifier: MIT
// Package: atomrace/racelab
//
// options.go — functional options shared by Mutator, Harness and Trial.
//
// Contract (strict):
//   - Options are functional (type Option func(*options)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     lifecycle methods and cycles never panic.
//   - Determinism is explicit: seeding goes through WithSeed or WithRand;
//     the default is one wall-clock-seeded source per constructed
//     component, never a process-wide global.
//   - No hidden locking: a component synchronizes only when WithLock
//     supplied a locker, and the SAME locker must be shared by every
//     party that should exclude each other.
//
// AI-Hints:
//   - Pass one *sync.Mutex via WithLock to BOTH the mutator and the
//     harness to get the fully serialized (accuracy == 100%) mode;
//     one-sided locking still races.
//   - Prefer WithSeed in tests to pin the mutator's write sequence.
//   - Components that draw no randomness (Harness) ignore the RNG.

package racelab

import (
	"math/rand" // RNG source for the background mutator
	"sync"
	"time"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLock   = "racelab: WithLock(nil)"
	panicNilRand   = "racelab: WithRand(nil)"
	panicNilTarget = "racelab: nil target matrix"
)

// Option mutates internal options. Safe to apply repeatedly; the last
// write wins. Constructors MUST panic only on nonsensical values.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported by design; public entry points accept ...Option and
// resolve them via gatherOptions.
type options struct {
	lock sync.Locker // nil ⇒ lock-free operation
	rng  *rand.Rand  // nil ⇒ fresh wall-clock-seeded source per component
}

// WithLock attaches the shared scenario lock. The component holds it for
// one whole iteration (mutator) or one whole read-multiply-record cycle
// (harness). Panics on nil to surface programmer error at wiring time.
// Complexity: O(1).
func WithLock(l sync.Locker) Option {
	if l == nil {
		// Fail fast: option constructors validate and panic.
		panic(panicNilLock)
	}

	return func(o *options) { o.lock = l }
}

// WithRand provides an explicit RNG for the mutator's random draws.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic
// draw sequence; the race interleaving itself stays nondeterministic).
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *options) {
		// Seeded source ⇒ reproducible pick sequence.
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// gatherOptions applies opts over the zero configuration and resolves
// defaults: absent a caller RNG, each component gets its own
// wall-clock-seeded source, keeping scenarios isolated from one another.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
