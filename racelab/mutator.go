// SPDX-License-Identifier: MIT
// Package: atomrace/racelab
//
// mutator.go — the background cell writer with cooperative cancellation.
//
// Contract (strict):
//   - States: {Idle, Running}; initial Idle; no terminal state. Start is
//     idempotent (a second Start while Running is a no-op and never spawns
//     a second task). Stop flips the flag and returns immediately; the
//     loop observes it on its next check. Join is the ONLY quiescence
//     guarantee; Stop alone promises nothing about when the task exits.
//   - Each iteration: optionally hold the shared lock for the whole
//     iteration (released on every exit path); draw (row, col) uniformly
//     over [0,Size)² independently per target; draw a value from
//     {0.0, 1.0, 2.0, 3.0} independently per write; write one cell in
//     each of the two targets.
//   - No operation returns an error and none panics after construction;
//     cancellation is cooperative, never a forced interrupt.
//
// Concurrency:
//   - The Running flag is the only state shared with the background task
//     (atomic). Lifecycle methods (Start/Stop/Join) belong to one owning
//     scenario goroutine; the done channel is handed to the task at spawn
//     and the field itself is touched only by the owner.
//
// Determinism:
//   - The draw sequence is deterministic under WithSeed/WithRand; the
//     interleaving with the harness is not, by design.

package racelab

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/atomrace/atommat"
)

// mutationValues bounds the written values: Intn(mutationValues) over
// {0, 1, 2, 3}, mirroring a 4-way modulus.
const mutationValues = 4

// Mutator repeatedly overwrites random cells of two shared matrices from
// a background goroutine. It holds non-owning references to the targets;
// the owning scenario must Stop and Join it before discarding them.
type Mutator struct {
	left  *atommat.Matrix // shared target, mutated in place
	right *atommat.Matrix // shared target, mutated in place

	lock sync.Locker // optional shared scenario lock; nil ⇒ lock-free
	rng  *rand.Rand  // owned by the background task once started

	running atomic.Bool   // cooperative cancellation flag
	done    chan struct{} // closed by the task on exit; owner-only field
	writes  atomic.Uint64 // completed iterations (one write per target each)
}

// NewMutator wires a mutator to its two target matrices. Panics on nil
// targets (wiring contract); never starts anything by itself.
func NewMutator(left, right *atommat.Matrix, opts ...Option) *Mutator {
	if left == nil || right == nil {
		panic(panicNilTarget)
	}
	o := gatherOptions(opts...)

	return &Mutator{left: left, right: right, lock: o.lock, rng: o.rng}
}

// Start launches the background write loop. No-op when already Running;
// safe to call again after Stop (a previous task still draining its last
// iteration is waited out before the new one spawns, so at most one task
// ever runs).
func (m *Mutator) Start() {
	if m.running.Load() {
		return // already Running: idempotent no-op
	}
	if m.done != nil {
		<-m.done // previous run may still be draining its final iteration
	}
	m.running.Store(true)
	m.done = make(chan struct{})
	go m.loop(m.done)
}

// Stop requests cooperative cancellation and returns without waiting.
// The task observes the flag on its next loop check. Idempotent; harmless
// on an Idle mutator. Callers needing quiescence must Join.
func (m *Mutator) Stop() {
	m.running.Store(false)
}

// Join blocks until the background task has exited. Returns immediately
// if the mutator was never started. Join does not stop the task; pair it
// with Stop.
func (m *Mutator) Join() {
	if m.done == nil {
		return // never started
	}
	<-m.done
}

// Running reports the current lifecycle state.
func (m *Mutator) Running() bool { return m.running.Load() }

// Mutations returns the number of completed write iterations. Each
// iteration writes exactly one cell in every target.
func (m *Mutator) Mutations() uint64 { return m.writes.Load() }

// loop is the background task body: iterate while the flag holds, then
// signal exit by closing the channel received at spawn.
func (m *Mutator) loop(done chan struct{}) {
	defer close(done)
	for m.running.Load() {
		m.step()
	}
}

// step performs one mutation iteration: under the optional lock, write
// one random cell in each target.
func (m *Mutator) step() {
	if m.lock != nil {
		m.lock.Lock()
		defer m.lock.Unlock() // released even on early exit
	}

	var row, col int
	// Independent draws per target and per write.
	row = m.rng.Intn(atommat.Size)
	col = m.rng.Intn(atommat.Size)
	_ = m.left.Set(row, col, float64(m.rng.Intn(mutationValues))) // indices in [0,Size); Set cannot fail

	row = m.rng.Intn(atommat.Size)
	col = m.rng.Intn(atommat.Size)
	_ = m.right.Set(row, col, float64(m.rng.Intn(mutationValues)))

	m.writes.Add(1) // count inside the critical section when locked
}
