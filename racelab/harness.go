// SPDX-License-Identifier: MIT
// Package: atomrace/racelab
//
// harness.go — the foreground multiply-and-record driver.
//
// Contract (strict):
//   - RunCycle: read the two shared matrices, compute their product over
//     live per-term atomic loads, freeze (left, right, product) into a
//     MulRecord, append it to the ordered log. With a lock attached the
//     whole read-multiply-record sequence is ONE critical section; without
//     one, only per-cell atomicity holds and the mutator can interleave
//     anywhere inside the cycle.
//   - Accuracy: 100·correct/total, recomputed per record from its frozen
//     snapshots; an empty log returns ErrNoCycles instead of dividing.
//   - The harness is a foreground object: one scenario goroutine drives
//     RunCycle/RunCycles/Reset/Accuracy. It is not safe for concurrent
//     use; the concurrency in the experiment lives in the mutator.
//
// Complexity:
//   - RunCycle: O(Size³) for the product plus three O(Size²) snapshots.
//   - Accuracy: O(n·Size³) over n recorded cycles.

package racelab

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/atomrace/atommat"
)

// Method tags used in wrapped errors (no magic strings).
const opAccuracy = "Accuracy"

// percentScale converts a correct/total ratio into a percentage.
const percentScale = 100.0

// Harness drives multiplication cycles over two shared matrices and keeps
// an ordered log of MulRecords for after-the-fact verification.
type Harness struct {
	left  *atommat.Matrix // shared operand, read in place
	right *atommat.Matrix // shared operand, read in place

	lock    sync.Locker          // optional shared scenario lock; nil ⇒ lock-free
	records []*atommat.MulRecord // ordered cycle log, append-only between Resets
}

// NewHarness wires a harness to its two shared operand matrices. Panics
// on nil targets (wiring contract). Share the scenario lock via WithLock
// to serialize cycles against a mutator holding the same lock; the RNG
// options are accepted and ignored (the harness draws no randomness).
func NewHarness(left, right *atommat.Matrix, opts ...Option) *Harness {
	if left == nil || right == nil {
		panic(panicNilTarget)
	}
	o := gatherOptions(opts...)

	return &Harness{left: left, right: right, lock: o.lock}
}

// RunCycle performs one read-multiply-record cycle against the live
// shared matrices and appends the frozen record to the log.
func (h *Harness) RunCycle() {
	if h.lock != nil {
		h.lock.Lock()
		defer h.lock.Unlock() // one whole cycle per critical section
	}

	// 1) Product over live operands (per-term atomic loads).
	prod := atommat.Mul(h.left, h.right)
	// 2) Freeze operands and claim; under the lock this is the same
	//    instant as the product, without it the mutator may have moved on.
	rec := atommat.NewMulRecord(h.left, h.right, prod)
	// 3) Append to the ordered log.
	h.records = append(h.records, rec)
}

// RunCycles performs n sequential cycles; n <= 0 is a no-op. The lock,
// when attached, is taken per cycle, not for the whole run, so a locked
// mutator still interleaves BETWEEN cycles (and never inside one).
func (h *Harness) RunCycles(n int) {
	for i := 0; i < n; i++ {
		h.RunCycle()
	}
}

// Len returns the number of recorded cycles.
func (h *Harness) Len() int { return len(h.records) }

// Records returns the cycle log in recording order. The returned slice is
// a copy; the records themselves are immutable.
func (h *Harness) Records() []*atommat.MulRecord {
	return append([]*atommat.MulRecord(nil), h.records...)
}

// Reset clears the cycle log (scenario-teardown hook). The shared
// matrices are left untouched.
func (h *Harness) Reset() {
	h.records = nil
}

// Accuracy recomputes every record's verdict and returns the percentage
// of cycles whose claimed product matches recomputation from the captured
// operand snapshots.
// Stage 1 (Validate): an empty log fails with ErrNoCycles.
// Stage 2 (Execute): count IsCorrect verdicts.
// Stage 3 (Finalize): return 100·correct/total.
func (h *Harness) Accuracy() (float64, error) {
	total := len(h.records)
	if total == 0 {
		return 0, fmt.Errorf("Harness.%s: %w", opAccuracy, ErrNoCycles)
	}

	var correct int
	for _, rec := range h.records {
		if rec.IsCorrect() {
			correct++
		}
	}

	return percentScale * float64(correct) / float64(total), nil
}
