// SPDX-License-Identifier: MIT
// Package racelab_test contains shared fixtures and helpers.
//
// Purpose:
//   - Provide the classic operand pair used by every scenario.
//   - Keep lifecycle discipline in one place: scenarios always Stop AND
//     Join their mutator on cleanup, so leak checks stay meaningful.
//   - No *testing.T usage inside goroutines; everything asserts on the
//     main test goroutine.

package racelab_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/atomrace/atommat"
	"github.com/katalvlaran/atomrace/racelab"
	"github.com/stretchr/testify/require"
)

// The classic operand pair, same literals the experiment driver defaults to.
var (
	m1Rows = [][]float64{
		{1, 2, 0, 1},
		{0, 1, 1, 0},
		{1, 1, 0, 2},
		{1, 0, 1, 0},
	}
	m2Rows = [][]float64{
		{2, 2, 0, 1},
		{1, 1, 1, 2},
		{1, 1, 3, 2},
		{1, 2, 1, 1},
	}
)

// waitTimeout bounds every spin-wait in this suite; a healthy mutator
// lands its first write in microseconds.
const waitTimeout = 5 * time.Second

// mustMatrix builds a Matrix from rows and fails the test on shape errors.
func mustMatrix(tb testing.TB, rows [][]float64) *atommat.Matrix {
	tb.Helper()
	m, err := atommat.New(rows)
	require.NoError(tb, err)

	return m
}

// newOperands builds a fresh classic operand pair for one scenario.
func newOperands(tb testing.TB) (*atommat.Matrix, *atommat.Matrix) {
	tb.Helper()

	return mustMatrix(tb, m1Rows), mustMatrix(tb, m2Rows)
}

// newSharedLock returns the one mutex a scenario hands to both sides.
func newSharedLock() *sync.Mutex { return new(sync.Mutex) }

// startMutator starts mut and registers Stop+Join on test cleanup, so a
// failing assertion can never leak the background task.
func startMutator(t *testing.T, mut *racelab.Mutator) {
	t.Helper()
	mut.Start()
	t.Cleanup(func() {
		mut.Stop()
		mut.Join()
	})
}

// waitForMutations blocks until mut has completed at least n iterations,
// failing the test if the deadline passes first.
func waitForMutations(t *testing.T, mut *racelab.Mutator, n uint64) {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for mut.Mutations() < n {
		if time.Now().After(deadline) {
			t.Fatalf("mutator performed %d iterations, want at least %d", mut.Mutations(), n)
		}
		runtime.Gosched() // give the background task the core
	}
}
