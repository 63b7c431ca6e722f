// SPDX-License-Identifier: MIT
// Package atommat_test contains shared fixtures and helpers.
//
// Purpose:
//   - Provide the classic non-commuting operand pair and its exact
//     products as plain literals.
//   - Keep all values small integers so every product is exact in float64.

package atommat_test

import (
	"testing"

	"github.com/katalvlaran/atomrace/atommat"
	"github.com/stretchr/testify/require"
)

// The classic operand pair. M1·M2 and M2·M1 differ, making stale-claim
// detection trivial to demonstrate.
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

// Exact expected products of the classic pair, as Grid dumps.
var (
	prod12 = [atommat.Size][atommat.Size]float64{
		{5, 6, 3, 6},
		{2, 2, 4, 4},
		{5, 7, 3, 5},
		{3, 3, 3, 3},
	}
	prod21 = [atommat.Size][atommat.Size]float64{
		{3, 6, 3, 2},
		{4, 4, 3, 3},
		{6, 6, 3, 7},
		{3, 5, 3, 3},
	}
)

// mustMatrix builds a Matrix from rows and fails the test on any shape error.
func mustMatrix(tb testing.TB, rows [][]float64) *atommat.Matrix {
	tb.Helper()
	m, err := atommat.New(rows)
	require.NoError(tb, err) // fixture rows are always well-shaped

	return m
}
