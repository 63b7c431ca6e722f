// Package atommat_test contains unit tests for the 4×4 product kernel.

package atommat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/atomrace/atommat"
	"github.com/stretchr/testify/require"
)

// TestMulClassicProducts checks both orderings of the classic pair
// against their exact hand-computed products.
func TestMulClassicProducts(t *testing.T) {
	m1 := mustMatrix(t, m1Rows)
	m2 := mustMatrix(t, m2Rows)

	if diff := cmp.Diff(prod12, atommat.Mul(m1, m2).Grid()); diff != "" {
		t.Errorf("M1·M2 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(prod21, atommat.Mul(m2, m1).Grid()); diff != "" {
		t.Errorf("M2·M1 mismatch (-want +got):\n%s", diff)
	}
}

// TestMulNotCommutative ensures the two orderings of the classic pair
// produce different matrices.
func TestMulNotCommutative(t *testing.T) {
	m1 := mustMatrix(t, m1Rows)
	m2 := mustMatrix(t, m2Rows)

	ab := atommat.Mul(m1, m2)
	ba := atommat.Mul(m2, m1)
	require.False(t, atommat.Equal(ab, ba)) // M1·M2 ≠ M2·M1 for this pair
}

// TestMulIdentity verifies that multiplying by the identity is exact in
// both directions.
func TestMulIdentity(t *testing.T) {
	m1 := mustMatrix(t, m1Rows)
	id := mustMatrix(t, [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})

	require.True(t, atommat.Equal(atommat.Mul(m1, id), m1)) // M·I == M
	require.True(t, atommat.Equal(atommat.Mul(id, m1), m1)) // I·M == M
}

// TestMulZeroOperand verifies that a zero operand yields the zero product.
func TestMulZeroOperand(t *testing.T) {
	m1 := mustMatrix(t, m1Rows)
	zero := new(atommat.Matrix)

	require.True(t, atommat.Equal(atommat.Mul(m1, zero), zero))
	require.True(t, atommat.Equal(atommat.Mul(zero, m1), zero))
}

// TestMulLeavesOperandsUntouched ensures the kernel only reads its
// operands and writes a fresh result.
func TestMulLeavesOperandsUntouched(t *testing.T) {
	m1 := mustMatrix(t, m1Rows)
	m2 := mustMatrix(t, m2Rows)

	prod := atommat.Mul(m1, m2)
	require.NoError(t, prod.Set(0, 0, 99)) // scribble on the result

	if diff := cmp.Diff(mustMatrix(t, m1Rows).Grid(), m1.Grid()); diff != "" {
		t.Errorf("left operand changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(mustMatrix(t, m2Rows).Grid(), m2.Grid()); diff != "" {
		t.Errorf("right operand changed (-want +got):\n%s", diff)
	}
}
