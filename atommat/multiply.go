// SPDX-License-Identifier: MIT
// Package: atomrace/atommat
//
// multiply.go — the 4×4 product over live atomic operands.
//
// Contract (strict):
//   - C[i][j] = Σ_k A[i][k]·B[k][j] for k in [0,Size), exact float64 math.
//   - Every term loads A[i][k] and B[k][j] straight from the LIVE operand
//     cells, one atomic load per term. The 2·Size loads feeding one output
//     cell, and the Size² output cells, are never one atomic snapshot.
//     A concurrent writer can land between any two loads; the product is
//     then consistent with no single instant of the operands. That gap is
//     what the harness measures; do not repair it with snapshots or a
//     kernel-internal lock.
//   - Operands must be non-nil (documented wiring contract; there is no
//     error mode because the shape is fixed at Size×Size).
//   - The result is freshly allocated and unshared; writing it needs no
//     synchronization beyond the per-cell stores.
//
// Complexity:
//   - Time: O(Size³) = 64 multiply-adds; Space: O(Size²) for the result.
//
// Determinism:
//   - Fully deterministic on quiescent operands; under concurrent writes
//     the output depends on the interleaving, by design.

package atommat

// Mul returns the matrix product of a and b, reading each operand term
// with an independent atomic load from the live matrices. See the file
// contract for the deliberate absence of cross-cell atomicity.
func Mul(a, b *Matrix) *Matrix {
	out := new(Matrix)
	mulInto(out, a, b)

	return out
}

// mulInto computes a·b into dst. Internal kernel shared by Mul and
// MulRecord.IsCorrect; dst must not alias a or b.
func mulInto(dst, a, b *Matrix) {
	var i, j, k int // row, column, dot-product cursor
	var sum float64
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			// 1) Accumulate the dot product for output cell (i, j).
			sum = 0
			for k = 0; k < Size; k++ {
				// Two independent atomic loads per term; a writer may
				// interleave between them or between terms.
				sum += a.load(i*Size+k) * b.load(k*Size+j)
			}
			// 2) Publish the cell; dst is unshared, store is per-cell atomic.
			dst.store(i*Size+j, sum)
		}
	}
}
