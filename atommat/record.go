// SPDX-License-Identifier: MIT
// Package: atomrace/atommat
//
// record.go — frozen evidence of one multiplication cycle.
//
// Contract (strict):
//   - NewMulRecord snapshots all three matrices at construction time; the
//     record never aliases caller storage and callers can never reach the
//     stored copies (accessors hand out fresh snapshots).
//   - IsCorrect recomputes the product of the stored operands and compares
//     it to the stored claim. Because the stored copies are frozen, the
//     verdict is deterministic and reproducible no matter what happens to
//     the live shared matrices afterwards. It answers "was the claim the
//     product of these exact captured operands", not "is it still the
//     product of the live matrices".
//   - All inputs must be non-nil (wiring contract, same as Mul).

package atommat

// MulRecord owns frozen snapshots of one multiplication: the left and
// right operands as captured, and the product claimed for them. Immutable
// after construction.
type MulRecord struct {
	left    *Matrix // operand snapshot, never handed out
	right   *Matrix // operand snapshot, never handed out
	product *Matrix // claimed product snapshot, never handed out
}

// NewMulRecord captures (left, right, claimed) into an immutable record.
// Each matrix is snapshotted cell by cell; when the sources are mutated
// concurrently the captured values carry the usual per-cell consistency
// caveat, which is exactly what the harness later inspects.
// Complexity: O(Size²).
func NewMulRecord(left, right, claimed *Matrix) *MulRecord {
	return &MulRecord{
		left:    left.Snapshot(),
		right:   right.Snapshot(),
		product: claimed.Snapshot(),
	}
}

// IsCorrect recomputes the product of the stored operand snapshots and
// reports whether it exactly equals the stored claimed product.
// Deterministic: operates only on the record's own frozen copies.
// Complexity: O(Size³) per call.
func (r *MulRecord) IsCorrect() bool {
	recomputed := new(Matrix)
	mulInto(recomputed, r.left, r.right) // operands are quiescent here

	return Equal(recomputed, r.product)
}

// Left returns a fresh snapshot of the captured left operand.
func (r *MulRecord) Left() *Matrix { return r.left.Snapshot() }

// Right returns a fresh snapshot of the captured right operand.
func (r *MulRecord) Right() *Matrix { return r.right.Snapshot() }

// Product returns a fresh snapshot of the captured claimed product.
func (r *MulRecord) Product() *Matrix { return r.product.Snapshot() }
