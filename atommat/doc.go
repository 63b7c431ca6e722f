// Package atommat implements a fixed 4×4 matrix of independently atomic
// float64 cells, together with multiplication records that can re-derive
// their own correctness after the fact.
//
// 🚀 What is atommat?
//
//	The shared mutable state for race experiments: a matrix that is
//	"thread-safe" per cell and deliberately NOT thread-safe as a whole.
//	  • Single-cell At/Set: atomic, lock-free, never torn
//	  • Mul: 64 multiply-adds over live per-term atomic loads
//	  • Snapshot/CopyFrom: per-cell copies, no cross-cell consistency
//	  • MulRecord: frozen (left, right, claimed product) triple with a
//	    deterministic IsCorrect verdict
//
// ✨ Key properties:
//   - The zero value of Matrix is a usable zero matrix
//   - Construction validates shape up front: more than 4 rows fails with
//     ErrTooManyRows, an over-wide row with ErrTooManyCols
//   - At/Set are bounds-checked and return ErrOutOfRange, never panic
//   - Equality is exact: values come from small-integer arithmetic
//   - No hidden mutex anywhere; the unlocked path stays genuinely
//     lock-free so races stay observable
//
// ⚙️ Usage:
//
//	m1, err := atommat.New([][]float64{
//	  {1, 2, 0, 1},
//	  {0, 1, 1, 0},
//	  {1, 1, 0, 2},
//	  {1, 0, 1, 0},
//	})
//	if err != nil { ... }
//
//	prod := atommat.Mul(m1, m2)            // live atomic loads
//	rec := atommat.NewMulRecord(m1, m2, prod)
//	ok := rec.IsCorrect()                  // recomputed from frozen copies
//
// Performance:
//
//   - At/Set: O(1); Mul and IsCorrect: O(Size³) with Size = 4
//   - Snapshot/Grid/Equal: O(Size²)
//
// See example_test.go for runnable walkthroughs and ../racelab for the
// harness that turns this package into an experiment.
package atommat
