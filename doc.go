// Package atomrace is an executable demonstration of why per-element
// atomicity is not composite correctness — a small concurrency lab built
// around a 4×4 matrix of independently atomic cells.
//
// 🚀 What is atomrace?
//
//	A compact, race-construction library that brings together:
//		• atommat: a fixed 4×4 matrix whose float64 cells are individually
//		  atomic (lock-free loads/stores), plus multiplication records that
//		  can re-derive their own correctness after the fact
//		• racelab: a background mutator with cooperative cancellation, a
//		  foreground multiply-and-record harness, and an experiment driver
//		  that contrasts unlocked and lock-sharing runs
//
// ✨ Why does it exist?
//
//   - Per-cell atomics prevent torn values, nothing more — the multiply
//     reads its 32 operand terms one atomic load at a time, so a
//     concurrent writer can slip between any two of them
//   - Recorded cycles stay verifiable forever: each record owns frozen
//     snapshots of both operands and the claimed product
//   - One shared mutex, held for a whole iteration/cycle, restores
//     composite atomicity — accuracy goes from "almost 100%" to exactly
//     100%, every run
//
// Under the hood, everything is organized under two subpackages:
//
//	atommat/ — Matrix (atomic cells, bounds-checked access, Mul, Equal,
//	           Snapshot) and MulRecord (frozen operands + claimed product)
//	racelab/ — Mutator (Start/Stop/Join), Harness (RunCycle, Accuracy),
//	           Trial/Compare experiment driver
//
// Quick taste:
//
//	left, _ := atommat.New([][]float64{{1, 2, 0, 1}, {0, 1, 1, 0}})
//	right, _ := atommat.New([][]float64{{2, 2, 0, 1}, {1, 1, 1, 2}})
//	prod := atommat.Mul(left, right)
//	rec := atommat.NewMulRecord(left, right, prod)
//	fmt.Println(rec.IsCorrect()) // true — nothing mutated in between
//
// Dive into racelab.Compare for the headline experiment: the same cycle
// count, with and without the shared lock, on isolated instance sets.
//
//	go get github.com/katalvlaran/atomrace
package atomrace
