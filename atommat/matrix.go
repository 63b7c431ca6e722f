// Package atommat provides a fixed-size matrix of independently atomic
// float64 cells, the shared state at the heart of the race experiments.
// Matrix is flat and row-major like a dense matrix, but every cell is an
// atomic.Uint64 holding math.Float64bits, so single-cell loads and stores
// are lock-free and never torn. Nothing here synchronizes across cells;
// that gap is the point of the package.
package atommat

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Size is the fixed row and column count. Every Matrix is Size×Size.
const Size = 4

// cellCount is the flat backing length, Size*Size.
const cellCount = Size * Size

// Method tags used in wrapped errors (no magic strings).
const (
	opNew = "New"
	opAt  = "At"
	opSet = "Set"
)

// matErrorf wraps a sentinel with Matrix method context.
func matErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a Size×Size grid of independently atomic float64 cells,
// stored flat in row-major order. The zero value is a zero matrix, ready
// for use.
//
// Concurrency: each cell load/store is atomic on its own; there is no
// ordering or atomicity guarantee across two cells, and deliberately no
// internal lock. Callers that need whole-matrix consistency must bring
// their own mutual exclusion.
type Matrix struct {
	cells [cellCount]atomic.Uint64 // Float64bits per cell, row-major
}

// New creates a Matrix from nested row vectors.
// Stage 1 (Validate): at most Size rows, at most Size values per row.
// Stage 2 (Execute): store the supplied cells; the untouched tail stays 0.0.
// Stage 3 (Finalize): return the matrix or a wrapped shape sentinel.
// A nil or empty rows slice yields the zero matrix.
// Complexity: O(Size²) time and memory.
func New(rows [][]float64) (*Matrix, error) {
	// Validate row count before touching any cell (no partial writes).
	if len(rows) > Size {
		return nil, fmt.Errorf("%s: %d rows: %w", opNew, len(rows), ErrTooManyRows)
	}
	var r int
	// Validate every row width up front for the same reason.
	for r = range rows {
		if len(rows[r]) > Size {
			return nil, fmt.Errorf("%s: row %d has %d values: %w", opNew, r, len(rows[r]), ErrTooManyCols)
		}
	}

	m := new(Matrix) // zero value == zero matrix
	var c int
	for r = range rows {
		for c = range rows[r] {
			m.store(r*Size+c, rows[r][c]) // atomic store, same path as Set
		}
	}

	return m, nil
}

// load reads cell i atomically and decodes it back to float64.
func (m *Matrix) load(i int) float64 {
	return math.Float64frombits(m.cells[i].Load())
}

// store encodes v and writes cell i atomically.
func (m *Matrix) store(i int, v float64) {
	m.cells[i].Store(math.Float64bits(v))
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the calling method's tag.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= Size {
		return 0, matErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= Size {
		return 0, matErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*Size + col, nil
}

// At retrieves the cell at (row, col) with a single atomic load.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): atomic load from the flat array.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.load(idx), nil
}

// Set assigns v to the cell at (row, col) with a single atomic store.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): atomic store into the flat array.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.store(idx, v)

	return nil
}

// Snapshot returns a new Matrix whose cells are loaded from m one at a
// time. Each cell copy is atomic; the snapshot as a whole is NOT: if m
// mutates concurrently, the result can mix old and new cells. The copy
// shares no storage with m afterwards.
// Complexity: O(Size²).
func (m *Matrix) Snapshot() *Matrix {
	out := new(Matrix)
	for i := 0; i < cellCount; i++ {
		out.store(i, m.load(i)) // independent per-cell load/store
	}

	return out
}

// CopyFrom overwrites every cell of m with the corresponding cell of src,
// one atomic load/store pair at a time. Same cross-cell consistency
// caveat as Snapshot. src must be non-nil.
// Complexity: O(Size²).
func (m *Matrix) CopyFrom(src *Matrix) {
	for i := 0; i < cellCount; i++ {
		m.store(i, src.load(i))
	}
}

// Equal reports whether a and b hold exactly equal values in all Size²
// corresponding cells. Exact float64 equality, no tolerance: intended
// inputs come from exact small-integer arithmetic. Both operands must be
// non-nil; cells are loaded per-cell with the usual consistency caveat.
// Complexity: O(Size²).
func Equal(a, b *Matrix) bool {
	for i := 0; i < cellCount; i++ {
		if a.load(i) != b.load(i) {
			return false
		}
	}

	return true
}

// Grid dumps the matrix into a plain value array, one atomic load per
// cell (no cross-cell consistency under concurrent writes). Handy for
// diff-style test assertions and diagnostics.
// Complexity: O(Size²).
func (m *Matrix) Grid() [Size][Size]float64 {
	var g [Size][Size]float64
	var row, col int
	for row = 0; row < Size; row++ {
		for col = 0; col < Size; col++ {
			g[row][col] = m.load(row*Size + col)
		}
	}

	return g
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(Size²) for string construction.
func (m *Matrix) String() string {
	var s string
	var row, col int
	for row = 0; row < Size; row++ { // iterate over rows
		s += "["                         // open row
		for col = 0; col < Size; col++ { // iterate over columns
			s += fmt.Sprintf("%g", m.load(row*Size+col))
			if col < Size-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
