// Package bitrow provides a dense bit matrix backed by a single flat
// allocation: one fixed-width row of group bits per graph item. Rows are
// merged with atomic word-OR, so concurrent writers covering different
// groups (or even the same group) never need a lock and the result is
// independent of scheduling.
package bitrow

import (
	"math/bits"
	"sync/atomic"
)

// Matrix is a rows x cols bit matrix. Row = item, column = group.
type Matrix struct {
	rows   int
	cols   int
	stride int // words per row
	words  []uint64
}

// New creates a zeroed matrix. A single backing slice avoids per-row heap
// allocation churn at millions of items.
func New(rows, cols int) *Matrix {
	stride := (cols + 63) / 64
	return &Matrix{
		rows:   rows,
		cols:   cols,
		stride: stride,
		words:  make([]uint64, rows*stride),
	}
}

// Rows returns the number of rows (items).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (groups).
func (m *Matrix) Cols() int { return m.cols }

// Set sets bit col of the given row. Safe for concurrent use; setting an
// already-set bit is a no-op, which is what makes the group-wise OR
// reduction idempotent.
func (m *Matrix) Set(row, col int) {
	w := &m.words[row*m.stride+col/64]
	mask := uint64(1) << (col % 64)
	if atomic.LoadUint64(w)&mask == 0 {
		atomic.OrUint64(w, mask)
	}
}

// Test reports whether bit col of the given row is set. Callers must not
// race Test with Set; the counting phase completes before any reads.
func (m *Matrix) Test(row, col int) bool {
	return m.words[row*m.stride+col/64]&(uint64(1)<<(col%64)) != 0
}

// RowCount returns the popcount of a row, i.e. the item's coverage count.
func (m *Matrix) RowCount(row int) int {
	count := 0
	for _, w := range m.words[row*m.stride : (row+1)*m.stride] {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// Row returns the backing words of a row. The slice aliases the matrix and
// must be treated as read-only.
func (m *Matrix) Row(row int) []uint64 {
	return m.words[row*m.stride : (row+1)*m.stride]
}
