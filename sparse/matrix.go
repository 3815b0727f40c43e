// SPDX-License-Identifier: MIT

package sparse

import "sort"

// New constructs an empty rows×cols matrix. Dimensions are trusted as
// given; they are not validated or clamped.
// Complexity: O(1).
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make(map[index]int64),
	}
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Dims returns (rows, cols).
// Complexity: O(1).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the stored value at (i, j), or 0 when no entry exists.
// Out-of-range coordinates simply have no entry and report 0.
// Complexity: O(1).
func (m *Matrix) At(i, j int) int64 {
	return m.data[index{i, j}]
}

// Set inserts or overwrites the value at (i, j). A zero value is
// stored like any other; it is not pruned.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v int64) {
	m.data[index{i, j}] = v
}

// Len returns the number of stored entries, explicit zeros included.
// Complexity: O(1).
func (m *Matrix) Len() int { return len(m.data) }

// Clone returns a deep copy of m, independent of the original.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	out := New(m.rows, m.cols)
	for k, v := range m.data {
		out.data[k] = v
	}

	return out
}

// Entries returns a snapshot of all stored entries sorted by row, then
// column. Mutating the snapshot does not affect the matrix.
// Complexity: O(nnz log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.row, Col: k.col, Val: v})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}

		return out[a].Col < out[b].Col
	})

	return out
}

// Equal reports value equality: identical dimensions and identical
// nonzero cells. Explicitly stored zeros are ignored, so a matrix that
// went through Add/Sub cancellation still compares equal to one that
// never stored the cell.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for k, v := range m.data {
		if v != 0 && other.data[k] != v {
			return false
		}
	}
	for k, v := range other.data {
		if v != 0 && m.data[k] != v {
			return false
		}
	}

	return true
}
