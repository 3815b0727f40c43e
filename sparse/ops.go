// SPDX-License-Identifier: MIT

// Package sparse: the three binary operators. Each validates its
// operands fail-fast, allocates a fresh result, and leaves both
// operands untouched.
package sparse

// Add returns the element-wise sum m + other.
// Returns ErrNilMatrix on a nil operand and ErrDimensionMismatch unless
// both shapes are identical.
//
// The result holds the union of both operands' stored keys. Values that
// cancel to zero stay stored; Add never prunes.
// Complexity: O(nnz(m) + nnz(other)) time and memory.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}

	res := m.Clone()
	for k, v := range other.data {
		res.data[k] += v
	}

	return res, nil
}

// Sub returns the element-wise difference m - other.
// Returns ErrNilMatrix on a nil operand and ErrDimensionMismatch unless
// both shapes are identical.
//
// Union semantics mirror Add: keys present only in other appear in the
// result as 0 - value, and zero differences stay stored.
// Complexity: O(nnz(m) + nnz(other)) time and memory.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}

	res := m.Clone()
	for k, v := range other.data {
		res.data[k] -= v
	}

	return res, nil
}

// Mul returns the matrix product m × other.
// Returns ErrNilMatrix on a nil operand and ErrDimensionMismatch unless
// m.Cols() == other.Rows(). The result is m.Rows() × other.Cols().
//
// Unlike Add and Sub, Mul stores only nonzero sums: dot products that
// come out to zero are omitted from the result entirely.
//
// Each stored entry (i, k) of m is matched against the stored entries
// of row k of other, so the cost is proportional to the nonzero
// structure of both operands rather than to rows×cols.
// Complexity: O(nnz(other) + Σ_(i,k)∈m nnz(other row k)) time,
// O(result entries) memory.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}
	if m.cols != other.rows {
		return nil, ErrDimensionMismatch
	}

	// Index other's entries by row so every left entry (i, k) pairs
	// directly with row k on the right.
	byRow := make(map[int][]Entry, other.rows)
	for k, v := range other.data {
		byRow[k.row] = append(byRow[k.row], Entry{Row: k.row, Col: k.col, Val: v})
	}

	acc := make(map[index]int64)
	for k, v := range m.data {
		for _, e := range byRow[k.col] {
			acc[index{k.row, e.Col}] += v * e.Val
		}
	}

	res := New(m.rows, other.cols)
	for k, sum := range acc {
		if sum != 0 {
			res.data[k] = sum
		}
	}

	return res, nil
}
