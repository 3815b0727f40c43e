// SPDX-License-Identifier: MIT

// Package sparse: domain types for the dictionary-of-keys matrix.
package sparse

// index addresses a single cell. Using a comparable struct keeps the
// key compact and hash-friendly; lookups and stores are O(1).
type index struct {
	row, col int
}

// Entry is one stored (row, col, value) triple. Snapshots returned by
// Entries are sorted by row, then column.
type Entry struct {
	Row, Col int
	Val      int64
}

// Matrix is a dimensioned sparse matrix of int64 values. Cells absent
// from the backing map read as zero. Dimensions are fixed at
// construction; operators allocate fresh results and never alias or
// mutate their operands.
//
// Coordinates are not validated against the dimensions: At on any
// absent key reports 0, and Set stores whatever coordinates it is
// given. Callers that need bounds enforcement do it at their boundary.
type Matrix struct {
	rows, cols int
	data       map[index]int64
}
