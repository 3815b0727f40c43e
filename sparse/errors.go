// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set. All operations return these
// sentinels and tests check them via errors.Is; nothing in this package
// panics on user input.
package sparse

import "errors"

var (
	// ErrFormat indicates malformed input text during Parse: a missing
	// header line, a header that does not reduce to an integer, or an
	// entry line that does not split into exactly three integer tokens.
	ErrFormat = errors.New("sparse: input has wrong format")

	// ErrDimensionMismatch indicates incompatible operand dimensions:
	// Add/Sub require identical shapes, Mul requires a.Cols() == b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
