// Package calc is the collaborator layer around the sparse core: it
// resolves operation names, loads operand files, applies the operator,
// and persists the result under the configured results directory.
//
// The core stays pure; every filesystem touch lives here.
package calc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sparsem/sparse"
)

// Operation names one of the supported binary matrix operations.
type Operation string

const (
	// OpAdd is element-wise addition.
	OpAdd Operation = "add"
	// OpSubtract is element-wise subtraction.
	OpSubtract Operation = "subtract"
	// OpMultiply is matrix multiplication.
	OpMultiply Operation = "multiply"
)

// ErrInvalidOperation indicates an operation verb outside
// add/subtract/multiply. It is surfaced here, never by the core.
var ErrInvalidOperation = errors.New("calc: invalid operation")

// ParseOperation resolves a user-supplied verb, case-insensitively and
// ignoring surrounding whitespace. Unknown verbs return
// ErrInvalidOperation wrapped with the offending input.
func ParseOperation(name string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(name))); op {
	case OpAdd, OpSubtract, OpMultiply:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOperation, name)
	}
}

// apply dispatches to the matching sparse operator.
func (op Operation) apply(a, b *sparse.Matrix) (*sparse.Matrix, error) {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSubtract:
		return a.Sub(b)
	case OpMultiply:
		return a.Mul(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, op)
	}
}

// ResultFileName builds the output file name from the operand base
// names (extension stripped) and the operation:
// "{first}_{operation}_{second}_result.txt".
func ResultFileName(firstPath string, op Operation, secondPath string) string {
	return fmt.Sprintf("%s_%s_%s_result.txt", baseName(firstPath), op, baseName(secondPath))
}

// baseName strips the directory and one extension from a path.
func baseName(path string) string {
	name := filepath.Base(path)

	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Run loads both operand files, applies op, writes the result under
// resultsDir (created if absent), and returns the output path.
//
// Failures pass through untouched where the sentinel matters
// (sparse.ErrFormat, sparse.ErrDimensionMismatch, ErrInvalidOperation)
// and are wrapped with the offending path where context helps.
func Run(op Operation, firstPath, secondPath, resultsDir string) (string, error) {
	a, err := loadMatrix(firstPath)
	if err != nil {
		return "", err
	}
	b, err := loadMatrix(secondPath)
	if err != nil {
		return "", err
	}

	res, err := op.apply(a, b)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(resultsDir, 0o755); err != nil {
		return "", fmt.Errorf("create results directory: %w", err)
	}

	outPath := filepath.Join(resultsDir, ResultFileName(firstPath, op, secondPath))
	if err = os.WriteFile(outPath, []byte(res.String()), 0o644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}

	return outPath, nil
}

// loadMatrix reads and parses one operand file.
func loadMatrix(path string) (*sparse.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read matrix file: %w", err)
	}
	m, err := sparse.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
