// Package sparsem is a small toolkit for exact sparse-matrix arithmetic
// over signed integers, with a line-oriented text encoding and a CLI.
//
// 🚀 What is sparsem?
//
//	An exact, dictionary-of-keys integer matrix engine plus glue:
//		• Core type: dimensioned sparse matrix, absent cells read as zero
//		• Operators: addition, subtraction, multiplication (fresh results, no aliasing)
//		• Codec: rows=/cols= header followed by (row, col, value) entry lines
//		• CLI: load two operand files, apply one operation, persist the result
//
// ✨ Why choose sparsem?
//
//   - Exact – int64 entries, no floating-point rounding anywhere
//   - Sparse for real – memory proportional to stored entries, not rows×cols
//   - Predictable – sentinel errors, deterministic serialization order
//
// Under the hood, everything is organized in a few packages:
//
//	sparse/          — the Matrix type, its operators and the text codec
//	internal/calc/   — operation dispatch, result-file naming and persistence
//	internal/config/ — YAML configuration for the CLI
//	internal/cli/    — cobra command wiring
//	cmd/sparsem/     — the binary
//
//	go get github.com/katalvlaran/sparsem
package sparsem
