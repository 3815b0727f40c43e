// Package sparse implements a dictionary-of-keys sparse matrix over
// signed 64-bit integers, together with a line-oriented text codec.
//
// What:
//
//   - Matrix stores only explicitly set entries; absent cells read as 0.
//   - Add / Sub / Mul allocate fresh results and never mutate operands.
//   - Parse / String convert between matrices and the text encoding
//     "rows=<r>\ncols=<c>\n(<row>, <col>, <value>)\n...".
//
// Why:
//
//   - Exact arithmetic: integer entries, no floating-point rounding.
//   - Very large dimensions with few entries: memory is O(stored entries),
//     never O(rows×cols).
//
// Complexity:
//
//   - At / Set / Len:   O(1).
//   - Add / Sub:        O(nnz(a) + nnz(b)).
//   - Mul:              O(nnz(a) × max row occupancy of b), plus one pass
//     to drop zero sums.
//   - Parse / String:   O(lines), String sorts entries: O(n log n).
//
// Behavioral notes:
//
//   - Set stores zero values; Add and Sub keep them. Mul alone omits
//     zero results from storage.
//   - Indices are not bounds-checked: At on any absent key reports 0,
//     and Set accepts coordinates outside [0,rows)×[0,cols).
//   - Instances carry no synchronization; share across goroutines only
//     after all mutation is done.
//
// Errors:
//
//   - ErrFormat: malformed header or entry line during Parse.
//   - ErrDimensionMismatch: operand shapes incompatible with the operator.
//   - ErrNilMatrix: nil operand passed to an operator.
package sparse
