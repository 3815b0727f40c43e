// SPDX-License-Identifier: MIT

// Package sparse: the line-oriented text codec.
//
// Encoding:
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Blank lines (after trimming) are skipped on read. Values are signed.
package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Matrix from its text encoding.
//
// The first two non-blank lines carry the dimensions: each is split on
// "=" and the second token, whitespace-trimmed, must parse as an
// integer. Every further non-blank line is an entry: one leading and
// one trailing character are stripped, the remainder is split on ","
// and must yield exactly three integer tokens. Any violation returns
// ErrFormat with no partial matrix.
//
// Entries are applied in file order, so a later duplicate coordinate
// overwrites an earlier one.
// Complexity: O(lines).
func Parse(text string) (*Matrix, error) {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrFormat
	}

	rows, err := headerValue(lines[0])
	if err != nil {
		return nil, err
	}
	cols, err := headerValue(lines[1])
	if err != nil {
		return nil, err
	}

	m := New(rows, cols)
	for _, line := range lines[2:] {
		row, col, val, err := parseEntry(line)
		if err != nil {
			return nil, err
		}
		m.Set(row, col, val)
	}

	return m, nil
}

// headerValue extracts the integer after "=" in a header line.
// Extra "=" tokens beyond the second are ignored, matching split
// semantics of the encoding.
func headerValue(line string) (int, error) {
	parts := strings.Split(line, "=")
	if len(parts) < 2 {
		return 0, ErrFormat
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, ErrFormat
	}

	return n, nil
}

// parseEntry decodes one "(<row>,<col>,<value>)" line. The delimiters
// are stripped positionally, not matched: the first and last character
// go, whatever they are, and the remainder must split on "," into
// exactly three integer tokens.
func parseEntry(line string) (row, col int, val int64, err error) {
	if len(line) < 2 {
		return 0, 0, 0, ErrFormat
	}
	fields := strings.Split(line[1:len(line)-1], ",")
	if len(fields) != 3 {
		return 0, 0, 0, ErrFormat
	}

	if row, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, 0, ErrFormat
	}
	if col, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, 0, ErrFormat
	}
	if val, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64); err != nil {
		return 0, 0, 0, ErrFormat
	}

	return row, col, val, nil
}

// String renders the text encoding: the two header lines followed by
// one "(<row>, <col>, <value>)" line per stored entry, explicit zeros
// included. Entries are emitted in ascending (row, col) order so output
// is deterministic.
// Complexity: O(nnz log nnz).
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows=%d\ncols=%d\n", m.rows, m.cols)
	for _, e := range m.Entries() {
		fmt.Fprintf(&b, "(%d, %d, %d)\n", e.Row, e.Col, e.Val)
	}

	return b.String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (m *Matrix) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
