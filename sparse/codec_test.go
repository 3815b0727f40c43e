// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for Parse and String.
package sparse_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sparsem/sparse"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Malformed verifies that every malformed input is rejected
// with ErrFormat and no partial matrix.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"BlankOnly", "\n   \n\t\n"},
		{"MissingCols", "rows=2\n"},
		{"HeaderNoEquals", "rows\ncols=2\n"},
		{"HeaderNotInteger", "rows=two\ncols=2\n"},
		{"ColsNotInteger", "rows=2\ncols=2.5\n"},
		{"EntryWrongArity", "rows=2\ncols=2\n(1,1)\n"},
		{"EntryTooManyFields", "rows=2\ncols=2\n(1,1,1,1)\n"},
		{"EntryNotInteger", "rows=2\ncols=2\n(1,a,3)\n"},
		{"EntryEmptyParens", "rows=2\ncols=2\n()\n"},
		{"EntrySingleChar", "rows=2\ncols=2\nx\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := sparse.Parse(tc.text)
			if !errors.Is(err, sparse.ErrFormat) {
				t.Errorf("Parse(%q) error = %v; want ErrFormat", tc.text, err)
			}
			if m != nil {
				t.Errorf("Parse(%q) returned a partial matrix", tc.text)
			}
		})
	}
}

func TestParse_Succeeds(t *testing.T) {
	text := "rows=3\ncols=4\n(0, 1, 5)\n(2, 3, -9)\n"
	m, err := sparse.Parse(text)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 2, m.Len())
	require.EqualValues(t, 5, m.At(0, 1))
	require.EqualValues(t, -9, m.At(2, 3))
}

func TestParse_BlankLinesAndWhitespace(t *testing.T) {
	text := "\n  rows = 2  \n\ncols = 2\n\n( 0 , 0 , 7 )\n   \n( 1 , 1 , -1 )\n"
	m, err := sparse.Parse(text)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.EqualValues(t, 7, m.At(0, 0))
	require.EqualValues(t, -1, m.At(1, 1))
}

// TestParse_DuplicateLastWins verifies entries apply in file order.
func TestParse_DuplicateLastWins(t *testing.T) {
	text := "rows=2\ncols=2\n(0, 0, 1)\n(0, 0, 8)\n"
	m, err := sparse.Parse(text)
	require.NoError(t, err)
	require.EqualValues(t, 8, m.At(0, 0))
	require.Equal(t, 1, m.Len())
}

// TestParse_HeaderOnly accepts a two-line file as an empty matrix.
func TestParse_HeaderOnly(t *testing.T) {
	m, err := sparse.Parse("rows=5\ncols=5\n")
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
}

//----------------------------------------------------------------------------//
// String Tests
//----------------------------------------------------------------------------//

func TestString_Deterministic(t *testing.T) {
	m := sparse.New(2, 3)
	m.Set(1, 2, -4)
	m.Set(0, 1, 9)
	m.Set(0, 0, 1)

	want := "rows=2\ncols=3\n(0, 0, 1)\n(0, 1, 9)\n(1, 2, -4)\n"
	require.Equal(t, want, m.String())

	text, err := m.MarshalText()
	require.NoError(t, err)
	require.Equal(t, want, string(text))
}

// TestRoundTrip verifies Parse(m.String()) reproduces dimensions and
// values exactly.
func TestRoundTrip(t *testing.T) {
	m := sparse.New(6, 7)
	m.Set(0, 0, 42)
	m.Set(5, 6, -42)
	m.Set(3, 3, 0) // explicit zero survives the trip as a stored entry
	m.Set(2, 4, 1000000)

	back, err := sparse.Parse(m.String())
	require.NoError(t, err)
	require.Equal(t, m.Rows(), back.Rows())
	require.Equal(t, m.Cols(), back.Cols())
	require.Equal(t, m.Len(), back.Len())
	require.True(t, back.Equal(m))
	require.Equal(t, m.Entries(), back.Entries())
}

// TestScale_LargeDimensionsFewEntries confirms storage stays
// proportional to the entry count: a 10,000×10,000 matrix with 50
// entries must load, add, and serialize instantly.
func TestScale_LargeDimensionsFewEntries(t *testing.T) {
	a := sparse.New(10_000, 10_000)
	b := sparse.New(10_000, 10_000)
	for i := 0; i < 50; i++ {
		a.Set(i*197, i*193, int64(i+1))
		b.Set(i*197, i*193, int64(-i))
	}

	loaded, err := sparse.Parse(a.String())
	require.NoError(t, err)
	require.Equal(t, 50, loaded.Len())

	sum, err := loaded.Add(b)
	require.NoError(t, err)
	require.Equal(t, 50, sum.Len())
	require.EqualValues(t, 1, sum.At(0, 0))

	require.NotEmpty(t, sum.String())
}
