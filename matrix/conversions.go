// SPDX-License-Identifier: MIT

// Package matrix - nested-slice conversions.
//
// The boundary representation of a matrix is an ordered sequence of rows,
// [][]float64. FromRows copies into row-major Dense storage; ToRows copies out.
// Neither function shares memory with its argument.
package matrix

import "fmt"

// FromRows builds a Dense from a rectangular [][]float64 (deep copy).
//
// Errors:
//   - ErrBadShape when rows is empty, a row is empty, or rows are ragged.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// ToRows copies any Matrix into a fresh [][]float64 (row-major order).
// Returns nil for a nil matrix.
// Complexity: O(r*c).
func ToRows(m Matrix) [][]float64 {
	if m == nil {
		return nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	if d, ok := m.(*Dense); ok {
		for i := range out {
			out[i] = make([]float64, c)
			copy(out[i], d.data[i*c:(i+1)*c])
		}

		return out
	}
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j], _ = m.At(i, j) // indices are in range by construction
		}
	}

	return out
}
