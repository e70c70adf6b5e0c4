// SPDX-License-Identifier: MIT

// Package matrix - block accessor (k×k tile extraction and write-back).
//
// Purpose:
//   - GetBlock materializes a k×k tile of a larger matrix as an independent Dense.
//   - SetBlock writes a tile back at an offset; the write extent is the tile's own shape.
//
// Determinism:
//   - Fixed i→j copy order in the generic path; row-wise copy() on *Dense.
//
// AI-Hints:
//   - Keep both sides *Dense: the accessor then reduces to one copy() per tile row.

package matrix

import "fmt"

// GetBlock returns a fresh k×k copy of m anchored at (rowStart, colStart):
//
//	block[i,j] = m[rowStart+i, colStart+j],  0 <= i,j < k.
//
// Implementation:
//   - Stage 1: validate m non-nil and the window inside m (no partial reads).
//   - Stage 2: *Dense → View + Copy; otherwise At-driven i→j loop.
//
// Behavior highlights:
//   - The source is never mutated; the result shares no storage with it.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidBlockSize (k<=0), ErrOutOfRange (window past the edge).
//
// Complexity:
//   - Time O(k²), Space O(k²).
func GetBlock(m Matrix, rowStart, colStart, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGetBlock, err)
	}
	if err := ValidateBlockBounds(m, rowStart, colStart, k, k); err != nil {
		return nil, matrixErrorf(opGetBlock, err)
	}

	// Fast path: window over the flat buffer, then one bulk copy per row.
	if d, ok := m.(*Dense); ok {
		v, err := d.View(rowStart, colStart, k, k)
		if err != nil {
			return nil, matrixErrorf(opGetBlock, err)
		}

		return v.Copy(), nil
	}

	// Fallback: generic interface path with fixed i→j order.
	blk, err := NewDense(k, k)
	if err != nil {
		return nil, matrixErrorf(opGetBlock, err)
	}
	var i, j int
	var val float64
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			if val, err = m.At(rowStart+i, colStart+j); err != nil {
				return nil, matrixErrorf(opGetBlock, err)
			}
			blk.data[i*k+j] = val
		}
	}

	return blk, nil
}

// SetBlock overwrites dst[rowStart+i, colStart+j] with blk[i,j] for every
// (i,j) in blk's extent. The extent comes from blk itself, not from a k.
//
// Implementation:
//   - Stage 1: validate both non-nil and that the whole extent fits inside dst.
//   - Stage 2: *Dense dst → View + CopyFrom; otherwise At/Set i→j loop.
//
// Behavior highlights:
//   - All-or-nothing for the bounds check: an out-of-range block writes nothing.
//   - Cells of dst outside the extent are untouched.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(h*w) for an h×w block, Space O(1).
func SetBlock(dst Matrix, rowStart, colStart int, blk Matrix) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	if err := ValidateNotNil(blk); err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	h, w := blk.Rows(), blk.Cols()
	if err := ValidateBlockBounds(dst, rowStart, colStart, h, w); err != nil {
		return matrixErrorf(opSetBlock, err)
	}

	// Fast path: write-through window over the destination buffer.
	if d, ok := dst.(*Dense); ok {
		v, err := d.View(rowStart, colStart, h, w)
		if err != nil {
			return matrixErrorf(opSetBlock, err)
		}
		if err = v.CopyFrom(blk); err != nil {
			return matrixErrorf(opSetBlock, err)
		}

		return nil
	}

	// Fallback: generic interface path with fixed i→j order.
	var i, j int
	var val float64
	var err error
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			if val, err = blk.At(i, j); err != nil {
				return matrixErrorf(opSetBlock, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = dst.Set(rowStart+i, colStart+j, val); err != nil {
				return matrixErrorf(opSetBlock, err)
			}
		}
	}

	return nil
}
