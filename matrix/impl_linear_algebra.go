// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition (block accumulate) and the dense triple-loop product
// (block multiply). All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical kernels used by the blocked driver.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap via matrixErrorf.
//   - Products are written as float64(a*b) so the compiler never fuses the
//     multiply-add; fast path and fallback stay bit-identical on every GOARCH.

package matrix

import "fmt"

// ZeroSum is the additive identity every accumulator starts from.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opMul      = "Mul"
	opGetBlock = "GetBlock"
	opSetBlock = "SetBlock"
	opAllClose = "AllClose"
	opFromRows = "FromRows"
	opIdentity = "IdentityLike"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//   - Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops; hide concrete types to force the fallback path in tests.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// Mul performs the standard triple-loop product C = A × B (no aliasing).
//
//	C[i,j] = Σ_l A[i,l]·B[l,j], summed left-to-right over l = 0..n-1 from ZeroSum.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→l→j with row-major strides;
//     otherwise use i→j→l through At.
//
// Behavior highlights:
//   - Both loop orders add the l-th term into C[i,j] in increasing l, so the
//     rounding sequence per element is the same on either path.
//   - No zero-skipping: 0·Inf still yields NaN as IEEE-754 requires.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Called once per (rowBlock, colBlock, reduceBlock) triple by the blocked driver;
//     with k×k tiles the working set is three k² buffers.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, l int
		av, bv  float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + l
			// db.data layout: l*bCols + j
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for l = 0; l < aCols; l++ {
					av = da.data[rowA+l]
					rowB = l * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += float64(av * db.data[rowB+j])
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-l).
	var current float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for l = 0; l < aCols; l++ {
				if av, err = a.At(i, l); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, l, err))
				}
				if bv, err = b.At(l, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", l, j, err))
				}
				current += float64(av * bv)
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}
