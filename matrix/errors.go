// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the blocked driver. All kernels MUST return these sentinels
// (optionally wrapped) and tests MUST check them via errors.Is. No kernel
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (square) -> dimension mismatch -> block size -> index range.

var (
	// ErrBadShape is returned when a nested-slice input is empty or ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and the block accessor return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, Mul where a.Cols != b.Rows, or blocked
	// multiplication of matrices that are not both n×n for the same n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidBlockSize indicates a block size k that cannot tile an n×n
	// matrix: k <= 0, k > n, or n mod k != 0.
	ErrInvalidBlockSize = errors.New("matrix: invalid block size")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// (tolerances in AllClose).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// ErrNonSquare signals that a square matrix was required but the input wasn't.
// It wraps ErrDimensionMismatch, so errors.Is matches either sentinel.
var ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)
