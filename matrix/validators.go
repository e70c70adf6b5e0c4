// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and the blocked driver minimal by delegating nil/shape/tiling checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → SameShape).
//  - Each validator states what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare (which is also ErrDimensionMismatch) otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape is the composite guard for element-wise kernels:
// both operands non-nil, then identical shapes.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquarePair ensures a and b are both n×n for the same n.
// Sequence: NotNil(a) → NotNil(b) → Square(a) → Square(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: The first gate of every blocked multiplication.
func ValidateSquarePair(a, b Matrix) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSquarePair: A", err)
	}
	if err := ValidateSquare(b); err != nil {
		return validatorErrorf("ValidateSquarePair: B", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateSquarePair", err)
	}

	return nil
}

// ValidateBlockSize ensures k tiles an n×n matrix exactly: 0 < k <= n and n mod k == 0.
//
// Errors: ErrInvalidBlockSize (message carries n and k).
// Complexity: O(1).
func ValidateBlockSize(n, k int) error {
	switch {
	case k <= 0:
		return validatorErrorf("ValidateBlockSize", fmt.Errorf("k=%d must be positive: %w", k, ErrInvalidBlockSize))
	case k > n:
		return validatorErrorf("ValidateBlockSize", fmt.Errorf("k=%d exceeds n=%d: %w", k, n, ErrInvalidBlockSize))
	case n%k != 0:
		return validatorErrorf("ValidateBlockSize", fmt.Errorf("k=%d does not divide n=%d: %w", k, n, ErrInvalidBlockSize))
	}

	return nil
}

// ValidateBlockBounds ensures the rows×cols window anchored at (r0,c0) lies inside m.
//
// Assumes m is non-nil.
// Errors: ErrInvalidBlockSize when rows<=0 or cols<=0; ErrOutOfRange otherwise.
// Complexity: O(1).
func ValidateBlockBounds(m Matrix, r0, c0, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateBlockBounds", ErrInvalidBlockSize)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.Rows() || c0+cols > m.Cols() {
		return validatorErrorf("ValidateBlockBounds",
			fmt.Errorf("window (%d,%d)+%dx%d in %dx%d: %w", r0, c0, rows, cols, m.Rows(), m.Cols(), ErrOutOfRange))
	}

	return nil
}
