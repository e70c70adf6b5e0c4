// Package matrix provides the dense storage and block primitives behind
// cache-blocked matrix multiplication.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, and
//     MatrixView, a no-copy window over a Dense.
//   - The block accessor: GetBlock copies a k×k tile out of a matrix,
//     SetBlock writes a tile back at an offset.
//   - The per-tile kernels: Mul (dense triple-loop product) and Add
//     (element-wise accumulate), both returning fresh results.
//   - Validators and sentinel errors (ErrDimensionMismatch,
//     ErrInvalidBlockSize, ErrOutOfRange, ...) matched with errors.Is.
//   - FromRows/ToRows to cross the [][]float64 boundary.
//
// The blocked driver that composes these lives in package blocked.
package matrix
