// Package blocked multiplies square matrices with a cache-blocking (tiled)
// algorithm.
//
// 🚀 What is blocked multiplication?
//
//	A, B and C (n×n) are partitioned into k×k tiles. Each output tile is
//	C_rc = Σ_l A_rl · B_lc, accumulated one reduce step at a time, so the
//	working set of every step is three k×k buffers instead of whole rows
//	and columns.
//
// ✨ Key features:
//   - eager validation: non-square or mismatched operands and block sizes
//     that do not tile n fail with typed errors before any work is done
//   - Sequential schedule: the textbook rowBlock → colBlock → reduceBlock loop
//   - TileParallel schedule: independent output tiles on a bounded errgroup,
//     bit-identical to Sequential
//   - context cancellation between tiles
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/blockmul/blocked"
//
//	c, err := blocked.MultiplyRows(
//	    [][]float64{{1, 2}, {3, 4}},
//	    [][]float64{{5, 6}, {7, 8}},
//	    1,
//	    blocked.WithParallel(0), // 0 → GOMAXPROCS workers
//	)
//	// c == [[19 22] [43 50]]
//
// Errors (match with errors.Is):
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
//   - matrix.ErrInvalidBlockSize
//   - matrix.ErrBadShape (MultiplyRows: empty or ragged input)
//   - context.Canceled / context.DeadlineExceeded (MultiplyContext)
//
// Complexity: O(n³) time, O(n²) space for C plus O(k²) scratch per tile.
package blocked
