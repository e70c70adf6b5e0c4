// SPDX-License-Identifier: MIT

package blocked

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/blockmul/matrix"
)

// Operation tags for error wrapping.
const (
	opMultiply     = "Multiply"
	opMultiplyRows = "MultiplyRows"
	opTiles        = "Tiles"
	opTile         = "tile"
)

// blockedErrorf wraps err as "blocked.<op>: <err>", preserving sentinels for errors.Is.
func blockedErrorf(op string, err error) error {
	return fmt.Errorf("blocked.%s: %w", op, err)
}

// Multiply computes C = A × B for n×n matrices by k×k blocks.
// It is MultiplyContext with context.Background().
func Multiply(a, b matrix.Matrix, k int, opts ...Option) (*matrix.Dense, error) {
	return MultiplyContext(context.Background(), a, b, k, opts...)
}

// MultiplyContext computes C = A × B for n×n matrices by k×k blocks.
//
// Algorithm (block-matrix identity C_rc = Σ_l A_rl · B_lc):
//
//	C := zeros(n, n)
//	for row := 0; row < n; row += k
//	  for col := 0; col < n; col += k
//	    for red := 0; red < n; red += k
//	      C[row,col] = Add(C[row,col], Mul(A[row,red], B[red,col]))
//
// Validation (eager, in this order, before C is allocated):
//   - A, B non-nil and square; same n          → matrix.ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch
//   - 0 < k <= n and n mod k == 0              → matrix.ErrInvalidBlockSize
//
// Schedules:
//   - Sequential (default): the loop above verbatim, one goroutine.
//   - TileParallel: up to Workers() output tiles at once via errgroup; each
//     tile accumulates locally and is written to C once. The per-tile
//     addition order is the same as Sequential, so results are bit-identical.
//
// A and B are never mutated; under TileParallel their At must be safe for
// concurrent readers (*matrix.Dense is). ctx is checked before every tile;
// on cancellation ctx.Err() is returned (wrapped) and no C is returned.
//
// Complexity: O(n³) time; O(n² + 3k²) space per worker.
func MultiplyContext(ctx context.Context, a, b matrix.Matrix, k int, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquarePair(a, b); err != nil {
		return nil, blockedErrorf(opMultiply, err)
	}
	n := a.Rows()
	tiles, err := Tiles(n, k)
	if err != nil {
		return nil, blockedErrorf(opMultiply, err)
	}
	o := gatherOptions(opts...)

	c, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, blockedErrorf(opMultiply, err)
	}

	switch o.schedule {
	case TileParallel:
		err = multiplyTileParallel(ctx, a, b, c, k, tiles, o.workers)
	default:
		err = multiplySequential(ctx, a, b, c, k, tiles)
	}
	if err != nil {
		return nil, blockedErrorf(opMultiply, err)
	}

	return c, nil
}

// MultiplyRows is the [][]float64 boundary of Multiply: it copies a and b into
// Dense storage, multiplies, and copies C back out.
//
// Errors: matrix.ErrBadShape for empty/ragged input, plus everything Multiply returns.
func MultiplyRows(a, b [][]float64, k int, opts ...Option) ([][]float64, error) {
	da, err := matrix.FromRows(a)
	if err != nil {
		return nil, blockedErrorf(opMultiplyRows, fmt.Errorf("A: %w", err))
	}
	db, err := matrix.FromRows(b)
	if err != nil {
		return nil, blockedErrorf(opMultiplyRows, fmt.Errorf("B: %w", err))
	}
	c, err := Multiply(da, db, k, opts...)
	if err != nil {
		return nil, err
	}

	return matrix.ToRows(c), nil
}

// multiplySequential is the single-writer driver: C itself is the accumulator,
// so each reduce step reads the current C tile back before adding to it.
func multiplySequential(ctx context.Context, a, b matrix.Matrix, c *matrix.Dense, k int, tiles []Tile) error {
	n := c.Rows()
	var aBlk, bBlk, cBlk *matrix.Dense
	var prod, next matrix.Matrix
	var err error
	for _, t := range tiles {
		if err = ctx.Err(); err != nil {
			return err
		}
		for red := 0; red < n; red += k {
			if aBlk, err = matrix.GetBlock(a, t.Row, red, k); err != nil {
				return tileErrorf(t, err)
			}
			if bBlk, err = matrix.GetBlock(b, red, t.Col, k); err != nil {
				return tileErrorf(t, err)
			}
			if cBlk, err = matrix.GetBlock(c, t.Row, t.Col, k); err != nil {
				return tileErrorf(t, err)
			}
			if prod, err = matrix.Mul(aBlk, bBlk); err != nil {
				return tileErrorf(t, err)
			}
			if next, err = matrix.Add(cBlk, prod); err != nil {
				return tileErrorf(t, err)
			}
			if err = matrix.SetBlock(c, t.Row, t.Col, next); err != nil {
				return tileErrorf(t, err)
			}
		}
	}

	return nil
}

// multiplyTileParallel fans the tiles out over an errgroup bounded by workers.
// Tiles are disjoint regions of c, so the single SetBlock per tile never races.
func multiplyTileParallel(ctx context.Context, a, b matrix.Matrix, c *matrix.Dense, k int, tiles []Tile, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	n := c.Rows()

	for _, t := range tiles {
		if gctx.Err() != nil {
			break // a tile failed or ctx was cancelled; stop scheduling
		}
		t := t // per-iteration copy (pre-Go 1.22 loopvar semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			acc, err := accumulateTile(a, b, t, n, k)
			if err != nil {
				return tileErrorf(t, err)
			}
			if err = matrix.SetBlock(c, t.Row, t.Col, acc); err != nil {
				return tileErrorf(t, err)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// errgroup only reports errors returned by goroutines; a cancellation that
	// raced the last scheduled tile must still fail the call.
	return ctx.Err()
}

// accumulateTile returns Σ_red A[t.Row,red]·B[red,t.Col] summed into a local
// k×k accumulator that starts at zero, red in increasing order.
func accumulateTile(a, b matrix.Matrix, t Tile, n, k int) (matrix.Matrix, error) {
	acc, err := matrix.NewZeros(k, k)
	if err != nil {
		return nil, err
	}
	var sum, prod matrix.Matrix = acc, nil
	var aBlk, bBlk *matrix.Dense
	for red := 0; red < n; red += k {
		if aBlk, err = matrix.GetBlock(a, t.Row, red, k); err != nil {
			return nil, err
		}
		if bBlk, err = matrix.GetBlock(b, red, t.Col, k); err != nil {
			return nil, err
		}
		if prod, err = matrix.Mul(aBlk, bBlk); err != nil {
			return nil, err
		}
		if sum, err = matrix.Add(sum, prod); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

// tileErrorf tags err with the output tile it came from.
func tileErrorf(t Tile, err error) error {
	return fmt.Errorf("%s %s: %w", opTile, t, err)
}
