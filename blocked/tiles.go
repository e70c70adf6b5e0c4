// SPDX-License-Identifier: MIT

package blocked

import (
	"fmt"

	"github.com/katalvlaran/blockmul/matrix"
)

// Tile is the top-left corner of one k×k output block of C.
type Tile struct {
	Row int // rowBlock offset (multiple of k)
	Col int // colBlock offset (multiple of k)
}

// String renders the tile as "(row,col)".
func (t Tile) String() string { return fmt.Sprintf("(%d,%d)", t.Row, t.Col) }

// Tiles enumerates the output tiles of an n×n product with block size k,
// rowBlock-major: (0,0), (0,k), ..., (0,n-k), (k,0), ...
//
// Errors:
//   - matrix.ErrInvalidBlockSize unless 0 < k <= n and n mod k == 0.
//
// Complexity: O((n/k)²).
func Tiles(n, k int) ([]Tile, error) {
	if err := matrix.ValidateBlockSize(n, k); err != nil {
		return nil, blockedErrorf(opTiles, err)
	}
	per := n / k
	out := make([]Tile, 0, per*per)
	for row := 0; row < n; row += k {
		for col := 0; col < n; col += k {
			out = append(out, Tile{Row: row, Col: col})
		}
	}

	return out, nil
}
