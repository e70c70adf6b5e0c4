// SPDX-License-Identifier: MIT

package blocked_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmul/blocked"
	"github.com/katalvlaran/blockmul/matrix"
)

func TestTiles_RowBlockMajor(t *testing.T) {
	got, err := blocked.Tiles(6, 2)
	require.NoError(t, err)
	assert.Equal(t, []blocked.Tile{
		{0, 0}, {0, 2}, {0, 4},
		{2, 0}, {2, 2}, {2, 4},
		{4, 0}, {4, 2}, {4, 4},
	}, got)
	assert.Equal(t, "(2,4)", got[5].String())
}

func TestTiles_SingleTile(t *testing.T) {
	got, err := blocked.Tiles(5, 5)
	require.NoError(t, err)
	assert.Equal(t, []blocked.Tile{{0, 0}}, got)
}

func TestTiles_InvalidBlockSize(t *testing.T) {
	for _, k := range []int{0, -1, 3, 5} {
		_, err := blocked.Tiles(4, k)
		require.ErrorIs(t, err, matrix.ErrInvalidBlockSize, "k=%d", k)
	}
}
