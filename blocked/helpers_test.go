// SPDX-License-Identifier: MIT

package blocked_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockmul/matrix"
)

// hide masks *matrix.Dense so the kernels take their At/Set fallback.
type hide struct{ matrix.Matrix }

// randDense returns an n×n matrix from seed; ints in [-9,9] when integral,
// otherwise uniform in [-1,1).
func randDense(t testing.TB, n int, seed int64, integral bool) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if integral {
				v = float64(rng.Intn(19) - 9)
			} else {
				v = 2*rng.Float64() - 1
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// toGonum copies m into a gonum *mat.Dense.
func toGonum(m matrix.Matrix) *mat.Dense {
	r, c := m.Rows(), m.Cols()
	g := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ := m.At(i, j)
			g.Set(i, j, v)
		}
	}

	return g
}

// gonumProduct is the reference C = A·B computed by gonum.
func gonumProduct(a, b matrix.Matrix) *mat.Dense {
	var c mat.Dense
	c.Mul(toGonum(a), toGonum(b))

	return &c
}

// requireBitEqual fails unless x and y hold identical float64 bit patterns.
func requireBitEqual(t *testing.T, x, y matrix.Matrix) {
	t.Helper()
	require.Equal(t, x.Rows(), y.Rows())
	require.Equal(t, x.Cols(), y.Cols())
	for i := 0; i < x.Rows(); i++ {
		for j := 0; j < x.Cols(); j++ {
			xv, _ := x.At(i, j)
			yv, _ := y.At(i, j)
			require.Equalf(t, xv, yv, "[%d,%d]", i, j)
		}
	}
}
