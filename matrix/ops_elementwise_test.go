// Package matrix_test contains unit tests for AllClose.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blockmul/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, math.Inf(1)}})
	b := MustFromRows(t, [][]float64{{1, 2 + 1e-12}, {3, math.Inf(1)}})

	for _, tc := range []struct {
		name string
		a, b matrix.Matrix
	}{
		{"dense", a, b},
		{"generic", hide{a}, b},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := matrix.AllClose(tc.a, tc.b, 0, 1e-9)
			require.NoError(t, err)
			assert.True(t, ok, "within atol and equal infinities")

			ok, err = matrix.AllClose(tc.a, tc.b, 0, 0)
			require.NoError(t, err)
			assert.False(t, ok, "exact comparison must see the 1e-12 drift")
		})
	}
}

func TestAllClose_NaNNeverClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{math.NaN()}})

	ok, err := matrix.AllClose(a, a, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	a := MustDense(t, 2, 2)

	_, err := matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(nil, a, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
