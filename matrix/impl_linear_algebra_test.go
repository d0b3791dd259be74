// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/particles/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSubBasic verifies element-wise sums and differences on both paths.
func TestAddSubBasic(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 2, 3, []float64{6, 5, 4, 3, 2, 1})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-5, -3, -1}, {1, 3, 5}}, diff)

	// Fallback path gives the same answer.
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(sum, slow))

	// Operands are untouched.
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a)
}

// TestAddDimensionMismatch checks that any shape difference fails without a result.
func TestAddDimensionMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b matrix.Matrix
		want error
	}{
		{"rows differ", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"cols differ", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
		{"transposed", MustDense(t, 2, 3), MustDense(t, 3, 2), matrix.ErrDimensionMismatch},
		{"nil left", nil, MustDense(t, 1, 1), matrix.ErrNilMatrix},
		{"nil right", MustDense(t, 1, 1), nil, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := matrix.Add(tc.a, tc.b)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, res)
		})
	}
}

// TestAddCommutativeAssociative checks the algebraic laws on random data.
func TestAddCommutativeAssociative(t *testing.T) {
	a := RandFilledDense(t, 3, 4, 1)
	b := RandFilledDense(t, 3, 4, 2)
	c := RandFilledDense(t, 3, 4, 3)

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(ab, ba))

	abC, err := matrix.Add(ab, c)
	require.NoError(t, err)
	bc, err := matrix.Add(b, c)
	require.NoError(t, err)
	aBC, err := matrix.Add(a, bc)
	require.NoError(t, err)
	require.True(t, matrix.Equal(abC, aBC, matrix.WithEpsilon(1e-12)))
}

// TestMulShapeLaw: Mul succeeds iff a.Cols == b.Rows; result is (a.Rows, b.Cols).
func TestMulShapeLaw(t *testing.T) {
	shapes := [][4]int{
		{2, 2, 2, 5},
		{1, 3, 3, 1},
		{3, 1, 1, 3},
		{2, 3, 2, 3},
		{4, 2, 3, 2},
	}
	for _, s := range shapes {
		a := MustDense(t, s[0], s[1])
		b := MustDense(t, s[2], s[3])
		res, err := matrix.Mul(a, b)
		if s[1] == s[2] {
			require.NoError(t, err, "shape %v", s)
			MustDims(t, res, s[0], s[3])
		} else {
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch, "shape %v", s)
			require.Nil(t, res)
		}
	}
}

// TestMulKnownProduct checks a hand-computed product on both paths.
func TestMulKnownProduct(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := [][]float64{{58, 64}, {139, 154}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, fast)

	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, want, slow)
}

// TestMulIdentityIsExact: I₂ × M equals M bit-for-bit for any 2×N M.
func TestMulIdentityIsExact(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	for _, n := range []int{1, 2, 5, 17} {
		m := RandFilledDense(t, 2, n, int64(n))
		got, err := matrix.Mul(id, m)
		require.NoError(t, err)
		require.Equal(t, m.RawData(), got.(*matrix.Dense).RawData())
	}
}

// TestMulNonCommutative shows left- and right-multiplication differ.
func TestMulNonCommutative(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{0, 1, 0, 0})
	b := NewFilledDense(t, 2, 2, []float64{0, 0, 1, 0})

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	ba, err := matrix.Mul(b, a)
	require.NoError(t, err)
	require.True(t, matrix.NotEqual(ab, ba))
}

// TestMulAssociative checks (AB)C == A(BC) within tolerance.
func TestMulAssociative(t *testing.T) {
	a := RandFilledDense(t, 2, 3, 10)
	b := RandFilledDense(t, 3, 4, 11)
	c := RandFilledDense(t, 4, 2, 12)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	abC, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	aBC, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	CompareClose(t, abC, aBC, 1e-12)
}

// TestTranspose covers both paths and the nil guard.
func TestTranspose(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, want, at)

	at, err = matrix.T(hide{a})
	require.NoError(t, err)
	CompareExact(t, want, at)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFacades checks the alias entry points delegate unchanged.
func TestFacades(t *testing.T) {
	a := RandFilledDense(t, 2, 2, 7)
	b := RandFilledDense(t, 2, 2, 8)

	s1, err := matrix.Sum(a, b)
	require.NoError(t, err)
	s2, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(s1, s2, matrix.WithEpsilon(1e-15)))

	d, err := matrix.Diff(s1, b)
	require.NoError(t, err)
	CompareClose(t, a, d, 1e-12)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	MustDims(t, p, 2, 2)

	z, err := matrix.ZerosLike(p)
	require.NoError(t, err)
	MustDims(t, z, 2, 2)

	zz, err := matrix.NewZeros(3, 1)
	require.NoError(t, err)
	MustDims(t, zz, 3, 1)

	require.Nil(t, matrix.CloneMatrix(nil))
	require.True(t, matrix.Equal(a, matrix.CloneMatrix(a)))
}
