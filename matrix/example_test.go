// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/particles/matrix"
)

// ExampleMul scales a 2×N point set about the origin, then shifts it.
func ExampleMul() {
	// Columns are points: (1,1) and (2,2).
	pts, _ := matrix.NewDenseFrom(2, 2, []float64{
		1, 2,
		1, 2,
	})

	scaled, _ := matrix.Mul(matrix.NewScaling(2), pts)
	shift, _ := matrix.NewTranslation(1, -1, pts.Cols())
	moved, _ := matrix.Add(scaled, shift)

	for j := 0; j < moved.Cols(); j++ {
		x, _ := moved.At(0, j)
		y, _ := moved.At(1, j)
		fmt.Printf("(%g, %g)\n", x, y)
	}
	// Output:
	// (3, 1)
	// (5, 3)
}

// ExampleNewRotation turns the unit x-vector a quarter turn counter-clockwise.
func ExampleNewRotation() {
	v, _ := matrix.NewDenseFrom(2, 1, []float64{1, 0})
	r, _ := matrix.Mul(matrix.NewRotation(math.Pi/2), v)

	x, _ := r.At(0, 0)
	y, _ := r.At(1, 0)
	fmt.Printf("(%.3f, %.3f)\n", math.Abs(x), y)
	// Output:
	// (0.000, 1.000)
}

// ExampleEqual compares with the default tolerance.
func ExampleEqual() {
	a, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	b, _ := matrix.NewDenseFrom(1, 2, []float64{1.0001, 2})
	c, _ := matrix.NewDenseFrom(1, 2, []float64{1.01, 2})

	fmt.Println(matrix.Equal(a, b), matrix.Equal(a, c))
	// Output:
	// true false
}
