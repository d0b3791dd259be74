// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether a and b have the same shape and every pair of
// corresponding elements differs by strictly less than eps.
// MAIN DESCRIPTION:
//   - Epsilon-tolerant equality; eps defaults to DefaultEpsilon (0.001) and
//     is overridden with WithEpsilon.
//
// Implementation:
//   - Stage 1: nil operands or differing shapes → false immediately.
//   - Stage 2: walk both matrices i→j; the first pair with |a-b| ≥ eps → false.
//
// Behavior highlights:
//   - Equal(a, a) is true for every finite a (eps > 0).
//   - Any NaN element makes the comparison false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix, opts ...Option) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !withinEps(da.data[idx], db.data[idx], eps) {
					return false
				}
			}

			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || !withinEps(av, bv, eps) {
				return false
			}
		}
	}

	return true
}

// NotEqual is the logical negation of Equal under the same options.
func NotEqual(a, b Matrix, opts ...Option) bool {
	return !Equal(a, b, opts...)
}

// withinEps is the element predicate: |x-y| < eps.
func withinEps(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}
