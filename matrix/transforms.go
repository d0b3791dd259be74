// SPDX-License-Identifier: MIT
// Package matrix - fixed-purpose factories for 2D geometry.
//
// Purpose:
//   - Build plain *Dense values pre-populated by a closed-form formula.
//     There is no rotation/scaling/translation type: the result is an
//     ordinary Dense and takes part in Add/Mul like any other matrix.
//
// Conventions:
//   - Cartesian coordinates (y up); angles in radians, counter-clockwise.
//   - Rotation and scaling act about the origin and are applied by
//     LEFT-multiplying a 2×N point matrix. Translation is ADDED.

package matrix

import (
	"fmt"
	"math"
)

// NewRotation returns the 2×2 counter-clockwise rotation by theta:
//
//	[ cosθ  -sinθ ]
//	[ sinθ   cosθ ]
//
// Complexity: O(1).
func NewRotation(theta float64) *Dense {
	m := mustDense(2, 2)
	sin, cos := math.Sincos(theta)
	m.data[0], m.data[1] = cos, -sin
	m.data[2], m.data[3] = sin, cos

	return m
}

// NewScaling returns the 2×2 uniform scale by c:
//
//	[ c  0 ]
//	[ 0  c ]
//
// Complexity: O(1).
func NewScaling(c float64) *Dense {
	m := mustDense(2, 2)
	m.data[0] = c
	m.data[3] = c

	return m
}

// NewTranslation returns a 2×n broadcast shift: every column is (dx, dy).
// Adding it to a 2×n point matrix shifts every vertex by the same offset.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewTranslation(dx, dy float64, n int) (*Dense, error) {
	m, err := NewDense(2, n)
	if err != nil {
		return nil, fmt.Errorf("NewTranslation: %w", err)
	}
	xs, ys := m.data[:n], m.data[n:]
	for j := 0; j < n; j++ {
		xs[j] = dx
		ys[j] = dy
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}
