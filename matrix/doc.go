// SPDX-License-Identifier: MIT

// Package matrix is a small dense-matrix toolkit for 2D geometry.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Add, Sub, Mul, Transpose: allocating kernels that never mutate operands
//     and fail with ErrDimensionMismatch on incompatible shapes.
//   - Equal / NotEqual: epsilon-tolerant comparison (default eps 0.001).
//   - NewRotation, NewScaling, NewTranslation: fixed-purpose factories for
//     counter-clockwise rotation about the origin, uniform scaling about the
//     origin and a 2×n broadcast shift meant to be added to a point matrix.
//   - ToGonum / FromGonum: conversions to and from gonum's mat.Dense.
//
// A 2×N point matrix keeps x-coordinates in row 0 and y-coordinates in row 1,
// one vertex per column. Linear transforms are applied by LEFT-multiplying
// the primitive against the point matrix:
//
//	R := matrix.NewRotation(math.Pi / 2)
//	rotated, err := matrix.Mul(R, points) // R × P, never P × R
//
// Errors are sentinel values (errors.go), wrapped with an operation tag;
// match them with errors.Is.
package matrix
