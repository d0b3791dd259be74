// SPDX-License-Identifier: MIT

package particle

import (
	"fmt"

	"github.com/katalvlaran/particles/matrix"
)

// PointSet is the geometric state of a particle: 2×N vertices and the
// center every pivoted transform is applied about.
type PointSet struct {
	points *matrix.Dense
	center Point
}

// NewPointSet takes a clone of points, which must be 2×N with N ≥ 1.
// Errors: ErrBadPointSet.
func NewPointSet(points *matrix.Dense, center Point) (*PointSet, error) {
	if matrix.ValidateNotNil(points) != nil || points.Rows() != 2 {
		return nil, ErrBadPointSet
	}

	return &PointSet{points: asDense("NewPointSet", points.Clone()), center: center}, nil
}

// Translate shifts every vertex and the center by (dx, dy).
func (ps *PointSet) Translate(dx, dy float64) {
	shift, err := matrix.NewTranslation(dx, dy, ps.points.Cols())
	mustTransform("Translate", err)
	sum, err := matrix.Add(ps.points, shift)
	mustTransform("Translate", err)

	ps.points = asDense("Translate", sum)
	ps.center.X += dx
	ps.center.Y += dy
}

// Rotate turns the vertices by theta radians counter-clockwise about the center.
func (ps *PointSet) Rotate(theta float64) {
	ps.aboutPivot("Rotate", matrix.NewRotation(theta), ps.center)
}

// Scale multiplies every vertex's distance from the center by c.
func (ps *PointSet) Scale(c float64) {
	ps.aboutPivot("Scale", matrix.NewScaling(c), ps.center)
}

// aboutPivot applies an origin-centred linear map as if pivot were the origin.
// pivot is passed by value, so the shift back uses the pre-shift coordinates.
func (ps *PointSet) aboutPivot(op string, linear *matrix.Dense, pivot Point) {
	ps.Translate(-pivot.X, -pivot.Y)
	prod, err := matrix.Mul(linear, ps.points)
	mustTransform(op, err)
	ps.points = asDense(op, prod)
	ps.Translate(pivot.X, pivot.Y)
}

// Center returns the tracked pivot.
func (ps *PointSet) Center() Point { return ps.center }

// Len returns the vertex count N.
func (ps *PointSet) Len() int { return ps.points.Cols() }

// Vertex returns column j as a Point.
// Errors: matrix.ErrOutOfRange when j ∉ [0, N).
func (ps *PointSet) Vertex(j int) (Point, error) {
	x, err := ps.points.At(0, j)
	if err != nil {
		return Point{}, fmt.Errorf("PointSet.Vertex(%d): %w", j, err)
	}
	y, err := ps.points.At(1, j)
	if err != nil {
		return Point{}, fmt.Errorf("PointSet.Vertex(%d): %w", j, err)
	}

	return Point{X: x, Y: y}, nil
}

// Points returns a copy of the vertex matrix.
func (ps *PointSet) Points() *matrix.Dense {
	return asDense("Points", ps.points.Clone())
}

// Radii returns each vertex's distance from the center.
func (ps *PointSet) Radii() []float64 {
	xs, err := ps.points.Row(0)
	mustTransform("Radii", err)
	ys, err := ps.points.Row(1)
	mustTransform("Radii", err)

	out := make([]float64, len(xs))
	for j := range xs {
		out[j] = ps.center.Dist(Point{X: xs[j], Y: ys[j]})
	}

	return out
}

func (ps *PointSet) String() string {
	return fmt.Sprintf("center=%v\n%v", ps.center, ps.points)
}

// mustTransform panics on a matrix error inside a transform: the shapes
// are fixed at construction, so any error here is a bug.
func mustTransform(op string, err error) {
	if err != nil {
		panic(fmt.Sprintf("particle: PointSet.%s: %v", op, err))
	}
}

func asDense(op string, m matrix.Matrix) *matrix.Dense {
	d, ok := m.(*matrix.Dense)
	if !ok {
		panic(fmt.Sprintf("particle: PointSet.%s: unexpected matrix type %T", op, m))
	}

	return d
}
