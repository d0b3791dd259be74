// SPDX-License-Identifier: MIT
// Package particle moves polygon-shaped particles through a Cartesian plane
// using the dense matrices from package matrix.
//
// What is a PointSet?
//
//	A PointSet is a 2×N matrix of vertices (row 0 = x, row 1 = y,
//	column j = vertex j) plus a tracked center. The center is updated
//	incrementally by every translation and is never recomputed from the
//	vertices.
//
// Transforms:
//   - Translate(dx, dy): points += T(dx, dy, N); center += (dx, dy).
//   - Rotate(θ), Scale(c): shift the center to the origin, left-multiply
//     by the origin-centred R(θ) or S(c), shift back by the captured center.
//     The center does not move.
//
// A Particle adds motion state (ttl, velocity, angular velocity) on top of
// a PointSet. Update(dt) advances it one fixed step:
//
//	ttl -= dt
//	Rotate(dt·spin)
//	Scale(shrink)
//	vy  -= gravity·dt
//	Translate(vx·dt, vy·dt)
//
// Usage:
//
//	rng := rand.New(rand.NewSource(42))
//	p, err := particle.NewParticle(rng, particle.Point{X: 0, Y: 0}, particle.DefaultParams())
//	if err != nil {
//		return err
//	}
//	for p.Alive() {
//		p.Update(1.0 / 60)
//	}
//
// Transforms are total: shapes agree by construction, so a matrix error
// inside Translate/Rotate/Scale is a programmer error and panics.
package particle
