// SPDX-License-Identifier: MIT

package particle

import (
	"fmt"
	"log/slog"
	"math/rand"
)

// Motion is the kinematic state carried by a Particle.
type Motion struct {
	VX, VY float64 // Cartesian units per second
	Spin   float64 // radians per second
}

// Particle is a shrinking, spinning polygon on a ballistic trajectory.
type Particle struct {
	shape  *PointSet
	motion Motion
	ttl    float64

	gravity float64
	shrink  float64
}

// NewParticle draws a random particle centred on center.
//
// Draws, in order: vertex count in [MinVertices, MaxVertices]; spin in
// [0, MaxSpin); vx and vy in [MinSpeed, MaxSpeed] with a fair coin flipping
// the sign of vx; then the vertex arc (see Generate).
//
// Errors: any Params.Validate error.
func NewParticle(rng *rand.Rand, center Point, p Params) (*Particle, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("NewParticle: %w", err)
	}

	n := p.MinVertices + rng.Intn(p.MaxVertices-p.MinVertices+1)
	m := Motion{
		Spin: rng.Float64() * p.MaxSpin,
		VX:   uniform(rng, p.MinSpeed, p.MaxSpeed),
		VY:   uniform(rng, p.MinSpeed, p.MaxSpeed),
	}
	if rng.Intn(2) != 0 {
		m.VX = -m.VX
	}

	pts, err := Generate(rng, center, n, p.MinRadius, p.MaxRadius)
	if err != nil {
		return nil, fmt.Errorf("NewParticle: %w", err)
	}
	shape, err := NewPointSet(pts, center)
	if err != nil {
		return nil, fmt.Errorf("NewParticle: %w", err)
	}

	return FromShape(shape, m, p), nil
}

// FromShape assembles a particle from an explicit shape and motion.
// Only Gravity, Shrink and TTL are read from p.
func FromShape(shape *PointSet, m Motion, p Params) *Particle {
	return &Particle{
		shape:   shape,
		motion:  m,
		ttl:     p.TTL,
		gravity: p.Gravity,
		shrink:  p.Shrink,
	}
}

// Update advances the particle by dt seconds.
func (p *Particle) Update(dt float64) {
	p.ttl -= dt
	p.shape.Rotate(dt * p.motion.Spin)
	p.shape.Scale(p.shrink)

	dx := p.motion.VX * dt
	p.motion.VY -= p.gravity * dt
	dy := p.motion.VY * dt
	p.shape.Translate(dx, dy)
}

// Alive reports whether time-to-live remains.
func (p *Particle) Alive() bool { return p.ttl > 0 }

// TTL returns the seconds left to live; negative once expired.
func (p *Particle) TTL() float64 { return p.ttl }

// Motion returns the current velocity and spin.
func (p *Particle) Motion() Motion { return p.motion }

// Shape exposes the underlying point set.
func (p *Particle) Shape() *PointSet { return p.shape }

// Center is shorthand for Shape().Center().
func (p *Particle) Center() Point { return p.shape.center }

// LogValue implements slog.LogValuer.
func (p *Particle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", p.shape.center.X),
		slog.Float64("y", p.shape.center.Y),
		slog.Float64("vx", p.motion.VX),
		slog.Float64("vy", p.motion.VY),
		slog.Float64("ttl", p.ttl),
		slog.Int("vertices", p.shape.Len()),
	)
}
