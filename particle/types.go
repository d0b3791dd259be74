// SPDX-License-Identifier: MIT

package particle

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadPointSet indicates a vertex matrix that is not 2×N with N ≥ 1.
	ErrBadPointSet = errors.New("particle: point set must be a 2xN matrix")

	// ErrTooFewVertices indicates fewer than two vertices for arc generation.
	ErrTooFewVertices = errors.New("particle: at least 2 vertices required")

	// ErrBadRange indicates an inverted or non-finite [min, max] range.
	ErrBadRange = errors.New("particle: invalid range")

	// ErrBadParams indicates a non-positive ttl, shrink factor or similar.
	ErrBadParams = errors.New("particle: invalid parameters")
)

// Point is a coordinate pair on the Cartesian plane.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Params bounds the random draws made by NewParticle and fixes the
// per-step physics applied by Update.
type Params struct {
	Gravity float64 // subtracted from vy every second
	Shrink  float64 // per-step scale factor, (0, 1] shrinks
	TTL     float64 // seconds to live

	MinVertices, MaxVertices int
	MinRadius, MaxRadius     float64
	MinSpeed, MaxSpeed       float64 // |vx| and vy
	MaxSpin                  float64 // angular velocity drawn from [0, MaxSpin)
}

// DefaultParams returns the stock emitter tuning.
func DefaultParams() Params {
	return Params{
		Gravity:     1000,
		Shrink:      0.999,
		TTL:         5,
		MinVertices: 25,
		MaxVertices: 50,
		MinRadius:   20,
		MaxRadius:   40,
		MinSpeed:    100,
		MaxSpeed:    500,
		MaxSpin:     math.Pi,
	}
}

// Validate reports the first nonsensical field.
func (p Params) Validate() error {
	switch {
	case !finite(p.Gravity):
		return fmt.Errorf("gravity %v: %w", p.Gravity, ErrBadParams)
	case !finite(p.Shrink) || p.Shrink <= 0:
		return fmt.Errorf("shrink %v: %w", p.Shrink, ErrBadParams)
	case !finite(p.TTL) || p.TTL <= 0:
		return fmt.Errorf("ttl %v: %w", p.TTL, ErrBadParams)
	case p.MinVertices < 2:
		return fmt.Errorf("min vertices %d: %w", p.MinVertices, ErrTooFewVertices)
	case p.MaxVertices < p.MinVertices:
		return fmt.Errorf("vertices [%d, %d]: %w", p.MinVertices, p.MaxVertices, ErrBadRange)
	case !validRange(p.MinRadius, p.MaxRadius) || p.MinRadius <= 0:
		return fmt.Errorf("radius [%v, %v]: %w", p.MinRadius, p.MaxRadius, ErrBadRange)
	case !validRange(p.MinSpeed, p.MaxSpeed) || p.MinSpeed < 0:
		return fmt.Errorf("speed [%v, %v]: %w", p.MinSpeed, p.MaxSpeed, ErrBadRange)
	case !finite(p.MaxSpin) || p.MaxSpin < 0:
		return fmt.Errorf("spin %v: %w", p.MaxSpin, ErrBadRange)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validRange(lo, hi float64) bool {
	return finite(lo) && finite(hi) && lo <= hi
}
