// SPDX-License-Identifier: MIT

package particle

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/particles/matrix"
)

// Generate builds an n-vertex polygon around center by sweeping an arc.
//
// Algorithm:
//  1. θ₀ uniform in [0, π/2]; dθ = 2π/(n−1), so vertex n−1 lands on
//     vertex 0's angle and the outline closes.
//  2. For j = 0..n−1: r uniform in [minR, maxR];
//     column j = center + r·(cos θ, sin θ); θ += dθ.
//
// Errors: ErrTooFewVertices (n < 2), ErrBadRange (minR > maxR or non-finite).
func Generate(rng *rand.Rand, center Point, n int, minR, maxR float64) (*matrix.Dense, error) {
	if n < 2 {
		return nil, fmt.Errorf("Generate: n=%d: %w", n, ErrTooFewVertices)
	}
	if !validRange(minR, maxR) {
		return nil, fmt.Errorf("Generate: radius [%v, %v]: %w", minR, maxR, ErrBadRange)
	}

	pts, err := matrix.NewDense(2, n)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	theta := rng.Float64() * math.Pi / 2
	dTheta := 2 * math.Pi / float64(n-1)
	for j := 0; j < n; j++ {
		r := uniform(rng, minR, maxR)
		sin, cos := math.Sincos(theta)
		if err = pts.Set(0, j, center.X+r*cos); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		if err = pts.Set(1, j, center.Y+r*sin); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		theta += dTheta
	}

	return pts, nil
}

// uniform draws from [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
