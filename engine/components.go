package engine

import "github.com/katalvlaran/particles/particle"

// Body holds the simulated particle.
type Body struct {
	P *particle.Particle
}

// Tag identifies a particle across telemetry rows.
type Tag struct {
	ID        uint64
	SpawnTick int
}
