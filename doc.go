// Package particles is a small dense-matrix toolkit and the 2D particle
// emitter built on top of it.
//
// 🚀 What is particles?
//
//	Polygon-shaped particles whose vertices live in a 2×N matrix and are
//	moved only by matrix arithmetic:
//		• Translation: points + T(dx, dy, N)
//		• Rotation:    R(θ) × points, pivoted about the particle center
//		• Scaling:     S(c) × points, pivoted about the particle center
//
// ✨ Key features:
//
//   - Bounds-checked Dense matrices with sentinel errors (errors.Is friendly)
//   - Epsilon equality, fixed-width formatting, gonum interop
//   - Fixed-step ballistic update: spin, shrink, gravity, time-to-live
//   - Headless emitter on an ECS world with CSV telemetry and YAML config
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/        : Dense, Add/Sub/Mul/Transpose, Equal, Rotation/Scaling/Translation factories
//	particle/      : PointSet transforms, vertex arc generation, Particle.Update
//	config/        : YAML config with embedded defaults
//	telemetry/     : frame stats, CSV output
//	engine/        : pixel↔Cartesian plane, particle world, fixed-step Run loop
//	cmd/particles/ : headless CLI
//
// Quick ASCII example (quarter turn about C):
//
//	    B        B───A
//	    │            │
//	C───A    →       C
//
//	go run ./cmd/particles -max-ticks 600 -output-dir out
package particles
