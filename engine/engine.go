// Package engine runs particles headlessly: an ECS world of particles,
// spawn-pixel mapping, fixed-step updates, ttl expiry and telemetry.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/katalvlaran/particles/config"
	"github.com/katalvlaran/particles/particle"
	"github.com/katalvlaran/particles/telemetry"
)

// Options configures an Engine beyond the YAML config.
type Options struct {
	Seed      int64  // 0 = time-based
	OutputDir string // empty disables CSV output
	LogStats  bool   // log every flushed FrameStats
}

// Engine owns the particle world and steps it at a fixed dt.
type Engine struct {
	cfg    *config.Config
	params particle.Params
	plane  Plane
	rng    *rand.Rand

	world  *ecs.World
	mapper *ecs.Map2[Body, Tag]
	filter *ecs.Filter2[Body, Tag]

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	tick   int
	nextID uint64
	alive  int
}

// New builds an engine from a validated config.
func New(cfg *config.Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	world := ecs.NewWorld()
	e := &Engine{
		cfg:       cfg,
		params:    cfg.ParticleParams(),
		plane:     Plane{Width: cfg.Screen.Width, Height: cfg.Screen.Height},
		rng:       rand.New(rand.NewSource(seed)),
		world:     world,
		mapper:    ecs.NewMap2[Body, Tag](world),
		filter:    ecs.NewFilter2[Body, Tag](world),
		collector: telemetry.NewCollector(cfg.Telemetry.StatsEvery, cfg.Physics.DT),
		output:    output,
		logStats:  opts.LogStats,
	}

	slog.Debug("engine created", "seed", seed, "plane", fmt.Sprintf("%dx%d", e.plane.Width, e.plane.Height))

	return e, nil
}

// Spawn creates one particle centred on the given screen pixel.
func (e *Engine) Spawn(px, py float64) (ecs.Entity, error) {
	center := e.plane.PixelToCoords(px, py)
	p, err := particle.NewParticle(e.rng, center, e.params)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("spawning at (%v, %v): %w", px, py, err)
	}

	e.nextID++
	body := Body{P: p}
	tag := Tag{ID: e.nextID, SpawnTick: e.tick}
	entity := e.mapper.NewEntity(&body, &tag)

	e.alive++
	e.collector.RecordSpawn(1)
	slog.Debug("spawned", "id", tag.ID, "particle", p)

	return entity, nil
}

// Burst spawns n particles at one pixel, like a mouse click.
func (e *Engine) Burst(px, py float64, n int) error {
	for i := 0; i < n; i++ {
		if _, err := e.Spawn(px, py); err != nil {
			return err
		}
	}
	return nil
}

// Step advances the world by one tick.
//
// Order: scheduled burst, Update(dt) on every particle, removal of expired
// particles, telemetry.
func (e *Engine) Step() error {
	if err := e.emit(); err != nil {
		return err
	}

	dt := e.cfg.Physics.DT

	// First pass: update and collect expired entities (must complete before modifying)
	var expired []ecs.Entity
	query := e.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		body.P.Update(dt)
		if !body.P.Alive() {
			expired = append(expired, query.Entity())
		}
	}

	// Second pass: remove entities (query iteration complete)
	for _, entity := range expired {
		e.world.RemoveEntity(entity)
	}
	e.alive -= len(expired)
	e.collector.RecordExpire(len(expired))

	e.tick++

	return e.record()
}

// emit fires the automatic burst schedule at a random pixel.
func (e *Engine) emit() error {
	em := e.cfg.Emitter
	if em.BurstEvery == 0 || em.BurstSize == 0 || e.tick%em.BurstEvery != 0 {
		return nil
	}
	if em.MaxAlive > 0 && e.alive >= em.MaxAlive {
		return nil
	}

	px := e.rng.Float64() * float64(e.plane.Width)
	py := e.rng.Float64() * float64(e.plane.Height)

	return e.Burst(px, py, em.BurstSize)
}

// record flushes stats and particle samples on their cadences.
func (e *Engine) record() error {
	tcfg := e.cfg.Telemetry
	sample := tcfg.SampleEvery > 0 && e.tick%tcfg.SampleEvery == 0
	flush := e.collector.ShouldFlush(e.tick)
	if !sample && !flush {
		return nil
	}

	var (
		heights []float64
		radii   []float64
		samples []telemetry.ParticleSample
	)
	query := e.filter.Query()
	for query.Next() {
		body, tag := query.Get()
		c := body.P.Center()
		heights = append(heights, c.Y)
		radii = append(radii, telemetry.ComputeMean(body.P.Shape().Radii()))
		if sample {
			m := body.P.Motion()
			samples = append(samples, telemetry.ParticleSample{
				Tick:     e.tick,
				ID:       tag.ID,
				X:        c.X,
				Y:        c.Y,
				VX:       m.VX,
				VY:       m.VY,
				TTL:      body.P.TTL(),
				Vertices: body.P.Shape().Len(),
			})
		}
	}

	if sample {
		if err := e.output.WriteSamples(samples); err != nil {
			return err
		}
	}
	if flush {
		stats := e.collector.Flush(e.tick, e.alive, heights, radii)
		if e.logStats {
			stats.LogStats()
		}
		if err := e.output.WriteFrame(stats); err != nil {
			return err
		}
	}

	return nil
}

// Run steps until maxTicks (0 = unlimited) or ctx is done.
// Cancellation is checked between steps.
func (e *Engine) Run(ctx context.Context, maxTicks int) error {
	for maxTicks <= 0 || e.tick < maxTicks {
		select {
		case <-ctx.Done():
			slog.Info("run cancelled", "tick", e.tick)
			return ctx.Err()
		default:
		}
		if err := e.Step(); err != nil {
			return fmt.Errorf("tick %d: %w", e.tick, err)
		}
	}

	slog.Info("max ticks reached", "tick", e.tick, "alive", e.alive)
	return nil
}

// ForEach visits every live particle. fn must not spawn or remove particles.
func (e *Engine) ForEach(fn func(Tag, *particle.Particle)) {
	query := e.filter.Query()
	for query.Next() {
		body, tag := query.Get()
		fn(*tag, body.P)
	}
}

// Particle returns the particle behind entity, or nil once it has expired.
func (e *Engine) Particle(entity ecs.Entity) *particle.Particle {
	if !e.world.Alive(entity) {
		return nil
	}
	body, _ := e.mapper.Get(entity)
	return body.P
}

// Tick returns the number of completed steps.
func (e *Engine) Tick() int { return e.tick }

// Alive returns the number of live particles.
func (e *Engine) Alive() int { return e.alive }

// Plane returns the pixel/Cartesian mapping in use.
func (e *Engine) Plane() Plane { return e.plane }

// Close flushes and closes telemetry output.
func (e *Engine) Close() error {
	return e.output.Close()
}
