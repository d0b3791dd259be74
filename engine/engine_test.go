package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/particles/config"
	"github.com/katalvlaran/particles/particle"
)

// quietConfig disables automatic bursts and uses an exact binary dt.
func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Physics.DT = 0.125
	cfg.Particle.TTL = 0.5
	cfg.Emitter.BurstEvery = 0
	cfg.Telemetry.StatsEvery = 1000
	cfg.Telemetry.SampleEvery = 0
	return cfg
}

func newEngine(t *testing.T, cfg *config.Config, opts Options) *Engine {
	t.Helper()
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	e, err := New(cfg, opts)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, e.Close()) })
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.DT = -1
	_, err := New(cfg, Options{Seed: 1})
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestSpawnMapsPixelToCenter(t *testing.T) {
	e := newEngine(t, quietConfig(), Options{})

	entity, err := e.Spawn(960, 440)
	require.NoError(t, err)
	require.Equal(t, 1, e.Alive())

	p := e.Particle(entity)
	require.NotNil(t, p)
	require.Equal(t, particle.Point{X: 0, Y: 100}, p.Center())

	var tags []Tag
	e.ForEach(func(tag Tag, _ *particle.Particle) { tags = append(tags, tag) })
	require.Equal(t, []Tag{{ID: 1, SpawnTick: 0}}, tags)
}

func TestStepExpiresAfterTTL(t *testing.T) {
	e := newEngine(t, quietConfig(), Options{})

	require.NoError(t, e.Burst(100, 100, 3))
	first, err := e.Spawn(10, 10)
	require.NoError(t, err)
	require.Equal(t, 4, e.Alive())

	// ttl 0.5 at dt 0.125: alive after 3 steps, gone after the 4th.
	for i := 0; i < 3; i++ {
		require.NoError(t, e.Step())
	}
	require.Equal(t, 4, e.Alive())
	require.NotNil(t, e.Particle(first))

	require.NoError(t, e.Step())
	require.Equal(t, 0, e.Alive())
	require.Nil(t, e.Particle(first))
	require.Equal(t, 4, e.Tick())

	visited := 0
	e.ForEach(func(Tag, *particle.Particle) { visited++ })
	require.Zero(t, visited)
}

func TestStepFollowsBallisticTrajectory(t *testing.T) {
	cfg := quietConfig()
	cfg.Particle.TTL = 100
	e := newEngine(t, cfg, Options{})

	entity, err := e.Spawn(960, 540)
	require.NoError(t, err)
	p := e.Particle(entity)
	m := p.Motion()

	dt, g := cfg.Physics.DT, cfg.Physics.Gravity
	x, y, vy := 0.0, 0.0, m.VY
	for i := 0; i < 40; i++ {
		require.NoError(t, e.Step())
		x += m.VX * dt
		vy -= g * dt
		y += vy * dt
	}

	require.InDelta(t, x, p.Center().X, 1e-9)
	require.InDelta(t, y, p.Center().Y, 1e-9)
}

func TestEmitterSchedule(t *testing.T) {
	cfg := quietConfig()
	cfg.Particle.TTL = 100
	cfg.Emitter.BurstEvery = 10
	cfg.Emitter.BurstSize = 5

	e := newEngine(t, cfg, Options{})
	require.NoError(t, e.Run(context.Background(), 25))
	require.Equal(t, 25, e.Tick())
	// Bursts at ticks 0, 10 and 20.
	require.Equal(t, 15, e.Alive())

	cfg = quietConfig()
	cfg.Particle.TTL = 100
	cfg.Emitter.BurstEvery = 10
	cfg.Emitter.BurstSize = 5
	cfg.Emitter.MaxAlive = 10

	capped := newEngine(t, cfg, Options{})
	require.NoError(t, capped.Run(context.Background(), 25))
	require.Equal(t, 10, capped.Alive())
}

func TestRunHonoursCancellation(t *testing.T) {
	e := newEngine(t, quietConfig(), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := e.Run(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, e.Tick())
}

func TestRunIsDeterministicBySeed(t *testing.T) {
	centers := func() []particle.Point {
		cfg := quietConfig()
		cfg.Particle.TTL = 100
		cfg.Emitter.BurstEvery = 7
		e := newEngine(t, cfg, Options{Seed: 99})
		require.NoError(t, e.Run(context.Background(), 30))

		var out []particle.Point
		e.ForEach(func(_ Tag, p *particle.Particle) { out = append(out, p.Center()) })
		return out
	}

	a, b := centers(), centers()
	require.NotEmpty(t, a)
	require.Equal(t, a, b)
}

func TestRunWritesOutput(t *testing.T) {
	cfg := quietConfig()
	cfg.Particle.TTL = 2
	cfg.Emitter.BurstEvery = 8
	cfg.Telemetry.StatsEvery = 10
	cfg.Telemetry.SampleEvery = 5

	dir := filepath.Join(t.TempDir(), "out")
	e := newEngine(t, cfg, Options{OutputDir: dir, LogStats: true})
	require.NoError(t, e.Run(context.Background(), 40))

	frames, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	require.NoError(t, err)
	// Header plus one row per 10 ticks.
	require.Len(t, strings.Split(strings.TrimSpace(string(frames)), "\n"), 5)

	samples, err := os.ReadFile(filepath.Join(dir, "particles.csv"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(samples), "tick,id,x,y,vx,vy,ttl,vertices"))

	_, err = config.Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
}
