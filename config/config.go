// Package config provides configuration loading for the particle emitter.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/particles/particle"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all emitter configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Particle  ParticleConfig  `yaml:"particle"`
	Emitter   EmitterConfig   `yaml:"emitter"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig is the pixel size of the plane particles are spawned on.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig holds per-step physics.
type PhysicsConfig struct {
	DT      float64 `yaml:"dt"`
	Gravity float64 `yaml:"gravity"`
	Shrink  float64 `yaml:"shrink"`
}

// ParticleConfig holds the ranges new particles are drawn from.
type ParticleConfig struct {
	TTL         float64 `yaml:"ttl"`
	MinVertices int     `yaml:"min_vertices"`
	MaxVertices int     `yaml:"max_vertices"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MaxSpin     float64 `yaml:"max_spin"`
}

// EmitterConfig schedules automatic bursts.
type EmitterConfig struct {
	BurstEvery int `yaml:"burst_every"` // ticks; 0 disables
	BurstSize  int `yaml:"burst_size"`
	MaxAlive   int `yaml:"max_alive"` // 0 = unlimited
}

// TelemetryConfig holds output cadence.
type TelemetryConfig struct {
	StatsEvery  int `yaml:"stats_every"`
	SampleEvery int `yaml:"sample_every"` // 0 disables particles.csv
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("screen %dx%d: %w", c.Screen.Width, c.Screen.Height, ErrInvalid)
	case math.IsNaN(c.Physics.DT) || math.IsInf(c.Physics.DT, 0) || c.Physics.DT <= 0:
		return fmt.Errorf("physics.dt %v: %w", c.Physics.DT, ErrInvalid)
	case c.Emitter.BurstEvery < 0 || c.Emitter.BurstSize < 0 || c.Emitter.MaxAlive < 0:
		return fmt.Errorf("emitter %+v: %w", c.Emitter, ErrInvalid)
	case c.Telemetry.StatsEvery <= 0 || c.Telemetry.SampleEvery < 0:
		return fmt.Errorf("telemetry %+v: %w", c.Telemetry, ErrInvalid)
	}
	if err := c.ParticleParams().Validate(); err != nil {
		return fmt.Errorf("particle: %w: %w", ErrInvalid, err)
	}

	return nil
}

// ParticleParams converts the physics and particle sections into particle.Params.
func (c *Config) ParticleParams() particle.Params {
	return particle.Params{
		Gravity:     c.Physics.Gravity,
		Shrink:      c.Physics.Shrink,
		TTL:         c.Particle.TTL,
		MinVertices: c.Particle.MinVertices,
		MaxVertices: c.Particle.MaxVertices,
		MinRadius:   c.Particle.MinRadius,
		MaxRadius:   c.Particle.MaxRadius,
		MinSpeed:    c.Particle.MinSpeed,
		MaxSpeed:    c.Particle.MaxSpeed,
		MaxSpin:     c.Particle.MaxSpin,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
