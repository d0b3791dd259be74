package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FrameStats holds aggregated statistics for a window of ticks.
type FrameStats struct {
	WindowStartTick int     `csv:"-"`
	Tick            int     `csv:"tick"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Alive int `csv:"alive"`

	// Events during window
	Spawned int `csv:"spawned"`
	Expired int `csv:"expired"`

	// Geometry (sampled at window end)
	MeanHeight float64 `csv:"mean_height"` // mean center y
	MaxHeight  float64 `csv:"max_height"`
	MeanRadius float64 `csv:"mean_radius"` // mean vertex distance from center
}

// ParticleSample is one particle's state at a sampled tick.
type ParticleSample struct {
	Tick     int     `csv:"tick"`
	ID       uint64  `csv:"id"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	VX       float64 `csv:"vx"`
	VY       float64 `csv:"vy"`
	TTL      float64 `csv:"ttl"`
	Vertices int     `csv:"vertices"`
}

// ComputeHeightStats returns mean and max of heights, or zeros when empty.
func ComputeHeightStats(heights []float64) (mean, peak float64) {
	if len(heights) == 0 {
		return 0, 0
	}
	return stat.Mean(heights, nil), floats.Max(heights)
}

// ComputeMean returns the arithmetic mean of values, or 0 when empty.
func ComputeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values) / float64(len(values))
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("tick", s.Tick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("alive", s.Alive),
		slog.Int("spawned", s.Spawned),
		slog.Int("expired", s.Expired),
		slog.Float64("mean_height", s.MeanHeight),
		slog.Float64("max_height", s.MaxHeight),
		slog.Float64("mean_radius", s.MeanRadius),
	)
}

// LogStats logs the frame stats using slog.
func (s FrameStats) LogStats() {
	slog.Info("stats", "frame", s)
}
