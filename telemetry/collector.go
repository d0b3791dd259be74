package telemetry

// Collector accumulates events within tick windows and produces FrameStats.
type Collector struct {
	windowTicks int
	dt          float64

	// Current window tracking
	windowStartTick int

	// Event counters for current window
	spawned int
	expired int
}

// NewCollector creates a new stats collector.
// windowTicks: ticks per window (clamped to at least 1)
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}

	return &Collector{
		windowTicks: windowTicks,
		dt:          dt,
	}
}

// RecordSpawn records n new particles.
func (c *Collector) RecordSpawn(n int) {
	c.spawned += n
}

// RecordExpire records n expired particles.
func (c *Collector) RecordExpire(n int) {
	c.expired += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a FrameStats and resets counters for the next window.
// heights are the particle center y values and radii the per-particle mean
// vertex radius, both sampled at currentTick.
func (c *Collector) Flush(currentTick, alive int, heights, radii []float64) FrameStats {
	meanH, maxH := ComputeHeightStats(heights)

	stats := FrameStats{
		WindowStartTick: c.windowStartTick,
		Tick:            currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		Alive:           alive,
		Spawned:         c.spawned,
		Expired:         c.expired,
		MeanHeight:      meanH,
		MaxHeight:       maxH,
		MeanRadius:      ComputeMean(radii),
	}

	c.windowStartTick = currentTick
	c.spawned = 0
	c.expired = 0

	return stats
}
