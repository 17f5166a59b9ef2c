package telemetry

import (
	"github.com/pthm-cable/bounce/physics"
)

// Collector accumulates collision counts within tick windows and produces
// WindowStats.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	collisions int
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks)}
}

// RecordCollisions adds the pairs resolved by one tick.
func (c *Collector) RecordCollisions(n int) {
	c.collisions += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Sample is the end-of-window state handed to Flush.
type Sample struct {
	Balls    []physics.Ball
	Params   physics.Params
	Contacts int
	GravityX float64
	GravityY float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, s Sample) WindowStats {
	speeds := make([]float64, len(s.Balls))
	var ke float64
	var resting int
	for i, b := range s.Balls {
		speeds[i] = b.Speed()
		ke += b.KineticEnergy()
		if IsResting(b, s.Params) {
			resting++
		}
	}
	sp := ComputeSpeedStats(speeds)

	var perTick float64
	if span := currentTick - c.windowStartTick; span > 0 {
		perTick = float64(c.collisions) / float64(span)
	}

	stats := WindowStats{
		WindowStartTick:   c.windowStartTick,
		WindowEndTick:     currentTick,
		Balls:             len(s.Balls),
		Collisions:        c.collisions,
		CollisionsPerTick: perTick,
		Contacts:          s.Contacts,
		Resting:           resting,
		SpeedMean:         sp.Mean,
		SpeedStd:          sp.Std,
		SpeedP10:          sp.P10,
		SpeedP50:          sp.P50,
		SpeedP90:          sp.P90,
		SpeedMax:          sp.Max,
		KineticEnergy:     ke,
		GravityX:          s.GravityX,
		GravityY:          s.GravityY,
	}

	c.windowStartTick = currentTick
	c.collisions = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}
