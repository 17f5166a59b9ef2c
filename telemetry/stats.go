package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/bounce/physics"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	Balls int `csv:"balls"`

	// Collision activity
	Collisions        int     `csv:"collisions"`          // pairs resolved during the window
	CollisionsPerTick float64 `csv:"collisions_per_tick"` // Collisions / window length
	Contacts          int     `csv:"contacts"`            // pairs touching at window end

	// Balls lying on the floor with no vertical speed
	Resting int `csv:"resting"`

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	KineticEnergy float64 `csv:"kinetic_energy"` // sum of 1/2 r v² over all balls

	GravityX float64 `csv:"gravity_x"`
	GravityY float64 `csv:"gravity_y"`
}

// SpeedStats summarises a speed sample.
type SpeedStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// ComputeSpeedStats calculates mean, standard deviation, empirical
// percentiles and maximum. An empty sample yields zeros.
func ComputeSpeedStats(speeds []float64) SpeedStats {
	n := len(speeds)
	if n == 0 {
		return SpeedStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, speeds)
	sort.Float64s(sorted)

	var s SpeedStats
	if n > 1 {
		s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	} else {
		s.Mean = sorted[0]
	}
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	s.Max = sorted[n-1]

	return s
}

// IsResting reports whether a ball sits on the floor with no vertical speed.
func IsResting(b physics.Ball, p physics.Params) bool {
	return b.VY == 0 && b.Y == p.Height-b.Radius
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("balls", s.Balls),
		slog.Int("collisions", s.Collisions),
		slog.Float64("collisions_per_tick", s.CollisionsPerTick),
		slog.Int("contacts", s.Contacts),
		slog.Int("resting", s.Resting),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("kinetic_energy", s.KineticEnergy),
		slog.Float64("gravity_x", s.GravityX),
		slog.Float64("gravity_y", s.GravityY),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
