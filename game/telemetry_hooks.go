package game

import (
	"log/slog"

	"github.com/pthm-cable/bounce/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and, if so,
// logs and writes the window and timing stats.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	gx, gy := g.gravity.Get()
	stats := g.collector.Flush(g.tick, telemetry.Sample{
		Balls:    g.balls.Balls(),
		Params:   g.balls.Params(),
		Contacts: len(g.balls.CollidingPairs()),
		GravityX: gx,
		GravityY: gy,
	})
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
