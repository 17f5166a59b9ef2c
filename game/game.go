// Package game glues the ball simulation to the window: input, drawing,
// telemetry and headless stepping.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/bounce/config"
	"github.com/pthm-cable/bounce/physics"
	"github.com/pthm-cable/bounce/simulation"
	"github.com/pthm-cable/bounce/telemetry"
	"github.com/pthm-cable/bounce/ui"
)

// Max simulation ticks per Update call.
const maxStepsPerUpdate = 10

// Options configures a game instance.
type Options struct {
	Seed           int64
	BallCount      int // negative uses balls.count from config
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete game state.
type Game struct {
	cfg     *config.Config
	rng     *rand.Rand
	rngSeed int64

	balls   *simulation.BallSet
	gravity *physics.Gravity

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool

	// UI (nil in headless mode)
	hud          *ui.HUD
	gravityPanel *ui.GravityPanel
	perfPanel    *ui.PerfPanel
	inspector    *ui.Inspector
	showPerf     bool

	// State
	tick           int64
	paused         bool
	headless       bool
	stepsPerUpdate int
}

// NewGameWithOptions creates a game from the global config. In headless
// mode no raylib state is touched.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	count := opts.BallCount
	if count < 0 {
		count = cfg.Balls.Count
	}
	steps := min(max(opts.StepsPerUpdate, 1), maxStepsPerUpdate)

	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		rngSeed:        opts.Seed,
		gravity:        physics.NewGravity(cfg.Gravity.X, cfg.Gravity.Y),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
	}

	g.balls = simulation.NewRandom(count, g.rng,
		physics.SpawnBoundsFromConfig(cfg), physics.ParamsFromConfig(cfg), g.gravity)
	g.balls.SetPhaseTimer(g.perfCollector)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
		slog.Info("writing output", "dir", om.Dir())
	}

	if !opts.Headless {
		g.hud = ui.NewHUD()
		g.gravityPanel = ui.NewGravityPanel(float32(cfg.Arena.Width)-200, 10)
		g.perfPanel = ui.NewPerfPanel(10, 50, 150)
		g.inspector = ui.NewInspector(10, int32(cfg.Arena.Height)-220)
	}

	slog.Info("balls spawned",
		"count", count,
		"seed", opts.Seed,
		"stats_window", g.collector.WindowTicks(),
		"width", cfg.Arena.Width,
		"height", cfg.Arena.Height,
	)

	return g
}

// Update handles input and advances the simulation unless paused.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances the simulation without reading input.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs a single tick and feeds telemetry.
func (g *Game) step() {
	g.perfCollector.StartTick()
	resolved := g.balls.Tick()
	g.perfCollector.EndTick()

	g.tick++
	g.collector.RecordCollisions(resolved)
	g.flushTelemetry()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.tick
}

// Balls returns the simulated ball set.
func (g *Game) Balls() *simulation.BallSet {
	return g.balls
}

// Gravity returns the shared gravity vector.
func (g *Game) Gravity() *physics.Gravity {
	return g.gravity
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// TogglePause pauses or resumes ticking and returns the new state.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	slog.Info("toggled pause", "paused", g.paused, "tick", g.tick)
	return g.paused
}

// StepsPerUpdate returns the number of ticks run per Update call.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// Unload flushes and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
