// Physics sandbox - live ball simulation with sliders for the energy-loss
// and gravity parameters.
//
// Usage: go run ./cmd/sandbox [-config path] [-count n] [-seed n]
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/bounce/config"
	"github.com/pthm-cable/bounce/physics"
	"github.com/pthm-cable/bounce/simulation"
	"github.com/pthm-cable/bounce/telemetry"
)

const panelWidth = 360

// sandboxParams holds the slider-controlled values.
type sandboxParams struct {
	AirResistance      float32
	DampingWall        float32
	DampingBall        float32
	CollisionTolerance float32
	GravityX           float32
	GravityY           float32
}

func paramsFromConfig(cfg *config.Config) sandboxParams {
	return sandboxParams{
		AirResistance:      float32(cfg.Physics.AirResistance),
		DampingWall:        float32(cfg.Physics.DampingWall),
		DampingBall:        float32(cfg.Physics.DampingBall),
		CollisionTolerance: float32(cfg.Physics.CollisionTolerance),
		GravityX:           float32(cfg.Gravity.X),
		GravityY:           float32(cfg.Gravity.Y),
	}
}

// apply writes the slider values into a copy of cfg.
func (sp sandboxParams) apply(cfg config.Config) config.Config {
	cfg.Physics.AirResistance = float64(sp.AirResistance)
	cfg.Physics.DampingWall = float64(sp.DampingWall)
	cfg.Physics.DampingBall = float64(sp.DampingBall)
	cfg.Physics.CollisionTolerance = float64(sp.CollisionTolerance)
	cfg.Gravity.X = float64(sp.GravityX)
	cfg.Gravity.Y = float64(sp.GravityY)
	return cfg
}

// physicsYAML renders the physics and gravity sections as YAML.
func physicsYAML(cfg config.Config) (string, error) {
	out, err := yaml.Marshal(struct {
		Physics config.PhysicsConfig `yaml:"physics"`
		Gravity config.GravityConfig `yaml:"gravity"`
	}{cfg.Physics, cfg.Gravity})
	if err != nil {
		return "", fmt.Errorf("marshaling physics: %w", err)
	}
	return string(out), nil
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	count := flag.Int("count", -1, "Number of balls (negative = use config)")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	base := *config.Cfg()
	if *count < 0 {
		*count = base.Balls.Count
	}

	arenaW, arenaH := int32(base.Arena.Width), int32(base.Arena.Height)
	rl.InitWindow(arenaW+panelWidth, max(arenaH, 560), "Bounce Sandbox")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(base.Screen.TargetFPS))

	params := paramsFromConfig(&base)
	gravity := physics.NewGravity(base.Gravity.X, base.Gravity.Y)

	spawn := func() *simulation.BallSet {
		cfg := params.apply(base)
		return simulation.NewRandom(*count, rand.New(rand.NewSource(*seed)),
			physics.SpawnBoundsFromConfig(&cfg), physics.ParamsFromConfig(&cfg), gravity)
	}
	balls := spawn()
	paused := false

	for !rl.WindowShouldClose() {
		cfg := params.apply(base)
		balls.SetParams(physics.ParamsFromConfig(&cfg))
		gravity.Set(cfg.Gravity.X, cfg.Gravity.Y)

		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if !paused {
			balls.Tick()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		balls.Each(func(_ int, b physics.Ball) {
			rl.DrawCircleV(rl.Vector2{X: float32(b.X), Y: float32(b.Y)}, float32(b.Radius), b.Color)
		})

		energy, contacts := statsLines(balls)
		rl.DrawText(energy, 10, 10, 16, rl.LightGray)
		rl.DrawText(contacts, 10, 30, 16, rl.LightGray)
		if paused {
			rl.DrawText("PAUSED", 10, 50, 16, rl.Yellow)
		}

		// Control panel
		panelX := float32(arenaW + 10)
		panelY := float32(10)
		rl.DrawRectangle(arenaW, 0, panelWidth, int32(rl.GetScreenHeight()), rl.Color{R: 20, G: 25, B: 30, A: 255})

		rl.DrawText("Physics Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		panelY = slider(panelX, panelY, "Air resistance", &params.AirResistance, 0, 0.05, "%.4f")
		panelY = slider(panelX, panelY, "Wall damping", &params.DampingWall, 0, 1, "%.2f")
		panelY = slider(panelX, panelY, "Ball damping", &params.DampingBall, 0, 1, "%.2f")
		panelY = slider(panelX, panelY, "Collision tolerance", &params.CollisionTolerance, 0, 0.2, "%.3f")
		panelY = slider(panelX, panelY, "Gravity X", &params.GravityX, -5, 5, "%.1f")
		panelY = slider(panelX, panelY, "Gravity Y", &params.GravityY, -5, 5, "%.1f")
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 100, Height: 30}, toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}
		if gui.Button(rl.Rectangle{X: panelX + 110, Y: panelY, Width: 100, Height: 30}, "Respawn") {
			balls = spawn()
		}
		if gui.Button(rl.Rectangle{X: panelX + 220, Y: panelY, Width: 100, Height: 30}, "Reset All") {
			params = paramsFromConfig(&base)
			balls = spawn()
		}
		panelY += 45

		// Output YAML
		text, err := physicsYAML(cfg)
		if err != nil {
			text = err.Error()
		}
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 22
		for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(rl.GetScreenHeight())-24, 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) && err == nil {
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider bound to v and returns the next row y.
func slider(x, y float32, label string, v *float32, lo, hi float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	*v = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: panelWidth - 100, Height: 20},
		"", "",
		*v, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, *v), int32(x+panelWidth-90), int32(y+2), 16, rl.RayWhite)
	return y + 32
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// statsLines formats the live energy, speed and contact summary.
func statsLines(balls *simulation.BallSet) (energy, contacts string) {
	snapshot := balls.Balls()
	params := balls.Params()
	speeds := make([]float64, len(snapshot))
	var ke float64
	var resting int
	for i := range snapshot {
		speeds[i] = snapshot[i].Speed()
		ke += snapshot[i].KineticEnergy()
		if telemetry.IsResting(snapshot[i], params) {
			resting++
		}
	}
	sp := telemetry.ComputeSpeedStats(speeds)
	energy = fmt.Sprintf("KE: %.0f  Speed mean: %.2f  Max: %.2f", ke, sp.Mean, sp.Max)
	contacts = fmt.Sprintf("Contacts: %d  Resting: %d", len(balls.CollidingPairs()), resting)
	return energy, contacts
}
