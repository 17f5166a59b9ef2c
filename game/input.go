package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bounce/ui"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.TogglePause()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.showPerf = !g.showPerf
	}
	if rl.IsKeyPressed(rl.KeyTab) && g.gravityPanel != nil {
		g.gravityPanel.Toggle()
	}

	g.handleSelection()

	switch {
	case rl.IsKeyPressed(rl.KeyG), rl.IsKeyPressed(rl.KeyDown):
		g.toggleGravity(ui.GravityDown)
	case rl.IsKeyPressed(rl.KeyUp):
		g.toggleGravity(ui.GravityUp)
	case rl.IsKeyPressed(rl.KeyRight):
		g.toggleGravity(ui.GravityRight)
	case rl.IsKeyPressed(rl.KeyLeft):
		g.toggleGravity(ui.GravityLeft)
	}
}

// handleSelection picks a ball with the left mouse button and clears the
// selection with the right one. Clicks on the gravity panel are left to
// its buttons.
func (g *Game) handleSelection() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.inspector.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	if g.gravityPanel.Contains(mouse.X, mouse.Y) {
		return
	}
	balls := g.balls.Balls()
	if i := ui.PickBall(balls, float64(mouse.X), float64(mouse.Y)); i >= 0 {
		g.inspector.Select(balls[i].ID)
	}
}

// toggleGravity flips one gravity component between zero and the
// configured step in the requested direction.
func (g *Game) toggleGravity(action ui.GravityAction) {
	step := g.cfg.Gravity.Step

	switch action {
	case ui.GravityDown:
		g.gravity.ToggleY(step)
	case ui.GravityUp:
		g.gravity.ToggleY(-step)
	case ui.GravityRight:
		g.gravity.ToggleX(step)
	case ui.GravityLeft:
		g.gravity.ToggleX(-step)
	default:
		return
	}

	x, y := g.gravity.Get()
	slog.Info("toggled gravity", "direction", action.String(), "x", x, "y", y, "tick", g.tick)
}
