package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bounce/physics"
	"github.com/pthm-cable/bounce/simulation"
	"github.com/pthm-cable/bounce/telemetry"
	"github.com/pthm-cable/bounce/ui"
)

const controlsLegend = "[G/Down] down  [Up] up  [Left/Right] sideways  [Space] pause  [</>] speed  [P] perf  [Tab] panel  [click] inspect"

// Draw renders one frame.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.balls.Each(func(_ int, b physics.Ball) {
		rl.DrawCircleV(rl.Vector2{X: float32(b.X), Y: float32(b.Y)}, float32(b.Radius), b.Color)
	})

	g.drawSelection()
	g.drawUI()

	rl.EndDrawing()
}

// drawSelection highlights the inspected ball and shows its panel. The
// selection is dropped if the ball no longer exists.
func (g *Game) drawSelection() {
	id, ok := g.inspector.Selected()
	if !ok {
		return
	}
	i := g.balls.IndexOf(id)
	if i < 0 {
		g.inspector.Deselect()
		return
	}

	b := g.balls.Ball(i)
	var partners []physics.Ball
	var ids []int
	for _, j := range g.balls.CollidingWith(i) {
		p := g.balls.Ball(j)
		partners = append(partners, p)
		ids = append(ids, p.ID)
	}

	g.inspector.DrawHighlight(b, partners)
	g.inspector.Draw(ui.InspectorData{
		Ball:     b,
		Index:    i,
		Partners: ids,
		Resting:  telemetry.IsResting(b, g.balls.Params()),
	})
}

// drawUI renders the HUD and panels. Panel buttons take effect immediately.
func (g *Game) drawUI() {
	gx, gy := g.gravity.Get()

	g.hud.Draw(ui.HUDData{
		Tick:     g.tick,
		Balls:    g.balls.Len(),
		Contacts: len(g.balls.CollidingPairs()),
		GravityX: gx,
		GravityY: gy,
		FPS:      rl.GetFPS(),
		Paused:   g.Paused(),
	})
	g.hud.DrawControls(int32(g.cfg.Arena.Height), controlsLegend)

	if g.showPerf {
		stats := g.perfCollector.Stats()
		g.perfPanel.Draw(ui.PerfPanelData{
			AvgTick:  stats.AvgTickDuration,
			Phases:   simulation.Phases,
			PhasePct: stats.PhasePct,
		})
	}

	if action := g.gravityPanel.Draw(gx, gy); action != ui.GravityNone {
		g.toggleGravity(action)
	}
}
