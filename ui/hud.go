package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Tick     int64
	Balls    int
	Contacts int
	GravityX float64
	GravityY float64
	FPS      int32
	Paused   bool
}

// HUD renders the heads-up display in the top-left corner.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	th := h.renderer.Theme
	size := th.HeaderFontSize + 2
	rl.DrawText(statusLine(data), 10, 10, size, th.LabelColor)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 10+size+4, size, th.SectionHeader)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	th := h.renderer.Theme
	rl.DrawText(controls, 10, screenHeight-20, th.FontSize, rl.Gray)
}

func statusLine(data HUDData) string {
	return fmt.Sprintf("Tick: %d | Balls: %d | Contacts: %d | Gravity: (%+.1f, %+.1f) | FPS: %d",
		data.Tick, data.Balls, data.Contacts, data.GravityX, data.GravityY, data.FPS)
}

// PerfPanelData holds tick timing for display.
type PerfPanelData struct {
	AvgTick  time.Duration
	Phases   []string
	PhasePct map[string]float64
}

// PerfPanel renders the per-phase tick breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData) {
	r := p.renderer
	padding := r.Theme.Padding
	height := r.Theme.LineHeight*int32(len(data.Phases)+2) + padding*2

	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	y := r.DrawSectionHeader(x, p.y+padding, "Tick")
	y = r.DrawLabelValue(x, y, "avg", data.AvgTick.Round(time.Microsecond).String())

	for _, phase := range data.Phases {
		pct := data.PhasePct[phase]

		color := r.Theme.ValueColor
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(phase+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
		rl.DrawText(fmt.Sprintf("%5.1f%%", pct), x+r.Theme.LabelWidth, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
}
