package ui

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bounce/physics"
)

// Panel dimensions
const (
	inspectorWidth  = 220
	inspectorHeader = 24
	pickSlack       = 3 // extra click radius around a ball
)

// Inspector tracks a selected ball by ID and renders its state.
type Inspector struct {
	renderer    *Renderer
	selectedID  int
	hasSelected bool
	x, y        int32
}

// NewInspector creates an inspector panel anchored at (x, y).
func NewInspector(x, y int32) *Inspector {
	return &Inspector{renderer: NewRenderer(), x: x, y: y}
}

// Select marks the ball with the given ID as selected.
func (ins *Inspector) Select(id int) {
	ins.selectedID = id
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the selected ball ID.
func (ins *Inspector) Selected() (int, bool) {
	return ins.selectedID, ins.hasSelected
}

// PickBall returns the index of the ball whose disc (plus a small slack)
// contains (x, y), preferring the closest centre. Returns -1 if none.
func PickBall(balls []physics.Ball, x, y float64) int {
	best := -1
	var bestDist float64
	for i := range balls {
		dx := x - balls[i].X
		dy := y - balls[i].Y
		d := dx*dx + dy*dy
		hit := balls[i].Radius + pickSlack
		if d <= hit*hit && (best < 0 || d < bestDist) {
			best = i
			bestDist = d
		}
	}
	return best
}

// InspectorData is the state of the selected ball for one frame.
type InspectorData struct {
	Ball     physics.Ball
	Index    int   // position in the current visiting order
	Partners []int // IDs of balls in contact
	Resting  bool
}

// DrawHighlight outlines the selected ball and the balls touching it.
func (ins *Inspector) DrawHighlight(b physics.Ball, partners []physics.Ball) {
	rl.DrawCircleLines(int32(b.X), int32(b.Y), float32(b.Radius)+3, rl.White)
	for _, p := range partners {
		rl.DrawLineV(vec(b), vec(p), rl.Yellow)
	}
}

// Draw renders the inspector panel.
func (ins *Inspector) Draw(data InspectorData) {
	r := ins.renderer
	th := r.Theme
	b := data.Ball

	rows := detailRows(data)
	// One extra line for the resting note
	height := inspectorHeader + th.Padding*2 + th.LineHeight*int32(len(rows)+1)
	r.DrawPanel(ins.x, ins.y, inspectorWidth, height)
	rl.DrawRectangle(ins.x, ins.y, inspectorWidth, inspectorHeader, th.PanelBorder)
	rl.DrawText(fmt.Sprintf("BALL #%d", b.ID), ins.x+th.Padding, ins.y+5, th.HeaderFontSize, rl.White)
	rl.DrawRectangle(ins.x+inspectorWidth-18, ins.y+6, 12, 12, b.Color)

	x := ins.x + th.Padding
	y := ins.y + inspectorHeader + th.Padding
	for _, row := range rows {
		y = r.DrawLabelValue(x, y, row.label, row.value)
	}
	if data.Resting {
		rl.DrawText("resting on floor", x, y, th.FontSize, th.ActiveColor)
	}
}

type detailRow struct {
	label, value string
}

func detailRows(data InspectorData) []detailRow {
	b := data.Ball
	return []detailRow{
		{"Index", strconv.Itoa(data.Index)},
		{"Position", fmt.Sprintf("(%.1f, %.1f)", b.X, b.Y)},
		{"Velocity", fmt.Sprintf("(%.2f, %.2f)", b.VX, b.VY)},
		{"Speed", fmt.Sprintf("%.2f", b.Speed())},
		{"Radius", fmt.Sprintf("%.1f", b.Radius)},
		{"Mass", fmt.Sprintf("%.1f", b.Mass())},
		{"Contacts", partnerList(data.Partners)},
	}
}

func partnerList(ids []int) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "#" + strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}

func vec(b physics.Ball) rl.Vector2 {
	return rl.Vector2{X: float32(b.X), Y: float32(b.Y)}
}
