package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GravityAction is the toggle requested through the control panel.
type GravityAction int

const (
	GravityNone GravityAction = iota
	GravityDown
	GravityUp
	GravityLeft
	GravityRight
)

// String returns the direction name used in logs.
func (a GravityAction) String() string {
	switch a {
	case GravityDown:
		return "down"
	case GravityUp:
		return "up"
	case GravityLeft:
		return "left"
	case GravityRight:
		return "right"
	default:
		return "none"
	}
}

// GravityPanel is an immediate-mode panel with one button per gravity
// direction. Buttons for active directions are marked.
type GravityPanel struct {
	renderer *Renderer
	x, y     float32
	visible  bool
}

// NewGravityPanel creates a visible panel anchored at (x, y).
func NewGravityPanel(x, y float32) *GravityPanel {
	return &GravityPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (c *GravityPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether (x, y) lies on the visible panel.
func (c *GravityPanel) Contains(x, y float32) bool {
	if !c.visible {
		return false
	}
	w, h := c.size()
	return x >= c.x && x < c.x+w && y >= c.y && y < c.y+h
}

func (c *GravityPanel) size() (width, height float32) {
	th := c.renderer.Theme
	pad := float32(th.Padding)
	// Cross layout: Up on top, Left/Right in the middle, Down below
	return th.ButtonWidth*3 + pad*4, th.ButtonHeight*3 + pad*4 + float32(th.LineHeight)
}

// Draw renders the panel for the current gravity and returns the button
// pressed this frame, if any.
func (c *GravityPanel) Draw(gx, gy float64) GravityAction {
	if !c.visible {
		return GravityNone
	}

	th := c.renderer.Theme
	pad := float32(th.Padding)
	bw, bh := th.ButtonWidth, th.ButtonHeight

	width, height := c.size()
	c.renderer.DrawPanel(int32(c.x), int32(c.y), int32(width), int32(height))
	rl.DrawText("Gravity", int32(c.x+pad), int32(c.y+pad), th.HeaderFontSize, th.SectionHeader)

	top := c.y + pad*2 + float32(th.LineHeight)
	col := func(i float32) float32 { return c.x + pad + i*(bw+pad) }
	row := func(i float32) float32 { return top + i*(bh+pad) }

	action := GravityNone
	if gui.Button(rl.Rectangle{X: col(1), Y: row(0), Width: bw, Height: bh}, buttonLabel("Up", gy < 0)) {
		action = GravityUp
	}
	if gui.Button(rl.Rectangle{X: col(0), Y: row(1), Width: bw, Height: bh}, buttonLabel("Left", gx < 0)) {
		action = GravityLeft
	}
	if gui.Button(rl.Rectangle{X: col(2), Y: row(1), Width: bw, Height: bh}, buttonLabel("Right", gx > 0)) {
		action = GravityRight
	}
	if gui.Button(rl.Rectangle{X: col(1), Y: row(2), Width: bw, Height: bh}, buttonLabel("Down", gy > 0)) {
		action = GravityDown
	}
	return action
}

func buttonLabel(name string, active bool) string {
	if active {
		return "[" + name + "]"
	}
	return name
}
