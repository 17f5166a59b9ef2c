package physics

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/pthm-cable/bounce/config"
)

// Ball is a single circular body. Mass is taken to be the radius.
type Ball struct {
	ID     int // stable across the per-tick reordering
	X, Y   float64
	VX, VY float64
	Radius float64    // fixed for the ball's lifetime
	Color  color.RGBA // rendering only
}

// NewRandomBall creates a ball with random color, position, velocity and
// radius drawn from rng within the spawn bounds. The position keeps a
// maximally sized ball fully inside the arena.
func NewRandomBall(rng *rand.Rand, b SpawnBounds) Ball {
	c := color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
	return Ball{
		X:      uniform(rng, b.MaxRadius, b.Width-b.MaxRadius),
		Y:      uniform(rng, b.MaxRadius, b.Height-b.MaxRadius),
		VX:     uniform(rng, -b.MaxVelocity, b.MaxVelocity),
		VY:     uniform(rng, -b.MaxVelocity, b.MaxVelocity),
		Radius: uniform(rng, config.MinRadius, b.MaxRadius),
		Color:  c,
	}
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Integrate advances the position by one unit step and applies air drag.
func (b *Ball) Integrate(p *Params) {
	b.X += b.VX
	b.Y += b.VY
	drag := 1 - p.AirResistance
	b.VX *= drag
	b.VY *= drag
}

// OutsideLeft reports whether the ball crosses x = 0.
func (b *Ball) OutsideLeft() bool {
	return b.X-b.Radius < 0
}

// OutsideRight reports whether the ball crosses x = width.
func (b *Ball) OutsideRight(p *Params) bool {
	return b.X+b.Radius > p.Width
}

// OutsideTop reports whether the ball crosses y = 0.
func (b *Ball) OutsideTop() bool {
	return b.Y-b.Radius < 0
}

// OutsideBottom reports whether the ball crosses y = height.
func (b *Ball) OutsideBottom(p *Params) bool {
	return b.Y+b.Radius > p.Height
}

// OutsideX reports a horizontal violation on either side.
func (b *Ball) OutsideX(p *Params) bool {
	return b.OutsideLeft() || b.OutsideRight(p)
}

// OutsideY reports a vertical violation on either side.
func (b *Ball) OutsideY(p *Params) bool {
	return b.OutsideTop() || b.OutsideBottom(p)
}

// OutsideBounds reports a violation on any edge.
func (b *Ball) OutsideBounds(p *Params) bool {
	return b.OutsideX(p) || b.OutsideY(p)
}

// Clamp moves each violated coordinate to its nearest legal value and
// reports which axes were moved. Velocity is left alone.
func (b *Ball) Clamp(p *Params) (clampedX, clampedY bool) {
	if b.OutsideLeft() {
		b.X = b.Radius
		clampedX = true
	}
	if b.OutsideRight(p) {
		b.X = p.Width - b.Radius
		clampedX = true
	}
	if b.OutsideTop() {
		b.Y = b.Radius
		clampedY = true
	}
	if b.OutsideBottom(p) {
		b.Y = p.Height - b.Radius
		clampedY = true
	}
	return clampedX, clampedY
}

// ApplyBounds reflects and clamps a ball that left the arena, and applies
// gravity to a ball that did not. Gravity is skipped on the tick a wall
// correction happens.
//
// With downward gravity a ball leaving through the floor stops vertically
// instead of bouncing, so it comes to rest there.
func (b *Ball) ApplyBounds(p *Params, g *Gravity) {
	gx, gy := g.Get()
	inside := !b.OutsideBounds(p)
	bounce := -(1 - p.DampingWall)

	if b.OutsideX(p) {
		b.VX *= bounce
	}
	if b.OutsideY(p) {
		if gy > 0 && b.OutsideBottom(p) {
			b.VY = 0
		} else {
			b.VY *= bounce
		}
	}

	b.Clamp(p)

	if inside {
		b.VX += gx
		b.VY += gy
	}
}

// IsColliding reports whether two balls touch. The tolerance lets nearly
// touching circles count, so contact does not flicker.
func (b *Ball) IsColliding(other *Ball, p *Params) bool {
	dx := b.X - other.X
	dy := b.Y - other.Y
	r := b.Radius + other.Radius
	return (dx*dx+dy*dy)*(1+p.CollisionTolerance) <= r*r
}

// Mass returns the ball's mass, which is its radius.
func (b *Ball) Mass() float64 {
	return b.Radius
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// KineticEnergy returns 1/2 m v².
func (b *Ball) KineticEnergy() float64 {
	return 0.5 * b.Mass() * (b.VX*b.VX + b.VY*b.VY)
}
