package physics

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Collide separates two overlapping balls and exchanges momentum along the
// line between their centers.
//
// Either ball that drifted out of the arena since the last bounds pass is
// clamped back first. A ball clamped on an axis is not pushed further along
// that axis; the other ball takes the whole correction there. Coincident
// centers have no normal and are left untouched.
func Collide(b1, b2 *Ball, p *Params) {
	fixed1X, fixed1Y := b1.Clamp(p)
	fixed2X, fixed2Y := b2.Clamp(p)

	d := r2.Vec{X: b2.X - b1.X, Y: b2.Y - b1.Y}
	dist := r2.Norm(d)
	if dist == 0 {
		return
	}
	n := r2.Vec{X: d.X / dist, Y: d.Y / dist}

	minDist := (b1.Radius + b2.Radius) * (1 + p.CollisionTolerance)
	if dist < minDist {
		overlap := minDist - dist

		divX, divY := 2.0, 2.0
		if fixed1X || fixed2X {
			divX = 1
		}
		if fixed1Y || fixed2Y {
			divY = 1
		}
		cx := n.X * overlap / divX
		cy := n.Y * overlap / divY

		if !fixed1X {
			b1.X -= cx
		}
		if !fixed1Y {
			b1.Y -= cy
		}
		if !fixed2X {
			b2.X += cx
		}
		if !fixed2Y {
			b2.Y += cy
		}
	}

	m1, m2 := b1.Mass(), b2.Mass()

	v1 := r2.Vec{X: b1.VX, Y: b1.VY}
	v2 := r2.Vec{X: b2.VX, Y: b2.VY}

	// Normal components along n, tangents are what remains
	v1n := r2.Dot(v1, n)
	v2n := r2.Dot(v2, n)
	t1 := r2.Sub(v1, r2.Scale(v1n, n))
	t2 := r2.Sub(v2, r2.Scale(v2n, n))

	// 1-D elastic exchange
	u1n := (v1n*(m1-m2) + 2*m2*v2n) / (m1 + m2)
	u2n := (v2n*(m2-m1) + 2*m1*v1n) / (m1 + m2)

	keep := 1 - p.DampingBall
	u1 := r2.Scale(keep, r2.Add(t1, r2.Scale(u1n, n)))
	u2 := r2.Scale(keep, r2.Add(t2, r2.Scale(u2n, n)))

	b1.VX, b1.VY = u1.X, u1.Y
	b2.VX, b2.VY = u2.X, u2.Y
}

// CollideBalls resolves the collision between balls[i] and balls[j].
// i and j must differ; equal indices mean broad-phase detection is broken
// and CollideBalls panics.
func CollideBalls(balls []Ball, i, j int, p *Params) {
	if i == j {
		panic(fmt.Sprintf("physics: CollideBalls called with the same index twice (%d)", i))
	}
	if i > j {
		i, j = j, i
	}
	head, tail := balls[:j], balls[j:]
	Collide(&head[i], &tail[0], p)
}
