package physics

import (
	"math"
	"math/rand"
	"testing"
)

func testParams() Params {
	return Params{
		Width:              640,
		Height:             480,
		AirResistance:      0.001,
		DampingWall:        0.1,
		DampingBall:        0.05,
		CollisionTolerance: 0.01,
	}
}

func TestIntegrateNeverAmplifies(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, air := range []float64{0, 0.001, 0.25, 0.5, 0.999} {
		p := testParams()
		p.AirResistance = air

		for i := 0; i < 200; i++ {
			b := Ball{
				X: 320, Y: 240,
				VX:     (rng.Float64() - 0.5) * 40,
				VY:     (rng.Float64() - 0.5) * 40,
				Radius: 10,
			}
			vx, vy := b.VX, b.VY
			b.Integrate(&p)

			if math.Abs(b.VX) > math.Abs(vx) || math.Abs(b.VY) > math.Abs(vy) {
				t.Fatalf("air=%g: velocity grew from (%g,%g) to (%g,%g)", air, vx, vy, b.VX, b.VY)
			}
		}
	}
}

func TestIntegrateMovesByVelocity(t *testing.T) {
	p := testParams()
	p.AirResistance = 0.5
	b := Ball{X: 100, Y: 100, VX: 4, VY: -2, Radius: 10}

	b.Integrate(&p)

	if b.X != 104 || b.Y != 98 {
		t.Errorf("position = (%g,%g), want (104,98)", b.X, b.Y)
	}
	if b.VX != 2 || b.VY != -1 {
		t.Errorf("velocity = (%g,%g), want (2,-1)", b.VX, b.VY)
	}
}

func TestBoundaryPredicates(t *testing.T) {
	p := testParams()

	tests := []struct {
		name                     string
		x, y                     float64
		left, right, top, bottom bool
	}{
		{"inside", 320, 240, false, false, false, false},
		{"touching left", 10, 240, false, false, false, false},
		{"left", 9, 240, true, false, false, false},
		{"right", 635, 240, false, true, false, false},
		{"top", 320, 2, false, false, true, false},
		{"bottom", 320, 475, false, false, false, true},
		{"corner", 0, 480, true, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{X: tc.x, Y: tc.y, Radius: 10}
			if got := b.OutsideLeft(); got != tc.left {
				t.Errorf("OutsideLeft = %v, want %v", got, tc.left)
			}
			if got := b.OutsideRight(&p); got != tc.right {
				t.Errorf("OutsideRight = %v, want %v", got, tc.right)
			}
			if got := b.OutsideTop(); got != tc.top {
				t.Errorf("OutsideTop = %v, want %v", got, tc.top)
			}
			if got := b.OutsideBottom(&p); got != tc.bottom {
				t.Errorf("OutsideBottom = %v, want %v", got, tc.bottom)
			}
			if got := b.OutsideX(&p); got != (tc.left || tc.right) {
				t.Errorf("OutsideX = %v", got)
			}
			if got := b.OutsideY(&p); got != (tc.top || tc.bottom) {
				t.Errorf("OutsideY = %v", got)
			}
		})
	}
}

func TestApplyBoundsKeepsBallInside(t *testing.T) {
	p := testParams()
	rng := rand.New(rand.NewSource(99))

	for _, gy := range []float64{0, 2, -2} {
		g := NewGravity(0, gy)
		for i := 0; i < 500; i++ {
			r := 5 + rng.Float64()*20
			b := Ball{
				X:      -50 + rng.Float64()*(p.Width+100),
				Y:      -50 + rng.Float64()*(p.Height+100),
				VX:     (rng.Float64() - 0.5) * 20,
				VY:     (rng.Float64() - 0.5) * 20,
				Radius: r,
			}
			b.ApplyBounds(&p, g)

			if b.X < r || b.X > p.Width-r || b.Y < r || b.Y > p.Height-r {
				t.Fatalf("ball outside arena after ApplyBounds: (%g,%g) r=%g", b.X, b.Y, r)
			}
		}
	}
}

func TestApplyBoundsFloorRest(t *testing.T) {
	p := Params{Width: 640, Height: 480, DampingWall: 0}
	g := NewGravity(0, 2.0)
	b := Ball{X: 320, Y: 479, VX: 0, VY: 5, Radius: 20}

	b.ApplyBounds(&p, g)

	if b.VY != 0.0 {
		t.Errorf("vy = %g, want 0", b.VY)
	}
	if b.Y != 460.0 {
		t.Errorf("y = %g, want 460", b.Y)
	}
}

func TestApplyBoundsWallBounce(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		gx, gy float64
		want   Ball
	}{
		{
			name: "left wall",
			ball: Ball{X: 5, Y: 240, VX: -4, VY: 1, Radius: 10},
			want: Ball{X: 10, Y: 240, VX: 2, VY: 1, Radius: 10},
		},
		{
			name: "right wall, gravity skipped",
			ball: Ball{X: 636, Y: 240, VX: 6, VY: 0, Radius: 10},
			gx:   2,
			gy:   2,
			want: Ball{X: 630, Y: 240, VX: -3, VY: 0, Radius: 10},
		},
		{
			name: "ceiling",
			ball: Ball{X: 320, Y: 3, VX: 0, VY: -8, Radius: 10},
			want: Ball{X: 320, Y: 10, VX: 0, VY: 4, Radius: 10},
		},
		{
			name: "floor with upward gravity bounces",
			ball: Ball{X: 320, Y: 478, VX: 0, VY: 8, Radius: 10},
			gy:   -2,
			want: Ball{X: 320, Y: 470, VX: 0, VY: -4, Radius: 10},
		},
		{
			name: "floor without gravity bounces",
			ball: Ball{X: 320, Y: 478, VX: 0, VY: 8, Radius: 10},
			want: Ball{X: 320, Y: 470, VX: 0, VY: -4, Radius: 10},
		},
		{
			name: "floor and side wall with downward gravity",
			ball: Ball{X: 2, Y: 478, VX: -6, VY: 8, Radius: 10},
			gy:   2,
			want: Ball{X: 10, Y: 470, VX: 3, VY: 0, Radius: 10},
		},
		{
			name: "sideways gravity never rests on the floor",
			ball: Ball{X: 320, Y: 478, VX: 0, VY: 8, Radius: 10},
			gx:   2,
			want: Ball{X: 320, Y: 470, VX: 0, VY: -4, Radius: 10},
		},
		{
			name: "inside gets gravity",
			ball: Ball{X: 320, Y: 240, VX: 1, VY: 1, Radius: 10},
			gx:   -2,
			gy:   2,
			want: Ball{X: 320, Y: 240, VX: -1, VY: 3, Radius: 10},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			p.DampingWall = 0.5
			g := NewGravity(tc.gx, tc.gy)
			b := tc.ball

			b.ApplyBounds(&p, g)

			if b != tc.want {
				t.Errorf("ApplyBounds = %+v, want %+v", b, tc.want)
			}
		})
	}
}

func TestIsColliding(t *testing.T) {
	p := testParams()

	tests := []struct {
		name string
		x2   float64
		want bool
	}{
		{"overlapping", 10, true},
		{"separated", 13, false},
		{"exactly touching without tolerance slack", 12, false},
		{"just inside tolerance", 11.9, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Ball{X: 0, Y: 0, Radius: 6}
			b := Ball{X: tc.x2, Y: 0, Radius: 6}
			if got := a.IsColliding(&b, &p); got != tc.want {
				t.Errorf("IsColliding = %v, want %v", got, tc.want)
			}
			if got := b.IsColliding(&a, &p); got != tc.want {
				t.Errorf("reverse IsColliding = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsCollidingToleranceZero(t *testing.T) {
	p := testParams()
	p.CollisionTolerance = 0
	a := Ball{X: 0, Y: 0, Radius: 6}
	b := Ball{X: 12, Y: 0, Radius: 6}
	if !a.IsColliding(&b, &p) {
		t.Error("touching circles should collide with zero tolerance")
	}
}

func TestNewRandomBallWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sb := SpawnBounds{Width: 640, Height: 480, MaxRadius: 25, MaxVelocity: 6}

	for i := 0; i < 1000; i++ {
		b := NewRandomBall(rng, sb)

		if b.Radius < 5 || b.Radius >= sb.MaxRadius {
			t.Fatalf("radius %g outside [5, %g)", b.Radius, sb.MaxRadius)
		}
		if b.X-b.Radius < 0 || b.X+b.Radius > sb.Width || b.Y-b.Radius < 0 || b.Y+b.Radius > sb.Height {
			t.Fatalf("ball at (%g,%g) r=%g not inside arena", b.X, b.Y, b.Radius)
		}
		if math.Abs(b.VX) > sb.MaxVelocity || math.Abs(b.VY) > sb.MaxVelocity {
			t.Fatalf("velocity (%g,%g) exceeds %g", b.VX, b.VY, sb.MaxVelocity)
		}
		if b.Color.A != 255 {
			t.Fatalf("color alpha = %d, want opaque", b.Color.A)
		}
	}
}

func TestNewRandomBallDeterministic(t *testing.T) {
	sb := SpawnBounds{Width: 640, Height: 480, MaxRadius: 25, MaxVelocity: 6}
	a := NewRandomBall(rand.New(rand.NewSource(42)), sb)
	b := NewRandomBall(rand.New(rand.NewSource(42)), sb)
	if a != b {
		t.Errorf("same seed produced different balls: %+v vs %+v", a, b)
	}
}

func TestKineticEnergy(t *testing.T) {
	b := Ball{VX: 3, VY: 4, Radius: 10}
	if got := b.Speed(); got != 5 {
		t.Errorf("Speed = %g, want 5", got)
	}
	if got := b.KineticEnergy(); got != 125 {
		t.Errorf("KineticEnergy = %g, want 125", got)
	}
}
