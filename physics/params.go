// Package physics implements ball kinematics, wall handling and pairwise
// collision response for the arena.
package physics

import "github.com/pthm-cable/bounce/config"

// Params holds the physics parameters every ball operation reads.
type Params struct {
	Width, Height      float64 // arena extents
	AirResistance      float64 // velocity decay fraction per tick
	DampingWall        float64 // energy loss on wall impact
	DampingBall        float64 // energy loss on ball impact
	CollisionTolerance float64 // widens the colliding test
}

// ParamsFromConfig extracts the physics parameters from a loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Width:              cfg.Derived.WidthF,
		Height:             cfg.Derived.HeightF,
		AirResistance:      cfg.Physics.AirResistance,
		DampingWall:        cfg.Physics.DampingWall,
		DampingBall:        cfg.Physics.DampingBall,
		CollisionTolerance: cfg.Physics.CollisionTolerance,
	}
}

// SpawnBounds bounds the random construction of balls.
type SpawnBounds struct {
	Width, Height float64
	MaxRadius     float64
	MaxVelocity   float64
}

// SpawnBoundsFromConfig extracts the spawn bounds from a loaded config.
func SpawnBoundsFromConfig(cfg *config.Config) SpawnBounds {
	return SpawnBounds{
		Width:       cfg.Derived.WidthF,
		Height:      cfg.Derived.HeightF,
		MaxRadius:   cfg.Balls.MaxRadius,
		MaxVelocity: cfg.Balls.MaxVelocity,
	}
}
