// Package simulation owns the ball population and runs the per-tick
// sort, integrate, detect, resolve, clamp sequence.
package simulation

import (
	"math/rand"
	"sort"

	"github.com/pthm-cable/bounce/physics"
)

// Phase names reported to a PhaseTimer, in tick order.
const (
	PhaseSort      = "sort"
	PhaseIntegrate = "integrate"
	PhaseDetect    = "detect"
	PhaseResolve   = "resolve"
	PhaseClamp     = "clamp"
)

// Phases lists the tick phases in execution order.
var Phases = []string{PhaseSort, PhaseIntegrate, PhaseDetect, PhaseResolve, PhaseClamp}

// PhaseTimer is notified when each tick phase starts.
type PhaseTimer interface {
	StartPhase(phase string)
}

// Pair is an unordered pair of ball indices with I < J.
type Pair struct {
	I, J int
}

// BallSet holds a fixed population of balls.
type BallSet struct {
	balls   []physics.Ball
	params  physics.Params
	gravity *physics.Gravity
	timer   PhaseTimer

	// reused between ticks
	pairs []Pair
}

// New creates a ball set from an existing population. The slice is owned by
// the set afterwards.
func New(balls []physics.Ball, params physics.Params, gravity *physics.Gravity) *BallSet {
	return &BallSet{
		balls:   balls,
		params:  params,
		gravity: gravity,
	}
}

// NewRandom creates count balls with state drawn from rng within bounds.
// Ball IDs are the spawn indices.
func NewRandom(count int, rng *rand.Rand, bounds physics.SpawnBounds, params physics.Params, gravity *physics.Gravity) *BallSet {
	balls := make([]physics.Ball, count)
	for i := range balls {
		balls[i] = physics.NewRandomBall(rng, bounds)
		balls[i].ID = i
	}
	return New(balls, params, gravity)
}

// SetPhaseTimer installs a timer notified at the start of every phase.
// Pass nil to disable.
func (s *BallSet) SetPhaseTimer(t PhaseTimer) {
	s.timer = t
}

func (s *BallSet) startPhase(phase string) {
	if s.timer != nil {
		s.timer.StartPhase(phase)
	}
}

// Tick advances the simulation by one step and returns the number of
// colliding pairs that were resolved.
//
// Pairs are resolved one after another in detection order, so a ball that
// appears in several pairs enters each resolution with the outcome of the
// previous one. Wall handling runs last so the collision math sees the
// freshly integrated positions.
func (s *BallSet) Tick() int {
	p := &s.params

	s.startPhase(PhaseSort)
	// Descending y gives a reproducible visiting and draw order
	sort.SliceStable(s.balls, func(i, j int) bool {
		return s.balls[i].Y > s.balls[j].Y
	})

	s.startPhase(PhaseIntegrate)
	for i := range s.balls {
		s.balls[i].Integrate(p)
	}

	s.startPhase(PhaseDetect)
	s.pairs = s.appendCollidingPairs(s.pairs[:0])

	s.startPhase(PhaseResolve)
	for _, pr := range s.pairs {
		physics.CollideBalls(s.balls, pr.I, pr.J, p)
	}

	s.startPhase(PhaseClamp)
	for i := range s.balls {
		s.balls[i].ApplyBounds(p, s.gravity)
	}

	return len(s.pairs)
}

// appendCollidingPairs appends every colliding pair i < j in scan order:
// ascending i, then ascending j.
func (s *BallSet) appendCollidingPairs(dst []Pair) []Pair {
	p := &s.params
	for i := range s.balls {
		for j := i + 1; j < len(s.balls); j++ {
			if s.balls[i].IsColliding(&s.balls[j], p) {
				dst = append(dst, Pair{I: i, J: j})
			}
		}
	}
	return dst
}

// CollidingPairs returns every pair of balls currently in contact, in scan
// order. It does not modify the set.
func (s *BallSet) CollidingPairs() []Pair {
	return s.appendCollidingPairs(nil)
}

// CollidingWith returns the indices of all balls in contact with ball i, in
// ascending order.
func (s *BallSet) CollidingWith(i int) []int {
	var out []int
	p := &s.params
	for j := range s.balls {
		if j != i && s.balls[i].IsColliding(&s.balls[j], p) {
			out = append(out, j)
		}
	}
	return out
}

// Balls returns a copy of the current population in visiting order.
func (s *BallSet) Balls() []physics.Ball {
	return append([]physics.Ball(nil), s.balls...)
}

// IndexOf returns the current index of the ball with the given ID, or -1.
func (s *BallSet) IndexOf(id int) int {
	for i := range s.balls {
		if s.balls[i].ID == id {
			return i
		}
	}
	return -1
}

// Ball returns a copy of ball i.
func (s *BallSet) Ball(i int) physics.Ball {
	return s.balls[i]
}

// Len returns the population size.
func (s *BallSet) Len() int {
	return len(s.balls)
}

// Each calls fn with a copy of every ball in visiting order.
func (s *BallSet) Each(fn func(i int, b physics.Ball)) {
	for i, b := range s.balls {
		fn(i, b)
	}
}

// Params returns the physics parameters the set was built with.
func (s *BallSet) Params() physics.Params {
	return s.params
}

// SetParams replaces the physics parameters used from the next tick on.
// The arena size must not shrink below the current population's reach.
func (s *BallSet) SetParams(p physics.Params) {
	s.params = p
}

// Gravity returns the shared gravity cell.
func (s *BallSet) Gravity() *physics.Gravity {
	return s.gravity
}
