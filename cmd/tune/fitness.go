package main

import (
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/bounce/config"
	"github.com/pthm-cable/bounce/physics"
	"github.com/pthm-cable/bounce/simulation"
)

// Weight of the pull toward the default parameters. Without it many
// combinations reach the same half-life.
const regularization = 0.05

// FitnessEvaluator runs headless simulations and scores how close the
// kinetic energy half-life is to a target.
type FitnessEvaluator struct {
	params     *ParamVector
	target     int
	maxTicks   int
	seeds      []int64
	baseConfig *config.Config

	mu           sync.Mutex
	lastHalfLife float64 // mean half-life from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, target, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		target:     target,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastHalfLife returns the mean half-life from the most recent evaluation.
func (fe *FitnessEvaluator) LastHalfLife() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastHalfLife
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Run all seeds in parallel
	halfLives := make([]int, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			halfLives[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var sum float64
	for _, h := range halfLives {
		sum += float64(h)
	}
	mean := sum / float64(len(halfLives))

	fe.mu.Lock()
	fe.lastHalfLife = mean
	fe.mu.Unlock()

	return fe.computeFitness(mean, x)
}

// runSimulation returns the first tick at which total kinetic energy is at
// most half its initial value, or maxTicks if that never happens.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) int {
	gravity := physics.NewGravity(cfg.Gravity.X, cfg.Gravity.Y)
	s := simulation.NewRandom(cfg.Balls.Count, rand.New(rand.NewSource(seed)),
		physics.SpawnBoundsFromConfig(cfg), physics.ParamsFromConfig(cfg), gravity)

	initial := totalEnergy(s)
	if initial == 0 {
		return 0
	}
	for tick := 1; tick <= fe.maxTicks; tick++ {
		s.Tick()
		if totalEnergy(s) <= initial/2 {
			return tick
		}
	}
	return fe.maxTicks
}

func totalEnergy(s *simulation.BallSet) float64 {
	var ke float64
	s.Each(func(_ int, b physics.Ball) {
		ke += b.KineticEnergy()
	})
	return ke
}

// computeFitness is the squared relative half-life error plus a small
// penalty on the normalized distance from the defaults.
func (fe *FitnessEvaluator) computeFitness(halfLife float64, x []float64) float64 {
	rel := (halfLife - float64(fe.target)) / float64(fe.target)

	norm := fe.params.Normalize(fe.params.Clamp(x))
	def := fe.params.Normalize(fe.params.DefaultVector())
	var dist float64
	for i := range norm {
		d := norm[i] - def[i]
		dist += d * d
	}

	return rel*rel + regularization*dist
}

// copyConfig returns a copy of the base config. Config holds only value
// fields, so a struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// relativeError reports |a-b|/b, used for progress output.
func relativeError(a, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}
	return math.Abs(a-b) / b
}
