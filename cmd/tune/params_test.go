package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/bounce/config"
)

func TestParamVectorNormalize(t *testing.T) {
	pv := NewParamVector(config.Default())

	raw := []float64{0.01, 0.25, 0.5}
	norm := pv.Normalize(raw)
	want := []float64{0.5, 0.5, 1}
	for i := range want {
		if math.Abs(norm[i]-want[i]) > 1e-12 {
			t.Errorf("Normalize[%d] = %v, want %v", i, norm[i], want[i])
		}
	}

	back := pv.Denormalize(norm)
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-12 {
			t.Errorf("Denormalize[%d] = %v, want %v", i, back[i], raw[i])
		}
	}
}

func TestParamVectorApplyClamps(t *testing.T) {
	cfg := config.Default()
	pv := NewParamVector(cfg)

	pv.ApplyToConfig(cfg, []float64{-1, 0.3, 9})

	got := pv.ExtractFromConfig(cfg)
	want := []float64{0, 0.3, 0.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("param %s = %v, want %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}

func TestDefaultsWithinBounds(t *testing.T) {
	pv := NewParamVector(config.Default())
	for _, spec := range pv.Specs {
		if spec.Default < spec.Min || spec.Default > spec.Max {
			t.Errorf("%s default %v outside [%v, %v]", spec.Name, spec.Default, spec.Min, spec.Max)
		}
	}
}

func TestEvaluatorHalfLife(t *testing.T) {
	cfg := config.Default()
	cfg.Balls.Count = 10
	pv := NewParamVector(cfg)

	fe := NewFitnessEvaluator(pv, 200, 2000, []int64{1, 2}, cfg)

	lossy := fe.Evaluate([]float64{0.02, 0.5, 0.5})
	lossyHalfLife := fe.LastHalfLife()
	fe.Evaluate([]float64{0, 0, 0})
	losslessHalfLife := fe.LastHalfLife()

	if lossyHalfLife >= losslessHalfLife {
		t.Errorf("lossy half-life %v not below lossless %v", lossyHalfLife, losslessHalfLife)
	}
	if lossy < 0 {
		t.Errorf("fitness %v is negative", lossy)
	}
}
