package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/bounce/physics"
)

func TestComputeSpeedStats(t *testing.T) {
	tests := []struct {
		name   string
		speeds []float64
		want   SpeedStats
	}{
		{"empty", nil, SpeedStats{}},
		{"single", []float64{4}, SpeedStats{Mean: 4, P10: 4, P50: 4, P90: 4, Max: 4}},
		{
			"one to ten, unsorted",
			[]float64{7, 3, 10, 1, 5, 9, 2, 8, 4, 6},
			SpeedStats{Mean: 5.5, Std: math.Sqrt(55.0 / 6.0), P10: 1, P50: 5, P90: 9, Max: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSpeedStats(tt.speeds)
			if math.Abs(got.Mean-tt.want.Mean) > 1e-9 || math.Abs(got.Std-tt.want.Std) > 1e-9 {
				t.Errorf("mean/std = %v/%v, want %v/%v", got.Mean, got.Std, tt.want.Mean, tt.want.Std)
			}
			if got.P10 != tt.want.P10 || got.P50 != tt.want.P50 || got.P90 != tt.want.P90 || got.Max != tt.want.Max {
				t.Errorf("percentiles = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeSpeedStatsDoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	ComputeSpeedStats(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input reordered: %v", in)
	}
}

func TestIsResting(t *testing.T) {
	p := physics.Params{Width: 640, Height: 480}

	tests := []struct {
		name string
		ball physics.Ball
		want bool
	}{
		{"on floor, still", physics.Ball{Y: 460, VY: 0, Radius: 20}, true},
		{"on floor, sliding", physics.Ball{Y: 460, VX: 3, VY: 0, Radius: 20}, true},
		{"on floor, moving up", physics.Ball{Y: 460, VY: -1, Radius: 20}, false},
		{"mid air", physics.Ball{Y: 200, VY: 0, Radius: 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsResting(tt.ball, p); got != tt.want {
				t.Errorf("IsResting = %v, want %v", got, tt.want)
			}
		})
	}
}
