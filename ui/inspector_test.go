package ui

import (
	"testing"

	"github.com/pthm-cable/bounce/physics"
)

func TestPickBall(t *testing.T) {
	balls := []physics.Ball{
		{ID: 0, X: 100, Y: 100, Radius: 10},
		{ID: 1, X: 115, Y: 100, Radius: 10},
		{ID: 2, X: 300, Y: 300, Radius: 20},
	}

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"centre", 100, 100, 0},
		{"overlap prefers closest", 110, 100, 1},
		{"within slack", 300, 322, 2},
		{"miss", 200, 200, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickBall(balls, tt.x, tt.y); got != tt.want {
				t.Errorf("PickBall(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestInspectorSelection(t *testing.T) {
	ins := NewInspector(0, 0)
	if _, ok := ins.Selected(); ok {
		t.Fatal("new inspector has a selection")
	}
	ins.Select(4)
	if id, ok := ins.Selected(); !ok || id != 4 {
		t.Errorf("Selected() = %d, %v; want 4, true", id, ok)
	}
	ins.Deselect()
	if _, ok := ins.Selected(); ok {
		t.Error("Deselect did not clear the selection")
	}
}

func TestPartnerList(t *testing.T) {
	if got := partnerList(nil); got != "none" {
		t.Errorf("partnerList(nil) = %q", got)
	}
	if got := partnerList([]int{3, 12}); got != "#3 #12" {
		t.Errorf("partnerList = %q", got)
	}
}

func TestDetailRows(t *testing.T) {
	rows := detailRows(InspectorData{
		Ball:     physics.Ball{ID: 4, X: 10, Y: 20, VX: 3, VY: 4, Radius: 12},
		Index:    2,
		Partners: []int{1, 7},
	})

	want := map[string]string{
		"Index":    "2",
		"Speed":    "5.00",
		"Radius":   "12.0",
		"Mass":     "12.0",
		"Contacts": "#1 #7",
	}
	got := make(map[string]string, len(rows))
	for _, r := range rows {
		got[r.label] = r.value
	}
	for label, value := range want {
		if got[label] != value {
			t.Errorf("row %q = %q, want %q", label, got[label], value)
		}
	}
}
