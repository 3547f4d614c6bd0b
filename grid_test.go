package carshow

import (
	"math"
	"testing"
)

func TestGridStep(t *testing.T) {
	g := NewGrid(20, 40)
	if got := g.Step(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Step() = %v, want 0.5", got)
	}
}

func TestGridScrollWrapsAtOneCell(t *testing.T) {
	testCases := []struct {
		travel float64
		want   float64
	}{
		{0, 0},
		{0.3, 0.3},
		{0.5, 0},
		{1.7, 0.2},
		{100.25, 0.25},
		{-0.1, 0.4},
	}

	g := NewGrid(20, 40)
	for _, tc := range testCases {
		g.Scroll(tc.travel)
		if got := g.Offset(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Scroll(%v): offset = %v, want %v", tc.travel, got, tc.want)
		}
	}
}

func TestGridScrollIsAbsolute(t *testing.T) {
	g := NewGrid(20, 40)
	g.Scroll(0.3)
	g.Scroll(0.3)
	if got := g.Offset(); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("offset after repeated Scroll(0.3) = %v, want 0.3", got)
	}
}
