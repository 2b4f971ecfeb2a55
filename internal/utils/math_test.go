package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{-1000.5, -1000, 500, -1000},
		{500, -1000, 500, 500},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v; want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5*2*math.Pi + 1, 1},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v; want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("WrapAngle(%v) = %v; out of [0, 2π)", tt.in, got)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 18, 0.25); got != 6 {
		t.Errorf("Lerp(2, 18, 0.25) = %v; want 6", got)
	}
}
