package ui

import (
	"math"
	"testing"
	"time"

	"go-planet-scroll/internal/config"
)

func TestDepthFraction(t *testing.T) {
	tests := []struct {
		z, want float64
	}{
		{config.CameraMinZ, 0},
		{config.CameraMaxZ, 1},
		{config.CameraMinZ - 100, 0},
		{config.CameraMaxZ + 100, 1},
		{(config.CameraMinZ + config.CameraMaxZ) / 2, 0.5},
	}
	for _, tt := range tests {
		if got := DepthFraction(tt.z); got != tt.want {
			t.Errorf("DepthFraction(%v) = %v; want %v", tt.z, got, tt.want)
		}
	}
}

func TestKnobY(t *testing.T) {
	ind := NewDepthIndicatorRL(10, 100, 200, 6)
	if got := ind.KnobY(config.CameraMaxZ); got != 100 {
		t.Errorf("KnobY(max) = %v; want top of track", got)
	}
	if got := ind.KnobY(config.CameraMinZ); got != 300 {
		t.Errorf("KnobY(min) = %v; want bottom of track", got)
	}
}

func TestTrackPulse(t *testing.T) {
	ind := NewDepthIndicatorRL(0, 0, 100, 5)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ind.Track(0, t0)
	if !ind.LastMoveTime.IsZero() {
		t.Fatal("first sample should not pulse")
	}
	ind.Track(0, t0.Add(time.Second))
	if !ind.LastMoveTime.IsZero() {
		t.Fatal("unchanged depth should not pulse")
	}
	ind.Track(40, t0.Add(2*time.Second))
	if !ind.LastMoveTime.Equal(t0.Add(2 * time.Second)) {
		t.Fatalf("LastMoveTime = %v; want the move time", ind.LastMoveTime)
	}

	if got := PulseScale(0); math.Abs(got-1.3) > 1e-12 {
		t.Errorf("PulseScale(0) = %v; want 1.3", got)
	}
	if got := PulseScale(10); got > 1.0001 {
		t.Errorf("PulseScale(10) = %v; want the pulse to have faded", got)
	}
}
