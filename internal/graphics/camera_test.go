package graphics

import (
	"math"
	"testing"
)

func TestCameraHalfFOV(t *testing.T) {
	c := NewCamera(100, 100, 90)
	if got := c.HalfFOV(); math.Abs(float64(got)-math.Pi/4) > 1e-5 {
		t.Errorf("square viewport HalfFOV = %v, want pi/4", got)
	}

	wide := NewCamera(200, 100, 90)
	want := math.Atan(2)
	if got := wide.HalfFOV(); math.Abs(float64(got)-want) > 1e-5 {
		t.Errorf("wide viewport HalfFOV = %v, want %v", got, want)
	}
}

func TestCameraIgnoresEmptyViewport(t *testing.T) {
	c := NewCamera(300, 150, 70)
	c.SetViewport(0, 0)
	if c.AspectRatio != 2 {
		t.Errorf("AspectRatio = %v, want 2", c.AspectRatio)
	}
}
