package main

import (
	"testing"
	"time"
)

func TestFPSLimiterDisabled(t *testing.T) {
	f := NewFPSLimiter(0)
	start := time.Now()
	for range 100 {
		f.Wait()
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Error("disabled limiter slept")
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	f := NewFPSLimiter(100)
	start := time.Now()
	for range 5 {
		f.Wait()
	}
	if d := time.Since(start); d < 45*time.Millisecond {
		t.Errorf("5 frames at 100 fps took %v", d)
	}
}
