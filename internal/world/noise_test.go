package world

import (
	"math"
	"math/rand"
	"testing"
)

// TestNoiseFieldDeterministic verifies two fields with one seed agree bit for bit
func TestNoiseFieldDeterministic(t *testing.T) {
	a := NewNoiseField(42)
	b := NewNoiseField(42)
	if a.perm != b.perm {
		t.Fatal("permutation tables differ for the same seed")
	}

	rng := rand.New(rand.NewSource(7))
	for range 500 {
		x := rng.Float64()*2000 - 1000
		y := rng.Float64()*2000 - 1000
		if va, vb := a.Noise2D(x, y), b.Noise2D(x, y); va != vb {
			t.Fatalf("Noise2D(%f,%f) differs: %v vs %v", x, y, va, vb)
		}
	}
}

func TestNoiseFieldSeedsDiffer(t *testing.T) {
	if NewNoiseField(1).perm == NewNoiseField(2).perm {
		t.Error("different seeds produced identical permutation tables")
	}
}

func TestPermutationIsDuplicated(t *testing.T) {
	n := NewNoiseField(99)
	var seen [256]bool
	for i := range 256 {
		if n.perm[i] != n.perm[i+256] {
			t.Fatalf("perm[%d] != perm[%d]", i, i+256)
		}
		seen[n.perm[i]] = true
	}
	for v, ok := range seen {
		if !ok {
			t.Fatalf("value %d missing from permutation", v)
		}
	}
}

// TestNoise2DZeroAtLattice: gradient noise vanishes on integer lattice points
func TestNoise2DZeroAtLattice(t *testing.T) {
	n := NewNoiseField(42)
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			if v := n.Noise2D(float64(x), float64(y)); v != 0 {
				t.Errorf("Noise2D(%d,%d) = %v, want 0", x, y, v)
			}
		}
	}
}

func TestNoise2DRangeAndContinuity(t *testing.T) {
	n := NewNoiseField(42)
	rng := rand.New(rand.NewSource(12345))
	for range 2000 {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		v := n.Noise2D(x, y)
		if v < -1 || v > 1 {
			t.Fatalf("Noise2D(%f,%f) = %f out of [-1,1]", x, y, v)
		}
		if d := math.Abs(v - n.Noise2D(x+0.001, y)); d > 0.01 {
			t.Fatalf("Noise2D jumps by %f over 0.001 at (%f,%f)", d, x, y)
		}
	}
}

func TestLayeredNoiseRange(t *testing.T) {
	n := NewNoiseField(42)
	rng := rand.New(rand.NewSource(3))
	for range 2000 {
		x := rng.Float64()*4000 - 2000
		y := rng.Float64()*4000 - 2000
		v := n.LayeredNoise(x, y, 4, 0.5, 0.02)
		if v < 0 || v > 1 {
			t.Fatalf("LayeredNoise(%f,%f) = %f out of [0,1]", x, y, v)
		}
	}
	if v := n.LayeredNoise(1, 2, 0, 0.5, 0.02); v != 0.5 {
		t.Errorf("zero octaves = %f, want 0.5", v)
	}
}

func TestTerrainHeight(t *testing.T) {
	n := NewNoiseField(42)
	for x := -64; x <= 64; x += 7 {
		for z := -64; z <= 64; z += 5 {
			h := n.TerrainHeight(x, z, 32, 16)
			if h != n.TerrainHeight(x, z, 32, 16) {
				t.Fatalf("TerrainHeight(%d,%d) not stable", x, z)
			}
			if h < 32 || h > 48 {
				t.Fatalf("TerrainHeight(%d,%d) = %d out of [32,48]", x, z, h)
			}
		}
	}
	other := NewNoiseField(42)
	if n.TerrainHeight(123, -456, 32, 16) != other.TerrainHeight(123, -456, 32, 16) {
		t.Error("TerrainHeight differs between fields with the same seed")
	}
}
