package world

import "testing"

func TestCoordinateRoundTrip(t *testing.T) {
	for w := -100; w <= 100; w++ {
		c := ChunkCoordOf(w, w, w)
		lx, ly, lz := LocalOf(w, w, w)
		if lx < 0 || lx >= ChunkSize || ly != lx || lz != lx {
			t.Fatalf("LocalOf(%d) = %d,%d,%d out of range", w, lx, ly, lz)
		}
		if c.X*ChunkSize+lx != w {
			t.Fatalf("round trip failed for %d: chunk %d local %d", w, c.X, lx)
		}
	}
}

func TestCoordinateExamples(t *testing.T) {
	tests := []struct {
		world [3]int
		chunk ChunkCoord
		local [3]int
	}{
		{[3]int{-3, 0, 0}, ChunkCoord{-1, 0, 0}, [3]int{13, 0, 0}},
		{[3]int{17, 5, -3}, ChunkCoord{1, 0, -1}, [3]int{1, 5, 13}},
		{[3]int{-16, -17, 15}, ChunkCoord{-1, -2, 0}, [3]int{0, 15, 15}},
		{[3]int{16, 32, -1}, ChunkCoord{1, 2, -1}, [3]int{0, 0, 15}},
	}
	for _, tt := range tests {
		if got := ChunkCoordOf(tt.world[0], tt.world[1], tt.world[2]); got != tt.chunk {
			t.Errorf("ChunkCoordOf(%v) = %v, want %v", tt.world, got, tt.chunk)
		}
		lx, ly, lz := LocalOf(tt.world[0], tt.world[1], tt.world[2])
		if got := [3]int{lx, ly, lz}; got != tt.local {
			t.Errorf("LocalOf(%v) = %v, want %v", tt.world, got, tt.local)
		}
	}
}

func TestChunkCoordAtFloorsNegativePoints(t *testing.T) {
	tests := []struct {
		x, y, z float32
		want    ChunkCoord
	}{
		{-0.5, 0.5, 0.5, ChunkCoord{-1, 0, 0}},
		{15.99, 16, -16, ChunkCoord{0, 1, -1}},
		{-16.01, 0, 0, ChunkCoord{-2, 0, 0}},
	}
	for _, tt := range tests {
		p := [3]float32{tt.x, tt.y, tt.z}
		if got := ChunkCoordAt(p); got != tt.want {
			t.Errorf("ChunkCoordAt(%v) = %v, want %v", p, got, tt.want)
		}
	}
}

func TestChunkCoordCenter(t *testing.T) {
	c := ChunkCoord{-1, 2, 0}.Center()
	if c.X() != -8 || c.Y() != 40 || c.Z() != 8 {
		t.Errorf("Center = %v", c)
	}
}
