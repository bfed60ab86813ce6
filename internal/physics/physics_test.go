package physics_test

import (
	"testing"

	"voxelworld/internal/physics"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIntersectsBlock(t *testing.T) {
	pos := mgl32.Vec3{0.5, 10, 0.5}
	tests := []struct {
		name    string
		x, y, z int
		want    bool
	}{
		{"feet block", 0, 10, 0, true},
		{"head block", 0, 11, 0, true},
		{"above head", 0, 12, 0, false},
		{"below feet", 0, 9, 0, false},
		{"beside", 1, 10, 0, false},
		{"diagonal", -1, 10, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := physics.IntersectsBlock(pos, 0.6, 1.8, tt.x, tt.y, tt.z); got != tt.want {
				t.Errorf("IntersectsBlock(%d,%d,%d) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
			}
		})
	}
}

func TestIntersectsBlockStraddling(t *testing.T) {
	pos := mgl32.Vec3{1.1, 0.5, -0.1}
	for _, b := range [][3]int{{0, 0, -1}, {1, 2, 0}, {0, 1, 0}} {
		if !physics.IntersectsBlock(pos, 0.6, 1.8, b[0], b[1], b[2]) {
			t.Errorf("expected overlap with %v", b)
		}
	}
	if physics.IntersectsBlock(pos, 0.6, 1.8, 2, 0, 0) {
		t.Error("box reaches x=1.4 only")
	}
}

func TestOccupiedBlocks(t *testing.T) {
	got := physics.OccupiedBlocks(mgl32.Vec3{0.5, 10, 0.5}, 0.6, 1.8)
	if len(got) != 2 || got[0] != [3]int{0, 10, 0} || got[1] != [3]int{0, 11, 0} {
		t.Errorf("OccupiedBlocks = %v", got)
	}

	got = physics.OccupiedBlocks(mgl32.Vec3{-1, 0, 0}, 0.6, 1)
	if len(got) != 4 {
		t.Errorf("box on a corner occupies %d blocks, want 4: %v", len(got), got)
	}
}

func TestCollides(t *testing.T) {
	w := world.NewEmpty()
	w.LoadChunk(world.ChunkCoord{})
	w.SetBlock(3, 4, 3, world.BlockTypeStone)

	if !physics.Collides(mgl32.Vec3{3.5, 3.5, 3.5}, 0.6, 1.8, w) {
		t.Error("box through a stone block should collide")
	}
	if physics.Collides(mgl32.Vec3{3.5, 5, 3.5}, 0.6, 1.8, w) {
		t.Error("box standing on the block should not collide")
	}
}

func BenchmarkCollides(b *testing.B) {
	w := world.New(42)
	w.StreamAround(mgl32.Vec3{0, 40, 0})
	pos := mgl32.Vec3{0, 40, 0}
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = physics.Collides(pos, 0.6, 1.8, w)
	}
}
