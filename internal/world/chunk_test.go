package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// solidLookup reports every neighbour as a loaded chunk full of stone.
type solidLookup struct{}

func (solidLookup) LoadedChunk(coord ChunkCoord) (BlockReader, bool) {
	c := NewChunk(coord.X, coord.Y, coord.Z)
	c.Fill(BlockTypeStone)
	return c, true
}

func TestChunkGetSetBounds(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.SetBlock(3, 4, 5, BlockTypeWood)
	if got := c.GetBlock(3, 4, 5); got != BlockTypeWood {
		t.Fatalf("GetBlock = %v, want wood", got)
	}

	for _, p := range [][3]int{{-1, 0, 0}, {16, 0, 0}, {0, -1, 0}, {0, 16, 0}, {0, 0, -1}, {0, 0, 16}} {
		c.SetBlock(p[0], p[1], p[2], BlockTypeStone)
		if got := c.GetBlock(p[0], p[1], p[2]); got != BlockTypeAir {
			t.Errorf("GetBlock(%v) = %v, want air", p, got)
		}
	}
	if c.SolidCount() != 1 {
		t.Errorf("SolidCount = %d, want 1", c.SolidCount())
	}
}

func TestSingleBlockMesh(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.SetBlock(2, 3, 4, BlockTypeStone)
	if !c.GenerateMesh(nil) {
		t.Fatal("dirty chunk was not rebuilt")
	}
	m := c.Mesh()
	if len(m.Vertices) != 24 || len(m.UVs) != 24 || len(m.Indices) != 36 {
		t.Fatalf("mesh sizes v=%d uv=%d i=%d, want 24/24/36", len(m.Vertices), len(m.UVs), len(m.Indices))
	}
	for f := range NumFaces {
		if !hasFace(m, [3]int{2, 3, 4}, f) {
			t.Errorf("missing %v face", f)
		}
	}
	for i := 0; i < len(m.Indices); i += 6 {
		base := uint32(i / 6 * 4)
		for k, want := range QuadIndices {
			if m.Indices[i+k] != base+want {
				t.Fatalf("index %d = %d, want %d", i+k, m.Indices[i+k], base+want)
			}
		}
	}
	if c.GenerateMesh(nil) {
		t.Error("clean chunk was rebuilt")
	}
}

func TestEmptyChunkMesh(t *testing.T) {
	c := NewChunk(1, 2, 3)
	c.GenerateMesh(nil)
	if !c.Mesh().IsEmpty() {
		t.Errorf("air chunk produced %d faces", c.Mesh().FaceCount())
	}
}

func TestEnclosedSolidChunkHasNoFaces(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Fill(BlockTypeStone)
	c.GenerateMesh(solidLookup{})
	if n := len(c.Mesh().Vertices); n != 0 {
		t.Errorf("enclosed chunk has %d vertices", n)
	}

	// with no neighbours every border face is visible
	c.MarkDirty()
	c.GenerateMesh(nil)
	if got, want := c.Mesh().FaceCount(), 6*ChunkSize*ChunkSize; got != want {
		t.Errorf("isolated solid chunk faces = %d, want %d", got, want)
	}
}

func TestAdjacentBlocksShareNoFace(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.SetBlock(5, 5, 5, BlockTypeDirt)
	c.SetBlock(6, 5, 5, BlockTypeDirt)
	c.GenerateMesh(nil)
	if got := c.Mesh().FaceCount(); got != 10 {
		t.Fatalf("faces = %d, want 10", got)
	}
	if hasFace(c.Mesh(), [3]int{5, 5, 5}, FaceEast) || hasFace(c.Mesh(), [3]int{6, 5, 5}, FaceWest) {
		t.Error("shared face was emitted")
	}
}

func TestMeshUVsFollowBlockFace(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.SetBlock(0, 0, 0, BlockTypeGrass)
	c.GenerateMesh(nil)
	m := c.Mesh()
	for i := 0; i < len(m.Vertices); i += 4 {
		f := faceOf(m.Vertices[i:i+4], [3]int{0, 0, 0})
		want := FaceUVs(BlockTypeGrass, f)
		for k := range 4 {
			if m.UVs[i+k] != want[k] {
				t.Fatalf("face %v uv %d = %v, want %v", f, k, m.UVs[i+k], want[k])
			}
		}
	}
}

// hasFace reports whether m contains face f of the block at local p.
func hasFace(m *Mesh, p [3]int, f BlockFace) bool {
	origin := mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
	want := FaceVertices(f)
	for i := 0; i+3 < len(m.Vertices); i += 4 {
		match := true
		for k := range 4 {
			if m.Vertices[i+k] != origin.Add(want[k]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// faceOf identifies which face of the block at p the quad belongs to.
func faceOf(quad []mgl32.Vec3, p [3]int) BlockFace {
	origin := mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
	for f := range NumFaces {
		v := FaceVertices(f)
		if quad[0] == origin.Add(v[0]) && quad[2] == origin.Add(v[2]) {
			return f
		}
	}
	return NumFaces
}
