package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a chunk geometry buffer in chunk-local space. Vertices, UVs and
// Indices share face order: every visible face adds 4 vertices, 4 UVs and
// 6 indices offset by the vertex count at the time it was emitted.
type Mesh struct {
	Vertices []mgl32.Vec3
	UVs      []mgl32.Vec2
	Indices  []uint32
}

// FaceCount returns the number of emitted faces.
func (m *Mesh) FaceCount() int {
	return len(m.Vertices) / 4
}

// IsEmpty reports whether there is nothing to draw.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

func (m *Mesh) reset() {
	m.Vertices = m.Vertices[:0]
	m.UVs = m.UVs[:0]
	m.Indices = m.Indices[:0]
}

func (m *Mesh) appendFace(bt BlockType, f BlockFace, x, y, z int) {
	base := uint32(len(m.Vertices))
	offset := mgl32.Vec3{float32(x), float32(y), float32(z)}
	for _, v := range faceVertices[f] {
		m.Vertices = append(m.Vertices, v.Add(offset))
	}
	uvs := FaceUVs(bt, f)
	m.UVs = append(m.UVs, uvs[:]...)
	for _, idx := range QuadIndices {
		m.Indices = append(m.Indices, base+idx)
	}
}
