package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkSize is the edge length of a cubic chunk in blocks.
const (
	ChunkSize   = 16
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChunkCoord identifies a chunk in chunk space.
type ChunkCoord struct {
	X, Y, Z int
}

// Origin returns the world block position of the chunk's local (0,0,0).
func (c ChunkCoord) Origin() (int, int, int) {
	return c.X * ChunkSize, c.Y * ChunkSize, c.Z * ChunkSize
}

// Center returns the world-space center of the chunk.
func (c ChunkCoord) Center() mgl32.Vec3 {
	const half = ChunkSize / 2
	x, y, z := c.Origin()
	return mgl32.Vec3{float32(x + half), float32(y + half), float32(z + half)}
}

// Add returns the coordinate offset by (dx, dy, dz).
func (c ChunkCoord) Add(dx, dy, dz int) ChunkCoord {
	return ChunkCoord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the Euclidean remainder, always in [0, b) for b > 0.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChunkCoordOf returns the chunk containing world block (x, y, z).
func ChunkCoordOf(x, y, z int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(x, ChunkSize),
		Y: floorDiv(y, ChunkSize),
		Z: floorDiv(z, ChunkSize),
	}
}

// LocalOf returns the position of world block (x, y, z) inside its chunk.
func LocalOf(x, y, z int) (int, int, int) {
	return mod(x, ChunkSize), mod(y, ChunkSize), mod(z, ChunkSize)
}

// BlockAt returns the integer block position containing a world point.
func BlockAt(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p.X()))),
		int(math.Floor(float64(p.Y()))),
		int(math.Floor(float64(p.Z()))),
	}
}

// ChunkCoordAt returns the chunk containing a world point.
func ChunkCoordAt(p mgl32.Vec3) ChunkCoord {
	b := BlockAt(p)
	return ChunkCoordOf(b[0], b[1], b[2])
}
