package world

import (
	"math"

	"voxelworld/internal/config"
	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// nearDistance is the camera distance under which chunks are always shown.
const nearDistance = float32(config.NearDistanceChunks * ChunkSize)

// DefaultHalfFOV is the half view angle, in radians, used by the viewer.
var DefaultHalfFOV = mgl32.DegToRad(config.DefaultHalfFOVDeg)

// chunkInView is a coarse cone test: the chunk center must be within
// halfFOV of the forward direction, unless it is close to the camera.
func chunkInView(center, camPos, camForward mgl32.Vec3, halfFOV float32) bool {
	toChunk := center.Sub(camPos)
	distance := toChunk.Len()
	if distance < nearDistance {
		return true
	}
	dot := toChunk.Mul(1 / distance).Dot(camForward)
	dot = mgl32.Clamp(dot, -1, 1)
	angle := float32(math.Acos(float64(dot)))
	return angle < halfFOV
}

// UpdateVisibility marks each loaded chunk visible or hidden for a camera
// at camPos looking along the unit vector camForward, and returns the
// number of visible chunks.
func (w *World) UpdateVisibility(camPos, camForward mgl32.Vec3, halfFOV float32) int {
	defer profiling.Track("world.UpdateVisibility")()

	visible := 0
	w.store.ForEach(func(coord ChunkCoord, c *Chunk) {
		v := chunkInView(coord.Center(), camPos, camForward, halfFOV)
		if v != c.visible {
			c.visible = v
			w.backend.SetVisible(c.handle, v)
		}
		if v {
			visible++
		}
	})
	return visible
}
