package world

import (
	"math"

	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition [3]int
	// AdjacentPosition is the last empty voxel before the hit, where a
	// placed block would go.
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
}

// CastRay walks the voxels pierced by the ray (Amanatides–Woo DDA) and
// returns the first solid one together with the voxel visited before it.
// It misses for a zero direction or when the travelled distance exceeds
// maxDistance. Ties between axes step x, then y, then z.
func (w *World) CastRay(origin, direction mgl32.Vec3, maxDistance float32) RaycastResult {
	defer profiling.Track("world.CastRay")()

	if direction.Len() == 0 {
		return RaycastResult{}
	}
	dir := direction.Normalize()

	o := [3]float64{float64(origin.X()), float64(origin.Y()), float64(origin.Z())}
	d := [3]float64{float64(dir.X()), float64(dir.Y()), float64(dir.Z())}

	var (
		cur    [3]int
		step   [3]int
		tMax   [3]float64
		tDelta [3]float64
	)
	for i := range 3 {
		cur[i] = int(math.Floor(o[i]))
		if d[i] >= 0 {
			step[i] = 1
		} else {
			step[i] = -1
		}
		if d[i] == 0 {
			tMax[i] = math.Inf(1)
			tDelta[i] = math.Inf(1)
			continue
		}
		boundary := float64(cur[i])
		if step[i] > 0 {
			boundary++
		}
		tMax[i] = (boundary - o[i]) / d[i]
		tDelta[i] = math.Abs(1 / d[i])
	}

	limit := float64(maxDistance)
	prev := cur
	traveled := 0.0
	for traveled <= limit {
		if w.GetBlock(cur[0], cur[1], cur[2]) != BlockTypeAir {
			return RaycastResult{
				HitPosition:      cur,
				AdjacentPosition: prev,
				Distance:         float32(traveled),
				Hit:              true,
			}
		}
		prev = cur

		axis := 2
		if tMax[0] <= tMax[1] && tMax[0] <= tMax[2] {
			axis = 0
		} else if tMax[1] <= tMax[2] {
			axis = 1
		}
		traveled = tMax[axis]
		tMax[axis] += tDelta[axis]
		cur[axis] += step[axis]
	}
	return RaycastResult{}
}
