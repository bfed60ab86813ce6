package physics

import (
	"math"

	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockQuery is the read side of the world needed for collision tests.
type BlockQuery interface {
	IsAir(x, y, z int) bool
}

// AABB is an axis-aligned box. Min is inclusive, Max exclusive.
type AABB struct {
	Min, Max mgl32.Vec3
}

// EntityBox returns the box of an entity standing at feet position pos.
func EntityBox(pos mgl32.Vec3, width, height float32) AABB {
	half := width / 2
	return AABB{
		Min: mgl32.Vec3{pos.X() - half, pos.Y(), pos.Z() - half},
		Max: mgl32.Vec3{pos.X() + half, pos.Y() + height, pos.Z() + half},
	}
}

// BlockBox returns the unit cube of the block at (x, y, z).
func BlockBox(x, y, z int) AABB {
	return AABB{
		Min: mgl32.Vec3{float32(x), float32(y), float32(z)},
		Max: mgl32.Vec3{float32(x + 1), float32(y + 1), float32(z + 1)},
	}
}

// Intersects reports whether the boxes overlap with positive volume.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() < b.Max.X() && a.Max.X() > b.Min.X() &&
		a.Min.Y() < b.Max.Y() && a.Max.Y() > b.Min.Y() &&
		a.Min.Z() < b.Max.Z() && a.Max.Z() > b.Min.Z()
}

// IntersectsBlock checks whether an entity of the given size standing at
// pos overlaps the block at (x, y, z).
func IntersectsBlock(pos mgl32.Vec3, width, height float32, x, y, z int) bool {
	return EntityBox(pos, width, height).Intersects(BlockBox(x, y, z))
}

// OccupiedBlocks lists the block positions an entity box overlaps.
func OccupiedBlocks(pos mgl32.Vec3, width, height float32) [][3]int {
	box := EntityBox(pos, width, height)
	minX, maxX := span(box.Min.X(), box.Max.X())
	minY, maxY := span(box.Min.Y(), box.Max.Y())
	minZ, maxZ := span(box.Min.Z(), box.Max.Z())

	var out [][3]int
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				out = append(out, [3]int{x, y, z})
			}
		}
	}
	return out
}

// span returns the integer cells covered by [lo, hi).
func span(lo, hi float32) (int, int) {
	first := int(math.Floor(float64(lo)))
	last := int(math.Ceil(float64(hi))) - 1
	return first, max(first, last)
}

// Collides checks if an entity box at pos overlaps any non-air block.
func Collides(pos mgl32.Vec3, width, height float32, w BlockQuery) bool {
	for _, b := range OccupiedBlocks(pos, width, height) {
		if !w.IsAir(b[0], b[1], b[2]) {
			return true
		}
	}
	return false
}

var _ BlockQuery = (*world.World)(nil)
