package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Texture atlas layout: a horizontal strip of AtlasSlots equal-width tiles.
const (
	SlotGrassTop = iota
	SlotGrassSide
	SlotDirt
	SlotStone
	SlotWoodSide
	SlotWoodTop
	SlotLeaves

	AtlasSlots
)

// Slot per block type and face. Air has no slot.
var blockSlots = [numBlockTypes][NumFaces]int{
	BlockTypeAir:    {-1, -1, -1, -1, -1, -1},
	BlockTypeGrass:  {SlotGrassTop, SlotDirt, SlotGrassSide, SlotGrassSide, SlotGrassSide, SlotGrassSide},
	BlockTypeDirt:   {SlotDirt, SlotDirt, SlotDirt, SlotDirt, SlotDirt, SlotDirt},
	BlockTypeStone:  {SlotStone, SlotStone, SlotStone, SlotStone, SlotStone, SlotStone},
	BlockTypeWood:   {SlotWoodTop, SlotWoodTop, SlotWoodSide, SlotWoodSide, SlotWoodSide, SlotWoodSide},
	BlockTypeLeaves: {SlotLeaves, SlotLeaves, SlotLeaves, SlotLeaves, SlotLeaves, SlotLeaves},
}

// AtlasSlot returns the atlas tile used by a block face, or -1 for air and
// unknown block types.
func AtlasSlot(bt BlockType, f BlockFace) int {
	if bt >= numBlockTypes {
		return -1
	}
	return blockSlots[bt][f]
}

// FaceUVs returns the atlas UVs of a block face in FaceVertices order.
// Air maps to a zero-area rectangle.
func FaceUVs(bt BlockType, f BlockFace) [4]mgl32.Vec2 {
	var uvs [4]mgl32.Vec2
	slot := AtlasSlot(bt, f)
	if slot < 0 {
		return uvs
	}
	uMin := float32(slot) / AtlasSlots
	uMax := float32(slot+1) / AtlasSlots
	for i, c := range FaceUVCorners {
		uvs[i] = mgl32.Vec2{uMin + c.X()*(uMax-uMin), c.Y()}
	}
	return uvs
}
