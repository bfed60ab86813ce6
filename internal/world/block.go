package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeWood
	BlockTypeLeaves

	numBlockTypes
)

var blockTypeNames = [numBlockTypes]string{
	BlockTypeAir:    "air",
	BlockTypeGrass:  "grass",
	BlockTypeDirt:   "dirt",
	BlockTypeStone:  "stone",
	BlockTypeWood:   "wood",
	BlockTypeLeaves: "leaves",
}

func (bt BlockType) String() string {
	if bt < numBlockTypes {
		return blockTypeNames[bt]
	}
	return "unknown"
}

// IsSolid reports whether the block produces geometry and occludes faces.
func (bt BlockType) IsSolid() bool {
	return bt != BlockTypeAir
}

// BlockFace identifies a face of a block
type BlockFace int

const (
	FaceTop BlockFace = iota
	FaceBottom
	FaceNorth // front, +Z
	FaceSouth // back, -Z
	FaceWest  // left, -X
	FaceEast  // right, +X

	NumFaces
)

var faceNames = [NumFaces]string{"top", "bottom", "north", "south", "west", "east"}

func (f BlockFace) String() string {
	if f >= 0 && f < NumFaces {
		return faceNames[f]
	}
	return "unknown"
}

// Outward unit offsets, indexed by BlockFace.
var faceOffsets = [NumFaces][3]int{
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
	FaceNorth:  {0, 0, 1},
	FaceSouth:  {0, 0, -1},
	FaceWest:   {-1, 0, 0},
	FaceEast:   {1, 0, 0},
}

// Unit-cube corners of each face, counter-clockwise seen from outside so
// that (v1-v0)x(v2-v0) points along the face offset. The cube spans
// [0,1]^3 with the block origin at its minimum corner.
var faceVertices = [NumFaces][4]mgl32.Vec3{
	FaceTop:    {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	FaceBottom: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	FaceNorth:  {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	FaceSouth:  {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	FaceWest:   {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	FaceEast:   {{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
}

// FaceUVCorners is the shared unit quad matching the vertex order of every
// face: bottom-left, bottom-right, top-right, top-left.
var FaceUVCorners = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// QuadIndices triangulates a face's 4 vertices as a fan.
var QuadIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// FaceOffset returns the outward unit offset of a face.
func FaceOffset(f BlockFace) [3]int {
	return faceOffsets[f]
}

// FaceVertices returns the 4 unit-cube corners of a face.
func FaceVertices(f BlockFace) [4]mgl32.Vec3 {
	return faceVertices[f]
}

// FaceNormal returns the face offset as a float vector.
func FaceNormal(f BlockFace) mgl32.Vec3 {
	o := faceOffsets[f]
	return mgl32.Vec3{float32(o[0]), float32(o[1]), float32(o[2])}
}
