package world

import (
	"voxelworld/internal/profiling"
)

// BlockReader is read-only block access in chunk-local coordinates.
type BlockReader interface {
	GetBlock(x, y, z int) BlockType
}

// NeighborLookup resolves loaded chunks for cross-boundary face culling.
// A false result means the chunk is not loaded and reads as air.
type NeighborLookup interface {
	LoadedChunk(coord ChunkCoord) (BlockReader, bool)
}

// Chunk represents a 16x16x16 cube of blocks
type Chunk struct {
	X, Y, Z int
	blocks  [ChunkVolume]BlockType
	mesh    Mesh
	dirty   bool

	handle  RenderHandle
	visible bool
}

// NewChunk creates a new all-air chunk at the specified chunk coordinates
func NewChunk(x, y, z int) *Chunk {
	return &Chunk{
		X:       x,
		Y:       y,
		Z:       z,
		dirty:   true,
		visible: true,
	}
}

// Coord returns the chunk coordinate.
func (c *Chunk) Coord() ChunkCoord {
	return ChunkCoord{X: c.X, Y: c.Y, Z: c.Z}
}

func inChunk(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// index converts local coordinates (x, y, z) → flat index
func index(x, y, z int) int {
	return x*ChunkSize*ChunkSize + y*ChunkSize + z
}

// GetBlock returns the block type at the specified local coordinates.
// Coordinates outside the chunk read as air.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inChunk(x, y, z) {
		return BlockTypeAir
	}
	return c.blocks[index(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates.
// Coordinates outside the chunk are ignored.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if !inChunk(x, y, z) {
		return
	}
	c.blocks[index(x, y, z)] = blockType
	c.dirty = true
}

// Fill sets every block of the chunk to blockType.
func (c *Chunk) Fill(blockType BlockType) {
	for i := range c.blocks {
		c.blocks[i] = blockType
	}
	c.dirty = true
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// SolidCount returns the number of non-air blocks.
func (c *Chunk) SolidCount() int {
	n := 0
	for _, bt := range c.blocks {
		if bt != BlockTypeAir {
			n++
		}
	}
	return n
}

// IsDirty returns whether the mesh is out of date
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// MarkDirty forces the next GenerateMesh call to rebuild.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// Mesh returns the cached mesh. It is only current when IsDirty is false.
func (c *Chunk) Mesh() *Mesh {
	return &c.mesh
}

// Visible reports the result of the last visibility update.
func (c *Chunk) Visible() bool {
	return c.visible
}

// GenerateMesh rebuilds the cached mesh if the chunk is dirty and reports
// whether it did. A face is emitted iff the block on its other side is air;
// blocks beyond the chunk border are read from the neighbouring chunk
// through lookup, and unloaded neighbours (or a nil lookup) count as air.
func (c *Chunk) GenerateMesh(lookup NeighborLookup) bool {
	if !c.dirty {
		return false
	}
	defer profiling.Track("world.Chunk.GenerateMesh")()

	c.mesh.reset()
	var neighbors [NumFaces]BlockReader
	var resolved [NumFaces]bool

	for x := range ChunkSize {
		for y := range ChunkSize {
			for z := range ChunkSize {
				bt := c.blocks[index(x, y, z)]
				if bt == BlockTypeAir {
					continue
				}
				for f := range NumFaces {
					o := faceOffsets[f]
					nx, ny, nz := x+o[0], y+o[1], z+o[2]

					var nb BlockType
					if inChunk(nx, ny, nz) {
						nb = c.blocks[index(nx, ny, nz)]
					} else {
						if !resolved[f] {
							neighbors[f] = c.neighbor(lookup, f)
							resolved[f] = true
						}
						if neighbors[f] != nil {
							nb = neighbors[f].GetBlock(mod(nx, ChunkSize), mod(ny, ChunkSize), mod(nz, ChunkSize))
						}
					}

					if nb == BlockTypeAir {
						c.mesh.appendFace(bt, f, x, y, z)
					}
				}
			}
		}
	}

	c.dirty = false
	return true
}

// neighbor resolves the chunk adjacent across face f, or nil if unloaded.
func (c *Chunk) neighbor(lookup NeighborLookup, f BlockFace) BlockReader {
	if lookup == nil {
		return nil
	}
	o := faceOffsets[f]
	r, ok := lookup.LoadedChunk(c.Coord().Add(o[0], o[1], o[2]))
	if !ok {
		return nil
	}
	return r
}
