package world

import (
	"math/rand"

	"voxelworld/internal/config"
)

// TerrainGenerator fills freshly created chunks.
type TerrainGenerator interface {
	// HeightAt returns the surface block Y of world column (x, z).
	HeightAt(worldX, worldZ int) int
	// PopulateChunk writes terrain into an empty chunk.
	PopulateChunk(c *Chunk)
}

// Generator builds layered terrain from a noise height field and decorates
// it with trees.
type Generator struct {
	noise       *NoiseField
	baseHeight  int
	heightScale int
	dirtDepth   int
}

// NewGenerator creates a generator with the compiled-in terrain settings.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		noise:       NewNoiseField(seed),
		baseHeight:  config.BaseHeight,
		heightScale: config.HeightScale,
		dirtDepth:   config.DirtDepth,
	}
}

// Noise exposes the generator's height field.
func (g *Generator) Noise() *NoiseField {
	return g.noise
}

// HeightAt computes world surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	return g.noise.TerrainHeight(worldX, worldZ, g.baseHeight, g.heightScale)
}

// PopulateChunk fills a chunk from the height field, then places trees.
func (g *Generator) PopulateChunk(c *Chunk) {
	baseX, baseY, baseZ := c.Coord().Origin()
	for lx := range ChunkSize {
		for lz := range ChunkSize {
			height := g.HeightAt(baseX+lx, baseZ+lz)
			for ly := range ChunkSize {
				c.SetBlock(lx, ly, lz, layerAt(baseY+ly, height, g.dirtDepth))
			}
		}
	}
	g.placeTrees(c)
}

// layerAt picks the block at world height y of a column whose surface is
// at height.
func layerAt(y, height, dirtDepth int) BlockType {
	switch {
	case y > height:
		return BlockTypeAir
	case y == height:
		return BlockTypeGrass
	case y >= height-dirtDepth:
		return BlockTypeDirt
	default:
		return BlockTypeStone
	}
}

// treeRNG derives a per-chunk random source from the seed and the chunk
// coordinate, so decoration does not depend on generation order.
func treeRNG(seed int64, coord ChunkCoord) *rand.Rand {
	s := seed ^ (int64(coord.X)*341873128712 + int64(coord.Z)*132897987541 + int64(coord.Y)*2654435761)
	return rand.New(rand.NewSource(s))
}

func (g *Generator) placeTrees(c *Chunk) {
	coord := c.Coord()
	baseX, baseY, baseZ := coord.Origin()
	rng := treeRNG(g.noise.Seed(), coord)

	// trunk and canopy above the surface block
	headroom := config.TrunkMaxHeight
	span := ChunkSize - 2*config.TreeEdgeMargin

	for range config.TreeAttempts {
		lx := config.TreeEdgeMargin + rng.Intn(span)
		lz := config.TreeEdgeMargin + rng.Intn(span)
		trunk := config.TrunkMinHeight + rng.Intn(config.TrunkMaxHeight-config.TrunkMinHeight+1)
		roll := rng.Float64()

		ly := g.HeightAt(baseX+lx, baseZ+lz) - baseY
		if ly < 0 || ly >= ChunkSize-headroom {
			continue
		}
		if c.GetBlock(lx, ly, lz) != BlockTypeGrass {
			continue
		}
		if roll >= config.TreeChance {
			continue
		}
		placeTree(c, lx, ly+1, lz, trunk)
	}
}

// placeTree grows a trunk from (x, y, z) and a Manhattan-ball canopy around
// its top. Nothing but air (and leaves, for the trunk) is overwritten.
func placeTree(c *Chunk, x, y, z, trunk int) {
	for dy := range trunk {
		switch c.GetBlock(x, y+dy, z) {
		case BlockTypeAir, BlockTypeLeaves:
			c.SetBlock(x, y+dy, z, BlockTypeWood)
		}
	}

	r := config.LeafRadius
	top := y + trunk - 1
	for dx := -r; dx <= r; dx++ {
		for dy := -1; dy <= r; dy++ {
			for dz := -r; dz <= r; dz++ {
				if abs(dx)+abs(dy)+abs(dz) > r+1 {
					continue
				}
				lx, ly, lz := x+dx, top+dy, z+dz
				if inChunk(lx, ly, lz) && c.GetBlock(lx, ly, lz) == BlockTypeAir {
					c.SetBlock(lx, ly, lz, BlockTypeLeaves)
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FlatGenerator generates a flat world at a fixed height
type FlatGenerator struct {
	Height int
}

// NewFlatGenerator creates a new flat generator.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{Height: height}
}

// HeightAt returns the fixed height.
func (fg *FlatGenerator) HeightAt(worldX, worldZ int) int {
	return fg.Height
}

// PopulateChunk fills grass at Height, dirt for DirtDepth below it, stone below that.
func (fg *FlatGenerator) PopulateChunk(c *Chunk) {
	_, baseY, _ := c.Coord().Origin()
	for ly := range ChunkSize {
		bt := layerAt(baseY+ly, fg.Height, config.DirtDepth)
		if bt == BlockTypeAir {
			continue
		}
		for lx := range ChunkSize {
			for lz := range ChunkSize {
				c.SetBlock(lx, ly, lz, bt)
			}
		}
	}
}
