// Package atlas paints the block texture atlas: one square tile per
// world atlas slot, laid out left to right.
package atlas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"

	"voxelworld/internal/world"

	xdraw "golang.org/x/image/draw"
)

// BaseTileSize is the resolution tiles are painted at before scaling.
const BaseTileSize = 8

var baseColors = [world.AtlasSlots]color.RGBA{
	world.SlotGrassTop:  {95, 159, 53, 255},
	world.SlotGrassSide: {134, 96, 67, 255},
	world.SlotDirt:      {134, 96, 67, 255},
	world.SlotStone:     {125, 125, 125, 255},
	world.SlotWoodSide:  {102, 81, 51, 255},
	world.SlotWoodTop:   {159, 132, 77, 255},
	world.SlotLeaves:    {58, 118, 38, 255},
}

// SlotColor returns the base colour of a slot.
func SlotColor(slot int) color.RGBA {
	if slot < 0 || slot >= world.AtlasSlots {
		return color.RGBA{255, 0, 255, 255}
	}
	return baseColors[slot]
}

// TileRect returns the pixel rectangle of a slot in an atlas of tileSize
// tiles.
func TileRect(slot, tileSize int) image.Rectangle {
	return image.Rect(slot*tileSize, 0, (slot+1)*tileSize, tileSize)
}

// Build paints every slot at BaseTileSize and scales it to tileSize with
// nearest-neighbour sampling. The result is deterministic.
func Build(tileSize int) *image.RGBA {
	tileSize = max(tileSize, 1)
	img := image.NewRGBA(image.Rect(0, 0, world.AtlasSlots*tileSize, tileSize))
	for slot := range world.AtlasSlots {
		tile := paintTile(slot)
		xdraw.NearestNeighbor.Scale(img, TileRect(slot, tileSize), tile, tile.Bounds(), xdraw.Src, nil)
	}
	return img
}

// WritePNG encodes an atlas image.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func paintTile(slot int) *image.RGBA {
	tile := image.NewRGBA(image.Rect(0, 0, BaseTileSize, BaseTileSize))
	rng := rand.New(rand.NewSource(int64(slot) + 1))
	base := SlotColor(slot)

	for y := range BaseTileSize {
		for x := range BaseTileSize {
			c := base
			switch slot {
			case world.SlotGrassSide:
				if y < 2 || (y == 2 && rng.Intn(2) == 0) {
					c = baseColors[world.SlotGrassTop]
				}
			case world.SlotWoodSide:
				if x%3 == 0 {
					c = shade(c, -18)
				}
			case world.SlotWoodTop:
				if ring(x, y)%2 == 0 {
					c = shade(c, -22)
				}
			case world.SlotLeaves:
				if rng.Intn(5) == 0 {
					c = shade(c, -30)
				}
			}
			tile.SetRGBA(x, y, shade(c, rng.Intn(25)-12))
		}
	}
	return tile
}

// ring is the Chebyshev distance from the tile centre.
func ring(x, y int) int {
	dx := 2*x - (BaseTileSize - 1)
	dy := 2*y - (BaseTileSize - 1)
	return max(abs(dx), abs(dy)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func shade(c color.RGBA, d int) color.RGBA {
	return color.RGBA{clamp(int(c.R) + d), clamp(int(c.G) + d), clamp(int(c.B) + d), c.A}
}

func clamp(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
