// Command voxelobj streams the chunks around a point and writes them as a
// textured Wavefront OBJ.
package main

import (
	"flag"
	"log"
	"time"

	"voxelworld/internal/config"
	"voxelworld/internal/graphics/atlas"
	"voxelworld/internal/objexport"
	"voxelworld/internal/profiling"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	var (
		seed       = flag.Int64("seed", config.NoiseSeed, "terrain seed")
		x          = flag.Float64("x", 0, "focus X")
		y          = flag.Float64("y", config.BaseHeight, "focus Y")
		z          = flag.Float64("z", 0, "focus Z")
		horizontal = flag.Int("h", config.HorizontalRadius, "horizontal radius in chunks")
		vertical   = flag.Int("v", config.VerticalRadius, "vertical radius in chunks")
		flat       = flag.Int("flat", -1, "use a flat world with the surface at this height")
		tile       = flag.Int("tile", 16, "atlas tile size in pixels")
		out        = flag.String("o", "world.obj", "output OBJ path")
	)
	flag.Parse()

	if *horizontal < 0 || *vertical < 0 {
		log.Fatalf("voxelobj: radii must not be negative (h=%d v=%d)", *horizontal, *vertical)
	}

	var w *world.World
	if *flat >= 0 {
		w = world.NewWithGenerator(world.NewFlatGenerator(*flat))
	} else {
		w = world.New(*seed)
	}
	w.SetStreamer(world.NewChunkStreamer(*horizontal, *vertical, config.ChunksPerCall))

	start := time.Now()
	stats := w.StreamAround(mgl32.Vec3{float32(*x), float32(*y), float32(*z)})
	log.Printf("generated %d chunks in %v (%s)", stats.Generated, time.Since(start).Round(time.Millisecond), profiling.TopN(3))

	exported, err := objexport.ExportFiles(*out, w, atlas.Build(*tile))
	if err != nil {
		log.Fatalf("voxelobj: %v", err)
	}
	log.Printf("wrote %s: %d objects, %d vertices, %d triangles", *out, exported.Objects, exported.Vertices, exported.Triangles)
}
