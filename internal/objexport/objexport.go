// Package objexport writes chunk meshes as Wavefront OBJ.
package objexport

import (
	"bufio"
	"fmt"
	"io"

	"voxelworld/internal/world"
)

// MeshSource is a chunk with a built mesh.
type MeshSource interface {
	Coord() world.ChunkCoord
	Mesh() *world.Mesh
}

// Options control the optional material references.
type Options struct {
	// MaterialLib is written as mtllib when non-empty.
	MaterialLib string
	// Material is selected with usemtl when non-empty.
	Material string
}

// Stats reports what was written.
type Stats struct {
	Objects   int
	Vertices  int
	Triangles int
}

// Write emits one OBJ object per non-empty chunk. Vertices are in world
// space and texture coordinates are the atlas UVs.
func Write(w io.Writer, chunks []MeshSource, opts Options) (Stats, error) {
	out := bufio.NewWriterSize(w, 1<<20)
	var stats Stats

	fmt.Fprintln(out, "# voxelworld chunk export")
	if opts.MaterialLib != "" {
		fmt.Fprintln(out, "mtllib", opts.MaterialLib)
	}

	for _, c := range chunks {
		m := c.Mesh()
		if m.IsEmpty() {
			continue
		}
		coord := c.Coord()
		ox, oy, oz := coord.Origin()

		fmt.Fprintf(out, "o chunk_%d_%d_%d\n", coord.X, coord.Y, coord.Z)
		if opts.Material != "" {
			fmt.Fprintln(out, "usemtl", opts.Material)
		}
		for _, v := range m.Vertices {
			fmt.Fprintf(out, "v %g %g %g\n", v.X()+float32(ox), v.Y()+float32(oy), v.Z()+float32(oz))
		}
		for _, uv := range m.UVs {
			fmt.Fprintf(out, "vt %g %g\n", uv.X(), uv.Y())
		}
		// OBJ indices are 1-based and global to the file
		base := uint32(stats.Vertices) + 1
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a, b, c := m.Indices[i]+base, m.Indices[i+1]+base, m.Indices[i+2]+base
			fmt.Fprintf(out, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
			stats.Triangles++
		}
		stats.Vertices += len(m.Vertices)
		stats.Objects++
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("write obj: %w", err)
	}
	return stats, nil
}

// WriteWorld exports every loaded chunk of w in coordinate order.
func WriteWorld(out io.Writer, w *world.World, opts Options) (Stats, error) {
	coords := w.LoadedCoords()
	chunks := make([]MeshSource, 0, len(coords))
	for _, coord := range coords {
		chunks = append(chunks, w.Chunk(coord))
	}
	return Write(out, chunks, opts)
}

// WriteMTL writes a material library with one textured material.
func WriteMTL(w io.Writer, material, texture string) error {
	_, err := fmt.Fprintf(w, "newmtl %s\nKa 1 1 1\nKd 1 1 1\nd 1\nillum 1\nmap_Kd %s\n", material, texture)
	if err != nil {
		return fmt.Errorf("write mtl: %w", err)
	}
	return nil
}
