package objexport

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"voxelworld/internal/world"
)

func countPrefix(s, prefix string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestWriteSingleBlock(t *testing.T) {
	w := world.NewEmpty()
	w.LoadChunk(world.ChunkCoord{X: 1, Y: 0, Z: 0})
	w.SetBlock(16, 0, 0, world.BlockTypeStone)

	var buf bytes.Buffer
	stats, err := WriteWorld(&buf, w, Options{MaterialLib: "atlas.mtl", Material: "atlas"})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Objects != 1 || stats.Vertices != 24 || stats.Triangles != 12 {
		t.Errorf("stats = %+v", stats)
	}

	out := buf.String()
	if countPrefix(out, "v ") != 24 || countPrefix(out, "vt ") != 24 || countPrefix(out, "f ") != 12 {
		t.Errorf("unexpected line counts in\n%s", out)
	}
	for _, want := range []string{"mtllib atlas.mtl\n", "o chunk_1_0_0\n", "usemtl atlas\n", "f 1/1 2/2 3/3\n", "v 16 1 0\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteOffsetsIndicesAcrossObjects(t *testing.T) {
	w := world.NewEmpty()
	w.LoadChunk(world.ChunkCoord{})
	w.LoadChunk(world.ChunkCoord{X: 2})
	w.SetBlock(1, 1, 1, world.BlockTypeDirt)
	w.SetBlock(33, 1, 1, world.BlockTypeDirt)

	var buf bytes.Buffer
	stats, err := WriteWorld(&buf, w, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Objects != 2 || stats.Vertices != 48 {
		t.Fatalf("stats = %+v", stats)
	}
	if !strings.Contains(buf.String(), "f 25/25 26/26 27/27\n") {
		t.Error("second object indices are not offset")
	}
	if strings.Contains(buf.String(), "mtllib") || strings.Contains(buf.String(), "usemtl") {
		t.Error("material lines written without options")
	}
}

func TestWriteSkipsEmptyChunks(t *testing.T) {
	w := world.NewEmpty()
	w.LoadChunk(world.ChunkCoord{})
	var buf bytes.Buffer
	stats, err := WriteWorld(&buf, w, Options{})
	if err != nil || stats.Objects != 0 {
		t.Errorf("stats = %+v, err = %v", stats, err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportsErrors(t *testing.T) {
	w := world.NewEmpty()
	w.LoadChunk(world.ChunkCoord{})
	w.SetBlock(0, 0, 0, world.BlockTypeStone)
	if _, err := WriteWorld(failingWriter{}, w, Options{}); err == nil {
		t.Error("expected an error")
	}
	if err := WriteMTL(failingWriter{}, "atlas", "atlas.png"); err == nil {
		t.Error("expected an error")
	}
}

func TestWriteMTL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMTL(&buf, "atlas", "atlas.png"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "newmtl atlas\n") || !strings.Contains(buf.String(), "map_Kd atlas.png\n") {
		t.Errorf("mtl = %q", buf.String())
	}
}
