package objexport

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxelworld/internal/world"
)

func TestExportFiles(t *testing.T) {
	w := world.NewEmpty()
	w.LoadChunk(world.ChunkCoord{})
	w.SetBlock(3, 3, 3, world.BlockTypeGrass)

	dir := t.TempDir()
	objPath := filepath.Join(dir, "scene.obj")
	stats, err := ExportFiles(objPath, w, image.NewRGBA(image.Rect(0, 0, 7, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Triangles != 12 {
		t.Errorf("triangles = %d, want 12", stats.Triangles)
	}

	obj, err := os.ReadFile(objPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(obj), "mtllib scene.mtl\n") {
		t.Error("obj does not reference the material library")
	}
	mtl, err := os.ReadFile(filepath.Join(dir, "scene.mtl"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(mtl), "map_Kd scene.png") {
		t.Errorf("mtl = %q", mtl)
	}
	if _, err := os.Stat(filepath.Join(dir, "scene.png")); err != nil {
		t.Error(err)
	}
}

func TestExportFilesWithoutTexture(t *testing.T) {
	w := world.NewEmpty()
	dir := t.TempDir()
	if _, err := ExportFiles(filepath.Join(dir, "empty.obj"), w, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "empty.mtl")); !os.IsNotExist(err) {
		t.Error("mtl written without a texture")
	}
}

func TestExportFilesBadPath(t *testing.T) {
	w := world.NewEmpty()
	if _, err := ExportFiles(filepath.Join(t.TempDir(), "missing", "x.obj"), w, nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
