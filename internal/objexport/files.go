package objexport

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"voxelworld/internal/world"
)

// AtlasMaterial is the material name used for exported chunks.
const AtlasMaterial = "atlas"

// ExportFiles writes the loaded chunks of w to objPath, plus a material
// library and the atlas texture next to it (same base name, .mtl and
// .png). A nil texture skips the material files.
func ExportFiles(objPath string, w *world.World, texture image.Image) (Stats, error) {
	base := strings.TrimSuffix(objPath, filepath.Ext(objPath))
	mtlPath := base + ".mtl"
	pngPath := base + ".png"

	var opts Options
	if texture != nil {
		if err := writeFile(pngPath, func(f *os.File) error { return png.Encode(f, texture) }); err != nil {
			return Stats{}, err
		}
		if err := writeFile(mtlPath, func(f *os.File) error {
			return WriteMTL(f, AtlasMaterial, filepath.Base(pngPath))
		}); err != nil {
			return Stats{}, err
		}
		opts = Options{MaterialLib: filepath.Base(mtlPath), Material: AtlasMaterial}
	}

	var stats Stats
	err := writeFile(objPath, func(f *os.File) error {
		var err error
		stats, err = WriteWorld(f, w, opts)
		return err
	})
	return stats, err
}

func writeFile(path string, fill func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
