package chunks

import (
	"image"

	"voxelworld/internal/graphics"
	renderer "voxelworld/internal/graphics/renderer"
)

// Chunks draws the world's chunk meshes through a GL backend. The backend
// is created in Init, after the GL context exists.
type Chunks struct {
	atlas   *image.RGBA
	Backend *graphics.GLBackend
	Drawn   int
}

// NewChunks creates the renderable for the given atlas image
func NewChunks(atlas *image.RGBA) *Chunks {
	return &Chunks{atlas: atlas}
}

func (c *Chunks) Init() error {
	b, err := graphics.NewGLBackend(c.atlas)
	if err != nil {
		return err
	}
	c.Backend = b
	return nil
}

func (c *Chunks) Render(ctx renderer.RenderContext) {
	c.Drawn = c.Backend.Draw(ctx.View, ctx.Proj)
}

func (c *Chunks) Dispose() {
	if c.Backend != nil {
		c.Backend.Dispose()
	}
}
