package renderer

import (
	"voxelworld/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	View   mgl32.Mat4
	Proj   mgl32.Mat4

	HoveredBlock    [3]int
	HasHoveredBlock bool
}

// Renderable is one drawing feature with a GL lifecycle
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
