package renderer

import (
	"fmt"

	"voxelworld/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer clears the frame and runs its renderables in order
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	ClearColor  [3]float32
}

// NewRenderer configures GL state and initialises the renderables
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}
	return &Renderer{
		renderables: rs,
		camera:      camera,
		ClearColor:  [3]float32{0.53, 0.81, 0.92},
	}, nil
}

// Render draws one frame
func (r *Renderer) Render(ctx RenderContext) {
	gl.ClearColor(r.ClearColor[0], r.ClearColor[1], r.ClearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx.Camera = r.camera
	ctx.Proj = r.camera.GetProjectionMatrix()
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the GL viewport and the camera aspect ratio
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
}
