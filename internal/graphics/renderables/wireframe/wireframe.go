package wireframe

import (
	"voxelworld/internal/graphics"
	renderer "voxelworld/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CubeEdges are the 12 edges of the unit cube [0,1]³ as line pairs.
var CubeEdges = []float32{
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 0, 1,
	1, 0, 1, 0, 0, 1,
	0, 0, 1, 0, 0, 0,

	0, 1, 0, 1, 1, 0,
	1, 1, 0, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 1, 0,

	0, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 1, 0,
	1, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1,
}

// Wireframe outlines the hovered block
type Wireframe struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewWireframe() *Wireframe {
	return &Wireframe{}
}

func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShaderFromSource(graphics.LineVertShader, graphics.LineFragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)
	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeEdges)*4, gl.Ptr(CubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return nil
}

func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !ctx.HasHoveredBlock {
		return
	}
	w.shader.Use()
	w.shader.SetMatrix4("proj", ctx.Proj)
	w.shader.SetMatrix4("view", ctx.View)

	// slightly enlarged around the block centre
	p := ctx.HoveredBlock
	model := mgl32.Translate3D(float32(p[0])-0.005, float32(p[1])-0.005, float32(p[2])-0.005).
		Mul4(mgl32.Scale3D(1.01, 1.01, 1.01))
	w.shader.SetMatrix4("model", model)
	w.shader.SetVector3("color", mgl32.Vec3{0, 0, 0})

	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(CubeEdges)/3))
	gl.BindVertexArray(0)
}

func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}
