package graphics

import (
	"image"
	"log"

	"voxelworld/internal/profiling"
	"voxelworld/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// floats per vertex: position xyz, atlas uv
const vertexStride = 5

var _ world.RenderBackend = (*GLBackend)(nil)

// chunkMesh holds the GL objects of one chunk renderable.
type chunkMesh struct {
	origin     mgl32.Vec3
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	visible    bool
}

// GLBackend draws chunk meshes with OpenGL. All methods must be called on
// the thread owning the GL context.
type GLBackend struct {
	shader  *Shader
	texture uint32
	meshes  map[world.RenderHandle]*chunkMesh
	next    world.RenderHandle

	scratch []float32

	FogColor  mgl32.Vec3
	FogEnd    float32
	Wireframe bool
}

// NewGLBackend compiles the chunk shader and uploads the atlas.
func NewGLBackend(atlas *image.RGBA) (*GLBackend, error) {
	shader, err := NewShaderFromSource(ChunkVertShader, ChunkFragShader)
	if err != nil {
		return nil, err
	}
	return &GLBackend{
		shader:   shader,
		texture:  UploadTexture(atlas),
		meshes:   make(map[world.RenderHandle]*chunkMesh),
		FogColor: mgl32.Vec3{0.53, 0.81, 0.92},
		FogEnd:   float32(3 * world.ChunkSize),
	}, nil
}

func glCheckError(label string) {
	if err := gl.GetError(); err != gl.NO_ERROR {
		log.Printf("gl error %s: 0x%x", label, err)
	}
}

// CreateRenderable allocates an empty renderable for a chunk.
func (b *GLBackend) CreateRenderable(coord world.ChunkCoord) world.RenderHandle {
	b.next++
	x, y, z := coord.Origin()
	b.meshes[b.next] = &chunkMesh{
		origin:  mgl32.Vec3{float32(x), float32(y), float32(z)},
		visible: true,
	}
	return b.next
}

// UploadMesh replaces the renderable's buffers with the mesh geometry.
func (b *GLBackend) UploadMesh(h world.RenderHandle, mesh *world.Mesh) {
	m := b.meshes[h]
	if m == nil {
		return
	}
	defer profiling.Track("graphics.UploadMesh")()

	m.indexCount = int32(len(mesh.Indices))
	if m.indexCount == 0 {
		return
	}

	if m.vao == 0 {
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.GenBuffers(1, &m.ebo)

		gl.BindVertexArray(m.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride*4, 0)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride*4, 3*4)
	} else {
		gl.BindVertexArray(m.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	}

	b.scratch = b.scratch[:0]
	for i, v := range mesh.Vertices {
		uv := mesh.UVs[i]
		b.scratch = append(b.scratch, v.X(), v.Y(), v.Z(), uv.X(), uv.Y())
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(b.scratch)*4, gl.Ptr(b.scratch), gl.STATIC_DRAW)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
	glCheckError("UploadMesh")
}

// SetVisible toggles drawing of a renderable.
func (b *GLBackend) SetVisible(h world.RenderHandle, visible bool) {
	if m := b.meshes[h]; m != nil {
		m.visible = visible
	}
}

// ReleaseRenderable deletes the renderable's GL objects.
func (b *GLBackend) ReleaseRenderable(h world.RenderHandle) {
	m := b.meshes[h]
	if m == nil {
		return
	}
	deleteMesh(m)
	delete(b.meshes, h)
}

func deleteMesh(m *chunkMesh) {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
}

// Draw renders every visible, non-empty renderable and returns how many
// were drawn.
func (b *GLBackend) Draw(view, proj mgl32.Mat4) int {
	defer profiling.Track("graphics.Draw")()

	if b.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	b.shader.Use()
	b.shader.SetMatrix4("proj", proj)
	b.shader.SetMatrix4("view", view)
	b.shader.SetVector3("fogColor", b.FogColor)
	b.shader.SetFloat("fogEnd", b.FogEnd)
	b.shader.SetInt("atlas", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)

	drawn := 0
	for _, m := range b.meshes {
		if !m.visible || m.indexCount == 0 {
			continue
		}
		b.shader.SetVector3("chunkOrigin", m.origin)
		gl.BindVertexArray(m.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
		drawn++
	}
	gl.BindVertexArray(0)
	return drawn
}

// Len returns the number of live renderables.
func (b *GLBackend) Len() int {
	return len(b.meshes)
}

// Dispose frees every GL object owned by the backend.
func (b *GLBackend) Dispose() {
	for h, m := range b.meshes {
		deleteMesh(m)
		delete(b.meshes, h)
	}
	if b.texture != 0 {
		gl.DeleteTextures(1, &b.texture)
		b.texture = 0
	}
	b.shader.Delete()
}
