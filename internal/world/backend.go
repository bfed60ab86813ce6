package world

// RenderHandle identifies a backend-owned renderable object.
type RenderHandle uint32

// NoRenderable is the handle of a chunk that has no renderable.
const NoRenderable RenderHandle = 0

// RenderBackend receives chunk geometry and visibility. The world never
// draws; it only pushes mesh buffers and flags through this interface.
type RenderBackend interface {
	// CreateRenderable allocates an object for the chunk at coord.
	CreateRenderable(coord ChunkCoord) RenderHandle
	// UploadMesh replaces the object's geometry. An empty mesh draws nothing.
	UploadMesh(h RenderHandle, mesh *Mesh)
	// SetVisible toggles drawing of the object.
	SetVisible(h RenderHandle, visible bool)
	// ReleaseRenderable frees the object. The handle is not reused by the world.
	ReleaseRenderable(h RenderHandle)
}

// NopBackend discards everything; used when no renderer is attached.
type NopBackend struct {
	next RenderHandle
}

func (b *NopBackend) CreateRenderable(ChunkCoord) RenderHandle {
	b.next++
	return b.next
}

func (b *NopBackend) UploadMesh(RenderHandle, *Mesh) {}

func (b *NopBackend) SetVisible(RenderHandle, bool) {}

func (b *NopBackend) ReleaseRenderable(RenderHandle) {}
