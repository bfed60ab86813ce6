package world

import (
	"voxelworld/internal/config"
	"voxelworld/internal/profiling"
)

// World owns the loaded chunks and routes block access, edits, streaming,
// visibility and ray queries to them. It is not safe for concurrent use.
type World struct {
	store    *ChunkStore
	gen      TerrainGenerator
	backend  RenderBackend
	streamer *ChunkStreamer

	// loaded chunks whose mesh must be rebuilt against a changed neighbour
	invalid map[ChunkCoord]struct{}
}

// New creates a world generating noise terrain from seed.
func New(seed int64) *World {
	return NewWithGenerator(NewGenerator(seed))
}

// NewDefault creates a world with the compiled-in seed.
func NewDefault() *World {
	return New(config.NoiseSeed)
}

// NewEmpty creates a world whose chunks are generated all air.
func NewEmpty() *World {
	return NewWithGenerator(nil)
}

// NewWithGenerator creates a world that fills chunks with gen. A nil
// generator leaves chunks empty.
func NewWithGenerator(gen TerrainGenerator) *World {
	return &World{
		store:    NewChunkStore(),
		gen:      gen,
		backend:  &NopBackend{},
		streamer: newDefaultStreamer(),
		invalid:  make(map[ChunkCoord]struct{}),
	}
}

// SetBackend attaches a renderer. Chunks already loaded are handed over to
// it; their old renderables are released from the previous backend.
func (w *World) SetBackend(b RenderBackend) {
	if b == nil {
		b = &NopBackend{}
	}
	old := w.backend
	w.backend = b
	for _, coord := range w.store.Coords() {
		c := w.store.GetChunk(coord)
		old.ReleaseRenderable(c.handle)
		w.attach(c)
	}
}

// SetStreamer replaces the streaming policy. Queued work is discarded.
func (w *World) SetStreamer(s *ChunkStreamer) {
	w.streamer = s
}

// Generator returns the terrain generator, nil for an empty world.
func (w *World) Generator() TerrainGenerator {
	return w.gen
}

// Chunk returns the loaded chunk at coord, or nil.
func (w *World) Chunk(coord ChunkCoord) *Chunk {
	return w.store.GetChunk(coord)
}

// IsLoaded reports whether the chunk at coord is loaded.
func (w *World) IsLoaded(coord ChunkCoord) bool {
	return w.store.HasChunk(coord)
}

// LoadedCount returns the number of loaded chunks.
func (w *World) LoadedCount() int {
	return w.store.Len()
}

// LoadedCoords returns the coordinates of all loaded chunks, sorted.
func (w *World) LoadedCoords() []ChunkCoord {
	return w.store.Coords()
}

// GetBlock returns the block at world coordinates. Unloaded chunks read as air.
func (w *World) GetBlock(x, y, z int) BlockType {
	c := w.store.GetChunk(ChunkCoordOf(x, y, z))
	if c == nil {
		return BlockTypeAir
	}
	lx, ly, lz := LocalOf(x, y, z)
	return c.GetBlock(lx, ly, lz)
}

// IsAir checks if the block at the specified world coordinates is air.
func (w *World) IsAir(x, y, z int) bool {
	return w.GetBlock(x, y, z) == BlockTypeAir
}

// SetBlock writes a block at world coordinates and rebuilds the meshes it
// affects: its own chunk and every loaded neighbour sharing a face the
// block sits on. It returns false, changing nothing, if the chunk is not
// loaded.
func (w *World) SetBlock(x, y, z int, blockType BlockType) bool {
	coord := ChunkCoordOf(x, y, z)
	c := w.store.GetChunk(coord)
	if c == nil {
		return false
	}

	lx, ly, lz := LocalOf(x, y, z)
	c.SetBlock(lx, ly, lz, blockType)
	w.refreshMesh(c)

	local := [3]int{lx, ly, lz}
	for axis := range 3 {
		var d [3]int
		switch local[axis] {
		case 0:
			d[axis] = -1
		case ChunkSize - 1:
			d[axis] = 1
		default:
			continue
		}
		if nb := w.store.GetChunk(coord.Add(d[0], d[1], d[2])); nb != nil {
			nb.MarkDirty()
			w.refreshMesh(nb)
		}
	}
	return true
}

// GenerateChunk builds the chunk at coord without loading it: terrain and
// decoration from the generator, then a mesh culled against the chunks
// loaded right now.
func (w *World) GenerateChunk(coord ChunkCoord) *Chunk {
	defer profiling.Track("world.GenerateChunk")()

	c := NewChunk(coord.X, coord.Y, coord.Z)
	if w.gen != nil {
		w.gen.PopulateChunk(c)
	}
	c.MarkDirty()
	c.GenerateMesh(w.store)
	return c
}

// LoadChunk generates and loads the chunk at coord, returning the loaded
// chunk. An already loaded chunk is returned unchanged.
func (w *World) LoadChunk(coord ChunkCoord) *Chunk {
	c := w.loadChunk(coord)
	w.rebuildInvalidated()
	return c
}

// loadChunk is LoadChunk without rebuilding the invalidated neighbours.
func (w *World) loadChunk(coord ChunkCoord) *Chunk {
	if c := w.store.GetChunk(coord); c != nil {
		return c
	}
	c := w.GenerateChunk(coord)
	w.store.AddChunk(coord, c)
	w.attach(c)
	w.invalidateNeighbors(coord)
	return c
}

// UnloadChunk evicts the chunk at coord and rebuilds the loaded neighbours
// that were culled against it. It reports whether a chunk was removed.
func (w *World) UnloadChunk(coord ChunkCoord) bool {
	if !w.unloadChunk(coord) {
		return false
	}
	w.rebuildInvalidated()
	return true
}

func (w *World) unloadChunk(coord ChunkCoord) bool {
	c := w.store.RemoveChunk(coord)
	if c == nil {
		return false
	}
	w.backend.ReleaseRenderable(c.handle)
	c.handle = NoRenderable
	delete(w.invalid, coord)
	w.invalidateNeighbors(coord)
	return true
}

// Close releases every renderable and drops all chunks and queued work.
func (w *World) Close() {
	w.store.ForEach(func(_ ChunkCoord, c *Chunk) {
		w.backend.ReleaseRenderable(c.handle)
		c.handle = NoRenderable
	})
	w.store = NewChunkStore()
	w.streamer.reset()
	clear(w.invalid)
}

// attach creates the chunk's renderable and uploads its current mesh.
func (w *World) attach(c *Chunk) {
	c.GenerateMesh(w.store)
	c.handle = w.backend.CreateRenderable(c.Coord())
	w.backend.UploadMesh(c.handle, c.Mesh())
	w.backend.SetVisible(c.handle, c.visible)
}

// refreshMesh rebuilds a dirty chunk and pushes the result to the backend.
func (w *World) refreshMesh(c *Chunk) {
	if c.GenerateMesh(w.store) && c.handle != NoRenderable {
		w.backend.UploadMesh(c.handle, c.Mesh())
	}
}

func (w *World) invalidateNeighbors(coord ChunkCoord) {
	for f := range NumFaces {
		o := faceOffsets[f]
		n := coord.Add(o[0], o[1], o[2])
		if nb := w.store.GetChunk(n); nb != nil {
			nb.MarkDirty()
			w.invalid[n] = struct{}{}
		}
	}
}

// rebuildInvalidated rebuilds every chunk invalidated by loads or evictions.
func (w *World) rebuildInvalidated() {
	if len(w.invalid) == 0 {
		return
	}
	coords := make([]ChunkCoord, 0, len(w.invalid))
	for coord := range w.invalid {
		coords = append(coords, coord)
	}
	sortCoords(coords)
	for _, coord := range coords {
		if c := w.store.GetChunk(coord); c != nil {
			w.refreshMesh(c)
		}
	}
	clear(w.invalid)
}
