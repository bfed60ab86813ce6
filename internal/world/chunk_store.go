package world

import (
	"sort"
)

// ChunkStore owns the loaded chunks, keyed by chunk coordinate.
type ChunkStore struct {
	chunks   map[ChunkCoord]*Chunk
	modCount uint64 // Increases on any chunk add/remove
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the chunk at coord, or nil if it is not loaded.
func (cs *ChunkStore) GetChunk(coord ChunkCoord) *Chunk {
	return cs.chunks[coord]
}

// LoadedChunk implements NeighborLookup.
func (cs *ChunkStore) LoadedChunk(coord ChunkCoord) (BlockReader, bool) {
	c, ok := cs.chunks[coord]
	if !ok {
		return nil, false
	}
	return c, true
}

// HasChunk checks if a chunk is loaded.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	_, exists := cs.chunks[coord]
	return exists
}

// AddChunk adds a generated chunk. It reports false if coord was taken.
func (cs *ChunkStore) AddChunk(coord ChunkCoord, chunk *Chunk) bool {
	if _, ok := cs.chunks[coord]; ok {
		return false
	}
	cs.chunks[coord] = chunk
	cs.modCount++
	return true
}

// RemoveChunk drops the chunk at coord and returns it, or nil if absent.
func (cs *ChunkStore) RemoveChunk(coord ChunkCoord) *Chunk {
	c, ok := cs.chunks[coord]
	if !ok {
		return nil
	}
	delete(cs.chunks, coord)
	cs.modCount++
	return c
}

// Len returns the number of loaded chunks.
func (cs *ChunkStore) Len() int {
	return len(cs.chunks)
}

// GetModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) GetModCount() uint64 {
	return cs.modCount
}

// Coords returns the loaded coordinates in X, Y, Z order.
func (cs *ChunkStore) Coords() []ChunkCoord {
	coords := make([]ChunkCoord, 0, len(cs.chunks))
	for coord := range cs.chunks {
		coords = append(coords, coord)
	}
	sortCoords(coords)
	return coords
}

// ForEach calls fn for every loaded chunk in unspecified order.
func (cs *ChunkStore) ForEach(fn func(coord ChunkCoord, c *Chunk)) {
	for coord, c := range cs.chunks {
		fn(coord, c)
	}
}

func sortCoords(coords []ChunkCoord) {
	sort.Slice(coords, func(i, j int) bool {
		a, b := coords[i], coords[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
}
