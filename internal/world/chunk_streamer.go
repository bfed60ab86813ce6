package world

import (
	"sort"

	"voxelworld/internal/config"
	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkStreamer holds the pending-load queue and the focus bookkeeping used
// by World.StreamAround. Generation itself runs on the caller, capped per
// call once the initial area is loaded.
type ChunkStreamer struct {
	queue   []ChunkCoord
	pending map[ChunkCoord]struct{}

	maxJobsPerCall int
	horizontal     int
	vertical       int

	initialLoadDone bool
	hasFocus        bool
	lastFocus       ChunkCoord
}

// NewChunkStreamer creates a streamer with the given box radii (in chunks)
// and per-call generation cap.
func NewChunkStreamer(horizontal, vertical, maxJobsPerCall int) *ChunkStreamer {
	return &ChunkStreamer{
		pending:        make(map[ChunkCoord]struct{}),
		maxJobsPerCall: max(maxJobsPerCall, 1),
		horizontal:     horizontal,
		vertical:       vertical,
	}
}

func newDefaultStreamer() *ChunkStreamer {
	return NewChunkStreamer(config.HorizontalRadius, config.VerticalRadius, config.ChunksPerCall)
}

// Pending returns the number of queued coordinates.
func (cs *ChunkStreamer) Pending() int {
	return len(cs.queue)
}

// IsQueued reports whether coord is waiting to be generated.
func (cs *ChunkStreamer) IsQueued(coord ChunkCoord) bool {
	_, ok := cs.pending[coord]
	return ok
}

func (cs *ChunkStreamer) enqueue(coord ChunkCoord) bool {
	if _, ok := cs.pending[coord]; ok {
		return false
	}
	cs.pending[coord] = struct{}{}
	cs.queue = append(cs.queue, coord)
	return true
}

func (cs *ChunkStreamer) pop() ChunkCoord {
	coord := cs.queue[0]
	cs.queue = cs.queue[1:]
	delete(cs.pending, coord)
	return coord
}

// prune drops queued coordinates that are no longer required.
func (cs *ChunkStreamer) prune(required map[ChunkCoord]struct{}) {
	kept := cs.queue[:0]
	for _, coord := range cs.queue {
		if _, ok := required[coord]; ok {
			kept = append(kept, coord)
		} else {
			delete(cs.pending, coord)
		}
	}
	cs.queue = kept
}

func (cs *ChunkStreamer) reset() {
	cs.queue = nil
	clear(cs.pending)
	cs.initialLoadDone = false
	cs.hasFocus = false
}

// RequiredChunks returns every coordinate of the box around center, nearest
// first.
func (cs *ChunkStreamer) RequiredChunks(center ChunkCoord) []ChunkCoord {
	h, v := cs.horizontal, cs.vertical
	coords := make([]ChunkCoord, 0, (2*h+1)*(2*h+1)*(2*v+1))
	for dx := -h; dx <= h; dx++ {
		for dy := -v; dy <= v; dy++ {
			for dz := -h; dz <= h; dz++ {
				coords = append(coords, center.Add(dx, dy, dz))
			}
		}
	}
	dist := func(c ChunkCoord) int {
		dx, dy, dz := c.X-center.X, c.Y-center.Y, c.Z-center.Z
		return dx*dx + dy*dy + dz*dz
	}
	sort.SliceStable(coords, func(i, j int) bool {
		return dist(coords[i]) < dist(coords[j])
	})
	return coords
}

// StreamStats reports the work done by one StreamAround call.
type StreamStats struct {
	Evicted   int
	Queued    int
	Generated int
	Pending   int
}

// StreamAround keeps the box of chunks around focus loaded. Chunks outside
// the box are evicted first, then missing ones are queued. The first call
// generates the whole queue; later calls generate at most the per-call cap.
// Nothing happens if the focus chunk is unchanged and the box is complete.
func (w *World) StreamAround(focus mgl32.Vec3) StreamStats {
	defer profiling.Track("world.StreamAround")()

	s := w.streamer
	center := ChunkCoordAt(focus)
	changed := !s.hasFocus || center != s.lastFocus
	s.lastFocus = center
	s.hasFocus = true

	required := s.RequiredChunks(center)

	if !changed && w.store.Len() > 0 && len(s.queue) == 0 && w.allLoaded(required) {
		return StreamStats{}
	}

	var stats StreamStats
	requiredSet := make(map[ChunkCoord]struct{}, len(required))
	for _, coord := range required {
		requiredSet[coord] = struct{}{}
	}

	for _, coord := range w.store.Coords() {
		if _, ok := requiredSet[coord]; !ok {
			w.unloadChunk(coord)
			stats.Evicted++
		}
	}

	s.prune(requiredSet)
	for _, coord := range required {
		if !w.store.HasChunk(coord) && s.enqueue(coord) {
			stats.Queued++
		}
	}

	limit := s.maxJobsPerCall
	if !s.initialLoadDone {
		limit = len(s.queue)
	}
	for stats.Generated < limit && len(s.queue) > 0 {
		coord := s.pop()
		if w.store.HasChunk(coord) {
			continue
		}
		w.loadChunk(coord)
		stats.Generated++
	}
	s.initialLoadDone = true

	w.rebuildInvalidated()
	stats.Pending = len(s.queue)
	return stats
}

func (w *World) allLoaded(coords []ChunkCoord) bool {
	for _, coord := range coords {
		if !w.store.HasChunk(coord) {
			return false
		}
	}
	return true
}

// FocusChunk returns the focus chunk of the last StreamAround call.
func (w *World) FocusChunk() (ChunkCoord, bool) {
	return w.streamer.lastFocus, w.streamer.hasFocus
}

// PendingCount returns the number of chunks waiting to be generated.
func (w *World) PendingCount() int {
	return w.streamer.Pending()
}
