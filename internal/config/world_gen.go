package config

// Streaming
const (
	// HorizontalRadius is the streaming radius in chunks along X and Z.
	HorizontalRadius = 3
	// VerticalRadius is the streaming radius in chunks along Y.
	VerticalRadius = 2
	// ChunksPerCall caps chunk generation per streaming step once the
	// initial area is loaded.
	ChunksPerCall = 2
)

// Terrain
const (
	BaseHeight  = 32
	HeightScale = 16
	// DirtDepth is the number of dirt blocks under the grass surface.
	DirtDepth = 3
)

// Noise
const (
	NoiseOctaves     = 4
	NoisePersistence = 0.5
	NoiseScale       = 0.02
	NoiseSeed        = 42
)

// Trees
const (
	TreeAttempts = 3
	TreeChance   = 0.4
	// TreeEdgeMargin keeps trunks far enough from the chunk edge that the
	// canopy never leaves the chunk.
	TreeEdgeMargin = 2
	TrunkMinHeight = 4
	TrunkMaxHeight = 6
	LeafRadius     = 2
)

// Visibility
const (
	// NearDistanceChunks is the distance, in chunks, under which a chunk is
	// always visible regardless of view angle.
	NearDistanceChunks = 2
	DefaultHalfFOVDeg  = 60.0
)
