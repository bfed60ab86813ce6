package world

import (
	"math"
	"math/rand"

	"voxelworld/internal/config"
)

// 2D gradient noise over a seeded permutation table.

const invSqrt2 = 0.7071067811865476

// Unit gradient vectors selected by the lattice hash.
var gradients2D = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{invSqrt2, invSqrt2}, {-invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}, {-invSqrt2, -invSqrt2},
}

// NoiseField is a deterministic gradient noise function. The permutation
// table is built once by NewNoiseField and never changes.
type NoiseField struct {
	seed int64
	// 256 entries followed by a copy, so perm[perm[x]+y] never wraps.
	perm [512]uint8
}

// NewNoiseField builds the permutation table from seed.
func NewNoiseField(seed int64) *NoiseField {
	n := &NoiseField{seed: seed}

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

// Seed returns the seed the table was built from.
func (n *NoiseField) Seed() int64 {
	return n.seed
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// gradDot hashes lattice corner (ix, iy) to a gradient and dots it with
// the offset (dx, dy) from that corner to the sample point.
func (n *NoiseField) gradDot(ix, iy int, dx, dy float64) float64 {
	h := n.perm[int(n.perm[ix&255])+(iy&255)] & 7
	g := gradients2D[h]
	return g[0]*dx + g[1]*dy
}

// Noise2D returns gradient noise at (x, y), roughly in [-1, 1].
func (n *NoiseField) Noise2D(x, y float64) float64 {
	x0f := math.Floor(x)
	y0f := math.Floor(y)
	x0 := int(x0f)
	y0 := int(y0f)
	fx := x - x0f
	fy := y - y0f

	sx := fade(fx)
	sy := fade(fy)

	n00 := n.gradDot(x0, y0, fx, fy)
	n10 := n.gradDot(x0+1, y0, fx-1, fy)
	n01 := n.gradDot(x0, y0+1, fx, fy-1)
	n11 := n.gradDot(x0+1, y0+1, fx-1, fy-1)

	return lerp(lerp(n00, n10, sx), lerp(n01, n11, sx), sy)
}

// LayeredNoise sums octaves of Noise2D, doubling frequency from baseScale
// and scaling amplitude by persistence each octave, and maps the result
// to [0, 1].
func (n *NoiseField) LayeredNoise(x, y float64, octaves int, persistence, baseScale float64) float64 {
	total := 0.0
	frequency := baseScale
	amplitude := 1.0
	norm := 0.0
	for range octaves {
		total += n.Noise2D(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if norm == 0 {
		return 0.5
	}
	return (total/norm + 1) / 2
}

// TerrainHeight returns the surface block height of world column (x, z).
func (n *NoiseField) TerrainHeight(worldX, worldZ, baseHeight, heightScale int) int {
	v := n.LayeredNoise(float64(worldX), float64(worldZ), config.NoiseOctaves, config.NoisePersistence, config.NoiseScale)
	return baseHeight + int(math.Floor(v*float64(heightScale)))
}
