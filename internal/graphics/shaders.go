package graphics

import _ "embed"

// GLSL sources compiled into the binary.
var (
	//go:embed shaders/chunk.vert
	ChunkVertShader string
	//go:embed shaders/chunk.frag
	ChunkFragShader string
	//go:embed shaders/line.vert
	LineVertShader string
	//go:embed shaders/line.frag
	LineFragShader string
	//go:embed shaders/crosshair.vert
	CrosshairVertShader string
	//go:embed shaders/crosshair.frag
	CrosshairFragShader string
)
