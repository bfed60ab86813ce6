package main

import (
	"fmt"

	"voxelworld/internal/config"
	"voxelworld/internal/graphics"
	"voxelworld/internal/graphics/atlas"
	"voxelworld/internal/graphics/renderables/chunks"
	"voxelworld/internal/graphics/renderables/crosshair"
	"voxelworld/internal/graphics/renderables/wireframe"
	renderer "voxelworld/internal/graphics/renderer"
	"voxelworld/internal/input"
	"voxelworld/internal/player"
	"voxelworld/internal/registry"
	"voxelworld/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const atlasTileSize = 16

func setupWindow(s config.ViewerSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(s.WindowWidth, s.WindowHeight, "voxelview", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if s.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

// GameComponents holds all the initialized viewer components
type GameComponents struct {
	Renderer *renderer.Renderer
	Chunks   *chunks.Chunks
	World    *world.World
	Player   *player.Player
	Input    *input.InputManager
	Palette  []world.BlockType
}

func setupGame(s config.ViewerSettings, seed int64) (*GameComponents, error) {
	held, err := registry.LookupPlaceable(s.PlaceBlock)
	if err != nil {
		return nil, fmt.Errorf("place_block: %w", err)
	}

	chunkRenderer := chunks.NewChunks(atlas.Build(atlasTileSize))
	camera := graphics.NewCamera(s.WindowWidth, s.WindowHeight, s.FOV)
	r, err := renderer.NewRenderer(
		camera,
		chunkRenderer,
		wireframe.NewWireframe(),
		crosshair.NewCrosshair(),
	)
	if err != nil {
		return nil, err
	}

	gameWorld := world.New(seed)
	gameWorld.SetBackend(chunkRenderer.Backend)

	// spawn above the terrain surface at the origin
	surface := gameWorld.Generator().HeightAt(0, 0)
	p := player.New(gameWorld)
	p.Position = mgl32.Vec3{0.5, float32(surface + 3), 0.5}
	p.Sensitivity = float64(s.MouseSensitivity)
	p.FlySpeed = s.FlySpeed
	p.Reach = s.Reach
	p.Held = held

	var palette []world.BlockType
	for _, name := range registry.Names() {
		if bt, err := registry.LookupPlaceable(name); err == nil {
			palette = append(palette, bt)
		}
	}

	gameWorld.StreamAround(p.GetEyePosition())

	return &GameComponents{
		Renderer: r,
		Chunks:   chunkRenderer,
		World:    gameWorld,
		Player:   p,
		Input:    input.NewInputManager(),
		Palette:  palette,
	}, nil
}

// Dispose releases the world's renderables and then the GL resources.
func (g *GameComponents) Dispose() {
	g.World.Close()
	g.Renderer.Dispose()
}
