package main

import (
	"fmt"
	"log"
	"time"

	"voxelworld/internal/graphics/atlas"
	renderer "voxelworld/internal/graphics/renderer"
	"voxelworld/internal/input"
	"voxelworld/internal/objexport"
	"voxelworld/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowTick is the tick duration above which the profile is logged.
const slowTick = 50 * time.Millisecond

// GameLoop manages the per-frame update and render
type GameLoop struct {
	window     *glfw.Window
	game       *GameComponents
	fpsLimiter *FPSLimiter

	showProfiling bool
	exports       int

	// Timing
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewGameLoop creates a new game loop over the initialized components
func NewGameLoop(window *glfw.Window, game *GameComponents, fpsLimit int) *GameLoop {
	now := time.Now()
	return &GameLoop{
		window:           window,
		game:             game,
		fpsLimiter:       NewFPSLimiter(fpsLimit),
		lastFPSCheckTime: now,
		lastTime:         now,
	}
}

// Run ticks until the window is asked to close
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		gl.tick()
	}
}

func (gl *GameLoop) tick() {
	profiling.ResetTick()
	now := time.Now()
	dt := min(now.Sub(gl.lastTime).Seconds(), 0.1)
	gl.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	gl.updateGameState(dt)
	gl.updateWorld()
	gl.renderFrame()

	func() { defer profiling.Track("glfw.SwapBuffers")(); gl.window.SwapBuffers() }()

	gl.game.Input.PostUpdate()
	gl.updateProfiling(now)
	gl.fpsLimiter.Wait()
}

func (gl *GameLoop) updateGameState(dt float64) {
	im := gl.game.Input
	p := gl.game.Player

	if im.JustPressed(input.ActionQuit) {
		gl.window.SetShouldClose(true)
		return
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		gl.game.Chunks.Backend.Wireframe = !gl.game.Chunks.Backend.Wireframe
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		gl.showProfiling = !gl.showProfiling
	}
	if slot := im.SelectedBlockSlot(); slot >= 0 && slot < len(gl.game.Palette) {
		p.Held = gl.game.Palette[slot]
		log.Printf("holding %v", p.Held)
	}
	if im.JustPressed(input.ActionExportOBJ) {
		gl.exportOBJ()
	}

	p.UpdatePosition(dt, im)
	p.HandleActions(im)
}

// updateWorld streams chunks around the camera and culls them against its
// view cone.
func (gl *GameLoop) updateWorld() {
	p := gl.game.Player
	w := gl.game.World
	eye := p.GetEyePosition()

	stats := w.StreamAround(eye)
	if stats.Generated > 0 && gl.showProfiling {
		log.Printf("stream: +%d -%d pending %d", stats.Generated, stats.Evicted, stats.Pending)
	}
	w.UpdateVisibility(eye, p.GetFrontVector(), gl.game.Renderer.GetCamera().HalfFOV())
}

func (gl *GameLoop) renderFrame() {
	defer profiling.Track("renderer.Render")()
	p := gl.game.Player
	gl.game.Renderer.Render(renderer.RenderContext{
		View:            p.GetViewMatrix(),
		HoveredBlock:    p.HoveredBlock,
		HasHoveredBlock: p.HasHoveredBlock,
	})
}

// RefreshRender redraws without advancing the simulation
func (gl *GameLoop) RefreshRender() {
	gl.renderFrame()
	gl.window.SwapBuffers()
}

func (gl *GameLoop) exportOBJ() {
	gl.exports++
	path := fmt.Sprintf("voxelview-%03d.obj", gl.exports)
	stats, err := objexport.ExportFiles(path, gl.game.World, atlas.Build(atlasTileSize))
	if err != nil {
		log.Printf("export failed: %v", err)
		return
	}
	log.Printf("exported %s (%d chunks, %d triangles)", path, stats.Objects, stats.Triangles)
}

func (gl *GameLoop) updateProfiling(start time.Time) {
	if d := time.Since(start); d > slowTick {
		log.Printf("slow tick %v: %s", d.Round(time.Millisecond), profiling.TopN(5))
	}

	gl.frames++
	if since := time.Since(gl.lastFPSCheckTime); since >= time.Second {
		if gl.showProfiling {
			log.Printf("fps %d, chunks %d loaded / %d drawn, pending %d",
				gl.frames, gl.game.World.LoadedCount(), gl.game.Chunks.Drawn, gl.game.World.PendingCount())
		}
		gl.frames = 0
		gl.lastFPSCheckTime = time.Now()
	}
}
