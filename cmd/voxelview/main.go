// Command voxelview opens a window onto the streamed voxel world with a
// flying camera and block picking.
package main

import (
	"flag"
	"log"
	"runtime"

	"voxelworld/internal/config"
	"voxelworld/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	settingsPath := flag.String("config", "voxelview.yaml", "viewer settings file (YAML, optional)")
	seed := flag.Int64("seed", config.NoiseSeed, "terrain seed")
	flag.Parse()

	settings, err := config.LoadViewerSettings(*settingsPath)
	if err != nil {
		log.Fatalf("voxelview: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("voxelview: glfw init: %v", err)
	}

	window, err := setupWindow(settings)
	if err != nil {
		glfw.Terminate()
		log.Fatalf("voxelview: %v", err)
	}

	game, err := setupGame(settings, *seed)
	if err != nil {
		glfw.Terminate()
		log.Fatalf("voxelview: %v", err)
	}

	// runs on Ctrl-C as well as on a normal exit
	closer.Bind(func() {
		log.Printf("voxelview: exit, last tick: %s", profiling.TopN(5))
	})

	fpsLimit := 0
	if !settings.VSync {
		fpsLimit = settings.FPSLimit
	}
	loop := NewGameLoop(window, game, fpsLimit)
	setupInputHandlers(window, loop)
	loop.Run()

	log.Printf("voxelview: %d chunks loaded", game.World.LoadedCount())
	game.Dispose()
	glfw.Terminate()
	closer.Close()
}
