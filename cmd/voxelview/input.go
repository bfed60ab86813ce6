package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *GameLoop) {
	loop.game.Input.Attach(window)

	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		loop.game.Player.HandleMouseMovement(xpos, ypos)
	})

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		loop.game.Renderer.UpdateViewport(width, height)
	})

	// keep drawing while the window is being resized
	window.SetRefreshCallback(func(*glfw.Window) {
		loop.RefreshRender()
	})
}
