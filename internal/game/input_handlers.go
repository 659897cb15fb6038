package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers routes window events to the input manager and the
// renderer.
func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	im.Attach(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		// layout uses window coordinates, not framebuffer pixels
		winW, winH := w.GetSize()
		app.session.Renderer.UpdateViewport(winW, winH)
	})

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		app.session.Renderer.UpdateViewport(width, height)
	})

	// avoid a jump when the cursor comes back
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		im.ResetMouse()
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
