package game

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-voxel/internal/config"
	"mini-voxel/internal/input"
	"mini-voxel/internal/profiling"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// App drives the frame loop of a session.
type App struct {
	window       *glfw.Window
	inputManager *input.Manager
	session      *Session
	title        string

	fpsLimiter *FPSLimiter
	fpsCounter *FPSCounter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *input.Manager, s *Session, title string) *App {
	now := time.Now()
	a := &App{
		window:       window,
		inputManager: im,
		session:      s,
		title:        title,
		fpsLimiter:   NewFPSLimiter(),
		fpsCounter:   NewFPSCounter(now),
		lastTime:     now,
	}
	SetupInputHandlers(a)
	return a
}

// Run ticks until the window is closed or the session quits.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	glfw.PollEvents()

	if !a.session.Update(dt, a.inputManager) {
		a.window.SetShouldClose(true)
	}
	stats := a.session.Render(a.fpsCounter.FPS(), dt)

	a.window.SwapBuffers()

	if d := time.Since(start); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	if a.fpsCounter.Frame(time.Now()) && config.GetTitleStats() {
		a.window.SetTitle(fmt.Sprintf("%s | %d fps | %d/%d segments",
			a.title, a.fpsCounter.FPS(), stats.VisibleSegments, stats.TotalSegments))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

// RefreshRender repaints during a live resize.
func (a *App) RefreshRender() {
	a.session.Render(a.fpsCounter.FPS(), 0)
	a.window.SwapBuffers()
}
