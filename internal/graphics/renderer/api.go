package renderer

import (
	"mini-voxel/internal/culling"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameStats is filled in while a frame renders.
type FrameStats struct {
	VisibleSegments int
	TotalSegments   int
	FPS             int
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	World  *world.World
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4

	// Frustum always comes from the perspective camera, also while the
	// orthographic debug view is drawn.
	Frustum culling.Frustum

	Target physics.RaycastResult
	Stats  *FrameStats
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
