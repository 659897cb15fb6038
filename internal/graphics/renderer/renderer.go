package renderer

import (
	"mini-voxel/internal/config"
	"mini-voxel/internal/culling"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/metrics"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	stats       FrameStats
}

// NewRenderer configures GL state and initialises every renderable in order.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		renderables: rs,
		camera:      camera,
	}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			// dispose what was already initialised
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}
	return r, nil
}

// Render draws one frame of w as seen from the camera.
func (r *Renderer) Render(w *world.World, target physics.RaycastResult, fps int, dt float64) FrameStats {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := r.camera.GetViewMatrix()
	proj := r.camera.GetProjectionMatrix()
	frustum := culling.Compute(proj.Mul4(view))
	if config.GetOrthoDebug() {
		proj, view = r.camera.OrthoDebugMatrices()
	}

	r.stats = FrameStats{FPS: fps}
	ctx := RenderContext{
		Camera:  r.camera,
		World:   w,
		DT:      dt,
		View:    view,
		Proj:    proj,
		Frustum: frustum,
		Target:  target,
		Stats:   &r.stats,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}

	metrics.VisibleSegments.Set(float64(r.stats.VisibleSegments))
	return r.stats
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera and every renderable after a resize.
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}
