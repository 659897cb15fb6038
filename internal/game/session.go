package game

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-voxel/internal/config"
	"mini-voxel/internal/edit"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/graphics/renderables/crosshair"
	"mini-voxel/internal/graphics/renderables/overlay"
	"mini-voxel/internal/graphics/renderables/picker"
	"mini-voxel/internal/graphics/renderables/terrain"
	"mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/input"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

// Session is one running view of a built world.
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	Camera   *graphics.Camera
	World    *world.World
	Editor   *edit.Editor
	Uploader *graphics.GLUploader

	picking config.PickingConfig
	target  physics.RaycastResult
	stats   renderer.FrameStats
}

// NewSession sets up the camera and renderables for w. Segments must have
// been uploaded through u already.
func NewSession(window *glfw.Window, cfg *config.Config, w *world.World, u *graphics.GLUploader) (*Session, error) {
	width, height := window.GetSize()

	cam := graphics.NewCamera(width, height)
	cam.FOV = cfg.Camera.FOV
	cam.NearPlane = cfg.Camera.Near
	cam.Speed = cfg.Camera.Speed
	cam.MouseSpeed = cfg.Camera.MouseSpeed
	cam.Pitch = cfg.Camera.Pitch
	cam.Position[0], cam.Position[1], cam.Position[2] = cfg.Camera.Start[0], cfg.Camera.Start[1], cfg.Camera.Start[2]
	if cfg.Camera.SpawnAboveGround {
		cam.Position[1] = physics.GroundLevel(w, cam.Position[0], cam.Position[2]) + 2
	}

	r, err := renderer.NewRenderer(cam,
		terrain.NewTerrain(cfg.Assets.Atlas, cfg.Assets.GenerateAtlas),
		picker.NewPicker(),
		crosshair.NewCrosshair(),
		overlay.NewOverlay(cfg.Assets.Font, cfg.Assets.FontSize, width, height),
	)
	if err != nil {
		return nil, err
	}
	r.UpdateViewport(width, height)

	return &Session{
		Window:   window,
		Renderer: r,
		Camera:   cam,
		World:    w,
		Editor:   edit.NewEditor(w, u),
		Uploader: u,
		picking:  cfg.Picking,
	}, nil
}

// Cleanup releases every GPU resource the session owns.
func (s *Session) Cleanup() {
	s.World.ReleaseAll(s.Uploader)
	s.Renderer.Dispose()
}

// Update advances the camera, picks the target voxel and applies edits.
// It reports false once the session should end.
func (s *Session) Update(dt float64, im *input.Manager) bool {
	defer profiling.Track("game.Update")()

	if im.JustPressed(input.ActionQuit) {
		return false
	}
	applyToggles(im)

	dx, dy := im.MouseDelta()
	s.Camera.Look(dx, dy)
	forward, right, up := movement(im)
	s.Camera.Move(forward, right, up, dt)

	origin, dir := s.Camera.Position, s.Camera.Front()
	s.target = physics.RaycastFirstSolid(s.World, origin, dir, s.picking.Reach, s.picking.Step)

	remove := im.JustPressed(input.ActionRemoveVoxel) || im.JustPressed(input.ActionMouseLeft)
	place := im.JustPressed(input.ActionPlaceVoxel) || im.JustPressed(input.ActionMouseRight)
	if err := s.Editor.Interact(s.target, origin, dir, remove, place); err != nil {
		log.Printf("edit at %v: %v", s.target.HitPosition, err)
	}
	if remove || place {
		// the picked voxel may have changed
		s.target = physics.RaycastFirstSolid(s.World, origin, dir, s.picking.Reach, s.picking.Step)
	}
	return true
}

// Render draws the frame and keeps its stats for the title bar.
func (s *Session) Render(fps int, dt float64) renderer.FrameStats {
	s.stats = s.Renderer.Render(s.World, s.target, fps, dt)
	return s.stats
}

// Target is the voxel picked in the last update.
func (s *Session) Target() physics.RaycastResult {
	return s.target
}

// movement maps the held movement actions onto camera axes.
func movement(im *input.Manager) (forward, right, up float32) {
	axis := func(pos, neg input.Action) float32 {
		var v float32
		if im.IsActive(pos) {
			v++
		}
		if im.IsActive(neg) {
			v--
		}
		return v
	}
	return axis(input.ActionMoveForward, input.ActionMoveBackward),
		axis(input.ActionMoveRight, input.ActionMoveLeft),
		axis(input.ActionMoveUp, input.ActionMoveDown)
}

// applyToggles updates the render settings driven by keys. The orthographic
// view lasts only while its key is held.
func applyToggles(im *input.Manager) {
	config.SetOrthoDebug(im.IsActive(input.ActionOrthoDebug))
	if im.JustPressed(input.ActionToggleWireframe) {
		config.SetWireframe(!config.GetWireframe())
	}
}
