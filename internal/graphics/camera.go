package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	pitchMin = -math.Pi / 2
	pitchMax = math.Pi/2 - 0.2
)

// Camera is a free-fly camera. Yaw 0 looks down +z; positive pitch looks up.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	AspectRatio float32
	FOV         float32 // degrees
	NearPlane   float32
	FarPlane    float32

	Speed      float32 // units per second
	MouseSpeed float32 // radians per pixel
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{-5, 10, 0},
		Pitch:       -0.45,
		AspectRatio: float32(width) / float32(height),
		FOV:         90.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Speed:       4.0,
		MouseSpeed:  0.005,
	}
}

// SetViewport updates the aspect ratio after a resize.
func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Front is the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.Yaw))
	sp, cp := math.Sincos(float64(c.Pitch))
	return mgl32.Vec3{float32(cp * sy), float32(sp), float32(cp * cy)}
}

// Right is horizontal and perpendicular to Front.
func (c *Camera) Right() mgl32.Vec3 {
	s, co := math.Sincos(float64(c.Yaw) - math.Pi/2)
	return mgl32.Vec3{float32(s), 0, float32(co)}
}

func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Front())
}

// Look turns the camera by a cursor delta in pixels. Pitch is clamped just
// short of straight up so the view basis never degenerates.
func (c *Camera) Look(dx, dy float64) {
	c.Yaw -= c.MouseSpeed * float32(dx)
	c.Pitch -= c.MouseSpeed * float32(dy)
	c.Pitch = mgl32.Clamp(c.Pitch, pitchMin, pitchMax)
}

// Move translates the camera along its own axes. forward and right are in
// [-1, 1]; up moves along world y.
func (c *Camera) Move(forward, right, up float32, dt float64) {
	step := c.Speed * float32(dt)
	c.Position = c.Position.
		Add(c.Front().Mul(forward * step)).
		Add(c.Right().Mul(right * step)).
		Add(mgl32.Vec3{0, up * step, 0})
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), c.Up())
}

// OrthoDebugMatrices returns a top-down orthographic view of the world
// around the origin, used to inspect culling from above.
func (c *Camera) OrthoDebugMatrices() (proj, view mgl32.Mat4) {
	const half = 256
	h := half / c.AspectRatio
	proj = mgl32.Ortho(-half, half, -h, h, -200, 200)
	view = mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0})
	return proj, view
}
