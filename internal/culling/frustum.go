// Package culling decides which render segments intersect the view frustum.
package culling

import (
	"math"

	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane indices within a Frustum.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneTop
	PlaneBottom
	PlaneNear
	PlaneFar
)

// Plane is a·x + b·y + c·z + d = 0 with (a, b, c) pointing into the frustum.
type Plane struct {
	A, B, C, D float32
}

// Distance is the signed distance from p to the plane; positive is inside.
func (p Plane) Distance(v mgl32.Vec3) float32 {
	return p.A*v.X() + p.B*v.Y() + p.C*v.Z() + p.D
}

// Frustum holds six normalized planes.
type Frustum struct {
	Planes [6]Plane
}

// Compute extracts the frustum of a combined projection*view matrix.
func Compute(viewProjection mgl32.Mat4) Frustum {
	clip := viewProjection
	// Matrix is in column-major order in mgl32
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	var f Frustum
	// Left  = m3 + m0
	f.Planes[PlaneLeft] = normalizePlane(Plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03})
	// Right = m3 - m0
	f.Planes[PlaneRight] = normalizePlane(Plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03})
	// Top = m3 - m1
	f.Planes[PlaneTop] = normalizePlane(Plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13})
	// Bottom = m3 + m1
	f.Planes[PlaneBottom] = normalizePlane(Plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13})
	// Near = m3 + m2
	f.Planes[PlaneNear] = normalizePlane(Plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23})
	// Far = m3 - m2
	f.Planes[PlaneFar] = normalizePlane(Plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23})
	return f
}

func normalizePlane(p Plane) Plane {
	l := float32(math.Sqrt(float64(p.A*p.A + p.B*p.B + p.C*p.C)))
	if l == 0 {
		return p
	}
	return Plane{p.A / l, p.B / l, p.C / l, p.D / l}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// BoxVisible tests an axis-aligned cube given by its center and half extent.
// The cube is rejected only when it lies entirely behind some plane, so a box
// touching a plane counts as visible.
func (f *Frustum) BoxVisible(center mgl32.Vec3, halfExtent float32) bool {
	for i := range f.Planes {
		p := &f.Planes[i]
		dist := p.Distance(center)
		maxAbs := (abs32(p.A) + abs32(p.B) + abs32(p.C)) * halfExtent
		if dist < -maxAbs {
			return false
		}
	}
	return true
}

// SegmentBounds returns the bounding cube of a render segment in world space.
func SegmentBounds(chunkX, chunkZ, segment int) (mgl32.Vec3, float32) {
	const half = world.ChunkWidth / 2
	ox, oz := world.WorldOrigin(chunkX, chunkZ)
	return mgl32.Vec3{
		float32(ox + half),
		float32(segment*world.SegmentHeight + half),
		float32(oz + half),
	}, half
}

// SegmentVisible is BoxVisible over a segment's bounding cube.
func (f *Frustum) SegmentVisible(chunkX, chunkZ, segment int) bool {
	c, h := SegmentBounds(chunkX, chunkZ, segment)
	return f.BoxVisible(c, h)
}

// SegmentRef names one render segment of a chunk.
type SegmentRef struct {
	Chunk   *world.Chunk
	Segment int
}

// CollectVisible appends every segment holding geometry that passes the
// frustum test to dst. total counts all segments holding geometry.
func (f *Frustum) CollectVisible(w *world.World, dst []SegmentRef) (visible []SegmentRef, total int) {
	visible = dst[:0]
	for _, c := range w.Chunks() {
		for i := range c.Segments {
			if !c.Segments[i].HasGeometry() {
				continue
			}
			total++
			if f.SegmentVisible(c.StartX, c.StartZ, i) {
				visible = append(visible, SegmentRef{Chunk: c, Segment: i})
			}
		}
	}
	return visible, total
}
