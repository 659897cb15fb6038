package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const planeEpsilon = 1e-6

func nearZero(f float32) bool {
	return math.Abs(float64(f)) < planeEpsilon
}

// Plane is n·p = D with a unit normal.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// RayIntersectsPlane returns where the ray meets the plane. It fails when the
// ray is parallel to the plane or the hit is at the origin itself. Hits
// behind the origin are returned; callers filter by facing.
func RayIntersectsPlane(origin, direction mgl32.Vec3, p Plane) (mgl32.Vec3, bool) {
	denom := direction.Dot(p.Normal)
	if nearZero(denom) {
		return mgl32.Vec3{}, false
	}
	center := p.Normal.Mul(p.D)
	t := center.Sub(origin).Dot(p.Normal) / denom
	if nearZero(t) {
		return mgl32.Vec3{}, false
	}
	return origin.Add(direction.Mul(t)), true
}
