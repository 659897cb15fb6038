package edit

import (
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// pickOrder is the order in which faces are tried.
var pickOrder = [6]meshing.Face{
	meshing.FaceEast,
	meshing.FaceUp,
	meshing.FaceWest,
	meshing.FaceDown,
	meshing.FaceNorth,
	meshing.FaceSouth,
}

// facePlane returns the plane containing face f of the voxel at hit.
func facePlane(f meshing.Face, hit [3]int) physics.Plane {
	n := f.Normal()
	normal := mgl32.Vec3{float32(n[0]), float32(n[1]), float32(n[2])}
	var d float32
	switch f {
	case meshing.FaceEast:
		d = float32(hit[0] + 1)
	case meshing.FaceUp:
		d = float32(hit[1] + 1)
	case meshing.FaceWest:
		d = float32(-hit[0])
	case meshing.FaceDown:
		d = float32(-hit[1])
	case meshing.FaceNorth:
		d = float32(hit[2] + 1)
	case meshing.FaceSouth:
		d = float32(-hit[2])
	}
	return physics.Plane{Normal: normal, D: d}
}

// PickTargetFace finds the face of the voxel at hit that the ray enters
// through and returns the position of the voxel on the other side of it.
// Only faces pointing back toward the ray are considered.
func PickTargetFace(hit [3]int, origin, direction mgl32.Vec3) ([3]int, bool) {
	minX, minY, minZ := float32(hit[0]), float32(hit[1]), float32(hit[2])
	for _, f := range pickOrder {
		p := facePlane(f, hit)
		if direction.Dot(p.Normal) >= 0 {
			continue
		}
		pt, ok := physics.RayIntersectsPlane(origin, direction, p)
		if !ok {
			continue
		}
		if pt.X() >= minX && pt.X() <= minX+1 &&
			pt.Y() >= minY && pt.Y() <= minY+1 &&
			pt.Z() >= minZ && pt.Z() <= minZ+1 {
			n := f.Normal()
			return [3]int{hit[0] + n[0], hit[1] + n[1], hit[2] + n[2]}, true
		}
	}
	return [3]int{}, false
}

// PlaceAgainst places a voxel on the face of hit that the ray points at.
// It reports false when no face matched.
func (e *Editor) PlaceAgainst(hit [3]int, origin, direction mgl32.Vec3) (bool, error) {
	target, ok := PickTargetFace(hit, origin, direction)
	if !ok {
		return false, nil
	}
	return true, e.PlaceVoxel(target)
}

// Interact applies the frame's edit requests against the picked voxel.
// Nothing happens without a hit. Removal is handled before placement, and
// placement uses the face the ray enters through.
func (e *Editor) Interact(target physics.RaycastResult, origin, direction mgl32.Vec3, remove, place bool) error {
	if !target.Hit {
		return nil
	}
	h := target.HitPosition
	if remove {
		if err := e.RemoveVoxel(h[0], h[1], h[2]); err != nil {
			return err
		}
	}
	if place {
		if _, err := e.PlaceAgainst(h, origin, direction); err != nil {
			return err
		}
	}
	return nil
}
