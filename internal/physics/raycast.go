package physics

import (
	"math"

	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultStepSize      = 0.01
	DefaultReachDistance = 4.0
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition [3]int
	// AdjacentPosition is the last empty voxel sampled before the hit.
	AdjacentPosition [3]int
	Voxel            world.Voxel
	Distance         float32
	Hit              bool
}

func floorVec(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p.X()))),
		int(math.Floor(float64(p.Y()))),
		int(math.Floor(float64(p.Z()))),
	}
}

// RaycastFirstSolid marches from origin along direction in fixed steps and
// returns the first existing non-Air voxel. The point is advanced before
// each sample, so the voxel containing origin is only hit if the first step
// stays inside it. Positions outside the world are skipped.
func RaycastFirstSolid(w *world.World, origin, direction mgl32.Vec3, maxDistance, stepSize float32) RaycastResult {
	defer profiling.Track("physics.RaycastFirstSolid")()
	if stepSize <= 0 {
		return RaycastResult{}
	}
	steps := int(maxDistance/stepSize + 0.5)
	delta := direction.Mul(stepSize)

	point := origin
	last := floorVec(origin)
	for i := 1; i <= steps; i++ {
		point = point.Add(delta)
		pos := floorVec(point)
		v, ok := w.VoxelAt(pos[0], pos[1], pos[2])
		if ok && !v.IsAir() {
			return RaycastResult{
				HitPosition:      pos,
				AdjacentPosition: last,
				Voxel:            v,
				Distance:         float32(i) * stepSize,
				Hit:              true,
			}
		}
		last = pos
	}
	return RaycastResult{}
}

// Raycast uses the default pick step and reach.
func Raycast(w *world.World, origin, direction mgl32.Vec3) RaycastResult {
	return RaycastFirstSolid(w, origin, direction, DefaultReachDistance, DefaultStepSize)
}
