package physics

import (
	"math"

	"mini-voxel/internal/world"
)

// GroundLevel returns the y just above the highest solid voxel in the column
// containing (x, z). It returns 0 for empty columns and columns outside the
// world.
func GroundLevel(w *world.World, x, z float32) float32 {
	bx := int(math.Floor(float64(x)))
	bz := int(math.Floor(float64(z)))
	c, ok := w.ChunkOf(bx, bz)
	if !ok {
		return 0
	}
	lx, _, lz := world.LocalOf(bx, 0, bz)
	top := c.ColumnTop(lx, lz)
	if top < 0 {
		return 0
	}
	return float32(top + 1)
}
