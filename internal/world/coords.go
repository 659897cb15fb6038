package world

import "fmt"

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	if a < 0 {
		return (a+1)/b - 1
	}
	return a / b
}

// ChunkCoordOf maps world x/z to the owning chunk coordinates.
func ChunkCoordOf(worldX, worldZ int) (chunkX, chunkZ int) {
	return floorDiv(worldX, ChunkWidth), floorDiv(worldZ, ChunkWidth)
}

// LocalOf maps world coordinates to chunk-local coordinates. A result outside
// the chunk is a programming error and panics.
func LocalOf(worldX, worldY, worldZ int) (lx, ly, lz int) {
	cx, cz := ChunkCoordOf(worldX, worldZ)
	lx = worldX - cx*ChunkWidth
	lz = worldZ - cz*ChunkWidth
	ly = worldY
	if !InBounds(lx, ly, lz) {
		panic(fmt.Sprintf("world: (%d, %d, %d) has no local coordinate", worldX, worldY, worldZ))
	}
	return lx, ly, lz
}

// SegmentIndexOf returns the render segment covering row y.
func SegmentIndexOf(y int) int {
	return y / SegmentHeight
}

// WorldOrigin returns the world-space x/z of a chunk's (0, 0) column.
func WorldOrigin(chunkX, chunkZ int) (worldX, worldZ int) {
	return chunkX * ChunkWidth, chunkZ * ChunkWidth
}

// ChunkOf returns the chunk owning world x/z.
func (w *World) ChunkOf(worldX, worldZ int) (*Chunk, bool) {
	return w.ChunkAt(ChunkCoordOf(worldX, worldZ))
}

// VoxelAt returns the voxel at world coordinates. It reports false when the
// owning chunk is outside the world or y is outside [0, ChunkHeight).
func (w *World) VoxelAt(worldX, worldY, worldZ int) (Voxel, bool) {
	p, ok := w.VoxelPtr(worldX, worldY, worldZ)
	if !ok {
		return Air, false
	}
	return *p, true
}

// VoxelPtr is VoxelAt returning the stored voxel for in-place edits.
func (w *World) VoxelPtr(worldX, worldY, worldZ int) (*Voxel, bool) {
	if worldY < 0 || worldY >= ChunkHeight {
		return nil, false
	}
	c, ok := w.ChunkOf(worldX, worldZ)
	if !ok {
		return nil, false
	}
	lx, ly, lz := LocalOf(worldX, worldY, worldZ)
	return c.At(lx, ly, lz), true
}

// IsAir reports whether world coordinates hold Air. Positions outside the
// world are not Air.
func (w *World) IsAir(worldX, worldY, worldZ int) bool {
	v, ok := w.VoxelAt(worldX, worldY, worldZ)
	return ok && v.IsAir()
}

// SetVoxel writes a voxel at world coordinates. It reports false when the
// position is outside the world.
func (w *World) SetVoxel(worldX, worldY, worldZ int, v Voxel) bool {
	p, ok := w.VoxelPtr(worldX, worldY, worldZ)
	if !ok {
		return false
	}
	*p = v
	return true
}

// SegmentAt returns the chunk and segment index covering world coordinates.
func (w *World) SegmentAt(worldX, worldY, worldZ int) (*Chunk, int, bool) {
	if worldY < 0 || worldY >= ChunkHeight {
		return nil, 0, false
	}
	c, ok := w.ChunkOf(worldX, worldZ)
	if !ok {
		return nil, 0, false
	}
	return c, SegmentIndexOf(worldY), true
}
