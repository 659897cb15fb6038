package world

import "fmt"

const (
	// Chunk dimensions
	ChunkWidth  = 16
	ChunkHeight = 256

	// Render segment dimensions
	SegmentHeight = 16
	ChunkSplits   = ChunkHeight / SegmentHeight

	chunkVolume = ChunkWidth * ChunkWidth * ChunkHeight
)

// Chunk is a 16x256x16 column of voxels together with the render segments
// that cover it.
type Chunk struct {
	// Chunk-space origin (world x = StartX*ChunkWidth).
	StartX, StartZ int

	voxels   []Voxel
	Segments [ChunkSplits]Segment
}

// NewChunk allocates an all-Air chunk at the given chunk coordinates.
func NewChunk(chunkX, chunkZ int) *Chunk {
	return &Chunk{
		StartX: chunkX,
		StartZ: chunkZ,
		voxels: make([]Voxel, chunkVolume),
	}
}

// index flattens local coordinates in [x][z][y] order.
func index(x, y, z int) int {
	return x*ChunkHeight*ChunkWidth + z*ChunkHeight + y
}

// InBounds reports whether local coordinates address a voxel of a chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkWidth && z >= 0 && z < ChunkWidth && y >= 0 && y < ChunkHeight
}

func mustInBounds(x, y, z int) {
	if !InBounds(x, y, z) {
		panic(fmt.Sprintf("world: local coordinate (%d, %d, %d) out of chunk bounds", x, y, z))
	}
}

// Get returns the voxel at local coordinates. It panics on out-of-bounds
// coordinates.
func (c *Chunk) Get(x, y, z int) Voxel {
	mustInBounds(x, y, z)
	return c.voxels[index(x, y, z)]
}

// Set stores a voxel at local coordinates. It panics on out-of-bounds
// coordinates.
func (c *Chunk) Set(x, y, z int, v Voxel) {
	mustInBounds(x, y, z)
	c.voxels[index(x, y, z)] = v
}

// At returns a pointer to the stored voxel for in-place mutation.
func (c *Chunk) At(x, y, z int) *Voxel {
	mustInBounds(x, y, z)
	return &c.voxels[index(x, y, z)]
}

// Reset reallocates the voxel array as all Air. Generation starts here.
func (c *Chunk) Reset() {
	c.voxels = make([]Voxel, chunkVolume)
}

// ColumnTop returns the y of the topmost non-Air voxel in the column, or -1
// when the column is empty.
func (c *Chunk) ColumnTop(x, z int) int {
	mustInBounds(x, 0, z)
	base := index(x, 0, z)
	for y := ChunkHeight - 1; y >= 0; y-- {
		if !c.voxels[base+y].IsAir() {
			return y
		}
	}
	return -1
}

// WorldX converts a local x to a world x.
func (c *Chunk) WorldX(x int) int { return c.StartX*ChunkWidth + x }

// WorldZ converts a local z to a world z.
func (c *Chunk) WorldZ(z int) int { return c.StartZ*ChunkWidth + z }

// Segment returns the i-th render segment.
func (c *Chunk) Segment(i int) *Segment {
	if i < 0 || i >= ChunkSplits {
		panic(fmt.Sprintf("world: segment index %d out of range", i))
	}
	return &c.Segments[i]
}

// NonEmptySegments counts segments currently holding GPU geometry.
func (c *Chunk) NonEmptySegments() int {
	n := 0
	for i := range c.Segments {
		if c.Segments[i].HasGeometry() {
			n++
		}
	}
	return n
}
