package world

import "fmt"

// World is the fixed grid of chunks covering chunk coordinates
// [-Size, Size) on both horizontal axes.
type World struct {
	Size   int
	chunks []*Chunk
}

// New allocates a world of 2*size x 2*size empty chunks.
func New(size int) *World {
	if size <= 0 {
		panic(fmt.Sprintf("world: size must be positive, got %d", size))
	}
	side := 2 * size
	w := &World{
		Size:   size,
		chunks: make([]*Chunk, side*side),
	}
	for cx := -size; cx < size; cx++ {
		for cz := -size; cz < size; cz++ {
			w.chunks[w.slot(cx, cz)] = NewChunk(cx, cz)
		}
	}
	return w
}

func (w *World) slot(chunkX, chunkZ int) int {
	side := 2 * w.Size
	return (chunkX+w.Size)*side + (chunkZ + w.Size)
}

// Contains reports whether chunk coordinates fall inside the world.
func (w *World) Contains(chunkX, chunkZ int) bool {
	return chunkX >= -w.Size && chunkX < w.Size && chunkZ >= -w.Size && chunkZ < w.Size
}

// ChunkAt returns the chunk at chunk coordinates, or false outside the world.
func (w *World) ChunkAt(chunkX, chunkZ int) (*Chunk, bool) {
	if !w.Contains(chunkX, chunkZ) {
		return nil, false
	}
	return w.chunks[w.slot(chunkX, chunkZ)], true
}

// Chunks returns every chunk in x-major order.
func (w *World) Chunks() []*Chunk {
	return w.chunks
}

// BlockExtent is the world-space half-width in voxels.
func (w *World) BlockExtent() int {
	return w.Size * ChunkWidth
}

// SegmentStats returns the number of segments holding geometry.
func (w *World) SegmentStats() (nonEmpty int) {
	for _, c := range w.chunks {
		nonEmpty += c.NonEmptySegments()
	}
	return nonEmpty
}

// ReleaseAll frees the GPU geometry of every segment.
func (w *World) ReleaseAll(u Uploader) {
	for _, c := range w.chunks {
		for i := range c.Segments {
			c.Segments[i].Release(u)
		}
	}
}
