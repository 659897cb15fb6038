// Package edit applies voxel edits and keeps the affected geometry current.
package edit

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"mini-voxel/internal/meshing"
	"mini-voxel/internal/metrics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

// ErrOutOfBounds is returned for edits on the outer ring of the world or
// outside its vertical range.
var ErrOutOfBounds = errors.New("edit: position at world edge boundary")

// PlaceMaterial is what PlaceVoxel puts down.
const PlaceMaterial = world.MaterialBedrock

// Editor serializes edits to one world. Every edit holds the lock until the
// affected segments have been re-uploaded.
type Editor struct {
	mu       sync.Mutex
	world    *world.World
	uploader world.Uploader
}

func NewEditor(w *world.World, u world.Uploader) *Editor {
	return &Editor{world: w, uploader: u}
}

// checkBounds rejects the outermost columns on the negative x and z sides,
// anything outside the world, the bottom row and anything above the ceiling.
func (e *Editor) checkBounds(x, y, z int) error {
	ext := e.world.BlockExtent()
	if x <= -ext || x >= ext ||
		z <= -ext || z >= ext ||
		y <= 0 || y >= world.ChunkHeight {
		return fmt.Errorf("%w: (%d, %d, %d)", ErrOutOfBounds, x, y, z)
	}
	return nil
}

// RemoveVoxel turns the voxel at world coordinates into Air and re-meshes
// around it.
func (e *Editor) RemoveVoxel(x, y, z int) error {
	return e.apply("remove", x, y, z, world.Air)
}

// PlaceVoxel writes PlaceMaterial at pos and re-meshes around it.
func (e *Editor) PlaceVoxel(pos [3]int) error {
	return e.apply("place", pos[0], pos[1], pos[2], world.NewVoxel(PlaceMaterial))
}

func (e *Editor) apply(op string, x, y, z int, v world.Voxel) error {
	defer profiling.Track("edit." + op)()
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkBounds(x, y, z); err != nil {
		log.Printf("cannot %s voxel: %v", op, err)
		metrics.Edits.WithLabelValues(op, "rejected").Inc()
		return err
	}
	p, ok := e.world.VoxelPtr(x, y, z)
	if !ok {
		// unreachable for positions inside the bounds check
		metrics.Edits.WithLabelValues(op, "rejected").Inc()
		return fmt.Errorf("%w: (%d, %d, %d)", ErrOutOfBounds, x, y, z)
	}
	*p = p.WithMaterial(v.Material())
	e.remeshAround(x, y, z)
	metrics.Edits.WithLabelValues(op, "applied").Inc()
	return nil
}

// RemeshAround rebuilds the segment owning (x, y, z) and every neighbouring
// segment that shares a face with it.
func (e *Editor) RemeshAround(x, y, z int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.remeshAround(x, y, z)
}

func (e *Editor) remeshAround(x, y, z int) {
	e.remeshAt(x, y, z)

	lx, _, lz := world.LocalOf(x, y, z)
	ly := y % world.SegmentHeight

	switch lx {
	case 0:
		e.remeshAt(x-world.ChunkWidth, y, z)
	case world.ChunkWidth - 1:
		e.remeshAt(x+world.ChunkWidth, y, z)
	}
	switch ly {
	case 0:
		e.remeshAt(x, y-world.SegmentHeight, z)
	case world.SegmentHeight - 1:
		e.remeshAt(x, y+world.SegmentHeight, z)
	}
	switch lz {
	case 0:
		e.remeshAt(x, y, z-world.ChunkWidth)
	case world.ChunkWidth - 1:
		e.remeshAt(x, y, z+world.ChunkWidth)
	}
}

// remeshAt rebuilds the segment covering a world position. Positions
// outside the world are ignored.
func (e *Editor) remeshAt(x, y, z int) {
	c, seg, ok := e.world.SegmentAt(x, y, z)
	if !ok {
		return
	}
	meshing.RemeshSegment(e.world, c, seg, e.uploader)
}
