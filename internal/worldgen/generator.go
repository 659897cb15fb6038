// Package worldgen fills world chunks with terrain, caves and trees.
package worldgen

import (
	"errors"
	"fmt"

	"mini-voxel/internal/noise"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

var ErrNoChunk = errors.New("worldgen: chunk outside world")

// Generator populates chunks of a single world from one noise source.
// Terrain for every chunk must finish before caves run anywhere, and caves
// must finish before trees, because caves read neighbouring chunks.
type Generator struct {
	world *world.World
	src   noise.Source

	Caves bool
	Trees bool

	// isCave is the cave predicate, replaceable in tests.
	isCave func(x, y, z int) bool
}

// NewGenerator returns a generator with caves and trees enabled.
func NewGenerator(w *world.World, src noise.Source) *Generator {
	g := &Generator{
		world: w,
		src:   src,
		Caves: true,
		Trees: true,
	}
	g.isCave = g.shouldCave
	return g
}

// World returns the world being generated.
func (g *Generator) World() *world.World { return g.world }

func (g *Generator) chunk(chunkX, chunkZ int) (*world.Chunk, error) {
	c, ok := g.world.ChunkAt(chunkX, chunkZ)
	if !ok {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrNoChunk, chunkX, chunkZ)
	}
	return c, nil
}

// GenerateCavesAndStructures runs caves then trees for one chunk. Callers
// generating many chunks in parallel should use GenerateCaves and
// GenerateTrees as separate passes instead.
func (g *Generator) GenerateCavesAndStructures(chunkX, chunkZ int) error {
	if err := g.GenerateCaves(chunkX, chunkZ); err != nil {
		return err
	}
	return g.GenerateTrees(chunkX, chunkZ)
}

// Generate runs every pass over every chunk sequentially. Caves are carved
// in every chunk before any tree is planted, so border carving never sees a
// neighbouring chunk's trees.
func (g *Generator) Generate() error {
	defer profiling.Track("worldgen.Generate")()
	chunks := g.world.Chunks()
	for _, c := range chunks {
		if err := g.GenerateTerrain(c.StartX, c.StartZ); err != nil {
			return err
		}
	}
	for _, c := range chunks {
		if err := g.GenerateCaves(c.StartX, c.StartZ); err != nil {
			return err
		}
	}
	for _, c := range chunks {
		if err := g.GenerateTrees(c.StartX, c.StartZ); err != nil {
			return err
		}
	}
	return nil
}
