package worldgen

import (
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

const (
	treeThreshold = 0.8
	trunkHeight   = 3
	// canopy spans [x-canopyBack, x+canopyFront)
	canopyBack  = 3
	canopyFront = 3
)

// GenerateTrees plants trees on grass columns whose noise sample reaches the
// threshold. Trees never cross into neighbouring chunks; the canopy is
// clipped at the chunk edge.
func (g *Generator) GenerateTrees(chunkX, chunkZ int) error {
	defer profiling.Track("worldgen.GenerateTrees")()
	c, err := g.chunk(chunkX, chunkZ)
	if err != nil {
		return err
	}
	if !g.Trees {
		return nil
	}

	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkWidth; z++ {
			top := c.ColumnTop(x, z)
			if top < 0 || c.Get(x, top, z).Material() != world.MaterialGrass {
				continue
			}
			s := g.src.Noise2D(float64(c.WorldX(x)), float64(c.WorldZ(z)))
			if s < treeThreshold {
				continue
			}
			placeTree(c, x, top, z)
		}
	}
	return nil
}

// placeTree puts a trunk on top of (x, top, z) and a flat leaf layer above it.
// Trees that would poke out of the chunk ceiling are skipped.
func placeTree(c *world.Chunk, x, top, z int) bool {
	leafY := top + trunkHeight + 1
	if leafY >= world.ChunkHeight {
		return false
	}

	trunk := world.NewVoxel(world.MaterialWoodTrunk)
	for y := top + 1; y < leafY; y++ {
		c.Set(x, y, z, trunk)
	}

	leaves := world.NewVoxel(world.MaterialLeaves)
	for lx := max(x-canopyBack, 0); lx < min(x+canopyFront, world.ChunkWidth); lx++ {
		for lz := max(z-canopyBack, 0); lz < min(z+canopyFront, world.ChunkWidth); lz++ {
			c.Set(lx, leafY, lz, leaves)
		}
	}
	return true
}
