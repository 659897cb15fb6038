package worldgen

import (
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

const (
	heightStretch = 20.0
	baseHeight    = 70
	bedrockRows   = 4
	smoothRadius  = 5
)

// HeightAt returns the surface row for a world column.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX)
	z := float64(worldZ)

	n := g.src.Noise2D(x/heightStretch, z/heightStretch) * 10
	for i := -smoothRadius; i < smoothRadius; i++ {
		for j := -smoothRadius; j < smoothRadius; j++ {
			s := g.src.Noise2D((x+float64(i))/(heightStretch+float64(i)), (z+float64(j))/(heightStretch+float64(j)))
			n += s * (10 + float64(j)) / 2
		}
		n /= 10
	}

	h := int(n) + baseHeight
	if h < 0 {
		h = 0
	}
	if h > world.ChunkHeight-1 {
		h = world.ChunkHeight - 1
	}
	return h
}

// GenerateTerrain reallocates the chunk and fills each column: grass on the
// surface, dirt below it, bedrock in the bottom rows and air above.
func (g *Generator) GenerateTerrain(chunkX, chunkZ int) error {
	defer profiling.Track("worldgen.GenerateTerrain")()
	c, err := g.chunk(chunkX, chunkZ)
	if err != nil {
		return err
	}
	c.Reset()

	grass := world.NewVoxel(world.MaterialGrass)
	dirt := world.NewVoxel(world.MaterialDirt)
	bedrock := world.NewVoxel(world.MaterialBedrock)

	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkWidth; z++ {
			h := g.HeightAt(c.WorldX(x), c.WorldZ(z))
			c.Set(x, h, z, grass)
			for y := bedrockRows; y < h; y++ {
				c.Set(x, y, z, dirt)
			}
			// bedrock wins over a very low surface
			for y := 0; y < bedrockRows; y++ {
				c.Set(x, y, z, bedrock)
			}
		}
	}
	return nil
}
