package worldgen

import (
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
)

const (
	caveStretch   = 24.0
	caveOctaves   = 6
	caveThreshold = 1.33
	// A candidate with this many solid neighbours stays solid.
	caveSolidLimit = 4
)

// caveSample returns the noise coordinates of octave i for a voxel.
func caveSample(i, x, y, z int) (float64, float64, float64) {
	oct := 1 << i
	factor := caveStretch * float64(oct/3+1)
	freq := float64(oct)
	return float64(x) / factor * freq,
		float64(y) / factor * freq * 2,
		float64(z) / factor * freq
}

// CaveNoise sums six octaves of 3D noise, each remapped to [0, 2^-i].
// The result lies in [0, 2).
func (g *Generator) CaveNoise(x, y, z int) float64 {
	sum := 0.0
	for i := 0; i < caveOctaves; i++ {
		s := g.src.Noise3D(caveSample(i, x, y, z))
		sum += (s + 1) / float64(int(2)<<i)
	}
	return sum
}

func (g *Generator) shouldCave(x, y, z int) bool {
	return g.CaveNoise(x, y, z) >= caveThreshold
}

var neighbourOffsets = [6][3]int{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// solidNeighbours counts axis neighbours that are solid and would not
// themselves be carved. Positions outside the world count as solid.
func (g *Generator) solidNeighbours(x, y, z int) int {
	n := 0
	for _, o := range neighbourOffsets {
		nx, ny, nz := x+o[0], y+o[1], z+o[2]
		// the predicate is checked first so carved voxels are never read
		if g.isCave(nx, ny, nz) {
			continue
		}
		v, ok := g.world.VoxelAt(nx, ny, nz)
		if !ok || !v.IsAir() {
			n++
		}
	}
	return n
}

// GenerateCaves carves cave voxels out of a chunk. Each column is scanned
// upward past the bedrock and stops at the first air voxel.
func (g *Generator) GenerateCaves(chunkX, chunkZ int) error {
	defer profiling.Track("worldgen.GenerateCaves")()
	c, err := g.chunk(chunkX, chunkZ)
	if err != nil {
		return err
	}
	if !g.Caves {
		return nil
	}

	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkWidth; z++ {
			wx, wz := c.WorldX(x), c.WorldZ(z)
			for y := 0; y < world.ChunkHeight; y++ {
				v := c.At(x, y, z)
				m := v.Material()
				if m == world.MaterialBedrock {
					continue
				}
				if m == world.MaterialAir {
					break
				}
				if !g.isCave(wx, y, wz) {
					continue
				}
				if g.solidNeighbours(wx, y, wz) < caveSolidLimit {
					*v = world.Air
				}
			}
		}
	}
	return nil
}
