package noise

import "github.com/aquilax/go-perlin"

const (
	perlinAlpha   = 2.0 // smoothing
	perlinBeta    = 2.0 // frequency
	perlinOctaves = 1

	// Gradient noise is zero on integer lattice points; inputs are shifted
	// so integer samples land between them.
	perlinLatticeOffset = 0.5
)

// Perlin wraps classic gradient noise.
type Perlin struct {
	p *perlin.Perlin
}

func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (p *Perlin) Noise2D(x, y float64) float64 {
	return p.p.Noise2D(x+perlinLatticeOffset, y+perlinLatticeOffset)
}

func (p *Perlin) Noise3D(x, y, z float64) float64 {
	return p.p.Noise3D(x+perlinLatticeOffset, y+perlinLatticeOffset, z+perlinLatticeOffset)
}
