package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// OpenSimplex is the default backend.
type OpenSimplex struct {
	n opensimplex.Noise
}

func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(seed)}
}

func (o *OpenSimplex) Noise2D(x, y float64) float64 {
	return o.n.Eval2(x, y)
}

func (o *OpenSimplex) Noise3D(x, y, z float64) float64 {
	return o.n.Eval3(x, y, z)
}
