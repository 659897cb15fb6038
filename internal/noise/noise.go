// Package noise provides seeded coherent-noise sources for world generation.
package noise

import (
	"errors"
	"fmt"
	"strings"
)

// Source is a deterministic noise field. Samples are roughly in [-1, 1] and
// identical for identical seed and coordinates. Implementations are safe for
// concurrent reads.
type Source interface {
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

// Backend names accepted by New.
const (
	BackendOpenSimplex = "opensimplex"
	BackendPerlin      = "perlin"
	BackendValue       = "value"
)

// DefaultSeed matches the reference world.
const DefaultSeed int64 = 0xDEADBEEF

var ErrUnknownBackend = errors.New("noise: unknown backend")

// New builds the named backend seeded with seed.
func New(backend string, seed int64) (Source, error) {
	switch strings.ToLower(backend) {
	case "", BackendOpenSimplex:
		return NewOpenSimplex(seed), nil
	case BackendPerlin:
		return NewPerlin(seed), nil
	case BackendValue:
		return NewValue(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Constant returns the same sample everywhere. Useful for tests that need to
// force a generator branch.
type Constant float64

func (c Constant) Noise2D(x, y float64) float64    { return float64(c) }
func (c Constant) Noise3D(x, y, z float64) float64 { return float64(c) }
