package noise

import "math"

// Value is lattice value noise with smoothstep interpolation. It needs no
// tables and is the cheapest backend.
type Value struct {
	seed int64
}

func NewValue(seed int64) *Value {
	return &Value{seed: seed}
}

func (v *Value) Noise2D(x, y float64) float64 {
	return valueNoise2D(x, y, v.seed)*2 - 1
}

func (v *Value) Noise3D(x, y, z float64) float64 {
	return valueNoise3D(x, y, z, v.seed)*2 - 1
}

// fade is 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func hash2(x, z, seed int64) uint64 {
	// SplitMix64 style integer hash
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func hash3(x, y, z, seed int64) uint64 {
	// separate multipliers per axis so axes are not interchangeable
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// unit maps a hash to [0,1].
func unit(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	fx := fade(x - x0)
	fz := fade(z - z0)
	ix, iz := int64(x0), int64(z0)

	v00 := unit(hash2(ix, iz, seed))
	v10 := unit(hash2(ix+1, iz, seed))
	v01 := unit(hash2(ix, iz+1, seed))
	v11 := unit(hash2(ix+1, iz+1, seed))

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	fx := fade(x - x0)
	fy := fade(y - y0)
	fz := fade(z - z0)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	v000 := unit(hash3(ix, iy, iz, seed))
	v100 := unit(hash3(ix+1, iy, iz, seed))
	v010 := unit(hash3(ix, iy+1, iz, seed))
	v110 := unit(hash3(ix+1, iy+1, iz, seed))
	v001 := unit(hash3(ix, iy, iz+1, seed))
	v101 := unit(hash3(ix+1, iy, iz+1, seed))
	v011 := unit(hash3(ix, iy+1, iz+1, seed))
	v111 := unit(hash3(ix+1, iy+1, iz+1, seed))

	// x, then y, then z
	i00 := lerp(v000, v100, fx)
	i10 := lerp(v010, v110, fx)
	i01 := lerp(v001, v101, fx)
	i11 := lerp(v011, v111, fx)
	return lerp(lerp(i00, i10, fy), lerp(i01, i11, fy), fz)
}
