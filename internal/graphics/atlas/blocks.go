// Package atlas prepares CPU-side images for the GPU: the block texture atlas
// and baked font glyphs. Nothing here touches OpenGL.
package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"mini-voxel/internal/meshing"
	"mini-voxel/internal/world"
)

// TileSize is the edge length in pixels of one atlas tile.
const TileSize = 16

// Size is the edge length in pixels of the whole atlas.
const Size = meshing.AtlasTiles * TileSize

// palette gives each material's base colour for the generated atlas.
var palette = map[world.Material]color.RGBA{
	world.MaterialBedrock:   {R: 84, G: 84, B: 88, A: 255},
	world.MaterialDirt:      {R: 134, G: 96, B: 67, A: 255},
	world.MaterialGrass:     {R: 95, G: 159, B: 53, A: 255},
	world.MaterialGrassSide: {R: 134, G: 96, B: 67, A: 255},
	world.MaterialWoodTrunk: {R: 102, G: 81, B: 50, A: 255},
	world.MaterialLeaves:    {R: 60, G: 120, B: 40, A: 255},
}

// TileRect returns the pixel rectangle of a material's tile.
func TileRect(m world.Material) image.Rectangle {
	col := int(m) % meshing.AtlasTiles
	row := int(m) / meshing.AtlasTiles
	origin := image.Pt(col*TileSize, row*TileSize)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(TileSize, TileSize))}
}

// Generate paints a flat-shaded atlas with a little per-pixel grain so that
// voxel edges stay readable without an image on disk.
func Generate() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	for m, base := range palette {
		r := TileRect(m)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c := shade(base, grain(x, y))
				// grass side gets a green band along its top edge
				if m == world.MaterialGrassSide && y-r.Min.Y < TileSize/4 {
					c = shade(palette[world.MaterialGrass], grain(x, y))
				}
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

func grain(x, y int) int {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return int(h>>24)%24 - 12
}

func shade(c color.RGBA, d int) color.RGBA {
	clamp := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{R: clamp(int(c.R) + d), G: clamp(int(c.G) + d), B: clamp(int(c.B) + d), A: c.A}
}

// Load decodes an atlas image (PNG or BMP) and rescales it to Size x Size
// with nearest-neighbour sampling.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode atlas %s: %w", path, err)
	}
	return Normalize(src), nil
}

// Normalize converts any image to an RGBA atlas of the expected size.
func Normalize(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, Size, Size))
	if src.Bounds().Size() == dst.Bounds().Size() {
		xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// LoadOrGenerate loads the atlas at path. When the file does not exist and
// allowGenerated is set the generated atlas is returned instead; otherwise
// the missing file is an error. Decode errors are always returned.
func LoadOrGenerate(path string, allowGenerated bool) (*image.RGBA, bool, error) {
	if path != "" {
		img, err := Load(path)
		if err == nil {
			return img, false, nil
		}
		if !errors.Is(err, os.ErrNotExist) || !allowGenerated {
			return nil, false, err
		}
	} else if !allowGenerated {
		return nil, false, fmt.Errorf("atlas: no path given: %w", os.ErrNotExist)
	}
	return Generate(), true, nil
}
