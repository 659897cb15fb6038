package atlas

import (
	"fmt"
	"image"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes a single character's placement and metrics within a
// glyph sheet.
type Glyph struct {
	// Pixel coordinates of the glyph in the sheet (top-left origin)
	X, Y float32
	// Glyph bitmap size in pixels
	Width, Height float32
	// Bearing (offset from baseline) in pixels
	BearingX, BearingY float32
	// Advance in pixels
	Advance int
}

// GlyphSheet is a baked set of glyphs in a single-channel image.
type GlyphSheet struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
}

// LoadFace opens a TrueType/OpenType face. An empty path returns the
// built-in 7x13 bitmap face.
func LoadFace(path string, pixels int) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// BakeGlyphs renders the printable ASCII range of face into a sheet of the
// given width, packing glyphs in rows.
func BakeGlyphs(face font.Face, width int) *GlyphSheet {
	const padding = 1

	runes := make([]rune, 0, 95)
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}

	// measure rows first so the sheet can be sized exactly
	rowH := 0
	for _, r := range runes {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if ok && dr.Dy() > rowH {
			rowH = dr.Dy()
		}
	}
	x, rows := 0, 1
	for _, r := range runes {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || dr.Dx() == 0 {
			continue
		}
		if x+dr.Dx() > width {
			x = 0
			rows++
		}
		x += dr.Dx() + padding
	}
	height := rows * (rowH + padding)

	sheet := &GlyphSheet{
		Image:  image.NewAlpha(image.Rect(0, 0, width, height)),
		Glyphs: make(map[rune]Glyph, len(runes)),
	}

	offsetX, offsetY := 0, 0
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		g := Glyph{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		if dr.Dx() == 0 || dr.Dy() == 0 {
			// space: advance only
			sheet.Glyphs[r] = g
			continue
		}
		if offsetX+dr.Dx() > width {
			offsetX = 0
			offsetY += rowH + padding
		}
		dst := image.Rect(offsetX, offsetY, offsetX+dr.Dx(), offsetY+dr.Dy())
		draw.Draw(sheet.Image, dst, mask, maskp, draw.Src)

		g.X, g.Y = float32(offsetX), float32(offsetY)
		g.Width, g.Height = float32(dr.Dx()), float32(dr.Dy())
		sheet.Glyphs[r] = g
		offsetX += dr.Dx() + padding
	}
	return sheet
}

// Measure returns the pixel width of text at scale.
func (s *GlyphSheet) Measure(text string, scale float32) float32 {
	var w float32
	for _, r := range text {
		g, ok := s.Glyphs[r]
		if !ok {
			g = s.Glyphs[' ']
		}
		w += float32(g.Advance) * scale
	}
	return w
}

// Quads builds two triangles per glyph for text starting at (x, y) on the
// baseline, as interleaved x, y, u, v floats.
func (s *GlyphSheet) Quads(text string, x, y, scale float32) []float32 {
	sw := float32(s.Image.Rect.Dx())
	sh := float32(s.Image.Rect.Dy())
	out := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g, ok := s.Glyphs[r]
		if !ok {
			x += float32(s.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 {
			px := x + g.BearingX*scale
			py := y - g.BearingY*scale
			w, h := g.Width*scale, g.Height*scale
			u0, v0 := g.X/sw, g.Y/sh
			u1, v1 := (g.X+g.Width)/sw, (g.Y+g.Height)/sh
			out = append(out,
				px, py+h, u0, v1,
				px, py, u0, v0,
				px+w, py, u1, v0,
				px, py+h, u0, v1,
				px+w, py, u1, v0,
				px+w, py+h, u1, v1,
			)
		}
		x += float32(g.Advance) * scale
	}
	return out
}
