// Package overlay prints frame statistics in the top-left corner.
package overlay

import (
	"fmt"

	"mini-voxel/internal/config"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/graphics/atlas"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Overlay renders stats text. It must come after the terrain renderable so
// the segment counts are filled in.
type Overlay struct {
	fontPath string
	pixels   int
	width    int
	height   int
	text     *graphics.TextRenderer
	lines    []string
}

// NewOverlay uses the font at fontPath, or the built-in bitmap font when it
// is empty.
func NewOverlay(fontPath string, pixels, width, height int) *Overlay {
	return &Overlay{fontPath: fontPath, pixels: pixels, width: width, height: height}
}

func (o *Overlay) Init() error {
	face, err := atlas.LoadFace(o.fontPath, o.pixels)
	if err != nil {
		return err
	}
	o.text, err = graphics.NewTextRenderer(atlas.BakeGlyphs(face, 512), o.width, o.height)
	return err
}

// Lines formats the overlay text for a frame.
func Lines(ctx renderer.RenderContext) []string {
	pos := ctx.Camera.Position
	lines := []string{
		fmt.Sprintf("FPS: %d", ctx.Stats.FPS),
		fmt.Sprintf("Segments: %d / %d", ctx.Stats.VisibleSegments, ctx.Stats.TotalSegments),
		fmt.Sprintf("XYZ: %.1f %.1f %.1f", pos.X(), pos.Y(), pos.Z()),
	}
	if ctx.Target.Hit {
		h := ctx.Target.HitPosition
		lines = append(lines, fmt.Sprintf("Target: %d %d %d (%s)", h[0], h[1], h[2], ctx.Target.Voxel.Material()))
	}
	if config.GetOrthoDebug() {
		lines = append(lines, "Ortho debug")
	}
	return lines
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderOverlay")()
	o.lines = Lines(ctx)
	o.text.RenderLines(o.lines, 8, 16, 16, 1, mgl32.Vec3{1, 1, 1})
}

func (o *Overlay) Dispose() {
	if o.text != nil {
		o.text.Dispose()
	}
}

func (o *Overlay) SetViewport(width, height int) {
	o.width, o.height = width, height
	if o.text != nil {
		o.text.SetViewport(width, height)
	}
}
