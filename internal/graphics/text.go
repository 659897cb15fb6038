package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mini-voxel/internal/graphics/atlas"
)

// TextRenderer draws screen-space text from a baked glyph sheet.
type TextRenderer struct {
	sheet      *atlas.GlyphSheet
	texture    uint32
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewTextRenderer uploads the sheet and loads the "text" shader.
func NewTextRenderer(sheet *atlas.GlyphSheet, width, height int) (*TextRenderer, error) {
	if sheet == nil || len(sheet.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid glyph sheet")
	}
	shader, err := LoadShader("text")
	if err != nil {
		return nil, err
	}
	tr := &TextRenderer{
		sheet:   sheet,
		texture: UploadAlpha(sheet.Image),
		shader:  shader,
	}
	tr.SetViewport(width, height)

	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	// x, y, u, v
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindVertexArray(0)
	return tr, nil
}

// SetViewport maps text coordinates to window pixels, origin top-left.
func (tr *TextRenderer) SetViewport(width, height int) {
	tr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// RenderLines draws lines of text starting at (x, y), lineStep pixels apart,
// in one draw call.
func (tr *TextRenderer) RenderLines(lines []string, x, y, lineStep, scale float32, color mgl32.Vec3) {
	vertices := make([]float32, 0, 256)
	for _, line := range lines {
		vertices = append(vertices, tr.sheet.Quads(line, x, y, scale)...)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	tr.shader.Use()
	tr.shader.SetVector3("textColor", color)
	tr.shader.SetMatrix4("projection", tr.projection)
	tr.shader.SetInt("glyphs", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)

	// orphan the buffer each frame to avoid stalls
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (tr *TextRenderer) Dispose() {
	DeleteTexture(tr.texture)
	gl.DeleteBuffers(1, &tr.vbo)
	gl.DeleteVertexArrays(1, &tr.vao)
	tr.shader.Delete()
}
