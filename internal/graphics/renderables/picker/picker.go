// Package picker highlights the voxel under the crosshair.
package picker

import (
	"mini-voxel/internal/config"
	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// unit cube, counter-clockwise from outside
var cubeVertices = []float32{
	0, 0, 0, 1,
	1, 0, 0, 1,
	1, 1, 0, 1,
	0, 1, 0, 1,
	0, 0, 1, 1,
	1, 0, 1, 1,
	1, 1, 1, 1,
	0, 1, 1, 1,
}

var cubeIndices = []uint32{
	0, 2, 1, 0, 3, 2, // -z
	4, 5, 6, 4, 6, 7, // +z
	0, 4, 7, 0, 7, 3, // -x
	1, 2, 6, 1, 6, 5, // +x
	3, 7, 6, 3, 6, 2, // +y
	0, 1, 5, 0, 5, 4, // -y
}

// Picker draws a slightly enlarged red cube around the targeted voxel.
type Picker struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	ibo    uint32
}

func NewPicker() *Picker {
	return &Picker{}
}

func (p *Picker) Init() error {
	var err error
	p.shader, err = graphics.LoadShader("picker")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &p.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, gl.Ptr(cubeIndices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindVertexArray(0)
	return nil
}

// HighlightModel scales the unit cube by 1.2 around the voxel at pos.
func HighlightModel(pos [3]int) mgl32.Mat4 {
	return mgl32.Translate3D(float32(pos[0]), float32(pos[1]), float32(pos[2])).
		Mul4(mgl32.Scale3D(1.2, 1.2, 1.2)).
		Mul4(mgl32.Translate3D(-0.1, -0.1, -0.1))
}

func (p *Picker) Render(ctx renderer.RenderContext) {
	if !ctx.Target.Hit || !config.GetShowPicker() {
		return
	}
	defer profiling.Track("renderer.renderPicker")()

	p.shader.Use()
	p.shader.SetMatrix4("projViewMatrix", ctx.Proj.Mul4(ctx.View))
	p.shader.SetMatrix4("modelMatrix", HighlightModel(ctx.Target.HitPosition))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindVertexArray(p.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(cubeIndices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

func (p *Picker) Dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.ibo != 0 {
		gl.DeleteBuffers(1, &p.ibo)
	}
	if p.shader != nil {
		p.shader.Delete()
	}
}

func (p *Picker) SetViewport(width, height int) {}
