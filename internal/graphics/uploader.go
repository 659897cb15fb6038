package graphics

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"mini-voxel/internal/metrics"
	"mini-voxel/internal/world"
)

// SegmentBuffers is the GPU side of one render segment.
type SegmentBuffers struct {
	VAO        uint32
	VBO        uint32
	IBO        uint32
	IndexCount int32
}

// GLUploader moves segment geometry into VAO/VBO/IBO triples. It must only
// be used on the goroutine that owns the GL context.
type GLUploader struct {
	live int
}

func NewGLUploader() *GLUploader {
	return &GLUploader{}
}

var vertexStride = int32(unsafe.Sizeof(world.Vertex{}))

// Upload implements world.Uploader. Empty input yields a nil handle.
func (u *GLUploader) Upload(vertices []world.Vertex, indices []uint32) world.Handle {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil
	}

	b := &SegmentBuffers{IndexCount: int32(len(indices))}
	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.IBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.IBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// position.xyz + face id in w, then atlas uv
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, 4*4)

	gl.BindVertexArray(0)

	u.live++
	metrics.Uploads.Inc()
	return b
}

// Release implements world.Uploader.
func (u *GLUploader) Release(h world.Handle) {
	b, ok := h.(*SegmentBuffers)
	if !ok || b == nil {
		return
	}
	gl.DeleteBuffers(1, &b.VBO)
	gl.DeleteBuffers(1, &b.IBO)
	gl.DeleteVertexArrays(1, &b.VAO)
	*b = SegmentBuffers{}

	u.live--
	metrics.Releases.Inc()
}

// Live returns the number of segments currently resident on the GPU.
func (u *GLUploader) Live() int {
	return u.live
}

// Draw issues the indexed draw for a segment handle.
func Draw(h world.Handle) {
	b, ok := h.(*SegmentBuffers)
	if !ok || b == nil || b.IndexCount == 0 {
		return
	}
	gl.BindVertexArray(b.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.IndexCount, gl.UNSIGNED_INT, 0)
}
