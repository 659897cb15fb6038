package world

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one mesh vertex: xyz position with the face id in w, and
// atlas texture coordinates.
type Vertex struct {
	Position mgl32.Vec4
	UV       mgl32.Vec2
}

// VertexFloats is the number of float32 values in an interleaved Vertex.
const VertexFloats = 6

// Handle is an opaque GPU resource reference owned by a Segment.
type Handle interface{}

// Uploader hands mesh data to the GPU. Implementations must tolerate empty
// input.
type Uploader interface {
	Upload(vertices []Vertex, indices []uint32) Handle
	Release(h Handle)
}

// Segment is the renderable geometry for a 16-row slice of a chunk.
// CPU geometry is transient; it is dropped after upload.
type Segment struct {
	Vertices []Vertex
	Indices  []uint32

	Handle      Handle
	VertexCount int
	IndexCount  int
}

// HasGeometry reports whether the segment owns a GPU handle.
func (s *Segment) HasGeometry() bool {
	return s.VertexCount > 0
}

// SetGeometry replaces the CPU geometry prior to upload.
func (s *Segment) SetGeometry(vertices []Vertex, indices []uint32) {
	s.Vertices = vertices
	s.Indices = indices
}

// Upload sends the CPU geometry to u and discards it. A segment with no
// vertices keeps no handle.
func (s *Segment) Upload(u Uploader) {
	s.VertexCount = len(s.Vertices)
	s.IndexCount = len(s.Indices)
	if s.VertexCount > 0 {
		s.Handle = u.Upload(s.Vertices, s.Indices)
	} else {
		s.Handle = nil
	}
	s.Vertices = nil
	s.Indices = nil
}

// Release frees the GPU handle if one is held.
func (s *Segment) Release(u Uploader) {
	if s.Handle != nil {
		u.Release(s.Handle)
	}
	s.Handle = nil
	s.VertexCount = 0
	s.IndexCount = 0
}

// NopUploader records uploads without touching a GPU. It backs headless runs
// and tests.
type NopUploader struct {
	Uploads  int
	Releases int
	next     int
}

type nopHandle int

func (n *NopUploader) Upload(vertices []Vertex, indices []uint32) Handle {
	n.Uploads++
	n.next++
	return nopHandle(n.next)
}

func (n *NopUploader) Release(h Handle) {
	n.Releases++
}
