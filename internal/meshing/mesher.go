package meshing

import (
	"mini-voxel/internal/metrics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshSegment builds one quad per exposed voxel face inside a render segment.
// Vertex positions are chunk-local on x/z and absolute on y.
//
// A face is exposed when the voxel across it is Air. On a chunk edge the
// neighbouring chunk is consulted; at the world edge faces are always
// emitted.
func MeshSegment(w *world.World, c *world.Chunk, segment int) ([]world.Vertex, []uint32) {
	defer profiling.Track("meshing.MeshSegment")()

	b := builder{
		vertices: make([]world.Vertex, 0, 1024),
		indices:  make([]uint32, 0, 1536),
	}

	west, hasWest := w.ChunkAt(c.StartX-1, c.StartZ)
	east, hasEast := w.ChunkAt(c.StartX+1, c.StartZ)
	south, hasSouth := w.ChunkAt(c.StartX, c.StartZ-1)
	north, hasNorth := w.ChunkAt(c.StartX, c.StartZ+1)

	const last = world.ChunkWidth - 1
	y0 := segment * world.SegmentHeight
	y1 := y0 + world.SegmentHeight

	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkWidth; z++ {
			for y := y0; y < y1; y++ {
				m := c.Get(x, y, z).Material()
				if m == world.MaterialAir {
					continue
				}

				if y >= world.ChunkHeight-1 || c.Get(x, y+1, z).IsAir() {
					b.face(FaceUp, x, y, z, m)
				}
				if y == 0 || c.Get(x, y-1, z).IsAir() {
					bottom := m
					if m == world.MaterialGrass {
						bottom = world.MaterialDirt
					}
					b.face(FaceDown, x, y, z, bottom)
				}

				side := m
				if m == world.MaterialGrass {
					side = world.MaterialGrassSide
				}

				var exposed bool
				if x == 0 {
					exposed = !hasWest || west.Get(last, y, z).IsAir()
				} else {
					exposed = c.Get(x-1, y, z).IsAir()
				}
				if exposed {
					b.face(FaceWest, x, y, z, side)
				}

				if x == last {
					exposed = !hasEast || east.Get(0, y, z).IsAir()
				} else {
					exposed = c.Get(x+1, y, z).IsAir()
				}
				if exposed {
					b.face(FaceEast, x, y, z, side)
				}

				if z == 0 {
					exposed = !hasSouth || south.Get(x, y, last).IsAir()
				} else {
					exposed = c.Get(x, y, z-1).IsAir()
				}
				if exposed {
					b.face(FaceSouth, x, y, z, side)
				}

				if z == last {
					exposed = !hasNorth || north.Get(x, y, 0).IsAir()
				} else {
					exposed = c.Get(x, y, z+1).IsAir()
				}
				if exposed {
					b.face(FaceNorth, x, y, z, side)
				}
			}
		}
	}

	metrics.SegmentsMeshed.Inc()
	metrics.FacesEmitted.Add(float64(len(b.vertices) / 4))
	return b.vertices, b.indices
}

type builder struct {
	vertices []world.Vertex
	indices  []uint32
}

// face appends the four vertices and six indices of one quad.
func (b *builder) face(f Face, x, y, z int, m world.Material) {
	def := &faceDefs[f]
	base := uint32(len(b.vertices))
	for i, c := range def.corners {
		u, v := AtlasUV(m, def.uvs[i][0], def.uvs[i][1])
		b.vertices = append(b.vertices, world.Vertex{
			Position: mgl32.Vec4{c[0] + float32(x), c[1] + float32(y), c[2] + float32(z), float32(f)},
			UV:       mgl32.Vec2{u, v},
		})
	}
	for _, idx := range quadIndices {
		b.indices = append(b.indices, base+idx)
	}
}

// MeshChunk stores fresh CPU geometry in every segment of a chunk. Nothing
// is uploaded.
func MeshChunk(w *world.World, c *world.Chunk) {
	for i := 0; i < world.ChunkSplits; i++ {
		verts, idx := MeshSegment(w, c, i)
		c.Segment(i).SetGeometry(verts, idx)
	}
}

// RemeshSegment releases a segment's GPU geometry, rebuilds it from the
// current voxels and uploads the result.
func RemeshSegment(w *world.World, c *world.Chunk, segment int, u world.Uploader) {
	s := c.Segment(segment)
	s.Release(u)
	s.SetGeometry(MeshSegment(w, c, segment))
	s.Upload(u)
}
