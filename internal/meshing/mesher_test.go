package meshing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-voxel/internal/world"
)

// facesAt collects the faces emitted for the voxel whose local origin is
// (x, y, z). Each quad's first corner identifies the voxel it belongs to.
func facesAt(verts []world.Vertex, x, y, z int) map[Face]bool {
	out := make(map[Face]bool)
	for q := 0; q+3 < len(verts); q += 4 {
		f := Face(verts[q].Position.W())
		c := faceDefs[f].corners[0]
		p := verts[q].Position
		if int(p.X()-c[0]) == x && int(p.Y()-c[1]) == y && int(p.Z()-c[2]) == z {
			out[f] = true
		}
	}
	return out
}

func set(w *world.World, x, y, z int, m world.Material) {
	if !w.SetVoxel(x, y, z, world.NewVoxel(m)) {
		panic("set outside world")
	}
}

func TestSingleVoxelMesh(t *testing.T) {
	w := world.New(1)
	set(w, 5, 20, 5, world.MaterialDirt)
	c, _ := w.ChunkAt(0, 0)

	verts, idx := MeshSegment(w, c, world.SegmentIndexOf(20))
	require.Len(t, verts, 24)
	require.Len(t, idx, 36)
	assert.Len(t, facesAt(verts, 5, 20, 5), 6)

	// emission order: up, down, west, east, south, north
	order := []Face{FaceUp, FaceDown, FaceWest, FaceEast, FaceSouth, FaceNorth}
	for i, f := range order {
		assert.Equal(t, float32(f), verts[i*4].Position.W(), "quad %d", i)
	}

	assert.Equal(t, []uint32{0, 2, 1, 0, 3, 2}, idx[:6])
	assert.Equal(t, []uint32{4, 6, 5, 4, 7, 6}, idx[6:12])

	// first up corner is {1,1,1}
	assert.Equal(t, float32(6), verts[0].Position.X())
	assert.Equal(t, float32(21), verts[0].Position.Y())
	assert.Equal(t, float32(6), verts[0].Position.Z())
}

func TestOtherSegmentsEmpty(t *testing.T) {
	w := world.New(1)
	set(w, 5, 20, 5, world.MaterialDirt)
	c, _ := w.ChunkAt(0, 0)
	for i := 0; i < world.ChunkSplits; i++ {
		if i == 1 {
			continue
		}
		verts, idx := MeshSegment(w, c, i)
		assert.Empty(t, verts, "segment %d", i)
		assert.Empty(t, idx, "segment %d", i)
	}
}

func TestMeshIdempotent(t *testing.T) {
	w := world.New(1)
	for x := -16; x < 16; x += 3 {
		for z := -16; z < 16; z += 5 {
			for y := 30; y < 40; y++ {
				set(w, x, y, z, world.MaterialGrass)
			}
		}
	}
	c, _ := w.ChunkAt(-1, 0)
	v1, i1 := MeshSegment(w, c, 2)
	v2, i2 := MeshSegment(w, c, 2)
	assert.Equal(t, v1, v2)
	assert.Equal(t, i1, i2)
}

func TestSameChunkFaceHidden(t *testing.T) {
	w := world.New(1)
	set(w, 3, 40, 3, world.MaterialDirt)
	set(w, 4, 40, 3, world.MaterialDirt)
	c, _ := w.ChunkAt(0, 0)

	verts, _ := MeshSegment(w, c, 2)
	a := facesAt(verts, 3, 40, 3)
	b := facesAt(verts, 4, 40, 3)
	assert.False(t, a[FaceEast])
	assert.False(t, b[FaceWest])
	assert.Len(t, a, 5)
	assert.Len(t, b, 5)
}

func TestVerticalNeighbourAcrossSegments(t *testing.T) {
	w := world.New(1)
	set(w, 3, 15, 3, world.MaterialDirt)
	set(w, 3, 16, 3, world.MaterialDirt)
	c, _ := w.ChunkAt(0, 0)

	lower, _ := MeshSegment(w, c, 0)
	upper, _ := MeshSegment(w, c, 1)
	assert.False(t, facesAt(lower, 3, 15, 3)[FaceUp])
	assert.False(t, facesAt(upper, 3, 16, 3)[FaceDown])
}

func TestCrossChunkWestFace(t *testing.T) {
	w := world.New(1)
	// local x=0 of chunk (0,0) and local x=15 of chunk (-1,0)
	set(w, 0, 50, 7, world.MaterialDirt)
	set(w, -1, 50, 7, world.MaterialDirt)
	c, _ := w.ChunkAt(0, 0)

	verts, _ := MeshSegment(w, c, 3)
	assert.False(t, facesAt(verts, 0, 50, 7)[FaceWest])

	set(w, -1, 50, 7, world.MaterialAir)
	verts, _ = MeshSegment(w, c, 3)
	assert.True(t, facesAt(verts, 0, 50, 7)[FaceWest])
}

func TestCrossChunkNorthSouthFaces(t *testing.T) {
	w := world.New(1)
	set(w, 4, 50, 15, world.MaterialDirt)
	set(w, 4, 50, -1, world.MaterialDirt)
	set(w, 4, 50, 0, world.MaterialDirt)

	c, _ := w.ChunkAt(0, -1)
	verts, _ := MeshSegment(w, c, 3)
	// world z=-1 is local z=15 of chunk (0,-1)
	assert.False(t, facesAt(verts, 4, 50, 15)[FaceNorth])

	c, _ = w.ChunkAt(0, 0)
	verts, _ = MeshSegment(w, c, 3)
	assert.False(t, facesAt(verts, 4, 50, 0)[FaceSouth])
	// world z=16 lies outside a size-1 world
	assert.True(t, facesAt(verts, 4, 50, 15)[FaceNorth])
}

func TestWorldEdgeFacesEmitted(t *testing.T) {
	w := world.New(1)
	set(w, -16, 60, 0, world.MaterialDirt)
	set(w, 15, 60, 0, world.MaterialDirt)

	c, _ := w.ChunkAt(-1, 0)
	verts, _ := MeshSegment(w, c, 3)
	assert.True(t, facesAt(verts, 0, 60, 0)[FaceWest])

	c, _ = w.ChunkAt(0, 0)
	verts, _ = MeshSegment(w, c, 3)
	assert.True(t, facesAt(verts, 15, 60, 0)[FaceEast])
}

func TestFloorAndCeilingFaces(t *testing.T) {
	w := world.New(1)
	set(w, 1, 0, 1, world.MaterialBedrock)
	set(w, 1, 1, 1, world.MaterialBedrock)
	set(w, 1, world.ChunkHeight-1, 1, world.MaterialDirt)
	c, _ := w.ChunkAt(0, 0)

	verts, _ := MeshSegment(w, c, 0)
	assert.True(t, facesAt(verts, 1, 0, 1)[FaceDown])
	assert.False(t, facesAt(verts, 1, 0, 1)[FaceUp])

	verts, _ = MeshSegment(w, c, world.ChunkSplits-1)
	assert.True(t, facesAt(verts, 1, world.ChunkHeight-1, 1)[FaceUp])
}

func TestGrassTextures(t *testing.T) {
	w := world.New(1)
	set(w, 2, 70, 2, world.MaterialGrass)
	c, _ := w.ChunkAt(0, 0)
	verts, _ := MeshSegment(w, c, 4)

	tile := func(q int) (int, int) {
		// the top-left-most corner of a quad lands on the tile origin
		minU, minV := verts[q].UV.X(), verts[q].UV.Y()
		for i := 1; i < 4; i++ {
			minU = min(minU, verts[q+i].UV.X())
			minV = min(minV, verts[q+i].UV.Y())
		}
		return int(minU*AtlasTiles + 0.5), int(minV*AtlasTiles + 0.5)
	}

	u, v := tile(0) // up
	assert.Equal(t, int(world.MaterialGrass), u)
	assert.Equal(t, 0, v)
	u, _ = tile(4) // down
	assert.Equal(t, int(world.MaterialDirt), u)
	for q := 8; q < 24; q += 4 {
		u, _ = tile(q)
		assert.Equal(t, int(world.MaterialGrassSide), u)
	}
}

func TestAtlasUV(t *testing.T) {
	u, v := AtlasUV(world.Material(33), 1, 1)
	assert.InDelta(t, 2.0/32, u, 1e-6)
	assert.InDelta(t, 2.0/32, v, 1e-6)
}

func TestRemeshSegmentUploads(t *testing.T) {
	w := world.New(1)
	set(w, 5, 5, 5, world.MaterialDirt)
	c, _ := w.ChunkAt(0, 0)
	u := &world.NopUploader{}

	RemeshSegment(w, c, 0, u)
	s := c.Segment(0)
	assert.True(t, s.HasGeometry())
	assert.Equal(t, 24, s.VertexCount)
	assert.Equal(t, 1, u.Uploads)

	set(w, 5, 5, 5, world.MaterialAir)
	RemeshSegment(w, c, 0, u)
	assert.False(t, s.HasGeometry())
	assert.Nil(t, s.Handle)
	assert.Equal(t, 1, u.Releases)
	assert.Equal(t, 1, u.Uploads)
}

func TestFaceNormals(t *testing.T) {
	assert.Equal(t, [3]int{1, 0, 0}, FaceEast.Normal())
	assert.Equal(t, [3]int{0, 0, -1}, FaceSouth.Normal())
	assert.Equal(t, "north", FaceNorth.String())
}
