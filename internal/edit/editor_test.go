package edit

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-voxel/internal/meshing"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/world"
)

// recordingUploader keeps every uploaded vertex list by handle.
type recordingUploader struct {
	next     int
	live     map[int][]world.Vertex
	uploads  int
	releases int
}

func newRecordingUploader() *recordingUploader {
	return &recordingUploader{live: make(map[int][]world.Vertex)}
}

func (r *recordingUploader) Upload(vertices []world.Vertex, indices []uint32) world.Handle {
	r.next++
	r.uploads++
	r.live[r.next] = append([]world.Vertex(nil), vertices...)
	return r.next
}

func (r *recordingUploader) Release(h world.Handle) {
	r.releases++
	delete(r.live, h.(int))
}

// flatWorld builds a size-1 world solid up to and including surface, meshed
// and uploaded.
func flatWorld(t *testing.T, surface int) (*world.World, *recordingUploader) {
	t.Helper()
	w := world.New(1)
	for x := -16; x < 16; x++ {
		for z := -16; z < 16; z++ {
			for y := 0; y <= surface; y++ {
				require.True(t, w.SetVoxel(x, y, z, world.NewVoxel(world.MaterialDirt)))
			}
		}
	}
	u := newRecordingUploader()
	for _, c := range w.Chunks() {
		meshing.MeshChunk(w, c)
		for i := range c.Segments {
			c.Segments[i].Upload(u)
		}
	}
	return w, u
}

// hasFace reports whether the segment covering world (x, y, z) currently
// holds a quad of face f for that voxel.
func hasFace(t *testing.T, w *world.World, u *recordingUploader, x, y, z int, f meshing.Face) bool {
	t.Helper()
	c, seg, ok := w.SegmentAt(x, y, z)
	require.True(t, ok)
	s := c.Segment(seg)
	if s.Handle == nil {
		return false
	}
	lx, ly, lz := world.LocalOf(x, y, z)
	verts := u.live[s.Handle.(int)]
	for q := 0; q+3 < len(verts); q += 4 {
		if meshing.Face(verts[q].Position.W()) != f {
			continue
		}
		// rebuild the voxel origin from the quad bounds
		minX, minY, minZ := verts[q].Position.X(), verts[q].Position.Y(), verts[q].Position.Z()
		for i := 1; i < 4; i++ {
			p := verts[q+i].Position
			minX, minY, minZ = min(minX, p.X()), min(minY, p.Y()), min(minZ, p.Z())
		}
		n := f.Normal()
		ox, oy, oz := int(minX), int(minY), int(minZ)
		if n[0] > 0 {
			ox--
		}
		if n[1] > 0 {
			oy--
		}
		if n[2] > 0 {
			oz--
		}
		if ox == lx && oy == ly && oz == lz {
			return true
		}
	}
	return false
}

func TestRemoveVoxel(t *testing.T) {
	w, u := flatWorld(t, 20)
	e := NewEditor(w, u)

	require.True(t, hasFace(t, w, u, 3, 20, 3, meshing.FaceUp))
	require.NoError(t, e.RemoveVoxel(3, 20, 3))

	v, ok := w.VoxelAt(3, 20, 3)
	require.True(t, ok)
	assert.True(t, v.IsAir())
	for f := meshing.FaceEast; f <= meshing.FaceSouth; f++ {
		assert.False(t, hasFace(t, w, u, 3, 20, 3, f), "removed voxel still has %s face", f)
	}
	assert.True(t, hasFace(t, w, u, 3, 19, 3, meshing.FaceUp))
	assert.True(t, hasFace(t, w, u, 2, 20, 3, meshing.FaceEast))
	assert.True(t, hasFace(t, w, u, 3, 20, 4, meshing.FaceSouth))
}

func TestRemoveRemeshesNeighbourSegments(t *testing.T) {
	w, u := flatWorld(t, 20)
	e := NewEditor(w, u)
	uploads, releases := u.uploads, u.releases

	// local x=0 of chunk (0,0) and the first row of segment 1
	require.NoError(t, e.RemoveVoxel(0, 16, 5))

	// owning segment, west chunk, segment below
	assert.Equal(t, releases+3, u.releases)
	assert.Equal(t, uploads+3, u.uploads)
	assert.True(t, hasFace(t, w, u, -1, 16, 5, meshing.FaceEast), "west chunk sees the hole")
	assert.True(t, hasFace(t, w, u, 0, 15, 5, meshing.FaceUp), "segment below sees the hole")
}

func TestRemeshAroundSkipsMissingNeighbours(t *testing.T) {
	w, u := flatWorld(t, 20)
	e := NewEditor(w, u)
	releases := u.releases

	assert.NotPanics(t, func() { e.RemeshAround(-16, 0, -16) })
	assert.NotPanics(t, func() { e.RemeshAround(15, 255, 15) })
	assert.Equal(t, releases+1, u.releases, "only the owning bottom segment had geometry")
}

func TestEditBounds(t *testing.T) {
	w, u := flatWorld(t, 20)
	e := NewEditor(w, u)
	tests := []struct {
		pos [3]int
		ok  bool
	}{
		{[3]int{-16, 5, 0}, false},
		{[3]int{15, 5, 0}, true},
		{[3]int{16, 5, 0}, false},
		{[3]int{0, 5, -16}, false},
		{[3]int{0, 5, 15}, true},
		{[3]int{0, 5, 16}, false},
		{[3]int{0, 0, 0}, false},
		{[3]int{0, 256, 0}, false},
		{[3]int{-15, 5, 14}, true},
		{[3]int{14, 1, -15}, true},
	}
	for _, tt := range tests {
		err := e.RemoveVoxel(tt.pos[0], tt.pos[1], tt.pos[2])
		if tt.ok {
			assert.NoError(t, err, "%v", tt.pos)
		} else {
			assert.ErrorIs(t, err, ErrOutOfBounds, "%v", tt.pos)
		}
		err = e.PlaceVoxel(tt.pos)
		if tt.ok {
			assert.NoError(t, err, "%v", tt.pos)
		} else {
			assert.ErrorIs(t, err, ErrOutOfBounds, "%v", tt.pos)
		}
	}

	// rejected edits leave the voxel alone
	v, _ := w.VoxelAt(0, 0, 0)
	assert.Equal(t, world.MaterialDirt, v.Material())
}

func TestPlaceVoxelUsesBedrock(t *testing.T) {
	w, u := flatWorld(t, 20)
	e := NewEditor(w, u)
	require.NoError(t, e.PlaceVoxel([3]int{4, 21, 4}))
	v, _ := w.VoxelAt(4, 21, 4)
	assert.Equal(t, world.MaterialBedrock, v.Material())
	assert.True(t, hasFace(t, w, u, 4, 21, 4, meshing.FaceUp))
	assert.False(t, hasFace(t, w, u, 4, 20, 4, meshing.FaceUp))
}

func TestConcurrentEdits(t *testing.T) {
	w, u := flatWorld(t, 20)
	e := NewEditor(w, u)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = e.RemoveVoxel(i-4, 20, i-4)
		}(i)
	}
	wg.Wait()
	for i := 0; i < 8; i++ {
		assert.True(t, w.IsAir(i-4, 20, i-4))
	}
}

func TestPickTargetFace(t *testing.T) {
	hit := [3]int{3, 5, 0}
	tests := []struct {
		name   string
		origin mgl32.Vec3
		dir    mgl32.Vec3
		want   [3]int
		ok     bool
	}{
		{"from west", mgl32.Vec3{0.5, 5.5, 0.5}, mgl32.Vec3{1, 0, 0}, [3]int{2, 5, 0}, true},
		{"from east", mgl32.Vec3{6.5, 5.5, 0.5}, mgl32.Vec3{-1, 0, 0}, [3]int{4, 5, 0}, true},
		{"from above", mgl32.Vec3{3.5, 10, 0.5}, mgl32.Vec3{0, -1, 0}, [3]int{3, 6, 0}, true},
		{"from below", mgl32.Vec3{3.5, 1, 0.5}, mgl32.Vec3{0, 1, 0}, [3]int{3, 4, 0}, true},
		{"from north", mgl32.Vec3{3.5, 5.5, 4}, mgl32.Vec3{0, 0, -1}, [3]int{3, 5, 1}, true},
		{"from south", mgl32.Vec3{3.5, 5.5, -4}, mgl32.Vec3{0, 0, 1}, [3]int{3, 5, -1}, true},
		{"grazing top", mgl32.Vec3{0.5, 7.5, 0.5}, mgl32.Vec3{2.7, -1.5, 0}.Normalize(), [3]int{3, 6, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PickTargetFace(hit, tt.origin, tt.dir)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := PickTargetFace([3]int{3, 9, 0}, mgl32.Vec3{0.5, 5.5, 0.5}, mgl32.Vec3{1, 0, 0})
	assert.False(t, ok)
}

func TestPlaceAgainst(t *testing.T) {
	w, u := flatWorld(t, 20)
	e := NewEditor(w, u)
	placed, err := e.PlaceAgainst([3]int{2, 20, 2}, mgl32.Vec3{2.5, 25, 2.5}, mgl32.Vec3{0, -1, 0})
	require.NoError(t, err)
	require.True(t, placed)
	v, _ := w.VoxelAt(2, 21, 2)
	assert.Equal(t, world.MaterialBedrock, v.Material())
}

func TestInteract(t *testing.T) {
	w, u := flatWorld(t, 20)
	e := NewEditor(w, u)
	origin := mgl32.Vec3{5.5, 23, 5.5}
	down := mgl32.Vec3{0, -1, 0}

	miss := physics.RaycastFirstSolid(w, origin, mgl32.Vec3{0, 1, 0}, 4, 0.01)
	require.False(t, miss.Hit)
	require.NoError(t, e.Interact(miss, origin, down, true, true))

	hit := physics.RaycastFirstSolid(w, origin, down, 4, 0.01)
	require.True(t, hit.Hit)
	assert.Equal(t, [3]int{5, 20, 5}, hit.HitPosition)

	require.NoError(t, e.Interact(hit, origin, down, false, true))
	v, _ := w.VoxelAt(5, 21, 5)
	assert.Equal(t, world.MaterialBedrock, v.Material())

	require.NoError(t, e.Interact(hit, origin, down, true, false))
	assert.True(t, w.IsAir(5, 20, 5))

	edge := physics.RaycastResult{Hit: true, HitPosition: [3]int{-16, 20, 0}}
	assert.ErrorIs(t, e.Interact(edge, origin, down, true, false), ErrOutOfBounds)
}
