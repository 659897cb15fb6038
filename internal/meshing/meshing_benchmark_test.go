package meshing

import (
	"testing"

	"mini-voxel/internal/noise"
	"mini-voxel/internal/world"
	"mini-voxel/internal/worldgen"
)

func generatedWorld(b *testing.B) *world.World {
	w := world.New(1)
	if err := worldgen.NewGenerator(w, noise.NewOpenSimplex(noise.DefaultSeed)).Generate(); err != nil {
		b.Fatal(err)
	}
	return w
}

func BenchmarkMeshSegmentSurface(b *testing.B) {
	w := generatedWorld(b)
	c, _ := w.ChunkAt(0, 0)
	seg := world.SegmentIndexOf(c.ColumnTop(8, 8))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MeshSegment(w, c, seg)
	}
}

func BenchmarkMeshChunk(b *testing.B) {
	w := generatedWorld(b)
	c, _ := w.ChunkAt(-1, -1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MeshChunk(w, c)
	}
}
