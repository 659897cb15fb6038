// Package pipeline builds a world from nothing to uploaded geometry.
//
// Passes run in a fixed order with a barrier after each: terrain, caves,
// trees, meshing. Within a pass chunks are handed to a worker pool; upload
// happens afterwards on the calling goroutine, which must own the GL context
// when a GPU uploader is used.
package pipeline

import (
	"fmt"
	"log"
	"time"

	"github.com/alitto/pond/v2"

	"mini-voxel/internal/meshing"
	"mini-voxel/internal/metrics"
	"mini-voxel/internal/noise"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"
	"mini-voxel/internal/worldgen"
)

// Pass names, also used as metric labels.
const (
	PassTerrain = "terrain"
	PassCaves   = "caves"
	PassTrees   = "trees"
	PassMeshing = "meshing"
	PassUpload  = "upload"
)

type Options struct {
	Workers int
	Caves   bool
	Trees   bool
}

// DefaultOptions runs every pass on a single worker.
func DefaultOptions() Options {
	return Options{Workers: 1, Caves: true, Trees: true}
}

// Stats summarises a finished build.
type Stats struct {
	Chunks   int
	Segments int // segments holding geometry
	Vertices int
	Indices  int
	Passes   map[string]time.Duration
	Total    time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d chunks, %d segments, %d vertices, %d indices in %v",
		s.Chunks, s.Segments, s.Vertices, s.Indices, s.Total.Round(time.Millisecond))
}

// Build generates every chunk of w from src, meshes it and uploads the
// result through u.
func Build(w *world.World, src noise.Source, opts Options, u world.Uploader) (Stats, error) {
	defer profiling.Track("pipeline.Build")()

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	gen := worldgen.NewGenerator(w, src)
	gen.Caves = opts.Caves
	gen.Trees = opts.Trees

	start := time.Now()
	stats := Stats{
		Chunks: len(w.Chunks()),
		Passes: make(map[string]time.Duration, 5),
	}

	passes := []struct {
		name string
		fn   func(c *world.Chunk) error
	}{
		{PassTerrain, func(c *world.Chunk) error { return gen.GenerateTerrain(c.StartX, c.StartZ) }},
		{PassCaves, func(c *world.Chunk) error { return gen.GenerateCaves(c.StartX, c.StartZ) }},
		{PassTrees, func(c *world.Chunk) error { return gen.GenerateTrees(c.StartX, c.StartZ) }},
		{PassMeshing, func(c *world.Chunk) error {
			meshing.MeshChunk(w, c)
			return nil
		}},
	}
	for _, p := range passes {
		passStart := time.Now()
		err := runPass(pool, p.name, w.Chunks(), p.fn)
		stats.Passes[p.name] = time.Since(passStart)
		if err != nil {
			return stats, err
		}
	}

	uploadStart := time.Now()
	done := metrics.ObservePass(PassUpload)
	for _, c := range w.Chunks() {
		for i := range c.Segments {
			s := &c.Segments[i]
			stats.Vertices += len(s.Vertices)
			stats.Indices += len(s.Indices)
			s.Upload(u)
			if s.HasGeometry() {
				stats.Segments++
			}
		}
	}
	done()
	stats.Passes[PassUpload] = time.Since(uploadStart)
	stats.Total = time.Since(start)

	log.Printf("world built: %s", stats)
	return stats, nil
}

// runPass applies fn to every chunk on the pool and waits for the pass to
// drain. The first error is returned; chunks not yet started are skipped.
func runPass(pool pond.Pool, name string, chunks []*world.Chunk, fn func(c *world.Chunk) error) error {
	defer metrics.ObservePass(name)()

	group := pool.NewGroup()
	for _, c := range chunks {
		c := c
		group.SubmitErr(func() error {
			if err := fn(c); err != nil {
				return fmt.Errorf("%s pass, chunk (%d, %d): %w", name, c.StartX, c.StartZ, err)
			}
			return nil
		})
	}
	return group.Wait()
}
