package physics_test

import (
	"testing"

	"mini-voxel/internal/physics"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRaycastFirstSolid(t *testing.T) {
	w := world.New(1)
	w.SetVoxel(3, 5, 0, world.NewVoxel(world.MaterialDirt))

	start := mgl32.Vec3{0.5, 5.5, 0.5}
	dir := mgl32.Vec3{1, 0, 0}

	// Test 1: hit within reach
	result := physics.RaycastFirstSolid(w, start, dir, 4, 0.01)
	if !result.Hit {
		t.Fatalf("Expected hit, got miss")
	}
	if result.HitPosition != [3]int{3, 5, 0} {
		t.Errorf("Expected hit at {3,5,0}, got %v", result.HitPosition)
	}
	if result.AdjacentPosition != [3]int{2, 5, 0} {
		t.Errorf("Expected adjacent at {2,5,0}, got %v", result.AdjacentPosition)
	}
	if result.Voxel.Material() != world.MaterialDirt {
		t.Errorf("Expected dirt, got %v", result.Voxel)
	}
	// Ray starts at X=0.5 and enters the voxel at X=3.0
	if result.Distance < 2.49 || result.Distance > 2.52 {
		t.Errorf("Expected distance 2.5, got %f", result.Distance)
	}

	// Test 2: miss due to reach
	if r := physics.RaycastFirstSolid(w, start, dir, 2, 0.01); r.Hit {
		t.Errorf("Expected miss due to reach, got hit at %v", r.HitPosition)
	}

	// Test 3: miss in the wrong direction
	if r := physics.RaycastFirstSolid(w, start, mgl32.Vec3{0, 1, 0}, 4, 0.01); r.Hit {
		t.Errorf("Expected miss, got hit at %v", r.HitPosition)
	}

	// Test 4: diagonal hit
	w.SetVoxel(2, 7, 2, world.NewVoxel(world.MaterialBedrock))
	diag := mgl32.Vec3{1, 1, 1}.Normalize()
	r := physics.RaycastFirstSolid(w, mgl32.Vec3{0.5, 5.5, 0.5}, diag, 4, 0.01)
	if !r.Hit || r.HitPosition != [3]int{2, 7, 2} {
		t.Errorf("Expected diagonal hit at {2,7,2}, got %+v", r)
	}
}

func TestRaycastOutsideWorld(t *testing.T) {
	w := world.New(1)
	// start above the ceiling and look down into empty sky
	r := physics.Raycast(w, mgl32.Vec3{0.5, 300, 0.5}, mgl32.Vec3{0, -1, 0})
	if r.Hit {
		t.Errorf("Expected miss outside the world, got %v", r.HitPosition)
	}

	// start outside horizontally and march into a solid voxel at the edge
	w.SetVoxel(-16, 10, 0, world.NewVoxel(world.MaterialDirt))
	r = physics.Raycast(w, mgl32.Vec3{-18.5, 10.5, 0.5}, mgl32.Vec3{1, 0, 0})
	if !r.Hit || r.HitPosition != [3]int{-16, 10, 0} {
		t.Errorf("Expected hit at world edge, got %+v", r)
	}
}

func TestRaycastZeroStep(t *testing.T) {
	w := world.New(1)
	if r := physics.RaycastFirstSolid(w, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 4, 0); r.Hit {
		t.Errorf("Expected miss for zero step")
	}
}

func TestRayIntersectsPlane(t *testing.T) {
	// west face of voxel x=3
	p := physics.Plane{Normal: mgl32.Vec3{-1, 0, 0}, D: -3}
	hit, ok := physics.RayIntersectsPlane(mgl32.Vec3{0, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, p)
	if !ok {
		t.Fatalf("Expected intersection")
	}
	if !hit.ApproxEqual(mgl32.Vec3{3, 0.5, 0.5}) {
		t.Errorf("Expected hit at (3,0.5,0.5), got %v", hit)
	}

	if _, ok := physics.RayIntersectsPlane(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, p); ok {
		t.Errorf("Expected no intersection for a parallel ray")
	}
	if _, ok := physics.RayIntersectsPlane(mgl32.Vec3{3, 1, 1}, mgl32.Vec3{1, 0, 0}, p); ok {
		t.Errorf("Expected no intersection when starting on the plane")
	}
}

func TestGroundLevel(t *testing.T) {
	w := world.New(1)
	for y := 0; y < 10; y++ {
		w.SetVoxel(2, y, -3, world.NewVoxel(world.MaterialDirt))
	}
	if g := physics.GroundLevel(w, 2.5, -2.5); g != 10 {
		t.Errorf("Expected ground 10, got %f", g)
	}
	if g := physics.GroundLevel(w, 7.5, 7.5); g != 0 {
		t.Errorf("Expected ground 0 for empty column, got %f", g)
	}
	if g := physics.GroundLevel(w, 100, 0); g != 0 {
		t.Errorf("Expected ground 0 outside the world, got %f", g)
	}
}

func BenchmarkRaycast(b *testing.B) {
	w := world.New(1)
	// Build a simple wall
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			w.SetVoxel(x, y, 5, world.NewVoxel(world.MaterialDirt))
		}
	}
	start := mgl32.Vec3{0.5, 8.5, 0.5}
	dir := mgl32.Vec3{0, 0, 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.RaycastFirstSolid(w, start, dir, 10, 0.01)
	}
}
