// Package terrain draws the world's render segments with frustum culling.
package terrain

import (
	"mini-voxel/internal/config"
	"mini-voxel/internal/culling"
	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Terrain implements segment rendering
type Terrain struct {
	atlasPath     string
	generateAtlas bool
	shader    *graphics.Shader
	atlas     uint32
	visible   []culling.SegmentRef
}

// NewTerrain creates a terrain renderable sampling the atlas at atlasPath.
// With generateAtlas set a missing file is replaced by the generated atlas.
func NewTerrain(atlasPath string, generateAtlas bool) *Terrain {
	return &Terrain{
		atlasPath:     atlasPath,
		generateAtlas: generateAtlas,
		visible:       make([]culling.SegmentRef, 0, 1024),
	}
}

func (t *Terrain) Init() error {
	var err error
	t.shader, err = graphics.LoadShader("voxel")
	if err != nil {
		return err
	}
	t.atlas, err = graphics.GetAtlasTexture(t.atlasPath, t.generateAtlas)
	if err != nil {
		return err
	}

	t.shader.Use()
	t.shader.SetInt("textureAtlas", 0)
	light := mgl32.Vec3{0.3, 1.0, 0.3}.Normalize()
	t.shader.SetVector3("lightDir", light)
	return nil
}

func (t *Terrain) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderTerrain")()

	if config.GetWireframe() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	t.shader.Use()
	projView := ctx.Proj.Mul4(ctx.View)
	t.shader.SetMatrix4("projViewMatrix", projView)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.atlas)

	var total int
	func() {
		defer profiling.Track("renderer.renderTerrain.cull")()
		t.visible, total = ctx.Frustum.CollectVisible(ctx.World, t.visible)
	}()

	for _, ref := range t.visible {
		// y is baked into the vertices, so only x/z are translated
		model := mgl32.Translate3D(
			float32(ref.Chunk.StartX*world.ChunkWidth),
			0,
			float32(ref.Chunk.StartZ*world.ChunkWidth),
		)
		t.shader.SetMatrix4("modelMatrix", model)
		graphics.Draw(ref.Chunk.Segment(ref.Segment).Handle)
	}
	gl.BindVertexArray(0)

	ctx.Stats.VisibleSegments = len(t.visible)
	ctx.Stats.TotalSegments = total
}

func (t *Terrain) Dispose() {
	if t.shader != nil {
		t.shader.Delete()
	}
	graphics.ReleaseTextures()
}

func (t *Terrain) SetViewport(width, height int) {}
