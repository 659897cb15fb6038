package meshing

import "mini-voxel/internal/world"

// Face identifies one side of a voxel. The value is written into the w
// component of every vertex so shaders can shade per face.
type Face int

const (
	FaceEast  Face = iota // +x
	FaceUp                // +y
	FaceWest              // -x
	FaceDown              // -y
	FaceNorth             // +z
	FaceSouth             // -z
)

// AtlasTiles is the number of tiles per row and column of the texture atlas.
const AtlasTiles = 32

type faceDef struct {
	corners [4][3]float32
	uvs     [4][2]float32
	normal  [3]int
}

var faceDefs = [6]faceDef{
	FaceEast: {
		corners: [4][3]float32{{1, 0, 1}, {1, 1, 1}, {1, 1, 0}, {1, 0, 0}},
		uvs:     [4][2]float32{{0, 1}, {0, 0}, {1, 0}, {1, 1}},
		normal:  [3]int{1, 0, 0},
	},
	FaceUp: {
		corners: [4][3]float32{{1, 1, 1}, {0, 1, 1}, {0, 1, 0}, {1, 1, 0}},
		uvs:     [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}},
		normal:  [3]int{0, 1, 0},
	},
	FaceWest: {
		corners: [4][3]float32{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}, {0, 1, 0}},
		uvs:     [4][2]float32{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
		normal:  [3]int{-1, 0, 0},
	},
	FaceDown: {
		corners: [4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0}},
		uvs:     [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
		normal:  [3]int{0, -1, 0},
	},
	FaceNorth: {
		corners: [4][3]float32{{0, 1, 1}, {1, 1, 1}, {1, 0, 1}, {0, 0, 1}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		normal:  [3]int{0, 0, 1},
	},
	FaceSouth: {
		corners: [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		uvs:     [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}},
		normal:  [3]int{0, 0, -1},
	},
}

// quadIndices is the winding for the two triangles of a face.
var quadIndices = [6]uint32{0, 2, 1, 0, 3, 2}

// Normal returns the outward unit normal of a face.
func (f Face) Normal() [3]int {
	return faceDefs[f].normal
}

func (f Face) String() string {
	switch f {
	case FaceEast:
		return "east"
	case FaceUp:
		return "up"
	case FaceWest:
		return "west"
	case FaceDown:
		return "down"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	}
	return "unknown"
}

// AtlasUV maps a per-face texture coordinate into the material's atlas tile.
func AtlasUV(m world.Material, u, v float32) (float32, float32) {
	col := float32(int(m) % AtlasTiles)
	row := float32(int(m) / AtlasTiles)
	return (u + col) / AtlasTiles, (v + row) / AtlasTiles
}
