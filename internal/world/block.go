package world

import "fmt"

// Material identifies what a voxel is made of. Air is the transparency
// sentinel used by every exposure test.
type Material uint16

const (
	MaterialAir Material = iota
	MaterialBedrock
	MaterialDirt
	MaterialGrass
	MaterialGrassSide // render-only, never stored by generation
	MaterialWoodTrunk
	MaterialLeaves
)

var materialNames = map[Material]string{
	MaterialAir:       "air",
	MaterialBedrock:   "bedrock",
	MaterialDirt:      "dirt",
	MaterialGrass:     "grass",
	MaterialGrassSide: "grass_side",
	MaterialWoodTrunk: "wood_trunk",
	MaterialLeaves:    "leaves",
}

func (m Material) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return fmt.Sprintf("material(%d)", uint16(m))
}

// Voxel packs a single block into 16 bits:
// bits 0-9 material, bits 10-13 light, bit 14 flag1, bit 15 flag2.
type Voxel uint16

const (
	materialMask = 0x03FF
	lightShift   = 10
	lightMask    = 0x0F << lightShift
	flag1Bit     = 1 << 14
	flag2Bit     = 1 << 15

	MaxLight = 15
)

// Air is the zero voxel.
const Air Voxel = 0

// NewVoxel returns a voxel of material m with light and flags cleared.
func NewVoxel(m Material) Voxel {
	return Voxel(uint16(m) & materialMask)
}

func (v Voxel) Material() Material { return Material(uint16(v) & materialMask) }
func (v Voxel) Light() uint8       { return uint8((uint16(v) & lightMask) >> lightShift) }
func (v Voxel) Flag1() bool        { return uint16(v)&flag1Bit != 0 }
func (v Voxel) Flag2() bool        { return uint16(v)&flag2Bit != 0 }

// IsAir reports whether the voxel is transparent.
func (v Voxel) IsAir() bool { return v.Material() == MaterialAir }

// WithMaterial returns v with its material replaced, keeping light and flags.
func (v Voxel) WithMaterial(m Material) Voxel {
	return Voxel(uint16(v)&^materialMask | uint16(m)&materialMask)
}

// WithLight returns v with its light level set; values above MaxLight are clamped.
func (v Voxel) WithLight(l uint8) Voxel {
	if l > MaxLight {
		l = MaxLight
	}
	return Voxel(uint16(v)&^lightMask | uint16(l)<<lightShift)
}

func (v Voxel) WithFlag1(on bool) Voxel { return v.withBit(flag1Bit, on) }
func (v Voxel) WithFlag2(on bool) Voxel { return v.withBit(flag2Bit, on) }

func (v Voxel) withBit(bit uint16, on bool) Voxel {
	if on {
		return Voxel(uint16(v) | bit)
	}
	return Voxel(uint16(v) &^ bit)
}

func (v Voxel) String() string {
	return fmt.Sprintf("%s(light=%d)", v.Material(), v.Light())
}
