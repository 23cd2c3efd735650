package anime

import (
	"fmt"
)

// PartFlag is one bit of the 32-bit word that opens a part's record in a
// frame stream. The low three bits are state; every other set bit is followed
// by its field, in ascending bit order.
type PartFlag uint32

const (
	PART_FLAG_INVISIBLE PartFlag = 1 << iota
	PART_FLAG_FLIP_H
	PART_FLAG_FLIP_V

	PART_FLAG_CELL_INDEX
	PART_FLAG_POSITION_X
	PART_FLAG_POSITION_Y
	PART_FLAG_POSITION_Z
	PART_FLAG_PIVOT_X
	PART_FLAG_PIVOT_Y
	PART_FLAG_ROTATIONX
	PART_FLAG_ROTATIONY
	PART_FLAG_ROTATIONZ
	PART_FLAG_SCALE_X
	PART_FLAG_SCALE_Y
	PART_FLAG_LOCALSCALE_X
	PART_FLAG_LOCALSCALE_Y
	PART_FLAG_OPACITY
	PART_FLAG_LOCALOPACITY
	PART_FLAG_PARTS_COLOR
	PART_FLAG_VERTEX_TRANSFORM

	PART_FLAG_SIZE_X
	PART_FLAG_SIZE_Y

	PART_FLAG_U_MOVE
	PART_FLAG_V_MOVE
	PART_FLAG_UV_ROTATION
	PART_FLAG_U_SCALE
	PART_FLAG_V_SCALE
	PART_FLAG_BOUNDINGRADIUS

	PART_FLAG_MASK
	PART_FLAG_PRIORITY

	PART_FLAG_INSTANCE_KEYFRAME
	PART_FLAG_EFFECT_KEYFRAME
)

// Tag names an attribute track in the authoring tool's documents.
type Tag string

const (
	TAG_CELL Tag = "CELL"
	TAG_POSX Tag = "POSX"
	TAG_POSY Tag = "POSY"
	TAG_POSZ Tag = "POSZ"
	TAG_PVTX Tag = "PVTX"
	TAG_PVTY Tag = "PVTY"
	TAG_ROTX Tag = "ROTX"
	TAG_ROTY Tag = "ROTY"
	TAG_ROTZ Tag = "ROTZ"
	TAG_SCLX Tag = "SCLX"
	TAG_SCLY Tag = "SCLY"
	TAG_LSCX Tag = "LSCX"
	TAG_LSCY Tag = "LSCY"
	TAG_ALPH Tag = "ALPH"
	TAG_LALP Tag = "LALP"
	TAG_PCOL Tag = "PCOL"
	TAG_VERT Tag = "VERT"
	TAG_SIZX Tag = "SIZX"
	TAG_SIZY Tag = "SIZY"
	TAG_UVTX Tag = "UVTX"
	TAG_UVTY Tag = "UVTY"
	TAG_UVRZ Tag = "UVRZ"
	TAG_UVSX Tag = "UVSX"
	TAG_UVSY Tag = "UVSY"
	TAG_BNDR Tag = "BNDR"
	TAG_MASK Tag = "MASK"
	TAG_PRIO Tag = "PRIO"
	TAG_HIDE Tag = "HIDE"
	TAG_FLPH Tag = "FLPH"
	TAG_FLPV Tag = "FLPV"
)

// tagOrder is the order in which a part's tracks are listed.
var tagOrder = []Tag{
	TAG_CELL,
	TAG_POSX, TAG_POSY, TAG_POSZ,
	TAG_PVTX, TAG_PVTY,
	TAG_ROTX, TAG_ROTY, TAG_ROTZ,
	TAG_SCLX, TAG_SCLY,
	TAG_LSCX, TAG_LSCY,
	TAG_ALPH, TAG_LALP,
	TAG_PRIO,
	TAG_FLPH, TAG_FLPV, TAG_HIDE,
	TAG_PCOL, TAG_VERT,
	TAG_SIZX, TAG_SIZY,
	TAG_UVTX, TAG_UVTY, TAG_UVRZ, TAG_UVSX, TAG_UVSY,
	TAG_BNDR,
	TAG_MASK,
}

// ColorBlendType is how a parts color key combines with the cell's pixels.
type ColorBlendType uint8

const (
	COLOR_BLEND_MIX ColorBlendType = iota
	COLOR_BLEND_MUL
	COLOR_BLEND_ADD
	COLOR_BLEND_SUB

	colorBlendTypeCount
)

func (t ColorBlendType) String() string {
	switch t {
	case COLOR_BLEND_MIX:
		return "mix"
	case COLOR_BLEND_MUL:
		return "mul"
	case COLOR_BLEND_ADD:
		return "add"
	case COLOR_BLEND_SUB:
		return "sub"
	}
	return fmt.Sprintf("color blend type %d unknown", uint8(t))
}

// Vertex is a corner of a part's quad.
type Vertex int

const (
	VERTEX_LT Vertex = iota
	VERTEX_RT
	VERTEX_LB
	VERTEX_RB

	VERTEX_COUNT
)

func (v Vertex) String() string {
	switch v {
	case VERTEX_LT:
		return "LT"
	case VERTEX_RT:
		return "RT"
	case VERTEX_LB:
		return "LB"
	case VERTEX_RB:
		return "RB"
	}
	return fmt.Sprintf("vertex %d unknown", int(v))
}

// VERTEX_FLAG_ALL in a parts color selector means a single color applies to
// the whole quad.
const VERTEX_FLAG_ALL = 1 << 4

// Sizes of the composite blocks that are consumed but not turned into keys.
const (
	INSTANCE_KEYFRAME_SIZE = 24
	EFFECT_KEYFRAME_SIZE   = 16
)
