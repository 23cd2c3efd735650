package ssbp

import (
	"fmt"
)

// PartType is the kind of node a part is in an animation rig.
type PartType uint16

const (
	PART_TYPE_NULL PartType = iota
	PART_TYPE_NORMAL
	PART_TYPE_TEXT
	PART_TYPE_INSTANCE
	PART_TYPE_ARMATURE
	PART_TYPE_EFFECT
	PART_TYPE_MESH
	PART_TYPE_MOVENODE
	PART_TYPE_CONSTRAINT
	PART_TYPE_MASK
	PART_TYPE_JOINT
	PART_TYPE_BONEPOINT

	partTypeCount
)

func (t PartType) String() string {
	switch t {
	case PART_TYPE_NULL:
		return "null"
	case PART_TYPE_NORMAL:
		return "normal"
	case PART_TYPE_TEXT:
		return "text"
	case PART_TYPE_INSTANCE:
		return "instance"
	case PART_TYPE_ARMATURE:
		return "armature"
	case PART_TYPE_EFFECT:
		return "effect"
	case PART_TYPE_MESH:
		return "mesh"
	case PART_TYPE_MOVENODE:
		return "movenode"
	case PART_TYPE_CONSTRAINT:
		return "constraint"
	case PART_TYPE_MASK:
		return "mask"
	case PART_TYPE_JOINT:
		return "joint"
	case PART_TYPE_BONEPOINT:
		return "bonepoint"
	}
	return fmt.Sprintf("part type %d unknown", uint16(t))
}

// BoundsType selects the hit-test shape of a part.
type BoundsType uint16

const (
	BOUNDS_TYPE_NONE BoundsType = iota
	BOUNDS_TYPE_QUAD
	BOUNDS_TYPE_AABB
	BOUNDS_TYPE_CIRCLE
	BOUNDS_TYPE_CIRCLE_SMIN
	BOUNDS_TYPE_CIRCLE_SMAX

	boundsTypeCount
)

func (t BoundsType) String() string {
	switch t {
	case BOUNDS_TYPE_NONE:
		return "none"
	case BOUNDS_TYPE_QUAD:
		return "quad"
	case BOUNDS_TYPE_AABB:
		return "aabb"
	case BOUNDS_TYPE_CIRCLE:
		return "circle"
	case BOUNDS_TYPE_CIRCLE_SMIN:
		return "circle_smin"
	case BOUNDS_TYPE_CIRCLE_SMAX:
		return "circle_smax"
	}
	return fmt.Sprintf("bounds type %d unknown", uint16(t))
}

// BlendType is the alpha blend operation used to draw a part.
type BlendType uint16

const (
	BLEND_TYPE_MIX BlendType = iota
	BLEND_TYPE_MUL
	BLEND_TYPE_ADD
	BLEND_TYPE_SUB
	BLEND_TYPE_MULALPHA
	BLEND_TYPE_SCREEN
	BLEND_TYPE_EXCLUSION
	BLEND_TYPE_INVERT

	blendTypeCount
)

func (t BlendType) String() string {
	switch t {
	case BLEND_TYPE_MIX:
		return "mix"
	case BLEND_TYPE_MUL:
		return "mul"
	case BLEND_TYPE_ADD:
		return "add"
	case BLEND_TYPE_SUB:
		return "sub"
	case BLEND_TYPE_MULALPHA:
		return "mulalpha"
	case BLEND_TYPE_SCREEN:
		return "screen"
	case BLEND_TYPE_EXCLUSION:
		return "exclusion"
	case BLEND_TYPE_INVERT:
		return "invert"
	}
	return fmt.Sprintf("blend type %d unknown", uint16(t))
}

// AnimePack is a rig (its parts) together with the animations played on it.
type AnimePack struct {
	Name     StringRef
	Parts    Ref[PartEntry]
	Anims    Ref[AnimEntry]
	NumParts uint16
	NumAnims uint16
}

// PartEntries reads the pack's parts in rig order.
func (a AnimePack) PartEntries(v *View) ([]PartEntry, error) {
	return DerefArray(v, a.Parts, int(a.NumParts))
}

// AnimEntries reads the pack's animations.
func (a AnimePack) AnimEntries(v *View) ([]AnimEntry, error) {
	return DerefArray(v, a.Anims, int(a.NumAnims))
}

// PartEntry is one node of a rig. ParentIndex is -1 for the root.
type PartEntry struct {
	Name          StringRef
	Index         int16
	ParentIndex   int16
	Type          PartType
	BoundsType    BoundsType
	BlendType     BlendType
	_             uint16
	RefName       StringRef
	EffectName    StringRef
	ColorLabel    StringRef
	MaskInfluence uint16
	_             uint16
}

func (p *PartEntry) check() error {
	if p.Type >= partTypeCount {
		return &UnknownDiscriminantError{Kind: "part type", Value: int(p.Type)}
	}
	if p.BoundsType >= boundsTypeCount {
		return &UnknownDiscriminantError{Kind: "bounds type", Value: int(p.BoundsType)}
	}
	if p.BlendType >= blendTypeCount {
		return &UnknownDiscriminantError{Kind: "blend type", Value: int(p.BlendType)}
	}
	return nil
}

// AnimEntry is one animation clip of an anime pack.
//
// DefaultData points at one AnimInitial per part. FrameData points at
// TotalFrames offsets, each the start of one frame's keyframe stream. The
// mesh references are carried for layout only.
type AnimEntry struct {
	Name         StringRef
	DefaultData  Ref[AnimInitial]
	FrameData    Ref[uint32]
	UserData     uint32
	Labels       Ref[LabelEntry]
	MeshUV       Ref[uint32]
	MeshIndices  Ref[uint32]
	StartFrame   uint16
	EndFrame     uint16
	TotalFrames  uint16
	FPS          uint16
	NumLabels    uint16
	CanvasWidth  uint16
	CanvasHeight uint16
	_            uint16
	CanvasPivotX float32
	CanvasPivotY float32
}

// InitialData reads the default pose of each of the pack's numParts parts.
func (a AnimEntry) InitialData(v *View, numParts int) ([]AnimInitial, error) {
	return DerefArray(v, a.DefaultData, numParts)
}

// FrameOffsets reads the start offset of each frame's keyframe stream.
func (a AnimEntry) FrameOffsets(v *View) ([]uint32, error) {
	return DerefArray(v, a.FrameData, int(a.TotalFrames))
}

// LabelEntries reads the clip's labels.
func (a AnimEntry) LabelEntries(v *View) ([]LabelEntry, error) {
	return DerefArray(v, a.Labels, int(a.NumLabels))
}

// AnimInitial is the default pose of one part within one animation. Values
// not present in a frame's keyframe stream take the value stored here.
type AnimInitial struct {
	Index        uint16
	_            uint16
	LowFlags     uint32
	HighFlags    uint32
	Priority     uint16
	CellIndex    uint16
	Opacity      uint16
	LocalOpacity uint16
	MaskLimen    uint16
	_            uint16

	Position       [3]float32
	Pivot          [2]float32
	Rotation       [3]float32
	Scale          [2]float32
	LocalScale     [2]float32
	Size           [2]float32
	UVMove         [2]float32
	UVRotation     float32
	UVScale        [2]float32
	BoundingRadius float32

	InstanceCurrentFrame int32
	InstanceStartFrame   int32
	InstanceEndFrame     int32
	InstanceLoopNum      int32
	InstanceSpeed        float32
	InstanceLoopFlag     int32

	EffectCurrentFrame int32
	EffectStartTime    int32
	EffectSpeed        float32
	EffectLoopFlag     int32
}

// NeutralAnimInitial returns the default pose the authoring tool assumes for a
// part on which no attribute was set.
func NeutralAnimInitial(index uint16) AnimInitial {
	return AnimInitial{
		Index:         index,
		Opacity:       0xFF,
		LocalOpacity:  0xFF,
		Scale:         [2]float32{1, 1},
		LocalScale:    [2]float32{1, 1},
		UVScale:       [2]float32{1, 1},
		InstanceSpeed: 1,
		EffectSpeed:   1,
	}
}

// LabelEntry marks a named frame of an animation.
type LabelEntry struct {
	Name StringRef
	Time uint16
	_    uint16
}
