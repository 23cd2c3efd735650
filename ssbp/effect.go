package ssbp

import (
	"fmt"
)

// EffectNodeType is the role of a node within a particle effect's tree.
type EffectNodeType uint16

const (
	EFFECT_NODE_ROOT EffectNodeType = iota
	EFFECT_NODE_EMITTER
	EFFECT_NODE_PARTICLE

	effectNodeTypeCount
)

// String implements the stringer interface, using the spelling the authoring
// tool writes into effect files.
func (t EffectNodeType) String() string {
	switch t {
	case EFFECT_NODE_ROOT:
		return "Root"
	case EFFECT_NODE_EMITTER:
		return "Emmiter"
	case EFFECT_NODE_PARTICLE:
		return "Particle"
	}
	return fmt.Sprintf("effect node type %d unknown", uint16(t))
}

// EffectBlendType is the blend operation used to draw an effect node.
type EffectBlendType uint16

const (
	EFFECT_BLEND_MIX EffectBlendType = iota
	EFFECT_BLEND_ADD

	effectBlendTypeCount
)

func (t EffectBlendType) String() string {
	switch t {
	case EFFECT_BLEND_MIX:
		return "Mix"
	case EFFECT_BLEND_ADD:
		return "Add"
	}
	return fmt.Sprintf("effect blend type %d unknown", uint16(t))
}

// EffectFile is the header of one particle effect.
type EffectFile struct {
	Name           StringRef
	FPS            uint16
	IsLockRandSeed uint16
	LockRandSeed   uint16
	LayoutScaleX   uint16
	LayoutScaleY   uint16
	NumNodes       uint16
	Nodes          Ref[EffectNode]
}

// NodeEntries reads the effect's nodes in array order.
func (e EffectFile) NodeEntries(v *View) ([]EffectNode, error) {
	return DerefArray(v, e.Nodes, int(e.NumNodes))
}

// EffectNode is one node of an effect's tree. CellIndex indexes the
// project's cell table, or is -1. Behaviors points at NumBehaviors offsets of
// behavior records.
type EffectNode struct {
	ArrayIndex   int16
	ParentIndex  int16
	Type         EffectNodeType
	CellIndex    int16
	BlendType    EffectBlendType
	NumBehaviors uint16
	Behaviors    Ref[uint32]
}

func (n *EffectNode) check() error {
	if n.Type >= effectNodeTypeCount {
		return &UnknownDiscriminantError{Kind: "effect node type", Value: int(n.Type)}
	}
	if n.BlendType >= effectBlendTypeCount {
		return &UnknownDiscriminantError{Kind: "effect blend type", Value: int(n.BlendType)}
	}
	return nil
}

// BehaviorOffsets reads the offsets of the node's behavior records.
func (n EffectNode) BehaviorOffsets(v *View) ([]uint32, error) {
	return DerefArray(v, n.Behaviors, int(n.NumBehaviors))
}
