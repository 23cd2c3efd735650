package ssbptest

import (
	"bytes"
	"encoding/binary"

	"badc0de.net/pkg/go-ssbp/ssbp"
)

// Behavior lays out a behavior record: the discriminant, two bytes of
// padding, then payload. It returns the record's offset.
func (b *Builder) Behavior(typ uint16, payload interface{}) uint32 {
	rec := &bytes.Buffer{}
	binary.Write(rec, binary.LittleEndian, typ)
	rec.Write([]byte{0, 0})
	if payload != nil {
		if err := binary.Write(rec, binary.LittleEndian, payload); err != nil {
			panic(err)
		}
	}
	return b.Raw(rec.Bytes())
}

// Node describes one node of an effect.
type Node struct {
	Type      ssbp.EffectNodeType
	Parent    int16
	Cell      int16
	Blend     ssbp.EffectBlendType
	Behaviors []uint32
}

// EffectFile lays out an effect's nodes and returns the effect record, ready
// to be passed to SetEffects.
func (b *Builder) EffectFile(name string, fps uint16, nodes ...Node) ssbp.EffectFile {
	entries := make([]ssbp.EffectNode, len(nodes))
	for i, n := range nodes {
		entries[i] = ssbp.EffectNode{
			ArrayIndex:   int16(i),
			ParentIndex:  n.Parent,
			Type:         n.Type,
			CellIndex:    n.Cell,
			BlendType:    n.Blend,
			NumBehaviors: uint16(len(n.Behaviors)),
		}
		if len(n.Behaviors) > 0 {
			entries[i].Behaviors = ssbp.Ref[uint32]{Offset: b.Put(n.Behaviors)}
		}
	}
	ef := ssbp.EffectFile{
		Name:     b.String(name),
		FPS:      fps,
		NumNodes: uint16(len(nodes)),
	}
	if len(entries) > 0 {
		ef.Nodes = ssbp.Ref[ssbp.EffectNode]{Offset: b.Put(entries)}
	}
	return ef
}

// SetEffects stores the effect table and points the header at it.
func (b *Builder) SetEffects(files ...ssbp.EffectFile) {
	h := b.Header()
	h.EffectFiles = ssbp.Ref[ssbp.EffectFile]{Offset: b.Put(files)}
	h.NumEffectFiles = uint16(len(files))
}
