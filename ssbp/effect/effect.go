// Package effect decodes the particle effects of an .ssbp project: each
// effect's node tree and the behaviors attached to its nodes.
package effect

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
)

// Node is one decoded node of an effect's tree.
type Node struct {
	Name        string
	Type        ssbp.EffectNodeType
	ArrayIndex  int
	ParentIndex int
	BlendType   ssbp.EffectBlendType

	// CellName and CellMapName are empty for nodes drawing no cell.
	CellName    string
	CellMapName string

	Behaviors []Behavior
}

// Effect is one decoded particle effect.
type Effect struct {
	Name           string
	FPS            int
	IsLockRandSeed int
	LockRandSeed   int
	LayoutScaleX   int
	LayoutScaleY   int
	Nodes          []Node
}

// Counter hands out the names of emitter and particle nodes. The authoring
// tool numbers each kind from one, across the whole effect.
type Counter struct {
	emitters, particles int
}

// NewCounter returns a counter for one effect.
func NewCounter() *Counter {
	return &Counter{emitters: 1, particles: 1}
}

// Name returns the name of the next node of type t.
func (c *Counter) Name(t ssbp.EffectNodeType) string {
	switch t {
	case ssbp.EFFECT_NODE_EMITTER:
		n := c.emitters
		c.emitters++
		return fmt.Sprintf("Emitter_%d", n)
	case ssbp.EFFECT_NODE_PARTICLE:
		n := c.particles
		c.particles++
		return fmt.Sprintf("Particle_%d", n)
	}
	return "Root"
}

// DecodeAll decodes every effect of the project.
func DecodeAll(p *ssbp.Project, cells *cellmap.Table) ([]*Effect, error) {
	files, err := p.EffectFiles()
	if err != nil {
		return nil, errors.Wrap(err, "reading effect table")
	}
	out := make([]*Effect, 0, len(files))
	for i, f := range files {
		e, err := Decode(p, f, cells)
		if err != nil {
			return nil, errors.Wrapf(err, "effect %d", i)
		}
		out = append(out, e)
	}
	return out, nil
}

// Decode decodes one effect. Node cells are resolved through cells.
func Decode(p *ssbp.Project, f ssbp.EffectFile, cells *cellmap.Table) (*Effect, error) {
	v := p.View()
	name, err := v.String(f.Name)
	if err != nil {
		return nil, errors.Wrap(err, "reading effect name")
	}
	entries, err := f.NodeEntries(v)
	if err != nil {
		return nil, errors.Wrapf(err, "reading nodes of %q", name)
	}
	e := &Effect{
		Name:           name,
		FPS:            int(f.FPS),
		IsLockRandSeed: int(f.IsLockRandSeed),
		LockRandSeed:   int(f.LockRandSeed),
		LayoutScaleX:   int(f.LayoutScaleX),
		LayoutScaleY:   int(f.LayoutScaleY),
		Nodes:          make([]Node, 0, len(entries)),
	}

	counter := NewCounter()
	for i, ne := range entries {
		n := Node{
			Name:        counter.Name(ne.Type),
			Type:        ne.Type,
			ArrayIndex:  int(ne.ArrayIndex),
			ParentIndex: int(ne.ParentIndex),
			BlendType:   ne.BlendType,
		}
		if ne.CellIndex >= 0 {
			ref, err := cells.Lookup(int(ne.CellIndex))
			if err != nil {
				return nil, errors.Wrapf(err, "effect %q, node %d", name, i)
			}
			n.CellName = ref.Name
			n.CellMapName = ref.MapName
		}
		offsets, err := ne.BehaviorOffsets(v)
		if err != nil {
			return nil, errors.Wrapf(err, "reading behaviors of effect %q, node %d", name, i)
		}
		for j, off := range offsets {
			b, err := ReadBehavior(v, off)
			if err != nil {
				return nil, errors.Wrapf(err, "effect %q, node %d, behavior %d", name, i, j)
			}
			n.Behaviors = append(n.Behaviors, b)
		}
		glog.V(2).Infof("effect %q node %d: %s %q, parent %d, %d behaviors", name, i, n.Type, n.Name, n.ParentIndex, len(n.Behaviors))
		e.Nodes = append(e.Nodes, n)
	}
	return e, nil
}
