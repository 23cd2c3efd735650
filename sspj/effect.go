package sspj

import (
	"fmt"
	"strconv"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/effect"
	"badc0de.net/pkg/go-ssbp/xmls"
)

func renderEffect(e *effect.Effect) xmls.Effect {
	doc := xmls.Effect{
		Version: xmls.VERSION,
		Name:    e.Name,
		EffectData: xmls.EffectData{
			LockRandSeed:   e.LockRandSeed,
			IsLockRandSeed: e.IsLockRandSeed,
			FPS:            e.FPS,
			BGColor:        "FF000000",
			RenderVersion:  2,
		},
	}
	for _, n := range e.Nodes {
		node := xmls.EffectNode{
			Name:        n.Name,
			Type:        n.Type.String(),
			ArrayIndex:  n.ArrayIndex,
			ParentIndex: n.ParentIndex,
			Visible:     1,
		}
		if n.Type != ssbp.EFFECT_NODE_ROOT {
			nb := &xmls.NodeBehavior{
				CellName:    n.CellName,
				CellMapName: refFile(n.CellMapName, CELLMAP_EXT),
				BlendType:   n.BlendType.String(),
			}
			for _, b := range n.Behaviors {
				nb.List.Value = append(nb.List.Value, renderBehavior(b))
			}
			node.Behavior = nb
		}
		doc.EffectData.NodeList.Node = append(doc.EffectData.NodeList.Node, node)
	}
	return doc
}

func u32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func hex(v uint32) string {
	return fmt.Sprintf("%X", v)
}

func frange(name string, min, max float32) xmls.Param {
	return xmls.RangeParam(name, xmls.Float(min), xmls.Float(max))
}

func ftext(name string, f float32) xmls.Param {
	return xmls.TextParam(name, xmls.Float(f))
}

// renderBehavior names each behavior and its parameters the way the
// authoring tool does, which differs from the names in the binary format.
func renderBehavior(b effect.Behavior) xmls.BehaviorValue {
	var name string
	var params []xmls.Param
	switch b := b.(type) {
	case effect.Basic:
		name = "Basic"
		params = []xmls.Param{
			xmls.TextParam("priority", u32(b.Priority)),
			xmls.TextParam("maxximumParticle", u32(b.MaximumParticle)),
			xmls.TextParam("attimeCreate", u32(b.AttimeCreate)),
			xmls.TextParam("interval", u32(b.Interval)),
			xmls.TextParam("lifetime", u32(b.Lifetime)),
			frange("speed", b.SpeedMin, b.SpeedMax),
			xmls.RangeParam("lifespan", u32(b.LifespanMin), u32(b.LifespanMax)),
			ftext("angle", b.Angle),
			ftext("angleVariance", b.AngleVariance),
		}
	case effect.RndSeedChange:
		name = "OverWriteSeed"
		params = []xmls.Param{xmls.TextParam("seed", u32(b.Seed))}
	case effect.Delay:
		name = "Delay"
		params = []xmls.Param{xmls.TextParam("DelayTime", u32(b.DelayTime))}
	case effect.Gravity:
		name = "Gravity"
		params = []xmls.Param{xmls.TextParam("Gravity", xmls.Pair(xmls.Float(b.X), xmls.Float(b.Y)))}
	case effect.Position:
		name = "init_position"
		params = []xmls.Param{
			frange("OffsetX", b.OffsetXMin, b.OffsetXMax),
			frange("OffsetY", b.OffsetYMin, b.OffsetYMax),
		}
	case effect.Rotation:
		name = "init_rotation"
		params = []xmls.Param{
			frange("Rotation", b.RotationMin, b.RotationMax),
			frange("RotationAdd", b.RotationAddMin, b.RotationAddMax),
		}
	case effect.TransRotation:
		name = "trans_rotation"
		params = []xmls.Param{
			ftext("RotationFactor", b.RotationFactor),
			ftext("EndLifePerTime", b.EndLifeTimePer),
		}
	case effect.TransSpeed:
		name = "trans_speed"
		params = []xmls.Param{frange("Speed", b.SpeedMin, b.SpeedMax)}
	case effect.TangentialAcceleration:
		name = "add_tangentiala"
		params = []xmls.Param{frange("Acceleration", b.AccelerationMin, b.AccelerationMax)}
	case effect.InitColor:
		name = "init_vertexcolor"
		params = []xmls.Param{xmls.RangeParam("Color", hex(b.ColorMin), hex(b.ColorMax))}
	case effect.TransColor:
		name = "trans_vertexcolor"
		params = []xmls.Param{xmls.RangeParam("Color", hex(b.ColorMin), hex(b.ColorMax))}
	case effect.AlphaFade:
		name = "trans_colorfade"
		params = []xmls.Param{frange("Disprange", b.DisprangeMin, b.DisprangeMax)}
	case effect.Size:
		name = "init_size"
		params = sizeParams(b.SizeXMin, b.SizeXMax, b.SizeYMin, b.SizeYMax, b.ScaleFactorMin, b.ScaleFactorMax)
	case effect.TransSize:
		name = "trans_size"
		params = sizeParams(b.SizeXMin, b.SizeXMax, b.SizeYMin, b.SizeYMax, b.ScaleFactorMin, b.ScaleFactorMax)
	case effect.PointGravity:
		name = "add_pointgravity"
		params = []xmls.Param{
			xmls.TextParam("Position", xmls.Pair(xmls.Float(b.X), xmls.Float(b.Y))),
			ftext("Power", b.Power),
		}
	case effect.TurnToDirectionEnabled:
		name = "TurnToDirection"
		params = []xmls.Param{ftext("Rotation", b.Rotation)}
	case effect.InfiniteEmitEnabled:
		name = "InfiniteEmit"
		params = []xmls.Param{xmls.TextParam("calcGen", u32(b.Flag))}
	}
	return xmls.BehaviorValue{Name: name, NameElem: name, Params: params}
}

func sizeParams(xMin, xMax, yMin, yMax, sMin, sMax float32) []xmls.Param {
	return []xmls.Param{
		frange("SizeX", xMin, xMax),
		frange("SizeY", yMin, yMax),
		frange("ScaleFactor", sMin, sMax),
	}
}
