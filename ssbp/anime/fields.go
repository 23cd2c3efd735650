package anime

import (
	"github.com/bradfitz/iter"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
)

// NO_CELL is the cell index meaning a part shows no cell.
const NO_CELL = 0xFFFF

// frameReader reads the fields of one frame's stream.
type frameReader struct {
	c     *ssbp.Cursor
	cells *cellmap.Table
}

// streamField describes the field that follows a set flag bit. Fields with
// an empty tag are consumed without producing keys.
type streamField struct {
	flag PartFlag
	tag  Tag
	read func(r *frameReader) (Value, error)
}

// streamFields lists every field-bearing flag in ascending bit order, which is
// the order their fields appear in a stream.
var streamFields = []streamField{
	{PART_FLAG_CELL_INDEX, TAG_CELL, readCell},
	{PART_FLAG_POSITION_X, TAG_POSX, readFloat},
	{PART_FLAG_POSITION_Y, TAG_POSY, readFloat},
	{PART_FLAG_POSITION_Z, TAG_POSZ, readFloat},
	{PART_FLAG_PIVOT_X, TAG_PVTX, readFloat},
	{PART_FLAG_PIVOT_Y, TAG_PVTY, readFloat},
	{PART_FLAG_ROTATIONX, TAG_ROTX, readFloat},
	{PART_FLAG_ROTATIONY, TAG_ROTY, readFloat},
	{PART_FLAG_ROTATIONZ, TAG_ROTZ, readFloat},
	{PART_FLAG_SCALE_X, TAG_SCLX, readFloat},
	{PART_FLAG_SCALE_Y, TAG_SCLY, readFloat},
	{PART_FLAG_LOCALSCALE_X, TAG_LSCX, readFloat},
	{PART_FLAG_LOCALSCALE_Y, TAG_LSCY, readFloat},
	{PART_FLAG_OPACITY, TAG_ALPH, readOpacity},
	{PART_FLAG_LOCALOPACITY, TAG_LALP, readOpacity},
	{PART_FLAG_PARTS_COLOR, TAG_PCOL, readPartsColor},
	{PART_FLAG_VERTEX_TRANSFORM, TAG_VERT, readVertexOffsets},
	{PART_FLAG_SIZE_X, TAG_SIZX, readFloat},
	{PART_FLAG_SIZE_Y, TAG_SIZY, readFloat},
	{PART_FLAG_U_MOVE, TAG_UVTX, readFloat},
	{PART_FLAG_V_MOVE, TAG_UVTY, readFloat},
	{PART_FLAG_UV_ROTATION, TAG_UVRZ, readFloat},
	{PART_FLAG_U_SCALE, TAG_UVSX, readFloat},
	{PART_FLAG_V_SCALE, TAG_UVSY, readFloat},
	{PART_FLAG_BOUNDINGRADIUS, TAG_BNDR, readFloat},
	{PART_FLAG_MASK, TAG_MASK, readMask},
	{PART_FLAG_PRIORITY, TAG_PRIO, readPriority},
	{PART_FLAG_INSTANCE_KEYFRAME, "", readInstanceKeyframe},
	{PART_FLAG_EFFECT_KEYFRAME, "", readEffectKeyframe},
}

func readFloat(r *frameReader) (Value, error) {
	f, err := r.c.F32()
	if err != nil {
		return nil, err
	}
	return Float(f), nil
}

func readOpacity(r *frameReader) (Value, error) {
	u, err := r.c.U16()
	if err != nil {
		return nil, err
	}
	return Float(float32(u) / 255), nil
}

func readMask(r *frameReader) (Value, error) {
	u, err := r.c.U16()
	if err != nil {
		return nil, err
	}
	return Int(u), nil
}

func readPriority(r *frameReader) (Value, error) {
	i, err := r.c.I16()
	if err != nil {
		return nil, err
	}
	return Int(i), nil
}

func readCell(r *frameReader) (Value, error) {
	u, err := r.c.U16()
	if err != nil {
		return nil, err
	}
	ref, err := cellRef(r.cells, u)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func cellRef(cells *cellmap.Table, index uint16) (CellRef, error) {
	if index == NO_CELL {
		return CellRef{None: true}, nil
	}
	ref, err := cells.Lookup(int(index))
	if err != nil {
		return CellRef{}, err
	}
	return CellRef{MapIndex: ref.MapIndex, MapName: ref.MapName, Name: ref.Name}, nil
}

func readVertexColor(r *frameReader) (VertexColor, error) {
	argb, err := r.c.U32()
	if err != nil {
		return VertexColor{}, err
	}
	rate, err := r.c.F32()
	if err != nil {
		return VertexColor{}, err
	}
	return VertexColor{ARGB: argb, Rate: rate}, nil
}

// readPartsColor reads a selector whose low byte is the blend type and whose
// high byte either has VERTEX_FLAG_ALL set, followed by one color, or has one
// bit per vertex, followed by one color per set bit. Unknown blend types are
// read as mix.
func readPartsColor(r *frameReader) (Value, error) {
	sel, err := r.c.U16()
	if err != nil {
		return nil, err
	}
	pc := PartsColor{Blend: ColorBlendType(sel & 0xFF)}
	if pc.Blend >= colorBlendTypeCount {
		glog.Warningf("parts color at 0x%x: blend type %d unknown, using %s", r.c.Pos()-2, uint8(pc.Blend), COLOR_BLEND_MIX)
		pc.Blend = COLOR_BLEND_MIX
	}
	mask := uint8(sel >> 8)
	if mask&VERTEX_FLAG_ALL != 0 {
		pc.All = true
		pc.Colors[0], err = readVertexColor(r)
		return pc, err
	}
	for v := range iter.N(int(VERTEX_COUNT)) {
		if mask&(1<<v) == 0 {
			continue
		}
		if pc.Colors[v], err = readVertexColor(r); err != nil {
			return nil, err
		}
		pc.Mask |= 1 << v
	}
	return pc, nil
}

func readVertexOffsets(r *frameReader) (Value, error) {
	mask, err := r.c.U16()
	if err != nil {
		return nil, err
	}
	vo := VertexOffsets{}
	for v := range iter.N(int(VERTEX_COUNT)) {
		if mask&(1<<v) == 0 {
			continue
		}
		x, err := r.c.I16()
		if err != nil {
			return nil, err
		}
		y, err := r.c.I16()
		if err != nil {
			return nil, err
		}
		vo.Offsets[v] = [2]int16{x, y}
		vo.Mask |= 1 << v
	}
	return vo, nil
}

func readInstanceKeyframe(r *frameReader) (Value, error) {
	var v [INSTANCE_KEYFRAME_SIZE / 4]uint32
	for i := range v {
		u, err := r.c.U32()
		if err != nil {
			return nil, err
		}
		v[i] = u
	}
	glog.V(3).Infof("instance keyframe %v", v)
	return nil, nil
}

func readEffectKeyframe(r *frameReader) (Value, error) {
	var v [EFFECT_KEYFRAME_SIZE / 4]uint32
	for i := range v {
		u, err := r.c.U32()
		if err != nil {
			return nil, err
		}
		v[i] = u
	}
	glog.V(3).Infof("effect keyframe %v", v)
	return nil, nil
}

// initialField is a field of a part's default pose that has a track, and the
// value the authoring tool assumes when nothing was set.
type initialField struct {
	tag     Tag
	raw     func(a *ssbp.AnimInitial) float32
	neutral float32
}

var initialFields = []initialField{
	{TAG_POSX, func(a *ssbp.AnimInitial) float32 { return a.Position[0] }, 0},
	{TAG_POSY, func(a *ssbp.AnimInitial) float32 { return a.Position[1] }, 0},
	{TAG_POSZ, func(a *ssbp.AnimInitial) float32 { return a.Position[2] }, 0},
	{TAG_PVTX, func(a *ssbp.AnimInitial) float32 { return a.Pivot[0] }, 0},
	{TAG_PVTY, func(a *ssbp.AnimInitial) float32 { return a.Pivot[1] }, 0},
	{TAG_ROTX, func(a *ssbp.AnimInitial) float32 { return a.Rotation[0] }, 0},
	{TAG_ROTY, func(a *ssbp.AnimInitial) float32 { return a.Rotation[1] }, 0},
	{TAG_ROTZ, func(a *ssbp.AnimInitial) float32 { return a.Rotation[2] }, 0},
	{TAG_SCLX, func(a *ssbp.AnimInitial) float32 { return a.Scale[0] }, 1},
	{TAG_SCLY, func(a *ssbp.AnimInitial) float32 { return a.Scale[1] }, 1},
	{TAG_LSCX, func(a *ssbp.AnimInitial) float32 { return a.LocalScale[0] }, 1},
	{TAG_LSCY, func(a *ssbp.AnimInitial) float32 { return a.LocalScale[1] }, 1},
	{TAG_ALPH, func(a *ssbp.AnimInitial) float32 { return float32(a.Opacity) }, 0xFF},
	{TAG_LALP, func(a *ssbp.AnimInitial) float32 { return float32(a.LocalOpacity) }, 0xFF},
	{TAG_SIZX, func(a *ssbp.AnimInitial) float32 { return a.Size[0] }, 0},
	{TAG_SIZY, func(a *ssbp.AnimInitial) float32 { return a.Size[1] }, 0},
	{TAG_UVTX, func(a *ssbp.AnimInitial) float32 { return a.UVMove[0] }, 0},
	{TAG_UVTY, func(a *ssbp.AnimInitial) float32 { return a.UVMove[1] }, 0},
	{TAG_UVRZ, func(a *ssbp.AnimInitial) float32 { return a.UVRotation }, 0},
	{TAG_UVSX, func(a *ssbp.AnimInitial) float32 { return a.UVScale[0] }, 1},
	{TAG_UVSY, func(a *ssbp.AnimInitial) float32 { return a.UVScale[1] }, 1},
	{TAG_BNDR, func(a *ssbp.AnimInitial) float32 { return a.BoundingRadius }, 0},
	{TAG_MASK, func(a *ssbp.AnimInitial) float32 { return float32(a.MaskLimen) }, 0},
	{TAG_PRIO, func(a *ssbp.AnimInitial) float32 { return float32(int16(a.Priority)) }, 0},
}

var initialFieldByTag = func() map[Tag]initialField {
	m := make(map[Tag]initialField, len(initialFields))
	for _, f := range initialFields {
		m[f.tag] = f
	}
	return m
}()

// value converts the raw default to the value a stream key of the same tag
// would carry.
func (f initialField) value(a *ssbp.AnimInitial) Value {
	raw := f.raw(a)
	switch f.tag {
	case TAG_ALPH, TAG_LALP:
		return Float(raw / 255)
	case TAG_MASK, TAG_PRIO:
		return Int(raw)
	}
	return Float(raw)
}
