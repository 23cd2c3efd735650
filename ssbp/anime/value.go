package anime

// Value is the value of one keyframe. It is one of Float, Int, Bool, CellRef,
// PartsColor and VertexOffsets.
type Value interface {
	isValue()
}

type Float float32

type Int int

type Bool bool

// CellRef is the value of a CELL key. None is set for keys that clear the
// part's cell.
type CellRef struct {
	None     bool
	MapIndex uint16
	MapName  string
	Name     string
}

// VertexColor is a color applied to a vertex (or to the whole quad) with the
// passed rate.
type VertexColor struct {
	ARGB uint32
	Rate float32
}

// PartsColor is the value of a PCOL key. When All is set, Colors[0] applies
// to the whole quad; otherwise Mask selects which of Colors are set, indexed
// by Vertex.
type PartsColor struct {
	Blend  ColorBlendType
	All    bool
	Mask   uint8
	Colors [VERTEX_COUNT]VertexColor
}

// VertexOffsets is the value of a VERT key. Mask selects which of Offsets
// are set, indexed by Vertex.
type VertexOffsets struct {
	Mask    uint8
	Offsets [VERTEX_COUNT][2]int16
}

func (Float) isValue()         {}
func (Int) isValue()           {}
func (Bool) isValue()          {}
func (CellRef) isValue()       {}
func (PartsColor) isValue()    {}
func (VertexOffsets) isValue() {}
