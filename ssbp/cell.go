package ssbp

import (
	"fmt"
)

// WrapMode describes how a cell map's texture is sampled outside [0,1].
type WrapMode uint16

const (
	WRAP_MODE_CLAMP WrapMode = iota
	WRAP_MODE_REPEAT
	WRAP_MODE_MIRROR

	wrapModeCount
)

func (m WrapMode) String() string {
	switch m {
	case WRAP_MODE_CLAMP:
		return "clamp"
	case WRAP_MODE_REPEAT:
		return "repeat"
	case WRAP_MODE_MIRROR:
		return "mirror"
	}
	return fmt.Sprintf("wrap mode %d unknown", uint16(m))
}

// FilterMode describes how a cell map's texture is filtered.
type FilterMode uint16

const (
	FILTER_MODE_NEAREST FilterMode = iota
	FILTER_MODE_LINEAR

	filterModeCount
)

// String implements the stringer interface. The authoring tool spells
// nearest-neighbour filtering "nearlest", and its project files must match.
func (m FilterMode) String() string {
	switch m {
	case FILTER_MODE_NEAREST:
		return "nearlest"
	case FILTER_MODE_LINEAR:
		return "linear"
	}
	return fmt.Sprintf("filter mode %d unknown", uint16(m))
}

// CellMap describes one texture atlas.
type CellMap struct {
	Name       StringRef
	ImagePath  StringRef
	Index      uint16
	WrapMode   WrapMode
	FilterMode FilterMode
	_          uint16
}

func (m *CellMap) check() error {
	if m.WrapMode >= wrapModeCount {
		return &UnknownDiscriminantError{Kind: "wrap mode", Value: int(m.WrapMode)}
	}
	if m.FilterMode >= filterModeCount {
		return &UnknownDiscriminantError{Kind: "filter mode", Value: int(m.FilterMode)}
	}
	return nil
}

// CellEntry is one named rectangle within a cell map's texture.
type CellEntry struct {
	Name    StringRef
	CellMap Ref[CellMap]
	Index   uint16
	X, Y    uint16
	Width   uint16
	Height  uint16
	_       uint16
	PivotX  float32
	PivotY  float32
	U1, V1  float32
	U2, V2  float32
}
