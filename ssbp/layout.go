package ssbp

import (
	"encoding/binary"
	"fmt"
)

// Sizes of the fixed records, as defined by the file format.
const (
	PROJECT_HEADER_SIZE = 0x24
	CELL_MAP_SIZE       = 0x10
	CELL_ENTRY_SIZE     = 0x2c
	ANIME_PACK_SIZE     = 0x10
	PART_ENTRY_SIZE     = 0x20
	ANIM_ENTRY_SIZE     = 0x34
	ANIM_INITIAL_SIZE   = 0x90
	LABEL_ENTRY_SIZE    = 0x08
	EFFECT_FILE_SIZE    = 0x14
	EFFECT_NODE_SIZE    = 0x10
)

var layouts = []struct {
	rec  interface{}
	want int
}{
	{ProjectHeader{}, PROJECT_HEADER_SIZE},
	{CellMap{}, CELL_MAP_SIZE},
	{CellEntry{}, CELL_ENTRY_SIZE},
	{AnimePack{}, ANIME_PACK_SIZE},
	{PartEntry{}, PART_ENTRY_SIZE},
	{AnimEntry{}, ANIM_ENTRY_SIZE},
	{AnimInitial{}, ANIM_INITIAL_SIZE},
	{LabelEntry{}, LABEL_ENTRY_SIZE},
	{EffectFile{}, EFFECT_FILE_SIZE},
	{EffectNode{}, EFFECT_NODE_SIZE},
}

// CheckLayout compares the encoded size of rec with want.
func CheckLayout(rec interface{}, want int) error {
	if got := binary.Size(rec); got != want {
		return &LayoutError{Record: typeName(rec), Got: got, Want: want}
	}
	return nil
}

// CheckLayouts verifies every record type of this package against the size
// the file format defines for it.
func CheckLayouts() error {
	for _, l := range layouts {
		if err := CheckLayout(l.rec, l.want); err != nil {
			return err
		}
	}
	return nil
}

func typeName(rec interface{}) string {
	return fmt.Sprintf("%T", rec)
}

func init() {
	if err := CheckLayouts(); err != nil {
		panic(err)
	}
}
