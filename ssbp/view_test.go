package ssbp

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"badc0de.net/pkg/go-ssbp/ttesting"
)

func TestViewBytes(t *testing.T) {
	v := NewView([]byte{1, 2, 3, 4})

	b, err := v.Bytes(1, 3)
	if err != nil {
		t.Fatalf("failed to read in-range bytes: %s", err)
	}
	if !bytes.Equal(b, []byte{2, 3, 4}) {
		t.Errorf("got %v; want [2 3 4]", b)
	}

	var be *BoundsError
	_, err = v.Bytes(2, 3)
	ttesting.AssertErrorAs(t, "read past end", err, &be)
	_, err = v.Bytes(0xFFFFFFFF, 2)
	ttesting.AssertErrorAs(t, "offset overflow", err, &be)
	_, err = v.Bytes(5, 0)
	ttesting.AssertErrorAs(t, "empty read past end", err, &be)
}

func TestViewString(t *testing.T) {
	buf := []byte("\x00\x00\x00\x00hello\x00bad\xff\x00tail")
	v := NewView(buf)

	s, err := v.String(4)
	if err != nil {
		t.Fatalf("failed to read string: %s", err)
	}
	ttesting.AssertEqualString(t, "terminated string", s, "hello")

	s, err = v.String(0)
	if err != nil {
		t.Fatalf("failed to read null string ref: %s", err)
	}
	ttesting.AssertEqualString(t, "null string ref", s, "")

	var ise *InvalidStringError
	_, err = v.String(10)
	ttesting.AssertErrorAs(t, "invalid utf-8", err, &ise)
	_, err = v.String(15)
	ttesting.AssertErrorAs(t, "unterminated", err, &ise)

	var be *BoundsError
	_, err = v.String(StringRef(len(buf)))
	ttesting.AssertErrorAs(t, "string past end", err, &be)
}

func TestReadArray(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.Write(make([]byte, 4))
	binary.Write(buf, binary.LittleEndian, []LabelEntry{{Name: 1, Time: 7}, {Name: 2, Time: 9}})
	v := NewView(buf.Bytes())

	labels, err := ReadArray[LabelEntry](v, 4, 2)
	if err != nil {
		t.Fatalf("failed to read labels: %s", err)
	}
	ttesting.AssertEqualInt(t, "label count", len(labels), 2)
	ttesting.AssertEqualInt(t, "second label time", int(labels[1].Time), 9)

	var be *BoundsError
	_, err = ReadArray[LabelEntry](v, 4, 3)
	ttesting.AssertErrorAs(t, "count past end", err, &be)

	empty, err := DerefArray(v, Ref[LabelEntry]{Offset: 0xFFFF}, 0)
	if err != nil {
		t.Fatalf("zero count read failed: %s", err)
	}
	ttesting.AssertEqualInt(t, "zero count", len(empty), 0)
}

func TestReadAtRejectsUnknownEnum(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, &CellMap{WrapMode: 3})
	binary.Write(buf, binary.LittleEndian, &PartEntry{Type: PART_TYPE_BONEPOINT, BlendType: 8})

	var ude *UnknownDiscriminantError
	_, err := ReadAt[CellMap](NewView(buf.Bytes()), 0)
	ttesting.AssertErrorAs(t, "wrap mode 3", err, &ude)

	_, err = ReadAt[PartEntry](NewView(buf.Bytes()), CELL_MAP_SIZE)
	ttesting.AssertErrorAs(t, "blend type 8", err, &ude)
	if ude != nil {
		ttesting.AssertEqualString(t, "kind", ude.Kind, "blend type")
	}
}

func TestCursor(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, int16(-2))
	binary.Write(buf, binary.LittleEndian, uint32(0xdeadbeef))
	binary.Write(buf, binary.LittleEndian, math.Float32bits(1.5))
	binary.Write(buf, binary.LittleEndian, uint16(3))

	c := NewView(buf.Bytes()).Cursor(0)
	i, err := c.I16()
	if err != nil {
		t.Fatalf("I16: %s", err)
	}
	u, err := c.U32()
	if err != nil {
		t.Fatalf("U32: %s", err)
	}
	f, err := c.F32()
	if err != nil {
		t.Fatalf("F32: %s", err)
	}
	ttesting.AssertEqualInt(t, "i16", int(i), -2)
	ttesting.AssertEqualUint32(t, "u32", u, 0xdeadbeef)
	ttesting.AssertEqualFloat32(t, "f32", f, 1.5)
	ttesting.AssertEqualUint32(t, "position", c.Pos(), 10)

	var be *BoundsError
	_, err = c.U32()
	ttesting.AssertErrorAs(t, "u32 past end", err, &be)
	ttesting.AssertEqualUint32(t, "failed read does not advance", c.Pos(), 10)
}
