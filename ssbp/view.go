package ssbp

// This file contains the bounds-checked projection of a file's bytes onto
// records, strings and scalar streams.

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// StringRef is the offset of a NUL-terminated UTF-8 string. Zero means no
// string.
type StringRef uint32

// Ref is the offset of a record of type T, or of the first of several
// consecutive records of type T when the referring record carries a count.
type Ref[T any] struct {
	Offset uint32
}

// IsNull reports whether the reference points nowhere.
func (r Ref[T]) IsNull() bool {
	return r.Offset == 0
}

// View is a read-only window on the bytes of one .ssbp file. It is safe for
// concurrent use; nothing ever writes to the underlying buffer.
type View struct {
	buf []byte
}

// NewView wraps buf. The caller must not modify buf afterwards.
func NewView(buf []byte) *View {
	return &View{buf: buf}
}

// Len returns the size of the underlying buffer.
func (v *View) Len() int {
	return len(v.buf)
}

// Bytes returns the n bytes starting at off. The returned slice shares
// memory with the buffer and must not be modified.
func (v *View) Bytes(off uint32, n int) ([]byte, error) {
	return v.span(off, uint64(n))
}

func (v *View) span(off uint32, n uint64) ([]byte, error) {
	end := uint64(off) + n
	if n > math.MaxInt32 || end > uint64(len(v.buf)) {
		return nil, &BoundsError{Offset: off, Size: n, Len: len(v.buf)}
	}
	return v.buf[off:end:end], nil
}

// String reads the NUL-terminated string at ref.
func (v *View) String(ref StringRef) (string, error) {
	if ref == 0 {
		return "", nil
	}
	off := uint32(ref)
	if uint64(off) >= uint64(len(v.buf)) {
		return "", &BoundsError{Offset: off, Size: 1, Len: len(v.buf)}
	}
	rest := v.buf[off:]
	idx := bytes.IndexByte(rest, 0x00)
	if idx == -1 {
		return "", &InvalidStringError{Offset: off, Reason: "no terminating zero byte before end of buffer"}
	}
	if !utf8.Valid(rest[:idx]) {
		return "", &InvalidStringError{Offset: off, Reason: "not valid UTF-8"}
	}
	return string(rest[:idx]), nil
}

// checker is implemented by records with enumerated fields, so that values
// outside of an enumeration's domain are caught where the record is read.
type checker interface {
	check() error
}

// ReadAt decodes the record of type T stored at off.
func ReadAt[T any](v *View, off uint32) (T, error) {
	var rec T
	size := binary.Size(rec)
	if size < 0 {
		return rec, &LayoutError{Record: typeName(rec), Got: size}
	}
	b, err := v.span(off, uint64(size))
	if err != nil {
		return rec, err
	}
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &rec); err != nil {
		return rec, err
	}
	if c, ok := any(&rec).(checker); ok {
		if err := c.check(); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

// ReadArray decodes count consecutive records of type T starting at off.
func ReadArray[T any](v *View, off uint32, count int) ([]T, error) {
	var zero T
	size := binary.Size(zero)
	if size < 0 {
		return nil, &LayoutError{Record: typeName(zero), Got: size}
	}
	if count == 0 {
		return []T{}, nil
	}
	b, err := v.span(off, uint64(size)*uint64(count))
	if err != nil {
		return nil, err
	}
	recs := make([]T, count)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, recs); err != nil {
		return nil, err
	}
	for i := range recs {
		if c, ok := any(&recs[i]).(checker); ok {
			if err := c.check(); err != nil {
				return nil, err
			}
		}
	}
	return recs, nil
}

// Deref decodes the record r points at.
func Deref[T any](v *View, r Ref[T]) (T, error) {
	return ReadAt[T](v, r.Offset)
}

// DerefArray decodes the count records r points at.
func DerefArray[T any](v *View, r Ref[T], count int) ([]T, error) {
	return ReadArray[T](v, r.Offset, count)
}

// Cursor reads a little-endian scalar stream, advancing past every value it
// returns. A Cursor is not safe for concurrent use.
type Cursor struct {
	v   *View
	pos uint32
}

// Cursor returns a new cursor positioned at off.
func (v *View) Cursor(off uint32) *Cursor {
	return &Cursor{v: v, pos: off}
}

// Pos returns the offset of the next byte the cursor will read.
func (c *Cursor) Pos() uint32 {
	return c.pos
}

func (c *Cursor) take(n uint32) ([]byte, error) {
	b, err := c.v.span(c.pos, uint64(n))
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n uint32) error {
	_, err := c.take(n)
	return err
}

func (c *Cursor) U16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) I16() (int16, error) {
	u, err := c.U16()
	return int16(u), err
}

func (c *Cursor) U32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) I32() (int32, error) {
	u, err := c.U32()
	return int32(u), err
}

func (c *Cursor) F32() (float32, error) {
	u, err := c.U32()
	return math.Float32frombits(u), err
}
