// Package ssbptest lays out synthetic .ssbp files for tests.
//
// Records are written with the same structs the ssbp package reads, so a
// file built here exercises exactly the layouts the decoders rely on.
package ssbptest

import (
	"bytes"
	"encoding/binary"
	"math"

	"badc0de.net/pkg/go-ssbp/ssbp"
)

// Builder appends records to a growing buffer whose first
// ssbp.PROJECT_HEADER_SIZE bytes are reserved for the project header.
type Builder struct {
	buf    bytes.Buffer
	header ssbp.ProjectHeader
}

// New returns a builder with room reserved for the header.
func New() *Builder {
	b := &Builder{}
	b.buf.Write(make([]byte, ssbp.PROJECT_HEADER_SIZE))
	return b
}

// Offset returns the offset the next appended byte will have.
func (b *Builder) Offset() uint32 {
	return uint32(b.buf.Len())
}

func (b *Builder) align() {
	for b.buf.Len()%4 != 0 {
		b.buf.WriteByte(0)
	}
}

// Put appends a fixed-size record, or a slice of them, at a 4-byte aligned
// offset and returns that offset.
func (b *Builder) Put(rec interface{}) uint32 {
	b.align()
	off := b.Offset()
	if err := binary.Write(&b.buf, binary.LittleEndian, rec); err != nil {
		panic(err)
	}
	return off
}

// Raw appends p verbatim at a 4-byte aligned offset.
func (b *Builder) Raw(p []byte) uint32 {
	b.align()
	off := b.Offset()
	b.buf.Write(p)
	return off
}

// String appends s with a terminating zero byte.
func (b *Builder) String(s string) ssbp.StringRef {
	off := b.Offset()
	b.buf.WriteString(s)
	b.buf.WriteByte(0)
	return ssbp.StringRef(off)
}

// Header returns the header that Bytes will write, for the caller to fill in.
func (b *Builder) Header() *ssbp.ProjectHeader {
	return &b.header
}

// Bytes returns the finished file.
func (b *Builder) Bytes() []byte {
	out := append([]byte(nil), b.buf.Bytes()...)
	hdr := &bytes.Buffer{}
	if err := binary.Write(hdr, binary.LittleEndian, &b.header); err != nil {
		panic(err)
	}
	copy(out, hdr.Bytes())
	return out
}

// Stream writes one frame's keyframe stream.
type Stream struct {
	bytes.Buffer
}

// Part starts a part's record: the restated part index and the flag word
// split into its low and high halves.
func (s *Stream) Part(index int16, flags uint32) *Stream {
	s.I16(index)
	s.U16(uint16(flags))
	s.U16(uint16(flags >> 16))
	return s
}

func (s *Stream) U16(v uint16) *Stream {
	binary.Write(s, binary.LittleEndian, v)
	return s
}

func (s *Stream) I16(v int16) *Stream {
	return s.U16(uint16(v))
}

func (s *Stream) U32(v uint32) *Stream {
	binary.Write(s, binary.LittleEndian, v)
	return s
}

func (s *Stream) I32(v int32) *Stream {
	return s.U32(uint32(v))
}

func (s *Stream) F32(v float32) *Stream {
	return s.U32(math.Float32bits(v))
}
