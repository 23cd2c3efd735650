package ssbp

import (
	"errors"
	"fmt"
)

// BoundsError is returned when an offset, or an offset plus the size of what
// is read there, lies outside of the buffer.
type BoundsError struct {
	Offset uint32
	Size   uint64
	Len    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("ssbp: reading %d bytes at offset 0x%x overruns buffer of %d bytes", e.Size, e.Offset, e.Len)
}

// LayoutError is returned when the computed size of a record type does not
// match the size the file format defines for it. It indicates a bug in the
// record description, never bad input.
type LayoutError struct {
	Record    string
	Got, Want int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("ssbp: record %s has size 0x%x; want 0x%x", e.Record, e.Got, e.Want)
}

// InvalidStringError is returned for strings that have no terminating zero
// byte before the end of the buffer, or that are not valid UTF-8.
type InvalidStringError struct {
	Offset uint32
	Reason string
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("ssbp: string at offset 0x%x: %s", e.Offset, e.Reason)
}

// UnknownDiscriminantError is returned when an enumerated field holds a value
// outside of its domain.
type UnknownDiscriminantError struct {
	Kind  string
	Value int
}

func (e *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("ssbp: unknown %s %d", e.Kind, e.Value)
}

// MalformedReferenceError is returned when a part's reference name is not of
// the form "pack/animation".
type MalformedReferenceError struct {
	Name string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("ssbp: reference name %q lacks a '/' between pack and animation", e.Name)
}

// DuplicateIndexError is returned when two cells of the same cell map share
// an index.
type DuplicateIndexError struct {
	Map   uint16
	Index uint16
	Name  string
}

func (e *DuplicateIndexError) Error() string {
	return fmt.Sprintf("ssbp: cell %q reuses index %d in cell map %d", e.Name, e.Index, e.Map)
}

// MissingCellError is returned when a keyframe or effect node refers to a
// cell beyond the end of the project's cell table.
type MissingCellError struct {
	Index int
	Count int
}

func (e *MissingCellError) Error() string {
	return fmt.Sprintf("ssbp: cell %d referenced, but the project has %d cells", e.Index, e.Count)
}

// IsInputError tells whether err, or an error it wraps, reports malformed
// input rather than a failure of the environment.
func IsInputError(err error) bool {
	var (
		be  *BoundsError
		ise *InvalidStringError
		ude *UnknownDiscriminantError
		mre *MalformedReferenceError
		die *DuplicateIndexError
		mce *MissingCellError
	)
	return errors.As(err, &be) || errors.As(err, &ise) || errors.As(err, &ude) ||
		errors.As(err, &mre) || errors.As(err, &die) || errors.As(err, &mce)
}
