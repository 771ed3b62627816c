package hps

import (
	"errors"
	"fmt"
)

// ErrStreamTruncated is returned when the facet nibble cursor runs off the
// end of the buffer before the stream produced its declared triangles or an
// end marker.
var ErrStreamTruncated = errors.New("hps: facet stream truncated")

// ErrMalformedStream is returned when a facet opcode needs an active edge
// but no restart has seeded one yet, or a continuation selects a window
// slot that has never been filled.
var ErrMalformedStream = errors.New("hps: malformed facet stream")

// UnsupportedSchemaError is returned for schemas that are recognized but not
// decodable (CB, CE) and for schema tags the format does not define at all.
type UnsupportedSchemaError struct {
	Tag string
}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf("hps: unsupported schema %q", e.Tag)
}

// SizeMismatchError is returned when the vertex block byte length does not
// match the declared vertex count.
type SizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("hps: vertex block size mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}

// InvalidVertexReferenceError is returned when a facet instruction resolves
// to a vertex index outside its bound.
type InvalidVertexReferenceError struct {
	Index uint32
	Bound uint32
}

func (e *InvalidVertexReferenceError) Error() string {
	return fmt.Sprintf("hps: invalid vertex reference %d (bound %d)", e.Index, e.Bound)
}

// FacetCountMismatchError is returned when the facet stream ends before
// producing the declared number of triangles.
type FacetCountMismatchError struct {
	Expected int
	Produced int
}

func (e *FacetCountMismatchError) Error() string {
	return fmt.Sprintf("hps: facet count mismatch: expected %d triangles, produced %d", e.Expected, e.Produced)
}

// IndexOutOfRangeError is returned by mesh assembly when a triangle corner
// references a vertex outside the vertex table. The facet decoder already
// checks each resolved index; this re-check guards the assembly boundary.
type IndexOutOfRangeError struct {
	Face   int
	Corner int
	Index  uint32
	Bound  uint32
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("hps: face %d corner %d references vertex %d (bound %d)", e.Face, e.Corner, e.Index, e.Bound)
}

// ParseError is returned when the XML container is structurally invalid:
// missing required elements, undecodable base64, or bad count attributes.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "hps: " + e.Msg
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}
