package hps

import (
	"encoding/binary"
	"math"
)

// vertexStride is the byte size of one packed vertex: three float32 values.
const vertexStride = 12

// decodeVertices reinterprets buf as little-endian float32 triples. Values
// are passed through unvalidated; only the byte length is checked against
// the declared count.
func decodeVertices(buf []byte, count uint32) ([][3]float32, error) {
	expected := int(count) * vertexStride
	if len(buf) != expected {
		return nil, &SizeMismatchError{Expected: expected, Actual: len(buf)}
	}

	verts := make([][3]float32, count)
	for i := range verts {
		off := i * vertexStride
		verts[i][0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
		verts[i][1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off+4:]))
		verts[i][2] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off+8:]))
	}
	return verts, nil
}
