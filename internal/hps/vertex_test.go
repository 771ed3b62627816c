package hps

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packVertices builds a raw vertex block from positions.
func packVertices(verts ...[3]float32) []byte {
	buf := make([]byte, 0, len(verts)*vertexStride)
	for _, v := range verts {
		for _, f := range v {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
	}
	return buf
}

func TestDecodeVertices(t *testing.T) {
	buf := packVertices(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{0, 1, 0},
	)

	verts, err := decodeVertices(buf, 3)
	require.NoError(t, err)
	assert.Equal(t, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, verts)
}

func TestDecodeVerticesEmpty(t *testing.T) {
	verts, err := decodeVertices(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, verts)
}

func TestDecodeVerticesSizeMismatch(t *testing.T) {
	buf := packVertices([3]float32{1, 2, 3})

	_, err := decodeVertices(buf, 2)
	var sizeErr *SizeMismatchError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 24, sizeErr.Expected)
	assert.Equal(t, 12, sizeErr.Actual)

	_, err = decodeVertices(buf[:11], 1)
	assert.ErrorAs(t, err, &sizeErr)
}

func TestDecodeVerticesPassesNonFiniteThrough(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	buf := packVertices([3]float32{nan, inf, -1.5})

	verts, err := decodeVertices(buf, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(verts[0][0])))
	assert.True(t, math.IsInf(float64(verts[0][1]), 1))
	assert.Equal(t, float32(-1.5), verts[0][2])
}
