package hps

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompressUVComponent(t *testing.T) {
	tests := []struct {
		name string
		bits uint16
		want float64
	}{
		{"zero", 0x0000, 0},
		{"max inside range", 0x7FFF, 1},
		{"half inside range", 0x4000, 16384.0 / 32767.0},
		{"outside range min", 0x8000, -256},
		{"outside range max", 0xFFFF, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, float64(decompressUVComponent(tt.bits)), 1e-4)
		})
	}
}

func TestDecompressTextureCoord(t *testing.T) {
	// Low 16 bits are u, high 16 bits are v.
	u, v := decompressTextureCoord(0x7FFF0000)
	assert.InDelta(t, 0.0, float64(u), 1e-6)
	assert.InDelta(t, 1.0, float64(v), 1e-6)
}

func TestParseTextureCoordsSharedFlag(t *testing.T) {
	faces := []Triangle{{0, 1, 2}, {0, 2, 1}}

	// Each vertex stores one UV shared by all its corners.
	var data []byte
	for range 3 {
		data = append(data, 1)
		data = binary.LittleEndian.AppendUint32(data, 0x40004000)
	}

	uvs, err := parseTextureCoords(data, 3, faces)
	require.NoError(t, err)
	require.Len(t, uvs, 6)
	for _, uv := range uvs {
		assert.InDelta(t, 0.5, float64(uv[0]), 1e-3)
		assert.InDelta(t, 0.5, float64(uv[1]), 1e-3)
	}
}

func TestParseTextureCoordsPerCornerFlag(t *testing.T) {
	faces := []Triangle{{0, 1, 2}}

	var data []byte
	// Vertex 0: shared-UV flag.
	data = append(data, 1)
	data = binary.LittleEndian.AppendUint32(data, 0)
	// Vertex 1: per-corner flag with one UV.
	data = append(data, 0xFF)
	data = binary.LittleEndian.AppendUint32(data, 0x00007FFF)
	// Vertex 2: per-corner flag, UV marked missing.
	data = append(data, 0xFF)
	data = binary.LittleEndian.AppendUint32(data, uvMissingMarker)

	uvs, err := parseTextureCoords(data, 3, faces)
	require.NoError(t, err)
	require.Len(t, uvs, 3)
	assert.InDelta(t, 1.0, float64(uvs[1][0]), 1e-6)
	assert.Equal(t, [2]float32{0, 0}, uvs[2])
}

func TestParseTextureCoordsFlagMismatch(t *testing.T) {
	faces := []Triangle{{0, 1, 2}}

	// Vertex 0 has one connected corner but declares three.
	data := []byte{3}
	data = binary.LittleEndian.AppendUint32(data, 0)

	var parseErr *ParseError
	_, err := parseTextureCoords(data, 3, faces)
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "mismatch")
}

func TestParseTextureCoordsTruncated(t *testing.T) {
	faces := []Triangle{{0, 1, 2}}

	var parseErr *ParseError
	_, err := parseTextureCoords([]byte{1, 0x00}, 3, faces)
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "unexpected end")
}
