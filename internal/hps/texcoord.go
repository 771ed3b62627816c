package hps

import (
	"encoding/binary"
	"sort"
)

// Texture coordinates are stored per vertex as packed 16+16-bit values:
// bit 15 of each component flags the extended [-256, 256] range, bits 0-14
// carry the value.
const (
	uvOutsideRangeBit = 0x8000
	uvCoordMask       = 0x7FFF
	uvScaleInside     = 1.0 / 32767.0
	uvScaleOutside    = 512.0 / 32767.0

	// uvMissingMarker marks a corner with no texture coordinate.
	uvMissingMarker = 0xFFFFFFFF
)

// decompressTextureCoord unpacks one 32-bit compressed (u, v) pair.
func decompressTextureCoord(compressed uint32) (float32, float32) {
	u := decompressUVComponent(uint16(compressed))
	v := decompressUVComponent(uint16(compressed >> 16))
	return u, v
}

func decompressUVComponent(bits uint16) float32 {
	value := float32(bits & uvCoordMask)
	if bits&uvOutsideRangeBit != 0 {
		return value*uvScaleOutside - 256.0
	}
	return value * uvScaleInside
}

// parseTextureCoords decodes the per-vertex UV block into per-corner
// coordinates (one entry per face corner, 3*len(faces) total). Each vertex
// carries a flag byte: 1 means a single UV shared by every connected
// corner, 0xFF means one UV per connected corner, any other value must
// match the vertex's corner count exactly.
func parseTextureCoords(data []byte, vertexCount uint32, faces []Triangle) ([][2]float32, error) {
	r := &byteReader{data: data}

	// Corners connected to each vertex, as flat indices face*3+c.
	vertexCorners := make([][]int, vertexCount)
	for f, tri := range faces {
		for c, idx := range tri {
			vertexCorners[idx] = append(vertexCorners[idx], f*3+c)
		}
	}

	uvs := make([][2]float32, len(faces)*3)
	for v := uint32(0); v < vertexCount; v++ {
		flag, err := r.readUint8()
		if err != nil {
			return nil, parseErrorf("unexpected end of texture data at vertex %d/%d", v, vertexCount)
		}
		corners := vertexCorners[v]

		if flag == 1 {
			compressed, err := r.readUint32()
			if err != nil {
				return nil, parseErrorf("unexpected end of texture data at vertex %d/%d", v, vertexCount)
			}
			if compressed != uvMissingMarker {
				cu, cv := decompressTextureCoord(compressed)
				for _, corner := range corners {
					uvs[corner] = [2]float32{cu, cv}
				}
			}
			continue
		}

		if flag != 0xFF && int(flag) != len(corners) {
			return nil, parseErrorf("texture data mismatch at vertex %d: flag=%d, connected corners=%d", v, flag, len(corners))
		}

		sorted := make([]int, len(corners))
		copy(sorted, corners)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i]/3 < sorted[j]/3 })

		for _, corner := range sorted {
			compressed, err := r.readUint32()
			if err != nil {
				return nil, parseErrorf("unexpected end of texture data at vertex %d/%d", v, vertexCount)
			}
			if compressed != uvMissingMarker {
				cu, cv := decompressTextureCoord(compressed)
				uvs[corner] = [2]float32{cu, cv}
			}
		}
	}

	return uvs, nil
}

// byteReader is a byte-aligned cursor over the texture coordinate block.
type byteReader struct {
	data []byte
	off  int
}

func (r *byteReader) readUint8() (byte, error) {
	if r.off >= len(r.data) {
		return 0, ErrStreamTruncated
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

func (r *byteReader) readUint32() (uint32, error) {
	if r.off+4 > len(r.data) {
		return 0, ErrStreamTruncated
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}
