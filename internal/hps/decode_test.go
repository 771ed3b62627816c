package hps

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSingleTriangle(t *testing.T) {
	// Three vertices, one restart + one literal triangle covering all of
	// them, then the end marker.
	vertexBytes := packVertices(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{0, 1, 0},
	)
	facetBytes := packNibbles(opRestart, opLiteral, opEnd)

	mesh, err := Decode("CC", vertexBytes, facetBytes, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, mesh.NumVertices())
	assert.Equal(t, []Triangle{{0, 1, 2}}, mesh.Faces)
}

func TestDecodeDeterministic(t *testing.T) {
	vertexBytes := packVertices(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{0, 1, 0},
		[3]float32{1, 1, 0},
	)
	facetBytes := packNibbles(opRestart, opLiteral, opLiteral, opEnd)

	first, err := Decode("CC", vertexBytes, facetBytes, 4, 2)
	require.NoError(t, err)
	second, err := Decode("CC", vertexBytes, facetBytes, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeCountsMatchDeclared(t *testing.T) {
	vertexBytes := packVertices(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{0, 1, 0},
		[3]float32{1, 1, 0},
	)
	facetBytes := packNibbles(opRestart, opLiteral, opLiteral, opEnd)

	mesh, err := Decode("CC", vertexBytes, facetBytes, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, mesh.NumVertices())
	assert.Equal(t, 2, mesh.NumFaces())

	for _, tri := range mesh.Faces {
		for _, idx := range tri {
			assert.Less(t, idx, uint32(mesh.NumVertices()))
		}
	}
}

func TestDecodeUnsupportedSchemaNeverTouchesBlocks(t *testing.T) {
	// Deliberately corrupt blocks: dispatch must fail before decoding.
	for _, tag := range []string{"CB", "CE"} {
		_, err := Decode(tag, []byte{1, 2, 3}, []byte{4, 5}, 99, 99)
		var schemaErr *UnsupportedSchemaError
		require.ErrorAs(t, err, &schemaErr, "schema %s", tag)
		assert.Equal(t, tag, schemaErr.Tag)
	}
}

func TestLoadBytes(t *testing.T) {
	vertexData := packVertices(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{0, 1, 0},
	)
	facetData := packNibbles(opRestart, opLiteral, opEnd)
	doc := buildHPSXML("CC", vertexData, facetData, 3, 1, "")

	scan, mesh, err := LoadBytes(doc)
	require.NoError(t, err)
	assert.Equal(t, SchemaCC, scan.Schema)
	assert.Equal(t, 3, mesh.NumVertices())
	assert.Equal(t, 1, mesh.NumFaces())
}

func TestLoadBytesWithTextureCoords(t *testing.T) {
	vertexData := packVertices(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{0, 1, 0},
	)
	facetData := packNibbles(opRestart, opLiteral, opEnd)

	// One shared UV per vertex: flag byte 1 followed by the packed pair.
	// 0x7FFF is 1.0 in the [0, 1] range encoding.
	coords := []byte{
		1, 0x00, 0x00, 0x00, 0x00, // (0, 0)
		1, 0xFF, 0x7F, 0x00, 0x00, // (1, 0)
		1, 0x00, 0x00, 0xFF, 0x7F, // (0, 1)
	}
	extra := "<PerVertexTextureCoord>" + base64.StdEncoding.EncodeToString(coords) + "</PerVertexTextureCoord>"
	doc := buildHPSXML("CC", vertexData, facetData, 3, 1, extra)

	_, mesh, err := LoadBytes(doc)
	require.NoError(t, err)
	require.True(t, mesh.HasTextureCoords())
	require.Len(t, mesh.UV, 3)
	assert.Equal(t, [2]float32{0, 0}, mesh.UV[0])
	assert.InDelta(t, 1.0, mesh.UV[1][0], 1e-6)
	assert.InDelta(t, 0.0, mesh.UV[1][1], 1e-6)
	assert.InDelta(t, 0.0, mesh.UV[2][0], 1e-6)
	assert.InDelta(t, 1.0, mesh.UV[2][1], 1e-6)
}

func TestLoadBytesFacetCountMismatch(t *testing.T) {
	vertexData := packVertices([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0})
	facetData := packNibbles(opEnd)
	doc := buildHPSXML("CC", vertexData, facetData, 3, 1, "")

	_, _, err := LoadBytes(doc)
	var countErr *FacetCountMismatchError
	assert.ErrorAs(t, err, &countErr)
}

func TestLoadFile(t *testing.T) {
	vertexData := packVertices([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0})
	facetData := packNibbles(opRestart, opLiteral, opEnd)
	doc := buildHPSXML("CA", vertexData, facetData, 3, 1, "")

	path := filepath.Join(t.TempDir(), "scan.hps")
	require.NoError(t, os.WriteFile(path, doc, 0644))

	scan, mesh, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SchemaCA, scan.Schema)
	assert.Equal(t, 1, mesh.NumFaces())

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.hps"))
	assert.Error(t, err)
}

func TestParseContainerFile(t *testing.T) {
	doc := buildHPSXML("CC", packVertices([3]float32{0, 0, 0}), packNibbles(opEnd), 1, 0, "")
	path := filepath.Join(t.TempDir(), "scan.hps")
	require.NoError(t, os.WriteFile(path, doc, 0644))

	scan, err := ParseContainerFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), scan.VertexCount)
}
