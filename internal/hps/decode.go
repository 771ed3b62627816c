// Package hps decodes HIMSA Packed Scan (HPS) files: XML containers
// carrying base64-encoded binary blocks that describe a triangle mesh
// produced by dental/audiological optical scanners.
//
// Decoding is a pure function of the input bytes. Each call owns its own
// state, so independent files can be decoded concurrently. Every failure is
// terminal: no partial mesh is ever returned.
package hps

import (
	"fmt"
	"io"
	"os"
)

// Decode reconstructs a mesh from raw schema blocks. This is the core entry
// point for callers that extract the container themselves.
func Decode(schema string, vertexBytes, facetBytes []byte, vertexCount, facetCount uint32) (*Mesh, error) {
	s, err := ParseSchema(schema)
	if err != nil {
		return nil, err
	}
	d, err := decoderFor(s)
	if err != nil {
		return nil, err
	}

	verts, err := d.vertices(vertexBytes, vertexCount)
	if err != nil {
		return nil, err
	}
	tris, err := d.facets(facetBytes, vertexCount, facetCount)
	if err != nil {
		return nil, err
	}
	return assembleMesh(verts, tris)
}

// DecodeScan decodes the geometry of a parsed container, attaching texture
// coordinates when the container carries a coordinate block.
func DecodeScan(scan *PackedScan) (*Mesh, error) {
	mesh, err := Decode(string(scan.Schema), scan.VertexData, scan.FacetData, scan.VertexCount, scan.FacetCount)
	if err != nil {
		return nil, err
	}

	if len(scan.TextureCoordData) > 0 {
		uv, err := parseTextureCoords(scan.TextureCoordData, scan.VertexCount, mesh.Faces)
		if err != nil {
			return nil, err
		}
		mesh.UV = uv
	}
	return mesh, nil
}

// LoadBytes parses and decodes an HPS file held in memory.
func LoadBytes(data []byte) (*PackedScan, *Mesh, error) {
	scan, err := ParseContainer(data)
	if err != nil {
		return nil, nil, err
	}
	mesh, err := DecodeScan(scan)
	if err != nil {
		return nil, nil, err
	}
	return scan, mesh, nil
}

// Load reads and decodes an HPS file from r.
func Load(r io.Reader) (*PackedScan, *Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("hps: read: %w", err)
	}
	return LoadBytes(data)
}

// ParseContainerFile parses the container of an HPS file without decoding
// its geometry.
func ParseContainerFile(path string) (*PackedScan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hps: read %s: %w", path, err)
	}
	return ParseContainer(data)
}

// LoadFile reads and decodes an HPS file from disk.
func LoadFile(path string) (*PackedScan, *Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("hps: read %s: %w", path, err)
	}
	return LoadBytes(data)
}
