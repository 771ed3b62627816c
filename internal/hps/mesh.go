package hps

// Triangle is three indices into a mesh's vertex table. Corner order
// defines the outward-facing winding.
type Triangle [3]uint32

// Mesh is the decoded result: a dense vertex position table plus triangle
// connectivity. Immutable once assembled.
type Mesh struct {
	Vertices [][3]float32
	Faces    []Triangle

	// UV holds per-corner texture coordinates when the container carries a
	// coordinate block: len(UV) == 3*len(Faces). Empty otherwise.
	UV [][2]float32
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumFaces returns the number of triangles in the mesh.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// HasTextureCoords reports whether the mesh carries per-corner UVs.
func (m *Mesh) HasTextureCoords() bool { return len(m.UV) > 0 }

// assembleMesh combines the vertex table and triangle list, re-checking the
// index invariant at the assembly boundary.
func assembleMesh(verts [][3]float32, tris []Triangle) (*Mesh, error) {
	bound := uint32(len(verts))
	for f, tri := range tris {
		for c, idx := range tri {
			if idx >= bound {
				return nil, &IndexOutOfRangeError{Face: f, Corner: c, Index: idx, Bound: bound}
			}
		}
	}
	return &Mesh{Vertices: verts, Faces: tris}, nil
}
