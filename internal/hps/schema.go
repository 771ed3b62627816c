package hps

// Schema identifies the compression variant of the binary payload.
type Schema string

const (
	SchemaCA Schema = "CA" // legacy tag for the CC encoding
	SchemaCB Schema = "CB" // color/texture payload, not implemented
	SchemaCC Schema = "CC"
	SchemaCE Schema = "CE" // encrypted payload, not implemented
)

// ParseSchema validates a schema tag from the container.
func ParseSchema(tag string) (Schema, error) {
	switch Schema(tag) {
	case SchemaCA, SchemaCB, SchemaCC, SchemaCE:
		return Schema(tag), nil
	}
	return "", &UnsupportedSchemaError{Tag: tag}
}

// decodeFuncs is one schema's decode path: a vertex block decoder and a
// facet stream decoder.
type decodeFuncs struct {
	vertices func(buf []byte, count uint32) ([][3]float32, error)
	facets   func(buf []byte, vertexCount, facetCount uint32) ([]Triangle, error)
}

// CA and CC are byte-for-byte the same encoding; CA is accepted for older
// producers that tag it differently. CB and CE have no decode path.
var schemaDecoders = map[Schema]decodeFuncs{
	SchemaCA: {vertices: decodeVertices, facets: decodeFacets},
	SchemaCC: {vertices: decodeVertices, facets: decodeFacets},
}

// decoderFor selects the decode path for a schema, or reports that the
// schema is not implemented.
func decoderFor(s Schema) (decodeFuncs, error) {
	d, ok := schemaDecoders[s]
	if !ok {
		return decodeFuncs{}, &UnsupportedSchemaError{Tag: string(s)}
	}
	return d, nil
}
