package hps

import (
	"encoding/base64"
	"encoding/xml"
	"strconv"
	"strings"
)

// PackedScan is the container-level view of an HPS file: schema, declared
// counts and the raw binary blocks, before any geometry decoding. Immutable
// once parsed.
type PackedScan struct {
	Version string
	Schema  Schema

	VertexCount uint32
	FacetCount  uint32

	VertexData []byte
	FacetData  []byte

	// Optional container payloads.
	TextureCoordData []byte
	TextureImages    [][]byte
	Properties       map[string]string

	// CheckValue is the container's integrity value; -1 when absent.
	CheckValue int64

	// Default colors declared on the binary blocks; -1 when absent.
	DefaultVertexColor int64
	DefaultFaceColor   int64
}

// xmlNode is a generic XML tree used to search for elements at any depth,
// since producers nest the payload elements inconsistently.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// find returns the first descendant element with the given local name,
// depth-first.
func (n *xmlNode) find(name string) *xmlNode {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == name {
			return c
		}
		if found := c.find(name); found != nil {
			return found
		}
	}
	return nil
}

// findAll appends every descendant element with the given local name.
func (n *xmlNode) findAll(name string, out []*xmlNode) []*xmlNode {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == name {
			out = append(out, c)
		}
		out = c.findAll(name, out)
	}
	return out
}

func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ParseContainer parses an HPS XML document and extracts the binary blocks
// and their declared counts. No geometry is decoded here.
func ParseContainer(data []byte) (*PackedScan, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, parseErrorf("parse container: %v", err)
	}

	schemaEl := root.find("Schema")
	if schemaEl == nil {
		return nil, parseErrorf("required element 'Schema' not found")
	}
	schema, err := ParseSchema(strings.TrimSpace(schemaEl.Text))
	if err != nil {
		return nil, err
	}

	dataEl := root.find(string(schema))
	if dataEl == nil {
		return nil, parseErrorf("required element '%s' not found", schema)
	}
	verticesEl := dataEl.find("Vertices")
	if verticesEl == nil {
		return nil, parseErrorf("required element 'Vertices' not found")
	}
	facetsEl := dataEl.find("Facets")
	if facetsEl == nil {
		return nil, parseErrorf("required element 'Facets' not found")
	}

	vertexData, err := decodeBinaryElement(verticesEl)
	if err != nil {
		return nil, err
	}
	facetData, err := decodeBinaryElement(facetsEl)
	if err != nil {
		return nil, err
	}

	vertexCount, err := countAttr(verticesEl, "vertex_count")
	if err != nil {
		return nil, err
	}
	facetCount, err := countAttr(facetsEl, "facet_count")
	if err != nil {
		return nil, err
	}

	scan := &PackedScan{
		Schema:             schema,
		VertexCount:        vertexCount,
		FacetCount:         facetCount,
		VertexData:         vertexData,
		FacetData:          facetData,
		CheckValue:         optionalIntAttr(verticesEl, "check_value"),
		DefaultVertexColor: optionalIntAttr(verticesEl, "color"),
		DefaultFaceColor:   optionalIntAttr(facetsEl, "color"),
		Properties:         map[string]string{},
	}

	if v, ok := root.attr("Version"); ok {
		scan.Version = v
	} else if el := root.find("Version"); el != nil {
		scan.Version = strings.TrimSpace(el.Text)
	}

	if el := root.find("PerVertexTextureCoord"); el != nil {
		coords, err := decodeBinaryElement(el)
		if err != nil {
			return nil, err
		}
		scan.TextureCoordData = coords
	}

	for _, el := range root.findAll("TextureImage", nil) {
		img, err := decodeBinaryElement(el)
		if err != nil {
			return nil, err
		}
		scan.TextureImages = append(scan.TextureImages, img)
	}

	if props := root.find("Properties"); props != nil {
		for _, p := range props.findAll("Property", nil) {
			name, okName := p.attr("name")
			value, okValue := p.attr("value")
			if okName && okValue {
				scan.Properties[name] = value
			}
		}
	}

	return scan, nil
}

// decodeBinaryElement decodes an element's base64 text payload. Producers
// wrap long payloads across lines, so all whitespace is stripped first.
func decodeBinaryElement(el *xmlNode) ([]byte, error) {
	text := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, el.Text)
	if text == "" {
		return nil, parseErrorf("element '%s' has no binary data", el.XMLName.Local)
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, parseErrorf("element '%s': decode base64: %v", el.XMLName.Local, err)
	}
	return raw, nil
}

// countAttr parses a decimal count attribute, defaulting to 0 when absent.
func countAttr(el *xmlNode, name string) (uint32, error) {
	s, ok := el.attr(name)
	if !ok {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, parseErrorf("element '%s': attribute %s=%q is not a valid count", el.XMLName.Local, name, s)
	}
	return uint32(v), nil
}

// optionalIntAttr parses an optional integer attribute, returning -1 when
// absent or unparseable.
func optionalIntAttr(el *xmlNode, name string) int64 {
	s, ok := el.attr(name)
	if !ok {
		return -1
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return -1
	}
	return v
}
