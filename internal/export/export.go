// Package export writes decoded meshes to common 3D interchange formats.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HeadTriXz/hpsdecode/internal/hps"
	"github.com/HeadTriXz/hpsdecode/internal/mathutil"
)

// Format is a supported output format.
type Format string

const (
	FormatSTL Format = "stl"
	FormatOBJ Format = "obj"
	FormatPLY Format = "ply"
)

// Options controls format-specific output behavior.
type Options struct {
	// ASCII selects the text encoding for STL and PLY. OBJ is always text.
	ASCII bool
}

// FormatFromPath infers the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch f := Format(ext); f {
	case FormatSTL, FormatOBJ, FormatPLY:
		return f, nil
	}
	return "", fmt.Errorf("export: unsupported file extension %q (supported: stl, obj, ply)", filepath.Ext(path))
}

// Mesh writes m to path in the given format. An empty format is inferred
// from the path's extension.
func Mesh(m *hps.Mesh, path string, format Format, opts Options) error {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		format = f
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("export: create %s: %w", dir, err)
		}
	}

	switch format {
	case FormatSTL:
		return writeSTL(m, path, opts.ASCII)
	case FormatOBJ:
		return writeOBJ(m, path)
	case FormatPLY:
		return writePLY(m, path, opts.ASCII)
	}
	return fmt.Errorf("export: unsupported format %q", format)
}

// faceNormals computes one unit normal per triangle from its winding order.
func faceNormals(m *hps.Mesh) []mathutil.Vec3 {
	normals := make([]mathutil.Vec3, len(m.Faces))
	for i, tri := range m.Faces {
		v0 := mathutil.FromFloat32(m.Vertices[tri[0]])
		v1 := mathutil.FromFloat32(m.Vertices[tri[1]])
		v2 := mathutil.FromFloat32(m.Vertices[tri[2]])
		normals[i] = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	}
	return normals
}
