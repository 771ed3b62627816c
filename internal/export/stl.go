package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HeadTriXz/hpsdecode/internal/hps"
)

const stlHeaderTag = "hpsdecode"

func writeSTL(m *hps.Mesh, path string, ascii bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if ascii {
		err = writeSTLASCII(w, m, path)
	} else {
		err = writeSTLBinary(w, m)
	}
	if err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return f.Close()
}

func writeSTLBinary(w *bufio.Writer, m *hps.Mesh) error {
	var header [80]byte
	copy(header[:], stlHeaderTag)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(m.NumFaces()))
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}

	normals := faceNormals(m)
	for i, tri := range m.Faces {
		writeFloat32LE(w, float32(normals[i][0]), float32(normals[i][1]), float32(normals[i][2]))
		for _, idx := range tri {
			v := m.Vertices[idx]
			writeFloat32LE(w, v[0], v[1], v[2])
		}
		if _, err := w.Write([]byte{0, 0}); err != nil {
			return err
		}
	}
	return nil
}

func writeSTLASCII(w *bufio.Writer, m *hps.Mesh, path string) error {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return err
	}

	normals := faceNormals(m)
	for i, tri := range m.Faces {
		n := normals[i]
		fmt.Fprintf(w, "  facet normal %.6e %.6e %.6e\n", n[0], n[1], n[2])
		fmt.Fprintf(w, "    outer loop\n")
		for _, idx := range tri {
			v := m.Vertices[idx]
			fmt.Fprintf(w, "      vertex %.6e %.6e %.6e\n", v[0], v[1], v[2])
		}
		fmt.Fprintf(w, "    endloop\n")
		fmt.Fprintf(w, "  endfacet\n")
	}

	_, err := fmt.Fprintf(w, "endsolid %s\n", name)
	return err
}

func writeFloat32LE(w *bufio.Writer, vals ...float32) {
	var buf [4]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		w.Write(buf[:])
	}
}
