package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/HeadTriXz/hpsdecode/internal/hps"
)

func writePLY(m *hps.Mesh, path string, ascii bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if ascii {
		err = writePLYASCII(w, m)
	} else {
		err = writePLYBinary(w, m)
	}
	if err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return f.Close()
}

func plyHeader(m *hps.Mesh, binaryFormat bool) string {
	format := "ascii"
	if binaryFormat {
		format = "binary_little_endian"
	}
	return fmt.Sprintf(`ply
format %s 1.0
comment hpsdecode
element vertex %d
property float x
property float y
property float z
element face %d
property list uchar uint vertex_indices
end_header
`, format, m.NumVertices(), m.NumFaces())
}

func writePLYBinary(w *bufio.Writer, m *hps.Mesh) error {
	if _, err := w.WriteString(plyHeader(m, true)); err != nil {
		return err
	}

	for _, v := range m.Vertices {
		writeFloat32LE(w, v[0], v[1], v[2])
	}

	var buf [4]byte
	for _, tri := range m.Faces {
		if err := w.WriteByte(3); err != nil {
			return err
		}
		for _, idx := range tri {
			binary.LittleEndian.PutUint32(buf[:], idx)
			if _, err := w.Write(buf[:]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePLYASCII(w *bufio.Writer, m *hps.Mesh) error {
	if _, err := w.WriteString(plyHeader(m, false)); err != nil {
		return err
	}

	for _, v := range m.Vertices {
		fmt.Fprintf(w, "%.6f %.6f %.6f\n", v[0], v[1], v[2])
	}
	for _, tri := range m.Faces {
		fmt.Fprintf(w, "3 %d %d %d\n", tri[0], tri[1], tri[2])
	}
	return nil
}
