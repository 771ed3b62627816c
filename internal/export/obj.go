package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/HeadTriXz/hpsdecode/internal/hps"
)

func writeOBJ(m *hps.Mesh, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# hpsdecode")

	for _, v := range m.Vertices {
		fmt.Fprintf(w, "v %.6f %.6f %.6f\n", v[0], v[1], v[2])
	}

	if m.HasTextureCoords() {
		// One vt per face corner; faces reference corners positionally.
		for _, uv := range m.UV {
			fmt.Fprintf(w, "vt %.6f %.6f\n", uv[0], uv[1])
		}
		for i, tri := range m.Faces {
			fmt.Fprintf(w, "f %d/%d %d/%d %d/%d\n",
				tri[0]+1, i*3+1,
				tri[1]+1, i*3+2,
				tri[2]+1, i*3+3)
		}
	} else {
		for _, tri := range m.Faces {
			fmt.Fprintf(w, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return f.Close()
}
