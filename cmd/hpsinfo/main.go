// hpsinfo prints the container metadata and decoded geometry summary of
// HPS files.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/HeadTriXz/hpsdecode/internal/hps"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hpsinfo <file.hps> [...]")
		os.Exit(2)
	}

	failed := false
	for _, arg := range os.Args[1:] {
		scan, mesh, err := hps.LoadFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hpsinfo: %s: %v\n", arg, err)
			failed = true
			continue
		}
		printScan(arg, scan, mesh)
	}
	if failed {
		os.Exit(1)
	}
}

func printScan(path string, scan *hps.PackedScan, mesh *hps.Mesh) {
	fmt.Printf("=== %s ===\n", path)
	fmt.Printf("  schema=%s version=%q\n", scan.Schema, scan.Version)
	fmt.Printf("  vertices=%d faces=%d (vertex block %d bytes, facet block %d bytes)\n",
		mesh.NumVertices(), mesh.NumFaces(), len(scan.VertexData), len(scan.FacetData))

	if mesh.NumVertices() > 0 {
		minV := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
		maxV := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
		for _, v := range mesh.Vertices {
			for k := 0; k < 3; k++ {
				f := float64(v[k])
				if f < minV[k] {
					minV[k] = f
				}
				if f > maxV[k] {
					maxV[k] = f
				}
			}
		}
		fmt.Printf("  bbox min=(%.3f,%.3f,%.3f) max=(%.3f,%.3f,%.3f)\n",
			minV[0], minV[1], minV[2], maxV[0], maxV[1], maxV[2])
	}

	fmt.Printf("  texture coords=%v texture images=%d\n",
		mesh.HasTextureCoords(), len(scan.TextureImages))
	if scan.CheckValue >= 0 {
		fmt.Printf("  check value=%d\n", scan.CheckValue)
	}
	for name, value := range scan.Properties {
		fmt.Printf("  property %s=%q\n", name, value)
	}
}
