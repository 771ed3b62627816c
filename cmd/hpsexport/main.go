// hpsexport decodes one HPS file and writes it as STL, OBJ or PLY.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HeadTriXz/hpsdecode/internal/export"
	"github.com/HeadTriXz/hpsdecode/internal/hps"
)

func main() {
	format := flag.String("format", "", "Output format: stl, obj or ply (default: from output extension)")
	ascii := flag.Bool("ascii", false, "Write text format instead of binary (STL and PLY only)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: hpsexport [flags] <input.hps> <output.{stl,obj,ply}>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	_, mesh, err := hps.LoadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hpsexport: %v\n", err)
		os.Exit(1)
	}

	if err := export.Mesh(mesh, output, export.Format(*format), export.Options{ASCII: *ascii}); err != nil {
		fmt.Fprintf(os.Stderr, "hpsexport: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%d vertices, %d faces)\n", output, mesh.NumVertices(), mesh.NumFaces())
}
