// hpstexdump extracts texture images embedded in an HPS container and
// writes them as WebP files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HeadTriXz/hpsdecode/internal/hps"
	"github.com/HeadTriXz/hpsdecode/internal/texture"
)

func main() {
	outDir := flag.String("out", ".", "Output directory")
	size := flag.Int("size", 0, "Downscale so the longest side is at most N pixels (0 = original size)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hpstexdump [flags] <input.hps>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)

	scan, err := hps.ParseContainerFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hpstexdump: %v\n", err)
		os.Exit(1)
	}
	if len(scan.TextureImages) == 0 {
		fmt.Printf("%s: no embedded textures\n", input)
		return
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "hpstexdump: %v\n", err)
		os.Exit(1)
	}

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	for i, raw := range scan.TextureImages {
		img, err := texture.Decode(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hpstexdump: texture %d: %v\n", i, err)
			continue
		}
		img = texture.Downscale(img, *size)

		out := filepath.Join(*outDir, fmt.Sprintf("%s_tex%d.webp", stem, i))
		if err := texture.WriteWebP(img, out); err != nil {
			fmt.Fprintf(os.Stderr, "hpstexdump: texture %d: %v\n", i, err)
			continue
		}
		b := img.Bounds()
		fmt.Printf("wrote %s (%dx%d)\n", out, b.Dx(), b.Dy())
	}
}
