// hpsbatch converts every HPS file under a directory to a 3D interchange
// format, optionally dumping embedded textures as WebP.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/HeadTriXz/hpsdecode/internal/batch"
	"github.com/HeadTriXz/hpsdecode/internal/config"
	"github.com/HeadTriXz/hpsdecode/internal/export"
	"github.com/HeadTriXz/hpsdecode/internal/logging"
)

func main() {
	configFile := flag.String("config", "", "Path to config.yaml file")
	inputDir := flag.String("input", "", "Directory to scan for .hps files")
	outputDir := flag.String("output", "", "Output directory (default: <input>-export)")
	format := flag.String("format", "", "Output format: stl, obj or ply (default: stl)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Convert only the first N files for testing")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hpsbatch: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Format:    *format,
		Workers:   *workers,
	})

	if cfg.InputDir == "" {
		fmt.Fprintln(os.Stderr, "hpsbatch: no input directory. Use -input or a config file.")
		os.Exit(2)
	}

	log := logging.New(cfg.LogLevel, logging.DefaultFileConfig(cfg.LogFile))
	defer log.Sync()

	files, err := batch.Discover(cfg.InputDir)
	if err != nil {
		log.Fatal("scan failed", zap.Error(err))
	}
	if *testN > 0 && *testN < len(files) {
		files = files[:*testN]
	}
	if len(files) == 0 {
		log.Warn("no .hps files found", zap.String("dir", cfg.InputDir))
		return
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatal("create output directory", zap.Error(err))
	}

	log.Info("starting batch",
		zap.Int("files", len(files)),
		zap.String("format", cfg.Format),
		zap.Int("workers", cfg.Workers))

	results := batch.Run(batch.Config{
		InputDir:     cfg.InputDir,
		OutputDir:    cfg.OutputDir,
		Format:       export.Format(cfg.Format),
		ASCII:        cfg.ASCII,
		DumpTextures: cfg.DumpTextures,
		TextureSize:  cfg.TextureSize,
		Workers:      cfg.Workers,
		Log:          log,
	}, files)

	manifest := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifest, results); err != nil {
		log.Error("write manifest", zap.Error(err))
	}

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
		}
	}
	log.Info("done", zap.Int("succeeded", ok), zap.Int("failed", len(results)-ok))
	if ok < len(results) {
		os.Exit(1)
	}
}
