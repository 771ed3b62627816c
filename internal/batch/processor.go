// Package batch converts directories of HPS files using a worker pool.
package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/HeadTriXz/hpsdecode/internal/export"
	"github.com/HeadTriXz/hpsdecode/internal/hps"
	"github.com/HeadTriXz/hpsdecode/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	InputDir  string
	OutputDir string

	Format       export.Format
	ASCII        bool
	DumpTextures bool
	TextureSize  int
	Workers      int

	Log *zap.Logger
}

// Result holds the outcome of processing one file.
type Result struct {
	File     string `json:"file"`
	Output   string `json:"output,omitempty"`
	Schema   string `json:"schema,omitempty"`
	Vertices int    `json:"vertices"`
	Faces    int    `json:"faces"`
	Textures int    `json:"textures"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// Discover returns all .hps files under dir, sorted for deterministic runs.
func Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".hps") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// Run processes all files using a worker pool.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					cfg.Log.Info("progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("files_per_sec", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	for idx := range files {
		fileChan <- idx
	}
	close(fileChan)
	wg.Wait()
	close(done)

	cfg.Log.Info("batch finished",
		zap.Int("total", total),
		zap.Duration("elapsed", time.Since(start)))
	return results
}

func processFile(cfg Config, path string) Result {
	res := Result{File: path}

	scan, mesh, err := hps.LoadFile(path)
	if err != nil {
		res.Error = err.Error()
		cfg.Log.Warn("decode failed", zap.String("file", path), zap.Error(err))
		return res
	}
	res.Schema = string(scan.Schema)
	res.Vertices = mesh.NumVertices()
	res.Faces = mesh.NumFaces()
	res.Textures = len(scan.TextureImages)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(cfg.OutputDir, stem+"."+string(cfg.Format))
	if err := export.Mesh(mesh, out, cfg.Format, export.Options{ASCII: cfg.ASCII}); err != nil {
		res.Error = err.Error()
		cfg.Log.Warn("export failed", zap.String("file", path), zap.Error(err))
		return res
	}
	res.Output = out

	if cfg.DumpTextures {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			res.Error = err.Error()
			return res
		}
		for i, raw := range scan.TextureImages {
			img, err := texture.Decode(raw)
			if err != nil {
				cfg.Log.Warn("texture decode failed",
					zap.String("file", path), zap.Int("index", i), zap.Error(err))
				continue
			}
			img = texture.Downscale(img, cfg.TextureSize)
			texPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_tex%d.webp", stem, i))
			if err := texture.WriteWebP(img, texPath); err != nil {
				cfg.Log.Warn("texture write failed",
					zap.String("file", path), zap.Int("index", i), zap.Error(err))
			}
		}
	}

	res.Success = true
	return res
}
